package outputs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestChecker() *Checker {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return NewChecker(logger)
}

func TestChecker_Exists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "01 - Band - Intro.flac")
	require.NoError(t, os.WriteFile(file, []byte("fLaC"), 0600))

	c := createTestChecker()
	assert.True(t, c.Exists(file))
	assert.False(t, c.Exists(filepath.Join(dir, "missing.flac")))
	assert.False(t, c.Exists(dir), "directories are not outputs")
}

func TestChecker_Verify(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "01.flac")
	empty := filepath.Join(dir, "02.flac")
	wrong := filepath.Join(dir, "03.flac")
	short := filepath.Join(dir, "04.flac")
	missing := filepath.Join(dir, "05.flac")

	require.NoError(t, os.WriteFile(good, append([]byte("fLaC"), make([]byte, 64)...), 0600))
	require.NoError(t, os.WriteFile(empty, nil, 0600))
	require.NoError(t, os.WriteFile(wrong, []byte("RIFF....WAVE"), 0600))
	require.NoError(t, os.WriteFile(short, []byte("fL"), 0600))

	c := createTestChecker()
	results, err := c.Verify(context.Background(), []string{good, empty, wrong, short, missing})
	require.NoError(t, err)
	require.Len(t, results, 5)

	assert.True(t, results[0].OK())
	assert.Equal(t, good, results[0].Path)
	assert.Equal(t, int64(68), results[0].Size)

	assert.ErrorIs(t, results[1].Err, ErrEmpty)
	assert.ErrorIs(t, results[2].Err, ErrNotFLAC)
	assert.ErrorIs(t, results[3].Err, ErrNotFLAC)
	assert.ErrorIs(t, results[4].Err, ErrMissing)
	assert.Equal(t, missing, results[4].Path)
}

func TestChecker_Verify_Empty(t *testing.T) {
	results, err := createTestChecker().Verify(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestChecker_Verify_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := createTestChecker().Verify(ctx, []string{"a.flac", "b.flac"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, results)
}
