package man

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManCmd(t *testing.T) {
	cmd := NewManCmd()

	assert.Equal(t, "man", cmd.Use)
	assert.True(t, cmd.Hidden)
	assert.NotNil(t, cmd.RunE)
}

func TestManCmd_Output(t *testing.T) {
	root := &cobra.Command{
		Use:   "cuesplit",
		Short: "Split a single-file album into tracks",
		Run:   func(cmd *cobra.Command, args []string) {},
	}
	root.AddCommand(NewManCmd())

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"man"})

	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "cuesplit")
	assert.Contains(t, buf.String(), ".TH")
}
