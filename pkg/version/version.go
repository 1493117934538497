// Package version exposes build information injected at link time.
//
// Build with:
//
//	go build -ldflags "-X github.com/toozej/cuesplit/pkg/version.Version=v1.0.0 \
//	  -X github.com/toozej/cuesplit/pkg/version.Commit=$(git rev-parse HEAD)"
package version

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// Set via -ldflags at build time.
var (
	Version = "local"
	Commit  = ""
	Branch  = ""
	BuiltAt = ""
	Builder = ""
)

// Info holds the build information of the running binary.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Branch  string `json:"branch"`
	BuiltAt string `json:"built_at"`
	Builder string `json:"builder"`
}

// Get returns the build information of the running binary.
func Get() Info {
	return Info{
		Version: Version,
		Commit:  Commit,
		Branch:  Branch,
		BuiltAt: BuiltAt,
		Builder: Builder,
	}
}

// Command returns the version subcommand, which prints Info as JSON.
func Command() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := json.MarshalIndent(Get(), "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}
}
