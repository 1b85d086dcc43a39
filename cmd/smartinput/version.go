package main

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Set at build time via -ldflags "-X main.Version=... -X main.GitCommit=...".
var (
	Version   = "0.1.0-dev"
	GitCommit = ""
)

type versionPayload struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	GoVersion string `json:"go_version"`
}

var versionFormat string

func init() {
	versionCmd.Flags().StringVar(&versionFormat, "format", "pretty", "output format (pretty|json)")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show smartinput build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		payload := versionPayload{
			Tool:      "smartinput",
			Version:   Version,
			GitCommit: GitCommit,
			GoVersion: runtime.Version(),
		}

		out := cmd.OutOrStdout()
		switch versionFormat {
		case "json":
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(payload)
		case "pretty":
			fmt.Fprintf(out, "%s %s", payload.Tool, payload.Version)
			if payload.GitCommit != "" {
				fmt.Fprintf(out, " (%s)", payload.GitCommit)
			}
			fmt.Fprintf(out, " %s\n", payload.GoVersion)
			return nil
		default:
			return fmt.Errorf("unknown format: %s", versionFormat)
		}
	},
}
