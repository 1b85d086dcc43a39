package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:   "smartinput",
	Short: "Parse free-text task lines",
	Long: `smartinput reads task lines such as "Fix bug tomorrow 3pm #backend @urgent p1"
and shows the title, due date, time, project, label and priority they describe.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.Version = Version

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(interactiveCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("timezone", "Local", "IANA timezone relative dates resolve in")
	rootCmd.PersistentFlags().String("now", "", "reference instant as RFC3339 (default: current time)")
	rootCmd.PersistentFlags().Bool("notes", true, `treat text after "//" as a note`)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
