// Command pi-sanitizer is the CLI frontend: an external collaborator
// (§1, §6.5) that wraps the sanitize/rehydrate library API in a
// cobra-based command tree, the same way the teacher's cmd/pi-scanner
// wraps its scan pipeline.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pi-sanitizer",
		Short: "Detect and mask personally identifiable information",
		Long: `pi-sanitizer detects personally identifiable information in text, JSON, or
HTML content, replaces it with deterministic opaque placeholders, and
emits a rehydration map that can restore the original content later.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSanitizeCmd())
	rootCmd.AddCommand(newRehydrateCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pi-sanitizer\n")
			fmt.Fprintf(cmd.OutOrStdout(), "Version: %s\n", version)
			fmt.Fprintf(cmd.OutOrStdout(), "Build: %s\n", commit)
			fmt.Fprintf(cmd.OutOrStdout(), "Go Version: %s\n", runtime.Version())
			fmt.Fprintf(cmd.OutOrStdout(), "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
