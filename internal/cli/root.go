// Package cli implements the changelogkyper command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	clierrors "github.com/floranpagliai/changelogkyper/internal/errors"
	"github.com/floranpagliai/changelogkyper/internal/git"
)

// Command group IDs.
const (
	GroupSetup     = "setup"
	GroupChangelog = "changelog"
)

// newRootCmd builds a fresh command tree.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "changelogkyper",
		Short: "Keep unreleased changelog entries as fragments and release them into CHANGELOG.md",
		Long: `changelogkyper records each change as a small YAML fragment under
.changelogkyper/ and merges the pending fragments into a new version section
of CHANGELOG.md when you release.

Fragments never conflict on merge because every change lives in its own file.`,
		Example: `  changelogkyper init --url https://github.com/acme/app/issues/
  changelogkyper add --type Fixed --issue 42 --title "Fix crash on empty input"
  changelogkyper show unreleased
  changelogkyper release 1.4.0
  changelogkyper show 1.4.0`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			git.SetDebugLogger(debugLogger(cmd))
		},
	}

	rootCmd.AddGroup(
		&cobra.Group{ID: GroupSetup, Title: "Setup:"},
		&cobra.Group{ID: GroupChangelog, Title: "Changelog:"},
	)

	rootCmd.PersistentFlags().String("dir", ".", "Project directory containing .changelogkyper/ and CHANGELOG.md")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print debug output to stderr")

	rootCmd.AddCommand(
		newInitCmd(),
		newAddCmd(),
		newReleaseCmd(),
		newShowCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the command tree against os.Args and prints any error to stderr.
func Execute() error {
	err := newRootCmd().Execute()
	if err != nil {
		clierrors.FprintError(os.Stderr, err)
	}
	return err
}

// projectDir returns the --dir flag value.
func projectDir(cmd *cobra.Command) string {
	dir, _ := cmd.Flags().GetString("dir")
	if dir == "" {
		return "."
	}
	return dir
}

// debugLogger returns a logger writing [debug] lines to stderr when
// --verbose is set, nil otherwise.
func debugLogger(cmd *cobra.Command) func(format string, args ...any) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return nil
	}
	w := cmd.ErrOrStderr()
	return func(format string, args ...any) {
		fmt.Fprintf(w, "[debug] "+format+"\n", args...)
	}
}

// debugf logs through debugLogger when verbose output is on.
func debugf(cmd *cobra.Command, format string, args ...any) {
	if log := debugLogger(cmd); log != nil {
		log(format, args...)
	}
}
