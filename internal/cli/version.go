package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/floranpagliai/changelogkyper/internal/build"
)

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "version",
		Aliases: []string{"v"},
		Short:   "Display version information",
		Long:    "Display version, commit, build date, and Go version information for changelogkyper",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			plain, _ := cmd.Flags().GetBool("plain")
			printVersion(cmd, plain)
		},
	}
	cmd.GroupID = GroupSetup
	cmd.Flags().Bool("plain", false, "Plain output without formatting")
	return cmd
}

func printVersion(cmd *cobra.Command, plain bool) {
	out := cmd.OutOrStdout()
	if plain || color.NoColor {
		fmt.Fprintf(out, "changelogkyper %s\n", build.Version)
		for _, f := range build.Fields()[1:] {
			fmt.Fprintf(out, "%s: %s\n", f[0], f[1])
		}
		return
	}

	label := color.New(color.FgYellow).SprintFunc()
	value := color.New(color.FgWhite, color.Bold).SprintFunc()
	fmt.Fprintln(out, color.New(color.FgCyan, color.Bold).Sprint("changelogkyper"))
	for _, f := range build.Fields() {
		fmt.Fprintf(out, "  %s  %s\n", label(fmt.Sprintf("%-9s", f[0])), value(f[1]))
	}
	fmt.Fprintf(out, "  %s\n", build.SourceURL)
}
