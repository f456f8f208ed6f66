package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/floranpagliai/changelogkyper/internal/changelog"
	clierrors "github.com/floranpagliai/changelogkyper/internal/errors"
	"github.com/floranpagliai/changelogkyper/internal/fragment"
	"github.com/floranpagliai/changelogkyper/internal/release"
)

func newReleaseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "release <version>",
		Short: "Merge pending fragments into a new CHANGELOG.md section",
		Long: `Merge all pending fragments into a new version section at the top of
CHANGELOG.md, grouped by type of change, then delete the fragments.

The release date is today's date in UTC. Nothing is written when there are
no pending fragments, a fragment is malformed, or the version already exists.`,
		Example: `  changelogkyper release 1.4.0
  changelogkyper release 1.4.0 --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: runRelease,
	}
	cmd.GroupID = GroupChangelog
	cmd.Flags().Bool("dry-run", false, "Print the section that would be added without writing anything")
	return cmd
}

func runRelease(cmd *cobra.Command, args []string) error {
	version := args[0]
	dir := projectDir(cmd)
	out := cmd.OutOrStdout()

	if _, err := requireInit(cmd); err != nil {
		return err
	}

	w := &release.Workflow{
		Fragments: fragmentStore(dir),
		Changelog: changelog.NewFile(changelogPath(dir)),
		Now:       now,
		Logf:      debugLogger(cmd),
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	if dryRun {
		res, err := w.Plan(version)
		if err != nil {
			return releaseError(err, version, dir)
		}
		fmt.Fprintf(out, "Would add to %s:\n\n", changelogPath(dir))
		fmt.Fprint(out, changelog.RenderSection(&res.Section))
		return nil
	}

	res, err := w.Run(version)
	if err != nil {
		debugf(cmd, "release stopped after stage %s", res.Stage)
		return releaseError(err, version, dir)
	}

	fmt.Fprintf(out, "✓ Released %s with %d changes → %s\n", version, res.Section.Entries.Count(), changelogPath(dir))
	for _, cat := range fragment.Categories() {
		if n := len(res.Section.Entries[cat]); n > 0 {
			fmt.Fprintf(out, "  %s: %d\n", cat, n)
		}
	}
	return nil
}

func releaseError(err error, version, dir string) error {
	if errors.Is(err, release.ErrInvalidVersion) {
		return clierrors.InvalidVersion(version, err)
	}
	return userError(err, dir)
}
