package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/floranpagliai/changelogkyper/internal/changelog"
	"github.com/floranpagliai/changelogkyper/internal/fragment"
	"github.com/floranpagliai/changelogkyper/internal/release"
)

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <version|unreleased>",
		Short: "Print a version section or the pending changes",
		Long: `Print the CHANGELOG.md section of a version, heading included.

"unreleased" (any case) previews the pending fragments as they would be
released. Colors are used on terminals unless --plain or NO_COLOR is set.`,
		Example: `  changelogkyper show 1.4.0
  changelogkyper show unreleased
  changelogkyper show 1.4.0 --html > notes.html`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}
	cmd.GroupID = GroupChangelog
	cmd.Flags().Bool("html", false, "Render the section as HTML")
	cmd.Flags().Bool("plain", false, "Plain Markdown output (no colors/icons)")
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	dir := projectDir(cmd)
	out := cmd.OutOrStdout()

	if _, err := requireInit(cmd); err != nil {
		return err
	}

	section, err := findSection(dir, args[0])
	if err != nil {
		if errors.Is(err, fragment.ErrNoFragments) {
			fmt.Fprintln(out, "No unreleased changes.")
			return nil
		}
		return userError(err, dir)
	}

	if html, _ := cmd.Flags().GetBool("html"); html {
		return changelog.FormatHTML(section, out)
	}

	opts := changelog.DetectOptions(out)
	if plain, _ := cmd.Flags().GetBool("plain"); plain {
		opts.Plain = true
	}
	return changelog.FormatSection(section, out, opts)
}

// findSection returns the pending preview for "unreleased", otherwise the
// changelog section of version.
func findSection(dir, version string) (*changelog.Section, error) {
	if strings.EqualFold(version, changelog.UnreleasedVersion) {
		return release.Unreleased(fragmentStore(dir))
	}

	doc, err := changelog.Load(changelog.NewFile(changelogPath(dir)))
	if err != nil {
		return nil, err
	}
	return doc.GetVersion(version)
}
