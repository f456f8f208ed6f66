package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/floranpagliai/changelogkyper/internal/config"
	"github.com/floranpagliai/changelogkyper/internal/git"
	"github.com/floranpagliai/changelogkyper/internal/prompt"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize changelogkyper in the project",
		Long: `Initialize changelogkyper in the project.

This command:
  1. Creates the .changelogkyper/ directory that holds pending fragments
  2. Stores the issue tracker URL in .changelogkyper/config.json

The URL of the git origin remote is suggested when available. Issue links
are built by appending the issue id to the URL. Re-running init replaces
the stored URL.`,
		Example: `  changelogkyper init
  changelogkyper init --url https://github.com/acme/app/issues/`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}
	cmd.GroupID = GroupSetup
	cmd.Flags().String("url", "", "Issue tracker base URL (skips the prompt)")
	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := projectDir(cmd)
	out := cmd.OutOrStdout()

	existing := config.IsInitialized(dir)
	store := fragmentStore(dir)
	if err := store.Init(); err != nil {
		return userError(err, dir)
	}

	url, _ := cmd.Flags().GetString("url")
	if url == "" {
		answered, err := askIssuesURL(cmd, dir)
		if err != nil {
			return userError(err, dir)
		}
		url = answered
	}

	cfg := &config.Config{RepoIssuesURL: config.NormalizeIssuesURL(url)}
	if err := config.Save(dir, cfg); err != nil {
		return userError(err, dir)
	}

	if existing {
		fmt.Fprintf(out, "✓ Updated changelogkyper config in %s\n", config.ProjectConfigDir(dir))
	} else {
		fmt.Fprintf(out, "✓ Initialized changelogkyper in %s\n", config.ProjectConfigDir(dir))
	}
	fmt.Fprintf(out, "✓ Issue links: %s<id>\n", cfg.RepoIssuesURL)
	return nil
}

// askIssuesURL prompts for the issue tracker URL, suggesting the current
// value or one derived from the origin remote.
func askIssuesURL(cmd *cobra.Command, dir string) (string, error) {
	suggestion := ""
	if cfg, err := config.Load(dir); err == nil {
		suggestion = cfg.RepoIssuesURL
	} else if remote, err := git.IssuesURL(dir); err == nil {
		suggestion = remote
	} else {
		debugf(cmd, "no issues URL suggestion: %v", err)
	}

	asker, done := newAsker(cmd)
	defer done()

	answers, err := asker.Ask([]prompt.Question{{
		Kind:     prompt.Input,
		Name:     "url",
		Message:  "Repository issues URL",
		Default:  suggestion,
		Validate: config.ValidateIssuesURL,
	}})
	if err != nil {
		return "", err
	}
	return answers.String("url"), nil
}
