package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	clierrors "github.com/floranpagliai/changelogkyper/internal/errors"
	"github.com/floranpagliai/changelogkyper/internal/fragment"
	"github.com/floranpagliai/changelogkyper/internal/prompt"
)

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a change as a pending fragment",
		Long: `Record a change as a pending fragment in .changelogkyper/.

You are asked for the type of change, the related issue id (empty or 0 for
none) and a one-line title. Flags answer the matching question without
prompting. Adding a change with the same title as a pending one replaces it.`,
		Example: `  changelogkyper add
  changelogkyper add --type Fixed --issue 42 --title "Fix crash on empty input"
  changelogkyper add --type security --title "Bump vulnerable dependency"`,
		Args: cobra.NoArgs,
		RunE: runAdd,
	}
	cmd.GroupID = GroupChangelog
	cmd.Flags().StringP("type", "t", "", fmt.Sprintf("Type of change (%s)", strings.Join(fragment.SelectableNames(), ", ")))
	cmd.Flags().IntP("issue", "i", 0, "Issue id (0 for none)")
	cmd.Flags().String("title", "", "Change description")
	return cmd
}

// addAnswers holds the resolved inputs of add.
type addAnswers struct {
	category fragment.Category
	issueID  int
	title    string
}

func runAdd(cmd *cobra.Command, args []string) error {
	dir := projectDir(cmd)

	cfg, err := requireInit(cmd)
	if err != nil {
		return err
	}

	answers, err := resolveAddAnswers(cmd)
	if err != nil {
		return userError(err, dir)
	}

	f := fragment.New(answers.category, answers.title, answers.issueID, cfg.RepoIssuesURL)
	path, err := fragmentStore(dir).Write(f)
	if err != nil {
		return userError(err, dir)
	}
	debugf(cmd, "fragment %q -> %s", f.Title, path)

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Added %s change: %s\n", f.Category, path)
	return nil
}

// resolveAddAnswers takes answers from flags and prompts for the rest.
func resolveAddAnswers(cmd *cobra.Command) (addAnswers, error) {
	var answers addAnswers
	var questions []prompt.Question

	if typeName, _ := cmd.Flags().GetString("type"); typeName != "" {
		cat, err := parseSelectableCategory(typeName)
		if err != nil {
			return answers, err
		}
		answers.category = cat
	} else {
		questions = append(questions, prompt.Question{
			Kind:    prompt.Select,
			Name:    "type",
			Message: "Type of change",
			Choices: fragment.SelectableNames(),
		})
	}

	if cmd.Flags().Changed("issue") {
		id, _ := cmd.Flags().GetInt("issue")
		if id < 0 {
			return answers, clierrors.InvalidIssueID(id)
		}
		answers.issueID = id
	} else {
		questions = append(questions, prompt.Question{
			Kind:    prompt.Numeral,
			Name:    "id",
			Message: "Issue id (empty for none)",
		})
	}

	if title, _ := cmd.Flags().GetString("title"); cmd.Flags().Changed("title") {
		if err := fragment.CheckTitle(title); err != nil {
			return answers, titleError(err)
		}
		answers.title = title
	} else {
		questions = append(questions, prompt.Question{
			Kind:     prompt.Input,
			Name:     "title",
			Message:  "Title",
			Validate: fragment.CheckTitle,
		})
	}

	if len(questions) == 0 {
		return answers, nil
	}

	asker, done := newAsker(cmd)
	defer done()

	got, err := asker.Ask(questions)
	if err != nil {
		return answers, err
	}
	if _, ok := got["type"]; ok {
		cat, err := parseSelectableCategory(got.String("type"))
		if err != nil {
			return answers, err
		}
		answers.category = cat
	}
	if _, ok := got["id"]; ok {
		answers.issueID = got.Int("id")
	}
	if _, ok := got["title"]; ok {
		answers.title = got.String("title")
	}
	return answers, nil
}

func titleError(err error) error {
	if errors.Is(err, fragment.ErrMultilineTitle) {
		return clierrors.MultilineTitle()
	}
	return clierrors.EmptyTitle()
}

// parseSelectableCategory accepts the categories offered to users.
func parseSelectableCategory(name string) (fragment.Category, error) {
	cat, err := fragment.ParseCategory(name)
	if err != nil {
		return cat, clierrors.InvalidCategory(name, fragment.SelectableNames())
	}
	return cat, nil
}
