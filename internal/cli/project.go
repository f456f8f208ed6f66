package cli

import (
	"bufio"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/floranpagliai/changelogkyper/internal/changelog"
	"github.com/floranpagliai/changelogkyper/internal/config"
	"github.com/floranpagliai/changelogkyper/internal/fragment"
	"github.com/floranpagliai/changelogkyper/internal/prompt"
)

// now is the release clock. Tests replace it.
var now = time.Now

// newAsker returns the prompt used by interactive commands and a func to
// release it. Stdin gets a line-editing terminal; any other input (tests,
// pipes set with SetIn) is read as one answer per line.
var newAsker = func(cmd *cobra.Command) (prompt.Asker, func() error) {
	in := cmd.InOrStdin()
	if in == os.Stdin {
		term := prompt.NewTerminal(cmd.OutOrStdout())
		return term, term.Close
	}

	var lines []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return prompt.New(prompt.NewScript(lines...), cmd.OutOrStdout()), func() error { return nil }
}

// changelogPath returns the CHANGELOG.md path of the project.
func changelogPath(dir string) string {
	return filepath.Join(dir, changelog.DefaultFileName)
}

// fragmentStore returns the store of pending fragments of the project.
func fragmentStore(dir string) *fragment.DirStore {
	return fragment.NewDirStore(config.ProjectConfigDir(dir))
}

// requireInit loads the project config, failing when init has not run.
func requireInit(cmd *cobra.Command) (*config.Config, error) {
	dir := projectDir(cmd)
	cfg, err := config.Load(dir)
	if err != nil {
		return nil, userError(err, dir)
	}
	debugf(cmd, "loaded config from %s", config.ProjectConfigPath(dir))
	return cfg, nil
}
