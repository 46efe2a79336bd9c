package commands_test

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	accountsCSV "github.com/huvudbok-dev/huvudbok/internal/accounts"
	"github.com/huvudbok-dev/huvudbok/internal/commands"
)

func TestMain(m *testing.M) {
	// git commits need a committer identity regardless of --author.
	os.Setenv("GIT_COMMITTER_NAME", "Huvudbok Test")
	os.Setenv("GIT_COMMITTER_EMAIL", "test@huvudbok.dev")
	os.Setenv("GIT_AUTHOR_NAME", "Huvudbok Test")
	os.Setenv("GIT_AUTHOR_EMAIL", "test@huvudbok.dev")

	os.Exit(m.Run())
}

func runHuvudbok(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := commands.NewRootCommand()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestInit_CreatesStructure(t *testing.T) {
	dir := t.TempDir()
	_, err := runHuvudbok(t, "init", dir, "--name", "Testbolaget AB")
	require.NoError(t, err)

	expectedDirs := []string{
		"accounts",
		"logs",
		"import",
		filepath.Join("import", "processed"),
	}
	for _, d := range expectedDirs {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err, "directory %s should exist", d)
		assert.True(t, info.IsDir(), "%s should be a directory", d)
	}
}

func TestInit_Config(t *testing.T) {
	dir := t.TempDir()
	_, err := runHuvudbok(t, "init", dir, "--name", "Testbolaget AB", "--org-number", "556000-0000")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "huvudbok.yaml"))
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "name: Testbolaget AB")
	assert.Contains(t, contents, "org_number: 556000-0000")
	assert.Contains(t, contents, "reporting_period: quarterly")
}

func TestInit_ChartOfAccounts(t *testing.T) {
	dir := t.TempDir()
	_, err := runHuvudbok(t, "init", dir, "--name", "Testbolaget AB")
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(dir, "accounts", "chart-of-accounts.csv"))
	require.NoError(t, err)
	defer f.Close()

	accts, err := accountsCSV.ReadAccounts(f)
	require.NoError(t, err)
	assert.Len(t, accts, 27, "default BAS chart has 27 accounts")
}

func TestInit_GitRepo(t *testing.T) {
	dir := t.TempDir()
	_, err := runHuvudbok(t, "init", dir, "--name", "Testbolaget AB")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, ".git"))
	require.NoError(t, err, ".git should exist")

	log := exec.Command("git", "log", "--format=%s", "-1")
	log.Dir = dir
	out, err := log.Output()
	require.NoError(t, err)
	assert.Contains(t, string(out), "init:")
}

func TestInit_Gitignore(t *testing.T) {
	dir := t.TempDir()
	_, err := runHuvudbok(t, "init", dir, "--name", "Testbolaget AB")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)

	for _, pattern := range []string{"exports/", ".huvudbok-cache/"} {
		assert.Contains(t, string(data), pattern)
	}
}

func TestInit_RequiresName(t *testing.T) {
	dir := t.TempDir()
	_, err := runHuvudbok(t, "init", dir)
	require.Error(t, err, "init without --name should fail")
}
