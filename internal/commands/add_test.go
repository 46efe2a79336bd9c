package commands_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initBooks(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	_, err := runHuvudbok(t, "init", dir, "--name", "Testbolaget AB")
	require.NoError(t, err)
	return dir
}

func TestAdd_PostsVerification(t *testing.T) {
	dir := initBooks(t)

	out, err := runHuvudbok(t, "add", "--dir", dir,
		"--date", "2024-07-05",
		"--desc", "Konsultarvode",
		"--debit", "1930",
		"--credit", "3001",
		"--amount", "10000")
	require.NoError(t, err)
	assert.Contains(t, out, "2024-07-001")

	data, err := os.ReadFile(filepath.Join(dir, "2024", "07", "journal.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	// Header + one row per side.
	assert.Len(t, lines, 3)
	assert.Contains(t, string(data), "Konsultarvode")
}

func TestAdd_SequentialIDsWithinMonth(t *testing.T) {
	dir := initBooks(t)

	out1, err := runHuvudbok(t, "add", "--dir", dir,
		"--date", "2024-07-05", "--desc", "Första",
		"--debit", "1930", "--credit", "3001", "--amount", "100")
	require.NoError(t, err)
	out2, err := runHuvudbok(t, "add", "--dir", dir,
		"--date", "2024-07-06", "--desc", "Andra",
		"--debit", "1930", "--credit", "3001", "--amount", "200")
	require.NoError(t, err)

	assert.Contains(t, out1, "2024-07-001")
	assert.Contains(t, out2, "2024-07-002")
}

func TestAdd_UnknownAccountRejected(t *testing.T) {
	dir := initBooks(t)

	_, err := runHuvudbok(t, "add", "--dir", dir,
		"--date", "2024-07-05",
		"--desc", "Felkonterat",
		"--debit", "9999",
		"--credit", "3001",
		"--amount", "100")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "9999")

	// Nothing may be persisted for a rejected verification.
	_, statErr := os.Stat(filepath.Join(dir, "2024", "07", "journal.csv"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestAdd_CommitsWhenAutoCommitEnabled(t *testing.T) {
	dir := initBooks(t)

	_, err := runHuvudbok(t, "add", "--dir", dir,
		"--date", "2024-07-05", "--desc", "Konsultarvode",
		"--debit", "1930", "--credit", "3001", "--amount", "10000")
	require.NoError(t, err)

	log := exec.Command("git", "log", "--format=%s", "-1")
	log.Dir = dir
	out, err := log.Output()
	require.NoError(t, err)
	assert.Contains(t, string(out), "add: 2024-07-001")
}
