package artist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gitUtil "github.com/kuchuk-borom-debbarma/GitCanvas/internal/util/git"
)

func TestRenderProducesDatesForEveryOnCell(t *testing.T) {
	sunday := time.Date(2030, time.June, 2, 0, 0, 0, 0, time.UTC)
	cfg := NewConfig("testuser", "test-repo")
	cfg.Text = "HI"
	cfg.StartDate = &sunday

	bm, dates, err := Render(cfg)
	require.NoError(t, err)
	assert.Equal(t, bm.OnCount(), len(dates))
	assert.True(t, dates[0].Equal(sunday) || dates[0].After(sunday))
}

func TestRenderRequiresStartDate(t *testing.T) {
	cfg := NewConfig("testuser", "test-repo")
	cfg.Text = "HI"

	_, _, err := Render(cfg)
	assert.Error(t, err)
}

func TestRenderPropagatesUnsupportedChar(t *testing.T) {
	sunday := time.Date(2030, time.June, 2, 0, 0, 0, 0, time.UTC)
	cfg := NewConfig("testuser", "test-repo")
	cfg.Text = "HI§"
	cfg.StartDate = &sunday

	_, _, err := Render(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "position 2")
}

func TestCreateCommits(t *testing.T) {
	repoPath := filepath.Join(t.TempDir(), "repo")
	require.NoError(t, gitUtil.Init(repoPath))

	dates := []time.Time{
		time.Date(2030, time.June, 2, 0, 0, 0, 0, time.Local),
		time.Date(2030, time.June, 3, 0, 0, 0, 0, time.Local),
	}

	res := CreateCommits(repoPath, dates, 2, "")
	assert.Equal(t, 4, res.Successful)
	assert.Equal(t, 0, res.Failed)

	count, err := gitUtil.CommitCount(repoPath)
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	// One unique line per commit.
	data, err := os.ReadFile(filepath.Join(repoPath, dataFile))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 4)
	seen := make(map[string]bool)
	for _, line := range lines {
		assert.False(t, seen[line], "duplicate payload line")
		seen[line] = true
	}
}

func TestCreateCommitsContinuesAfterFailure(t *testing.T) {
	// No repository at all: every date fails, none aborts the loop.
	missing := filepath.Join(t.TempDir(), "missing")
	require.NoError(t, os.MkdirAll(missing, 0755))

	dates := []time.Time{
		time.Date(2030, time.June, 2, 0, 0, 0, 0, time.Local),
		time.Date(2030, time.June, 3, 0, 0, 0, 0, time.Local),
	}

	res := CreateCommits(missing, dates, 1, "")
	assert.Equal(t, 0, res.Successful)
	assert.Equal(t, 2, res.Failed)
}

func TestCommitMessageTemplate(t *testing.T) {
	date := time.Date(2030, time.June, 2, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "2030-06-02 00:00:00", commitMessage("", date, 0))
	assert.Equal(t, "art 2030-06-02 #3", commitMessage("art {date} #{index}", date, 3))
}
