package artist

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig("testuser", "test-repo")
	assert.Equal(t, "https", cfg.Protocol)
	assert.Equal(t, 1, cfg.LetterSpacing)
	assert.Equal(t, 1, cfg.CommitsPerDay)
	assert.True(t, cfg.AutoCalculateStart)
	assert.Equal(t, 1, cfg.WeeksInAdvance)
	assert.Equal(t, "origin", cfg.RemoteName)
	assert.Equal(t, "main", cfg.BranchName)
	assert.True(t, cfg.AutoPush)
}

func TestValidateOK(t *testing.T) {
	cfg := NewConfig("testuser", "test-repo")
	cfg.Text = "HELLO"
	assert.Empty(t, cfg.Validate())
}

func TestValidateCollectsAllViolations(t *testing.T) {
	cfg := NewConfig("", "")
	cfg.Protocol = "ftp"
	cfg.CommitsPerDay = 0
	cfg.LetterSpacing = -1

	violations := cfg.Validate()
	// username, repo, protocol, commits, spacing, missing text
	assert.Len(t, violations, 6)
}

func TestValidateMissingTextOnlyOutsidePreview(t *testing.T) {
	cfg := NewConfig("testuser", "test-repo")
	cfg.PreviewOnly = true
	assert.Empty(t, cfg.Validate())

	cfg.PreviewOnly = false
	assert.NotEmpty(t, cfg.Validate())
}

func TestValidateNonSundayStart(t *testing.T) {
	monday := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	cfg := NewConfig("testuser", "test-repo")
	cfg.Text = "HI"
	cfg.StartDate = &monday

	violations := cfg.Validate()
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0], "Sunday")
}

func TestCloneURL(t *testing.T) {
	cfg := NewConfig("testuser", "test-repo")
	assert.Equal(t, "https://github.com/testuser/test-repo.git", cfg.CloneURL())

	cfg.Protocol = "ssh"
	assert.Equal(t, "git@github.com:testuser/test-repo.git", cfg.CloneURL())
}

func TestConfigRoundTrip(t *testing.T) {
	sunday := time.Date(2024, time.January, 7, 0, 0, 0, 0, time.UTC)
	cfg := NewConfig("testuser", "test-repo")
	cfg.Text = "HELLO"
	cfg.LetterSpacing = 2
	cfg.StartDate = &sunday
	cfg.AutoCalculateStart = false

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, cfg.Save(path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Username, loaded.Username)
	assert.Equal(t, cfg.Text, loaded.Text)
	assert.Equal(t, cfg.LetterSpacing, loaded.LetterSpacing)
	require.NotNil(t, loaded.StartDate)
	assert.True(t, sunday.Equal(*loaded.StartDate))
}

func TestLoadConfigIgnoresUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	raw := `{"username":"u","repo_name":"r","protocol":"https","start_date":null,"some_future_field":42}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "u", cfg.Username)
	assert.Nil(t, cfg.StartDate)
}

func TestWriteExampleConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "example.json")
	require.NoError(t, WriteExampleConfig(path))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "your-username", cfg.Username)
	assert.Equal(t, "HELLO", cfg.Text)
	assert.False(t, cfg.AutoPush)
}
