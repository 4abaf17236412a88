package artist

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config holds every user-facing parameter for one art run. It is built
// once, validated eagerly, and only read afterwards.
type Config struct {
	// Repository identity
	Username string `json:"username"`
	RepoName string `json:"repo_name"`
	Protocol string `json:"protocol"` // "https" or "ssh"

	// Art settings
	Text          string `json:"text"`
	LetterSpacing int    `json:"letter_spacing"`
	CommitsPerDay int    `json:"commits_per_day"`

	// Date settings
	StartDate          *time.Time `json:"start_date"`
	AutoCalculateStart bool       `json:"auto_calculate_start"`
	WeeksInAdvance     int        `json:"weeks_in_advance"`

	// Git settings
	CommitMessageTemplate string `json:"commit_message_template"`
	RemoteName            string `json:"remote_name"`
	BranchName            string `json:"branch_name"`

	// Execution settings
	PreviewOnly bool `json:"preview_only"`
	AutoPush    bool `json:"auto_push"`
}

// NewConfig returns a Config with the documented defaults filled in.
func NewConfig(username, repoName string) Config {
	return Config{
		Username:           username,
		RepoName:           repoName,
		Protocol:           "https",
		LetterSpacing:      1,
		CommitsPerDay:      1,
		AutoCalculateStart: true,
		WeeksInAdvance:     1,
		RemoteName:         "origin",
		BranchName:         "main",
		AutoPush:           true,
	}
}

// Validate checks the whole configuration and returns every violation at
// once, so the user gets the full correction list in a single pass. An empty
// slice means the configuration is usable.
func (c Config) Validate() []string {
	var errs []string

	if c.Username == "" {
		errs = append(errs, "username is required")
	}
	if c.RepoName == "" {
		errs = append(errs, "repository name is required")
	}
	if c.Protocol != "https" && c.Protocol != "ssh" {
		errs = append(errs, fmt.Sprintf("protocol must be 'https' or 'ssh', got %q", c.Protocol))
	}
	if c.CommitsPerDay < 1 {
		errs = append(errs, "commits per day must be at least 1")
	}
	if c.LetterSpacing < 0 {
		errs = append(errs, "letter spacing must be non-negative")
	}
	if c.Text == "" && !c.PreviewOnly {
		errs = append(errs, "text is required when not in preview-only mode")
	}
	if c.StartDate != nil && c.StartDate.Weekday() != time.Sunday {
		errs = append(errs, fmt.Sprintf("start date should be a Sunday for proper alignment (currently %s)", c.StartDate.Weekday()))
	}

	return errs
}

// CloneURL returns the remote URL for the configured protocol.
func (c Config) CloneURL() string {
	if c.Protocol == "ssh" {
		return fmt.Sprintf("git@github.com:%s/%s.git", c.Username, c.RepoName)
	}
	return fmt.Sprintf("https://github.com/%s/%s.git", c.Username, c.RepoName)
}

// RepoPath returns where the working copy lives under baseDir. An empty
// baseDir means the current directory.
func (c Config) RepoPath(baseDir string) string {
	return filepath.Join(baseDir, c.RepoName)
}

// LoadConfig reads a Config from a JSON file. Unknown fields are ignored and
// start_date round-trips as an ISO-8601 timestamp (or null).
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the Config as indented JSON, creating parent directories as
// needed.
func (c Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// WriteExampleConfig writes a filled-in sample configuration to path.
func WriteExampleConfig(path string) error {
	cfg := NewConfig("your-username", "github-art")
	cfg.Text = "HELLO"
	cfg.AutoPush = false
	return cfg.Save(path)
}
