package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"github.com/wahlandcase/attuned.releasebot/internal/models"
)

// Config is the immutable runtime configuration. It is built once in main
// and passed into every component constructor.
type Config struct {
	GitHub     GitHubConfig     `toml:"github"`
	CherryPick CherryPickConfig `toml:"cherrypick"`

	// TestMode redirects issue creation and board lookups to the
	// TEST-prefixed resources. Environment only, never persisted.
	TestMode bool `toml:"-"`
	// Token is the API token. Environment only, never persisted.
	Token string `toml:"-"`
}

type GitHubConfig struct {
	// Org is the GitHub organization login
	Org string `toml:"org"`
	// IssuesRepo is the repository (under Org) holding tracking issues
	IssuesRepo string `toml:"issues_repo"`
	// TestIssuesRepo is the issues repository used in test mode
	TestIssuesRepo string `toml:"test_issues_repo"`
	// CherryPickLabel is the label that routes a PR to the current release
	CherryPickLabel string `toml:"cherry_pick_label"`
}

type CherryPickConfig struct {
	// RepoPath is the local clone used for cherry-picks
	RepoPath string `toml:"repo_path"`
	// ReleaseBranch is the branch cherry-picks target
	ReleaseBranch string `toml:"release_branch"`
}

func DefaultConfig() Config {
	return Config{
		GitHub: GitHubConfig{
			Org:             "wahlandcase",
			IssuesRepo:      "release-issues",
			TestIssuesRepo:  "test-release-issues",
			CherryPickLabel: "to-cherry-pick",
		},
		CherryPick: CherryPickConfig{
			RepoPath:      ".",
			ReleaseBranch: "release",
		},
	}
}

// Path returns the config file location
func Path() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "releasebot.toml"), nil
}

// Load reads the config file if present, applies defaults otherwise, then
// overlays environment overrides.
func Load() (Config, error) {
	cfg := DefaultConfig()

	path, err := Path()
	if err == nil {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return Config{}, err
		}
		if err == nil {
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("invalid config file %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("RELEASEBOT_ORG"); v != "" {
		c.GitHub.Org = v
	}
	if v := os.Getenv("RELEASEBOT_ISSUES_REPO"); v != "" {
		c.GitHub.IssuesRepo = v
	}
	if v := os.Getenv("RELEASEBOT_TEST_ISSUES_REPO"); v != "" {
		c.GitHub.TestIssuesRepo = v
	}
	if v := os.Getenv("RELEASEBOT_CHERRY_PICK_LABEL"); v != "" {
		c.GitHub.CherryPickLabel = v
	}
	if v := os.Getenv("RELEASEBOT_REPO_PATH"); v != "" {
		c.CherryPick.RepoPath = v
	}
	if v := os.Getenv("RELEASEBOT_RELEASE_BRANCH"); v != "" {
		c.CherryPick.ReleaseBranch = v
	}
	if v := os.Getenv("RELEASEBOT_TEST_MODE"); v != "" {
		testMode, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid RELEASEBOT_TEST_MODE %q: %w", v, err)
		}
		c.TestMode = testMode
	}
	c.Token = os.Getenv("GITHUB_TOKEN")
	return nil
}

// Validate checks the fields every handler needs
func (c Config) Validate() error {
	if c.GitHub.Org == "" {
		return fmt.Errorf("github org is not configured")
	}
	if c.Token == "" {
		return fmt.Errorf("GITHUB_TOKEN is not set")
	}
	return nil
}

// IssuesRepoName returns the issues repository for the current mode
func (c Config) IssuesRepoName() string {
	if c.TestMode {
		return c.GitHub.TestIssuesRepo
	}
	return c.GitHub.IssuesRepo
}

// ProjectTitle returns the board title the resolver must match for a role,
// TEST-prefixed in test mode
func (c Config) ProjectTitle(role models.ProjectRole) string {
	if c.TestMode {
		return "TEST " + role.BaseTitle()
	}
	return role.BaseTitle()
}

func (c Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
