// Package config handles the .uxlint directory and the project
// configuration file inside it. Every project that uses uxlint gets a
// .uxlint/ folder created in its root; uxlint.yaml inside it carries the
// activated patterns, output preferences, and project-defined rules.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/uxforge/uxlint/internal/pattern"
)

const (
	// UxlintDir is the name of the directory created in each project.
	UxlintDir = ".uxlint"

	configName  = "uxlint.yaml"
	logsDirName = "logs"
	logFileName = "uxlint.log"
	historyName = "history.db"
	outDirName  = "out"

	defaultDebounceMs = 300
	defaultKeepRuns   = 50
)

const defaultConfigYAML = `# uxlint project configuration
version: 1

patterns:
  # Patterns validated on every run (canonical names or aliases).
  # Leave empty to rely on auto activation.
  # activated:
  #   - form.basic
  #   - progressive-disclosure
  activated: []
  # Also validate suggested patterns of medium or high confidence.
  auto: true

output:
  # Artifact directory, relative to the project root.
  dir: .uxlint/out
  # Extra artifacts written alongside flow.json.
  html: false
  pretty: false

watch:
  # Milliseconds of quiet after a file change before re-validation.
  debounceMs: 300

history:
  # Runs kept when pruning. Zero disables pruning.
  keep: 50

# Project-defined rules evaluated against every matching node. A node
# passes when expr evaluates to true. level is must or should; appliesTo
# names one node type or "all".
# rules:
#   - id: button-has-text
#     level: must
#     description: every button carries a visible label
#     appliesTo: button
#     expr: 'node.text != ""'
rules: []
`

// PatternsConfig selects which patterns each run validates.
type PatternsConfig struct {
	Activated []string `yaml:"activated"`
	Auto      bool     `yaml:"auto"`
}

// OutputConfig controls where artifacts land and which ones are written.
type OutputConfig struct {
	Dir    string `yaml:"dir"`
	HTML   bool   `yaml:"html"`
	Pretty bool   `yaml:"pretty"`
}

// WatchConfig tunes the file watcher.
type WatchConfig struct {
	DebounceMs int `yaml:"debounceMs"`
}

// HistoryConfig tunes run-history retention.
type HistoryConfig struct {
	Keep int `yaml:"keep"`
}

// Config models .uxlint/uxlint.yaml.
type Config struct {
	Version  int                      `yaml:"version"`
	Patterns PatternsConfig           `yaml:"patterns"`
	Output   OutputConfig             `yaml:"output"`
	Watch    WatchConfig              `yaml:"watch"`
	History  HistoryConfig            `yaml:"history"`
	Rules    []pattern.CustomRuleSpec `yaml:"rules"`
}

// Project binds a loaded configuration to the directory it governs and
// derives every path uxlint reads or writes under it.
type Project struct {
	// Root is the directory the user ran uxlint from.
	Root string

	Config Config
}

// InitDir creates the .uxlint directory structure and writes the default
// configuration file if none exists yet. It reports whether the config
// file was newly created.
func InitDir(root string) (created bool, err error) {
	base := filepath.Join(root, UxlintDir)
	dirs := []string{
		base,
		filepath.Join(base, logsDirName),
		filepath.Join(base, outDirName),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return false, fmt.Errorf("config: ensure %s: %w", dir, err)
		}
	}

	path := filepath.Join(base, configName)
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("config: stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigYAML), 0o644); err != nil {
		return false, fmt.Errorf("config: write %s: %w", path, err)
	}
	return true, nil
}

// WriteDefault overwrites the project configuration with the commented
// default template. Used by init --force.
func WriteDefault(root string) error {
	path := filepath.Join(root, UxlintDir, configName)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: ensure uxlint dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigYAML), 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// Open loads the project configuration for root. A missing config file is
// not an error: the defaults apply until uxl init writes one.
func Open(root string) (*Project, error) {
	p := &Project{
		Root:   root,
		Config: defaultConfig(),
	}
	if err := p.load(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Project) load() error {
	path := p.ConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	// Unmarshal over a defaults copy so keys the file omits keep their
	// documented defaults (notably patterns.auto).
	parsed := defaultConfig()
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	parsed.applyDefaults()
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}

	p.Config = parsed
	return nil
}

// Save writes the current configuration back to .uxlint/uxlint.yaml.
func (p *Project) Save() error {
	if p == nil {
		return fmt.Errorf("config: nil project")
	}
	p.Config.applyDefaults()
	if err := p.Config.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := os.MkdirAll(filepath.Join(p.Root, UxlintDir), 0o755); err != nil {
		return fmt.Errorf("config: ensure uxlint dir: %w", err)
	}
	data, err := yaml.Marshal(p.Config)
	if err != nil {
		return fmt.Errorf("config: encode config: %w", err)
	}
	if err := os.WriteFile(p.ConfigPath(), data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", p.ConfigPath(), err)
	}
	return nil
}

// ConfigPath returns the path of the project configuration file.
func (p *Project) ConfigPath() string {
	return filepath.Join(p.Root, UxlintDir, configName)
}

// LogsDir returns the directory watch mode logs into.
func (p *Project) LogsDir() string {
	return filepath.Join(p.Root, UxlintDir, logsDirName)
}

// LogPath returns the run log file path.
func (p *Project) LogPath() string {
	return filepath.Join(p.LogsDir(), logFileName)
}

// HistoryPath returns the sqlite database holding past runs.
func (p *Project) HistoryPath() string {
	return filepath.Join(p.Root, UxlintDir, historyName)
}

// OutDir returns the artifact directory. Relative configured paths are
// resolved against the project root; absolute ones are used as given.
func (p *Project) OutDir() string {
	dir := p.Config.Output.Dir
	if dir == "" {
		dir = filepath.Join(UxlintDir, outDirName)
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(p.Root, dir)
}

// FlowPath returns where validate writes the machine-readable artifact.
func (p *Project) FlowPath() string {
	return filepath.Join(p.OutDir(), "flow.json")
}

// HTMLPath returns where validate writes the HTML report.
func (p *Project) HTMLPath() string {
	return filepath.Join(p.OutDir(), "report.html")
}

// Registry returns the pattern catalogue for this project: the built-in
// patterns, plus the compiled custom pattern when rules are configured.
func (c Config) Registry() (*pattern.Registry, error) {
	if len(c.Rules) == 0 {
		return pattern.Default(), nil
	}
	custom, err := pattern.CompileCustomPattern(c.Rules)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return pattern.DefaultWith(pattern.Entry{
		Pattern: custom,
		Aliases: []string{"custom", "project"},
	}), nil
}

func defaultConfig() Config {
	return Config{
		Version: 1,
		Patterns: PatternsConfig{
			Activated: []string{},
			Auto:      true,
		},
		Output: OutputConfig{
			Dir: filepath.ToSlash(filepath.Join(UxlintDir, outDirName)),
		},
		Watch:   WatchConfig{DebounceMs: defaultDebounceMs},
		History: HistoryConfig{Keep: defaultKeepRuns},
	}
}

func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Patterns.Activated == nil {
		c.Patterns.Activated = []string{}
	}
	if strings.TrimSpace(c.Output.Dir) == "" {
		c.Output.Dir = filepath.ToSlash(filepath.Join(UxlintDir, outDirName))
	}
	if c.Watch.DebounceMs <= 0 {
		c.Watch.DebounceMs = defaultDebounceMs
	}
	if c.History.Keep < 0 {
		c.History.Keep = 0
	}
}

func (c Config) validate() error {
	for i, name := range c.Patterns.Activated {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("patterns.activated[%d] is empty", i)
		}
	}
	if len(c.Rules) > 0 {
		if _, err := pattern.CompileCustomPattern(c.Rules); err != nil {
			return err
		}
	}
	return nil
}
