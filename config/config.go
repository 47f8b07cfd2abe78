// Package config loads symbex settings from an optional YAML file, the
// environment and command-line flags, in increasing priority.
package config

import (
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigFile     = "symbex.yaml"
	DefaultCurrenciesFile = "currencies.json"
	DefaultJournalDir     = "./wal/vocabulary"

	EnvSavePath       = "SYMBEX_SAVE_PATH"
	EnvCurrenciesFile = "SYMBEX_CURRENCIES_FILE"
)

var (
	configFlag   = flag.String("config", DefaultConfigFile, "path to yaml config")
	debugFlag    = flag.Bool("debug", false, "enable development logging")
	savePathFlag = flag.String("save-path", "", "directory for generated reports")
)

type Config struct {
	SavePath       string
	CurrenciesFile string
	JournalDir     string
	JournalEnabled bool
	APIURL         string
	HTTPTimeout    time.Duration
	Debug          bool
}

// ConfigTmp is the YAML representation of Config.
type ConfigTmp struct {
	SavePath       string        `yaml:"save_path"`
	CurrenciesFile string        `yaml:"currencies_file"`
	JournalDir     string        `yaml:"journal_dir"`
	JournalEnabled *bool         `yaml:"journal_enabled"`
	APIURL         string        `yaml:"api_url"`
	HTTPTimeout    time.Duration `yaml:"http_timeout"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		SavePath:       DefaultSavePath(),
		CurrenciesFile: DefaultCurrenciesFile,
		JournalDir:     DefaultJournalDir,
		JournalEnabled: true,
	}
}

// DefaultSavePath is the user's Desktop when it exists, the working directory otherwise.
func DefaultSavePath() string {
	if home, err := os.UserHomeDir(); err == nil {
		desktop := filepath.Join(home, "Desktop")
		if info, err := os.Stat(desktop); err == nil && info.IsDir() {
			return desktop
		}
	}
	return "."
}

// Get resolves the configuration from the global flags.
func Get() (Config, error) {
	if !flag.Parsed() {
		flag.Parse()
	}

	explicit := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicit = true
		}
	})

	cfg, err := Load(*configFlag, explicit)
	if err != nil {
		return Config{}, err
	}

	ApplyEnv(&cfg, os.LookupEnv)

	if *savePathFlag != "" {
		cfg.SavePath = *savePathFlag
	}
	cfg.Debug = *debugFlag

	return cfg, nil
}

// Load reads path over the defaults. A missing file is an error only when required.
func Load(path string, required bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return cfg, nil
		}
		return Config{}, errors.Wrapf(err, "failed to read config %s", path)
	}

	var tmp ConfigTmp
	if err := yaml.Unmarshal(data, &tmp); err != nil {
		return Config{}, errors.Wrapf(err, "incorrect yaml config %s", path)
	}

	if tmp.HTTPTimeout < 0 {
		return Config{}, errors.Errorf("incorrect 'http_timeout' param in yaml config: %s", tmp.HTTPTimeout)
	}

	if tmp.SavePath != "" {
		cfg.SavePath = tmp.SavePath
	}
	if tmp.CurrenciesFile != "" {
		cfg.CurrenciesFile = tmp.CurrenciesFile
	}
	if tmp.JournalDir != "" {
		cfg.JournalDir = tmp.JournalDir
	}
	if tmp.JournalEnabled != nil {
		cfg.JournalEnabled = *tmp.JournalEnabled
	}
	cfg.APIURL = tmp.APIURL
	cfg.HTTPTimeout = tmp.HTTPTimeout

	return cfg, nil
}

// ApplyEnv overrides cfg with SYMBEX_* variables found by lookup.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvSavePath); ok && v != "" {
		cfg.SavePath = v
	}
	if v, ok := lookup(EnvCurrenciesFile); ok && v != "" {
		cfg.CurrenciesFile = v
	}
}
