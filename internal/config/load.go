package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Loaded captures resolved config path, parsed values, and non-fatal warnings.
type Loaded struct {
	Path     string
	Config   Config
	Warnings []Warning
	Exists   bool
}

// fileConfig is the YAML schema. Pointer fields distinguish "absent" from
// zero values so file settings overlay defaults.
type fileConfig struct {
	DefaultCity *string `yaml:"default_city"`
	HistorySize *int    `yaml:"history_size"`
	AI          struct {
		Enable         *bool   `yaml:"enable"`
		Model          *string `yaml:"model"`
		TimeoutSeconds *int    `yaml:"timeout_seconds"`
	} `yaml:"ai"`
	Speech struct {
		Enable   *bool   `yaml:"enable"`
		SpeakCmd *string `yaml:"speak_cmd"`
	} `yaml:"speech"`
	BrowserCmd *string `yaml:"browser_cmd"`
	Weather    struct {
		BaseURL *string `yaml:"base_url"`
	} `yaml:"weather"`
	Wiki struct {
		BaseURL *string `yaml:"base_url"`
	} `yaml:"wiki"`
}

// Load resolves, reads, parses, and validates the runtime configuration,
// then applies environment overrides (.env supported via godotenv).
func Load(explicitPath string) (Loaded, error) {
	resolvedPath, err := ResolvePath(explicitPath)
	if err != nil {
		return Loaded{}, err
	}

	base := Default()
	loaded := Loaded{Path: resolvedPath, Config: base}

	content, err := os.ReadFile(resolvedPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		loaded.Warnings = append(loaded.Warnings, Warning{
			Message: fmt.Sprintf("config file %q not found; using defaults", resolvedPath),
		})
	case err != nil:
		return Loaded{}, fmt.Errorf("read config %q: %w", resolvedPath, err)
	default:
		cfg, warnings, parseErr := Parse(string(content), base)
		if parseErr != nil {
			return Loaded{}, fmt.Errorf("parse config %q: %w", resolvedPath, parseErr)
		}
		loaded.Config = cfg
		loaded.Warnings = append(loaded.Warnings, warnings...)
		loaded.Exists = true
	}

	applyEnv(&loaded.Config)

	warnings, err := Validate(loaded.Config)
	if err != nil {
		return Loaded{}, err
	}
	loaded.Warnings = append(loaded.Warnings, warnings...)

	return loaded, nil
}

// Parse overlays YAML content onto base config.
func Parse(content string, base Config) (Config, []Warning, error) {
	cfg := base
	if strings.TrimSpace(content) == "" {
		return cfg, nil, nil
	}

	var file fileConfig
	if err := yaml.Unmarshal([]byte(content), &file); err != nil {
		return Config{}, nil, err
	}

	var warnings []Warning
	if file.DefaultCity != nil {
		cfg.DefaultCity = strings.TrimSpace(*file.DefaultCity)
	}
	if file.HistorySize != nil {
		cfg.HistorySize = *file.HistorySize
	}
	if file.AI.Enable != nil {
		cfg.AI.Enable = *file.AI.Enable
	}
	if file.AI.Model != nil {
		cfg.AI.Model = strings.TrimSpace(*file.AI.Model)
	}
	if file.AI.TimeoutSeconds != nil {
		cfg.AI.TimeoutSeconds = *file.AI.TimeoutSeconds
	}
	if file.Speech.Enable != nil {
		cfg.Speech.Enable = *file.Speech.Enable
	}
	if file.Speech.SpeakCmd != nil {
		argv, err := parseArgv(*file.Speech.SpeakCmd)
		if err != nil {
			return Config{}, nil, fmt.Errorf("speech.speak_cmd: %w", err)
		}
		cfg.Speech.SpeakCmd = CommandConfig{Raw: *file.Speech.SpeakCmd, Argv: argv}
	}
	if file.BrowserCmd != nil {
		argv, err := parseArgv(*file.BrowserCmd)
		if err != nil {
			return Config{}, nil, fmt.Errorf("browser_cmd: %w", err)
		}
		cfg.Browser = CommandConfig{Raw: *file.BrowserCmd, Argv: argv}
	}
	if file.Weather.BaseURL != nil {
		cfg.Weather.BaseURL = strings.TrimSpace(*file.Weather.BaseURL)
	}
	if file.Wiki.BaseURL != nil {
		cfg.Wiki.BaseURL = strings.TrimSpace(*file.Wiki.BaseURL)
	}

	return cfg, warnings, nil
}

// applyEnv pulls secrets and overrides from the environment. A .env file in
// the working directory is honored when present.
func applyEnv(cfg *Config) {
	_ = godotenv.Load()

	if key := strings.TrimSpace(os.Getenv("GEMINI_API_KEY")); key != "" {
		cfg.AI.APIKey = key
	}
	if city := strings.TrimSpace(os.Getenv("PARLEY_DEFAULT_CITY")); city != "" {
		cfg.DefaultCity = city
	}
}
