package config

import (
	"fmt"
	"strings"
)

// Validate enforces config invariants and returns non-fatal warnings.
func Validate(cfg Config) ([]Warning, error) {
	warnings := make([]Warning, 0)

	if strings.TrimSpace(cfg.DefaultCity) == "" {
		return nil, fmt.Errorf("default_city must not be empty")
	}
	if cfg.HistorySize < 1 {
		return nil, fmt.Errorf("history_size must be >= 1")
	}
	if cfg.AI.TimeoutSeconds <= 0 {
		return nil, fmt.Errorf("ai.timeout_seconds must be > 0")
	}
	if cfg.AI.Enable && strings.TrimSpace(cfg.AI.Model) == "" {
		return nil, fmt.Errorf("ai.model must not be empty when ai.enable=true")
	}
	if len(cfg.Browser.Argv) == 0 {
		return nil, fmt.Errorf("browser_cmd must not be empty")
	}
	if cfg.Speech.Enable && len(cfg.Speech.SpeakCmd.Argv) == 0 {
		return nil, fmt.Errorf("speech.speak_cmd must not be empty when speech.enable=true")
	}
	if strings.TrimSpace(cfg.Weather.BaseURL) == "" {
		return nil, fmt.Errorf("weather.base_url must not be empty")
	}
	if strings.TrimSpace(cfg.Wiki.BaseURL) == "" {
		return nil, fmt.Errorf("wiki.base_url must not be empty")
	}

	if cfg.AI.Enable && strings.TrimSpace(cfg.AI.APIKey) == "" {
		warnings = append(warnings, Warning{
			Message: "GEMINI_API_KEY is not set; AI questions will be answered with an apology",
		})
	}

	return warnings, nil
}
