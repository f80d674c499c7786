// Package config resolves, parses, validates, and defaults parley
// configuration.
package config

// Config is the fully materialized runtime configuration.
type Config struct {
	DefaultCity string
	HistorySize int
	AI          AIConfig
	Speech      SpeechConfig
	Browser     CommandConfig
	Weather     ServiceConfig
	Wiki        ServiceConfig
}

// AIConfig controls the generative backend. APIKey only ever comes from the
// environment, never the config file.
type AIConfig struct {
	Enable         bool
	Model          string
	APIKey         string
	TimeoutSeconds int
}

// SpeechConfig controls spoken output.
type SpeechConfig struct {
	Enable   bool
	SpeakCmd CommandConfig
}

// ServiceConfig points a lookup collaborator at its HTTP endpoint.
type ServiceConfig struct {
	BaseURL string
}

// CommandConfig stores a raw command string and its parsed argv form.
type CommandConfig struct {
	Raw  string
	Argv []string
}

// Warning is a non-fatal parse/validation message.
type Warning struct {
	Message string
}
