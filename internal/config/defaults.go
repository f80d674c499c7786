package config

// Default returns the canonical runtime configuration used when no file is
// present.
func Default() Config {
	browser := "xdg-open"
	speak := "espeak"

	return Config{
		DefaultCity: "London",
		HistorySize: 5,
		AI: AIConfig{
			Enable:         true,
			Model:          "gemini-2.0-flash",
			TimeoutSeconds: 30,
		},
		Speech: SpeechConfig{
			Enable:   false,
			SpeakCmd: CommandConfig{Raw: speak, Argv: mustParseArgv(speak)},
		},
		Browser: CommandConfig{Raw: browser, Argv: mustParseArgv(browser)},
		Weather: ServiceConfig{BaseURL: "https://wttr.in"},
		Wiki:    ServiceConfig{BaseURL: "https://en.wikipedia.org/api/rest_v1"},
	}
}
