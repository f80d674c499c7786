// Package doctor runs runtime readiness diagnostics for config, tools, and services.
package doctor

import (
	"fmt"
	"net/http"
	"os/exec"
	"strings"
	"time"

	"github.com/tkessler/parley/internal/config"
)

// Check is one doctor assertion result.
type Check struct {
	Name    string
	Pass    bool
	Message string
}

// Report is the full doctor output contract.
type Report struct {
	Checks []Check
}

// OK returns true when all checks pass.
func (r Report) OK() bool {
	for _, check := range r.Checks {
		if !check.Pass {
			return false
		}
	}
	return true
}

// String renders the report as user-facing text output.
func (r Report) String() string {
	var b strings.Builder
	for _, check := range r.Checks {
		status := "OK"
		if !check.Pass {
			status = "FAIL"
		}
		b.WriteString(fmt.Sprintf("[%s] %s: %s\n", status, check.Name, check.Message))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// Run executes environment/config/service checks for a loaded config.
func Run(cfg config.Loaded) Report {
	checks := []Check{}

	configMsg := fmt.Sprintf("loaded %q", cfg.Path)
	if !cfg.Exists {
		configMsg = fmt.Sprintf("no file at %q, using defaults", cfg.Path)
	}
	checks = append(checks, Check{
		Name:    "config",
		Pass:    true,
		Message: configMsg,
	})

	checks = append(checks, checkAPIKey(cfg.Config))
	checks = append(checks, checkCommand(cfg.Config.Browser.Argv, "browser_cmd"))

	if cfg.Config.Speech.Enable {
		checks = append(checks, checkCommand(cfg.Config.Speech.SpeakCmd.Argv, "speak_cmd"))
	}

	checks = append(checks, checkEndpoint("weather.endpoint", cfg.Config.Weather.BaseURL))
	checks = append(checks, checkEndpoint("wiki.endpoint", cfg.Config.Wiki.BaseURL))

	return Report{Checks: checks}
}

// checkAPIKey validates the generative answering prerequisites.
func checkAPIKey(cfg config.Config) Check {
	if !cfg.AI.Enable {
		return Check{Name: "ai", Pass: true, Message: "disabled in config"}
	}
	if strings.TrimSpace(cfg.AI.APIKey) == "" {
		return Check{Name: "ai", Pass: false, Message: "GEMINI_API_KEY is not set"}
	}
	return Check{Name: "ai", Pass: true, Message: fmt.Sprintf("key present, model %q", cfg.AI.Model)}
}

// checkCommand validates that argv contains a runnable command.
func checkCommand(argv []string, name string) Check {
	if len(argv) == 0 {
		return Check{Name: name, Pass: false, Message: "command is empty"}
	}
	return checkBinary(argv[0], fmt.Sprintf("%s command is available", name))
}

// checkBinary validates that a binary exists in PATH.
func checkBinary(bin string, okMsg string) Check {
	path, err := exec.LookPath(bin)
	if err != nil {
		return Check{Name: bin, Pass: false, Message: fmt.Sprintf("binary not found in PATH: %s", bin)}
	}
	return Check{Name: bin, Pass: true, Message: fmt.Sprintf("found at %s (%s)", path, okMsg)}
}

// checkEndpoint probes a configured HTTP base URL.
func checkEndpoint(name, base string) Check {
	base = strings.TrimSpace(base)
	if base == "" {
		return Check{Name: name, Pass: false, Message: "base URL is empty"}
	}
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "https://" + base
	}

	client := http.Client{Timeout: 3 * time.Second}
	req, err := http.NewRequest(http.MethodHead, base, nil)
	if err != nil {
		return Check{Name: name, Pass: false, Message: fmt.Sprintf("bad URL: %v", err)}
	}
	req.Header.Set("User-Agent", "parley-doctor")

	resp, err := client.Do(req)
	if err != nil {
		return Check{Name: name, Pass: false, Message: fmt.Sprintf("request failed: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return Check{Name: name, Pass: false, Message: fmt.Sprintf("HTTP %d from %s", resp.StatusCode, base)}
	}
	return Check{Name: name, Pass: true, Message: fmt.Sprintf("reachable at %s (HTTP %d)", base, resp.StatusCode)}
}
