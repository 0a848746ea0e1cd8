package config

// GetDefaultConfigTemplate returns a fully commented config template
// that helps users understand all available options.
func GetDefaultConfigTemplate() string {
	return `# gitmsg Configuration
# See 'gitmsg config -h' for commands

# Ollama endpoint settings
host: localhost                 # Ollama host
port: 11434                     # Ollama port
model: ""                       # Force a model name (empty = auto-select)
preferred_models:               # Tried in order against the endpoint inventory
  - llama3.2
  - llama3.1
  - qwen2.5-coder
  - codellama
  - mistral

# Remote generation settings
probe_timeout: 2                # Model-inventory probe timeout (seconds)
generate_timeout: 30            # Generation request timeout (seconds)
max_diff_bytes: 1500            # Max diff bytes embedded in the prompt

# Behavior
skip_confirmations: false       # Skip the confirm prompt (also: GITMSG_YES env)
log_level: info                 # Diagnostic log level: debug | info | warn | error
`
}

// GetDefaults returns the default configuration values.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"model": "",
		"host":  "localhost",
		"port":  11434,
		// preferred_models: checked in order against the probed inventory;
		// the first present name wins, else the first inventory entry.
		"preferred_models": []string{"llama3.2", "llama3.1", "qwen2.5-coder", "codellama", "mistral"},
		// probe_timeout: short on purpose; an unreachable endpoint must
		// fail fast so the rule-based fallback stays snappy.
		"probe_timeout":    2,
		"generate_timeout": 30,
		"max_diff_bytes":   1500,
		// skip_confirmations: confirmation prompt enabled by default.
		"skip_confirmations": false,
		"log_level":          "info",
	}
}
