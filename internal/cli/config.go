package cli

// Config holds the environment defaults of the command. Flags override them.
type Config struct {
	Env       string `env:"EMAILCHECK_ENV" envDefault:"development"`
	LogLevel  string `env:"EMAILCHECK_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"EMAILCHECK_LOG_FORMAT" envDefault:"text"`
	Output    string `env:"EMAILCHECK_OUTPUT" envDefault:"text"`
	Domain    string `env:"EMAILCHECK_DOMAIN"`
}

// DefaultConfig mirrors the envDefault tags for callers that skip env loading.
func DefaultConfig() Config {
	return Config{
		Env:       "development",
		LogLevel:  "warn",
		LogFormat: "text",
		Output:    "text",
	}
}
