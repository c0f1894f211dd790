package cli

import (
	"io"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
)

// EnvPrefix prefixes every environment variable the CLI reads.
const EnvPrefix = "CLAMPS_"

// Config holds the flag defaults taken from the environment.
type Config struct {
	Type    string `env:"TYPE" envDefault:"int64"`
	Shell   string `env:"SHELL" envDefault:"auto"`
	Verbose bool   `env:"VERBOSE" envDefault:"false"`
}

// LoadConfig reads CLAMPS_* variables from environ, or from the process
// environment when environ is nil.
func LoadConfig(environ map[string]string) (Config, error) {
	return env.ParseAsWithOptions[Config](env.Options{
		Prefix:      EnvPrefix,
		Environment: environ,
	})
}

// NewLogger returns the diagnostics logger of one invocation.
func NewLogger(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
	log.SetLevel(logrus.WarnLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}
