package stats

import (
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
	"github.com/samuelfneumann/symdist/distribution"
	"github.com/sirupsen/logrus"
)

// Config holds the package wide settings that can be supplied through
// the environment
type Config struct {
	// Indeterminate is the default policy for parameters whose
	// validity is undecidable. Options passed to a factory take
	// precedence.
	Indeterminate distribution.Policy `env:"SYMDIST_INDETERMINATE" envDefault:"accept"`

	// LogLevel is the level of the standard logrus logger
	LogLevel logrus.Level `env:"SYMDIST_LOG_LEVEL" envDefault:"info"`
}

// LoadConfig reads a Config from the environment
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "loadConfig")
	}
	return cfg, nil
}

var defaults = struct {
	sync.RWMutex
	policy distribution.Policy
}{policy: distribution.Accept}

// Configure applies cfg
func Configure(cfg Config) {
	defaults.Lock()
	defaults.policy = cfg.Indeterminate
	defaults.Unlock()

	logrus.SetLevel(cfg.LogLevel)
	logger.WithFields(logrus.Fields{
		"indeterminate": cfg.Indeterminate,
		"level":         cfg.LogLevel,
	}).Debug("configured")
}

// withDefaults prepends the configured default policy so that opts
// override it
func withDefaults(opts []distribution.Option) []distribution.Option {
	defaults.RLock()
	p := defaults.policy
	defaults.RUnlock()

	return append([]distribution.Option{distribution.WithIndeterminate(p)},
		opts...)
}
