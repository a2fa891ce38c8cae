// Package conf loads application configuration from the environment and an
// optional config file, with environment variables taking precedence.
package conf

import (
	"fmt"
	"os"
	"reflect"

	"dario.cat/mergo"
	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// Loader reads configuration into a struct pointer.
type Loader struct {
	fileName string
	validate *validator.Validate
}

// Option configures a Loader.
type Option func(*Loader)

// WithFile sets a configuration file consulted for values the environment
// does not provide. A missing file is not an error.
func WithFile(name string) Option {
	return func(l *Loader) {
		l.fileName = name
	}
}

// NewLoader creates a configuration loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		fileName: ".env",
		validate: validator.New(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load populates cfg from the environment, merges file values underneath,
// and validates the result. cfg must be a pointer to a struct.
func (l *Loader) Load(cfg interface{}) error {
	if reflect.ValueOf(cfg).Kind() != reflect.Ptr {
		return fmt.Errorf("configuration must be a pointer to struct, got %T", cfg)
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}

	if l.fileName != "" {
		if _, err := os.Stat(l.fileName); err == nil {
			fileCfg := reflect.New(reflect.ValueOf(cfg).Elem().Type()).Interface()
			if err := cleanenv.ReadConfig(l.fileName, fileCfg); err != nil {
				return fmt.Errorf("read config file %s: %w", l.fileName, err)
			}
			if err := mergo.Merge(cfg, fileCfg); err != nil {
				return fmt.Errorf("merge config file: %w", err)
			}
		}
	}

	if err := l.validate.Struct(cfg); err != nil {
		return fmt.Errorf("validate configuration: %w", err)
	}
	return nil
}
