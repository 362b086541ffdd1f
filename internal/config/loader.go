package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Validator is implemented by configurations that can check themselves.
type Validator interface {
	Validate() error
}

// Load reads filename into target, expanding environment variables first.
// target is validated when it implements Validator.
func Load[T any](filename string, target *T) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "failed to read config file %s", filename)
	}

	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), target); err != nil {
		return errors.Wrapf(err, "failed to parse config file %s", filename)
	}

	if v, ok := any(target).(Validator); ok {
		if err := v.Validate(); err != nil {
			return errors.Wrap(err, "config validation failed")
		}
	}
	return nil
}

// LoadOptional behaves like Load, except that a missing file leaves target
// untouched apart from validation.
func LoadOptional[T any](filename string, target *T) error {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		if v, ok := any(target).(Validator); ok {
			return errors.Wrap(v.Validate(), "config validation failed")
		}
		return nil
	}
	return Load(filename, target)
}

// LoadEnv loads .env style files into the process environment. Missing
// files are skipped; variables already set win.
func LoadEnv(filenames ...string) error {
	for _, name := range filenames {
		if _, err := os.Stat(name); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			return errors.Wrapf(err, "failed to load env file %s", name)
		}
	}
	return nil
}
