package ui

import (
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/pkg/errors"
)

func validateURL(v string) error {
	return validation.Validate(v, validation.Required, is.URL)
}

func validateSavePath(v string) error {
	if err := validation.Validate(v, validation.Required); err != nil {
		return err
	}
	if base := filepath.Base(v); base == "." || base == string(filepath.Separator) {
		return errors.New("must name a file")
	}
	return nil
}
