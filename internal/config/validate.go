package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/Dash-ajou/dashgen/internal/layout"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		mustRegister(v, "rootpath", func(fl validator.FieldLevel) bool {
			return layout.ValidateRoot(fl.Field().String()) == nil
		})
		mustRegister(v, "segment", func(fl validator.FieldLevel) bool {
			return layout.ValidateName("", fl.Field().String()) == nil
		})
		mustRegister(v, "ecosystem", func(fl validator.FieldLevel) bool {
			_, err := layout.LookupEcosystem(fl.Field().String())
			return err == nil
		})
		validate = v
	})
	return validate
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("registering %s validation: %v", tag, err))
	}
}

// Validate checks every field and returns all problems joined. Name problems
// are reported as *layout.InvalidNameError.
func (c *Config) Validate() error {
	var errs []error
	if err := getValidator().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validating config: %w", err)
		}
		for _, fe := range verrs {
			errs = append(errs, c.translate(fe))
		}
	}
	errs = append(errs, c.libraryCollisions()...)
	return errors.Join(errs...)
}

// libraryCollisions reports library names that are valid path segments but
// clash with a file the ecosystem places in libs/.
func (c *Config) libraryCollisions() []error {
	eco, err := layout.LookupEcosystem(c.Ecosystem)
	if err != nil {
		return nil
	}
	var errs []error
	for _, lib := range c.Libs {
		if layout.ValidateName(layout.KindLibrary, lib) != nil {
			continue
		}
		if err := layout.ValidateLibrary(lib, eco); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// translate turns a validator failure into the error the rest of the
// program understands.
func (c *Config) translate(fe validator.FieldError) error {
	kind, list := layout.KindRoot, []string(nil)
	switch {
	case strings.HasPrefix(fe.StructField(), "Services"):
		kind, list = layout.KindService, c.Services
	case strings.HasPrefix(fe.StructField(), "Libs"):
		kind, list = layout.KindLibrary, c.Libs
	}

	switch fe.Tag() {
	case "rootpath":
		return layout.ValidateRoot(c.Root)
	case "segment":
		name, _ := fe.Value().(string)
		return layout.ValidateName(kind, name)
	case "unique":
		return &layout.InvalidNameError{Kind: kind, Name: firstDuplicate(list), Reason: "listed more than once"}
	case "ecosystem":
		_, err := layout.LookupEcosystem(c.Ecosystem)
		return err
	default:
		return fmt.Errorf("invalid %s: failed %q check", strings.ToLower(fe.Field()), fe.Tag())
	}
}

func firstDuplicate(list []string) string {
	seen := make(map[string]bool, len(list))
	for _, s := range list {
		if seen[s] {
			return s
		}
		seen[s] = true
	}
	return ""
}
