package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslation "github.com/go-playground/validator/v10/translations/en"
)

// Validate a struct according to its "validate" tags.
// Field names in error messages are taken from the "flag" tag if present.
func Validate(value interface{}) error {
	validate, enTranslator := newValidator()

	if err := validate.Struct(value); err != nil {
		var validationErrs validator.ValidationErrors
		switch {
		case errors.As(err, &validationErrs):
			return processValidateError(validationErrs, enTranslator)
		default:
			panic(err)
		}
	}

	return nil
}

func newValidator() (*validator.Validate, ut.Translator) {
	validate := validator.New()

	// Register default EN translator
	enLocale := en.New()
	enTranslator, found := ut.New(enLocale, enLocale).GetTranslator("en")
	if !found {
		panic(fmt.Errorf("en translator was not found"))
	}
	if err := enTranslation.RegisterDefaultTranslations(validate, enTranslator); err != nil {
		panic(fmt.Errorf("translator was not registered: %w", err))
	}

	// Use flag name in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("flag"); len(name) > 0 {
			return name
		}
		return fld.Name
	})

	return validate, enTranslator
}

func processValidateError(err validator.ValidationErrors, translator ut.Translator) error {
	var messages []string
	for _, e := range err {
		messages = append(messages, fmt.Sprintf("- %s", e.Translate(translator)))
	}
	return errors.New(strings.Join(messages, "\n"))
}
