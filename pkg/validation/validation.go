// Package validation configures gin's validator for request DTOs and turns
// validation failures into client-facing messages.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	setupOnce  sync.Once
	translator ut.Translator
)

// Setup registers custom tags, json field naming and English messages on
// gin's default validator. Safe to call more than once.
func Setup() {
	setupOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			log.Println("[Validation] gin validator engine is not go-playground/validator, skipping setup")
			return
		}

		v.RegisterTagNameFunc(jsonFieldName)
		_ = v.RegisterValidation("iso8601", func(fl validator.FieldLevel) bool {
			_, err := ParseTime(fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("iso8601_or_empty", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			if s == "" {
				return true
			}
			_, err := ParseTime(s)
			return err == nil
		})

		locale := en.New()
		uni := ut.New(locale, locale)
		translator, _ = uni.GetTranslator("en")
		if err := en_translations.RegisterDefaultTranslations(v, translator); err != nil {
			log.Printf("[Validation] Failed to register translations: %v", err)
		}
		registerTranslation(v, "iso8601", "{0} must be an ISO-8601 date-time")
		registerTranslation(v, "iso8601_or_empty", "{0} must be an ISO-8601 date-time or empty")
	})
}

func registerTranslation(v *validator.Validate, tag, text string) {
	_ = v.RegisterTranslation(tag, translator, func(t ut.Translator) error {
		return t.Add(tag, text, true)
	}, func(t ut.Translator, fe validator.FieldError) string {
		msg, err := t.T(tag, fe.Field())
		if err != nil {
			return fe.Error()
		}
		return msg
	})
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}

// ParseTime accepts RFC 3339 date-times (with optional fractional seconds)
// and returns them in UTC.
func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// Message converts a binding error into the text returned with a 400.
func Message(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			if translator != nil {
				msgs = append(msgs, fe.Translate(translator))
			} else {
				msgs = append(msgs, fe.Error())
			}
		}
		return strings.Join(msgs, "; ")
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type)
	}
	if errors.Is(err, io.EOF) {
		return "Request body is required"
	}
	return "Invalid request body"
}
