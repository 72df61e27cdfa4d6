package request

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/subsync/subsync/internal/validate"
)

var valid = validator.New()

func init() {
	valid.RegisterValidation("gstin", func(fl validator.FieldLevel) bool {
		return validate.IsGSTIN(fl.Field().String())
	})
	valid.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return validate.IsPhone(fl.Field().String())
	})
}

func Decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := valid.Struct(v); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}
	return nil
}

func RequireID(s string) (string, error) {
	if s == "" {
		return "", fmt.Errorf("missing required ID")
	}
	return s, nil
}
