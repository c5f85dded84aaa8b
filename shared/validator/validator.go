package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"ourstory/shared/failure"
	"ourstory/shared/media"

	val "github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Normalizer is implemented by requests that clean their own input, such as trimming text,
// before the validation rules run.
type Normalizer interface {
	Normalize()
}

var (
	validate *val.Validate

	errEmptyBody = errors.New("request body is required")
)

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}

	if name == "" {
		return field.Name
	}

	return name
}

// mediaOfKind backs the media=<kind> tag.
func mediaOfKind(fl val.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}

	return media.Matches(fl.Field().String(), fl.Param())
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	if err := validate.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}

	if err := validate.RegisterValidation("media", mediaOfKind); err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, normalizes it when it implements
// Normalizer, and then performs validation on the struct using the validator package. If the
// struct is invalid according to the validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if errors.Is(err, io.EOF) {
		return failure.BadRequest(errEmptyBody) //nolint:wrapcheck
	}

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	if normalizer, ok := any(data).(Normalizer); ok {
		normalizer.Normalize()
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
