package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"slotbook/shared/constant"
	"slotbook/shared/failure"
	"strings"
	"time"

	val "github.com/go-playground/validator/v10"
)

const (
	tagCalendarDate = "calendar_date"
	tagClock        = "clock"
)

var validate *val.Validate

func registerLayoutValidation(layout string) val.Func {
	return func(field val.FieldLevel) bool {
		str, ok := field.Field().Interface().(string)
		if !ok {
			return false
		}

		_, err := time.Parse(layout, str)

		return err == nil
	}
}

// jsonFieldName reports fields by their json name so messages match the request body.
func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")

	switch name {
	case "-":
		return constant.Empty
	case constant.Empty:
		return field.Name
	default:
		return name
	}
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	err := validate.RegisterValidation(tagCalendarDate, registerLayoutValidation(constant.CalendarDate))
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation(tagClock, registerLayoutValidation(constant.ClockFormat))
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
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
