package validator

import (
	"encoding/json"
	"fieldservice/shared/base64"
	"fieldservice/shared/constant"
	"fieldservice/shared/failure"
	"fmt"
	"io"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	val "github.com/go-playground/validator/v10"
)

const (
	minPhoneDigits = 7
)

var (
	validate *val.Validate

	zipCodePattern = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	phonePattern   = regexp.MustCompile(`^\+?[0-9 ()\-]{7,20}$`)
)

func validateMimetypes(field val.FieldLevel) bool {
	str, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	contentType := base64.GetContentType(str)
	if contentType == "" {
		return false
	}

	allowedTypes := strings.Split(field.Param(), " ")

	return slices.Contains(allowedTypes, contentType)
}

func validateFileSize(field val.FieldLevel) bool {
	str, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	maxSizeMB, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil {
		return false
	}

	bytesConversion := 1024.0
	maxSizeBytes := int(maxSizeMB * bytesConversion * bytesConversion)

	return len(str) <= maxSizeBytes
}

func validateZipCode(field val.FieldLevel) bool {
	return zipCodePattern.MatchString(field.Field().String())
}

func validatePhone(field val.FieldLevel) bool {
	phone := field.Field().String()
	if !phonePattern.MatchString(phone) {
		return false
	}

	digits := 0

	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits++
		}
	}

	return digits >= minPhoneDigits
}

func layoutValidation(layout string) val.Func {
	return func(field val.FieldLevel) bool {
		_, err := time.Parse(layout, field.Field().String())

		return err == nil
	}
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0] //nolint:mnd
		if name == "-" || name == "" {
			return field.Name
		}

		return name
	})

	custom := map[string]val.Func{
		"empty": func(fl val.FieldLevel) bool {
			return fl.Field().IsZero()
		},
		"mimetypes":   validateMimetypes,
		"maxfilesize": validateFileSize,
		"zipcode":     validateZipCode,
		"phone":       validatePhone,
		"date":        layoutValidation(constant.DateFormat),
		"clock":       layoutValidation(constant.ClockFormat),
	}

	for tag, fn := range custom {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

// Validate decodes JSON from r into data and validates the result with the struct's
// `validate` tags. Any decode or rule failure is returned as a bad request failure.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)

	if err := decoder.Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	if err := validate.Var(field, tag); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}
