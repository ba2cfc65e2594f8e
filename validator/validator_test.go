package validator_test

import (
	"errors"
	"testing"
	"time"

	"github.com/andyle182810/gomotogp/validator"
	gvalidator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

type clientSettings struct {
	BaseURL   string        `json:"baseUrl"   validate:"required,httpurl"`
	Timeout   time.Duration `json:"timeout"   validate:"gt=0"`
	UserAgent string        `json:"userAgent" validate:"required"`
}

type seasonFilter struct {
	Year     int    `json:"year"     validate:"gte=2000,lte=2100"`
	Category string `json:"category" validate:"omitempty,oneof=MotoGP Moto2 Moto3 MotoE"`
	Ignored  string `json:"-"        validate:"max=2"`
}

func validSettings() clientSettings {
	return clientSettings{
		BaseURL:   "https://api.motogp.pulselive.com/motogp/v1",
		Timeout:   10 * time.Second,
		UserAgent: "paddock/1.0",
	}
}

func requireValidationErrors(t *testing.T, err error) validator.ValidationErrors {
	t.Helper()

	require.Error(t, err)

	var validationErrors validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrors))

	return validationErrors
}

func TestNew(t *testing.T) {
	t.Parallel()

	validatorInstance := validator.New()
	require.NotNil(t, validatorInstance)
	require.NotNil(t, validatorInstance.Validator)
}

func TestNew_RegistersHTTPURLTag(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() { validator.New() })

	err := validator.New().Validator.Var("ftp://example.com", validator.TagHTTPURL)
	require.Error(t, err)

	err = validator.New().Validator.Var("https://example.com", validator.TagHTTPURL)
	require.NoError(t, err)
}

func TestValidate_Success(t *testing.T) {
	t.Parallel()

	err := validator.New().Validate(validSettings())
	require.NoError(t, err)
}

func TestValidate_RequiredFieldMissing(t *testing.T) {
	t.Parallel()

	input := validSettings()
	input.UserAgent = ""

	validationErrors := requireValidationErrors(t, validator.New().Validate(input))

	require.Len(t, validationErrors, 1)
	require.Equal(t, "userAgent", validationErrors[0].Field)
	require.Equal(t, "required", validationErrors[0].Tag)
	require.Equal(t, "userAgent is required", validationErrors[0].Message)
}

func TestValidate_HTTPURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		baseURL string
		valid   bool
	}{
		{name: "https", baseURL: "https://api.example.com/v1", valid: true},
		{name: "http with port", baseURL: "http://127.0.0.1:8080", valid: true},
		{name: "relative path", baseURL: "/motogp/v1", valid: false},
		{name: "other scheme", baseURL: "ftp://api.example.com", valid: false},
		{name: "missing host", baseURL: "https://", valid: false},
		{name: "garbage", baseURL: "::not a url", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			input := validSettings()
			input.BaseURL = tt.baseURL

			err := validator.New().Validate(input)
			if tt.valid {
				require.NoError(t, err)

				return
			}

			validationErrors := requireValidationErrors(t, err)
			require.Len(t, validationErrors, 1)
			require.Equal(t, "baseUrl", validationErrors[0].Field)
			require.Equal(t, validator.TagHTTPURL, validationErrors[0].Tag)
			require.Equal(t, "baseUrl must be an absolute http(s) URL", validationErrors[0].Message)
		})
	}
}

func TestValidate_DurationGreaterThanZero(t *testing.T) {
	t.Parallel()

	input := validSettings()
	input.Timeout = 0

	validationErrors := requireValidationErrors(t, validator.New().Validate(input))

	require.Len(t, validationErrors, 1)
	require.Equal(t, "timeout", validationErrors[0].Field)
	require.Equal(t, "timeout must be greater than 0", validationErrors[0].Message)
	require.Equal(t, "0s", validationErrors[0].Value)
}

func TestValidate_RangeAndOneOf(t *testing.T) {
	t.Parallel()

	validatorInstance := validator.New()

	require.NoError(t, validatorInstance.Validate(seasonFilter{Year: 2024, Category: "Moto2", Ignored: ""}))
	require.NoError(t, validatorInstance.Validate(seasonFilter{Year: 2024, Category: "", Ignored: ""}))

	validationErrors := requireValidationErrors(t,
		validatorInstance.Validate(seasonFilter{Year: 1999, Category: "F1", Ignored: ""}))

	require.Len(t, validationErrors, 2)
	require.Equal(t, "year must be greater than or equal to 2000", validationErrors[0].Message)
	require.Equal(t, "category must be one of [MotoGP Moto2 Moto3 MotoE]", validationErrors[1].Message)
}

func TestValidate_UsesStructFieldWhenJSONNameIsDash(t *testing.T) {
	t.Parallel()

	validationErrors := requireValidationErrors(t,
		validator.New().Validate(seasonFilter{Year: 2024, Category: "", Ignored: "too long"}))

	require.Len(t, validationErrors, 1)
	require.Equal(t, "Ignored", validationErrors[0].Field)
	require.Equal(t, "Ignored must be at most 2", validationErrors[0].Message)
}

func TestValidationErrors_ErrorJoinsMessages(t *testing.T) {
	t.Parallel()

	errs := validator.ValidationErrors{
		{Field: "baseUrl", Tag: "required", Value: "", Message: "baseUrl is required"},
		{Field: "timeout", Tag: "gt", Value: "0s", Message: "timeout must be greater than 0"},
	}

	require.Equal(t, "baseUrl is required; timeout must be greater than 0", errs.Error())
}

func TestRegisterCustomValidation(t *testing.T) {
	t.Parallel()

	type rider struct {
		Number int `json:"number" validate:"racenumber"`
	}

	validatorInstance := validator.New()

	err := validatorInstance.RegisterCustomValidation("racenumber", func(fl gvalidator.FieldLevel) bool {
		n := fl.Field().Int()

		return n >= 1 && n <= 99
	})
	require.NoError(t, err)

	require.NoError(t, validatorInstance.Validate(rider{Number: 93}))

	validationErrors := requireValidationErrors(t, validatorInstance.Validate(rider{Number: 0}))
	require.Equal(t, "number failed validation on 'racenumber'", validationErrors[0].Message)
}
