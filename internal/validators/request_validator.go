package validators

import (
	"context"
	"errors"

	"github.com/datasciencemap/community-map/models"
	"github.com/go-playground/validator/v10"
)

// RequestValidator implements the Validator interface for inbound request
// payloads: LoginRequest, PasswordResetRequest, and
// PasswordResetUpdateRequest.
//
// Structural checks come from the `validate` struct tags on the models,
// enforced by go-playground/validator. Tag failures are translated to the
// package's sentinel errors so handlers can map them without inspecting
// validator internals.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator constructs a new RequestValidator
// and returns it as the Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate dispatches validation based on the dynamic type of obj. Both
// value and pointer forms of each supported model are accepted.
//
// Supported types:
//   - models.LoginRequest / *models.LoginRequest
//   - models.PasswordResetRequest / *models.PasswordResetRequest
//   - models.PasswordResetUpdateRequest / *models.PasswordResetUpdateRequest
//
// Returns ErrUnsupportedType if obj does not match any known model.
// The optional field names restrict validation to the named subset.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LoginRequest:
		return v.translate(v.structErr(ctx, value, fields...))
	case *models.LoginRequest:
		return v.translate(v.structErr(ctx, *value, fields...))

	case models.PasswordResetRequest:
		return v.translate(v.structErr(ctx, value, fields...))
	case *models.PasswordResetRequest:
		return v.translate(v.structErr(ctx, *value, fields...))

	case models.PasswordResetUpdateRequest:
		return v.translate(v.structErr(ctx, value, fields...))
	case *models.PasswordResetUpdateRequest:
		return v.translate(v.structErr(ctx, *value, fields...))

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) structErr(ctx context.Context, value any, fields ...string) error {
	if len(fields) > 0 {
		return v.validate.StructPartialCtx(ctx, value, fields...)
	}
	return v.validate.StructCtx(ctx, value)
}

// translate maps the first tag failure to a package sentinel. Failures that
// do not correspond to a known field/tag pair are returned unchanged.
func (v *RequestValidator) translate(err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err
	}

	first := validationErrors[0]
	if first.Tag() == "required_without" {
		return ErrMissingAccountIdentifier
	}
	switch first.Field() {
	case "Username":
		return ErrMissingUsername
	case "Password":
		if first.Tag() == "min" {
			return ErrPasswordTooWeak
		}
		return ErrMissingPassword
	case "Email":
		if first.Tag() == "email" {
			return ErrInvalidEmail
		}
		return ErrMissingEmail
	}

	return err
}
