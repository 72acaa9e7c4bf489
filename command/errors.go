package command

import goerrors "github.com/goliatone/go-errors"

// Stable text codes for command-layer failures. Registry-level codes live in
// the registry package.
const (
	TextCodeInvalidEmail       = "INVALID_EMAIL"
	TextCodeEmailRequired      = "EMAIL_REQUIRED"
	TextCodeActivityRequired   = "ACTIVITY_REQUIRED"
	TextCodeUnregisterDisabled = "UNREGISTER_DISABLED"
)

func errInvalidEmail() error {
	return goerrors.New("Invalid email format", goerrors.CategoryValidation).
		WithCode(goerrors.CodeBadRequest).
		WithTextCode(TextCodeInvalidEmail)
}

func errEmailRequired() error {
	return goerrors.New("Email is required", goerrors.CategoryValidation).
		WithCode(goerrors.CodeBadRequest).
		WithTextCode(TextCodeEmailRequired)
}

func errActivityRequired() error {
	return goerrors.New("Activity name is required", goerrors.CategoryValidation).
		WithCode(goerrors.CodeBadRequest).
		WithTextCode(TextCodeActivityRequired)
}

func errUnregisterDisabled() error {
	return goerrors.New("Unregistering is currently disabled", goerrors.CategoryAuthz).
		WithCode(goerrors.CodeForbidden).
		WithTextCode(TextCodeUnregisterDisabled)
}
