package user

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

const (
	MinUsernameLen = 3
	MaxUsernameLen = 50
	MinPasswordLen = 8
)

// Validator validates registration credentials.
type Validator interface {
	ValidateRegister(username, password string) error
	ValidateUsername(username string) error
	ValidatePassword(password string) error
}

type CredentialValidator struct{}

func NewCredentialValidator() *CredentialValidator {
	return &CredentialValidator{}
}

// ValidateRegister checks both fields and reports every failure in one error.
func (v *CredentialValidator) ValidateRegister(username, password string) error {
	var msgs []string

	if err := v.ValidateUsername(username); err != nil {
		msgs = append(msgs, fmt.Sprintf("username validation failed: %v", err))
	}

	if err := v.ValidatePassword(password); err != nil {
		msgs = append(msgs, fmt.Sprintf("password validation failed: %v", err))
	}

	if len(msgs) > 0 {
		return errors.New(strings.Join(msgs, ", "))
	}

	return nil
}

func (v *CredentialValidator) ValidateUsername(username string) error {
	if len(username) < MinUsernameLen {
		return fmt.Errorf("username must be at least %d characters", MinUsernameLen)
	}

	if len(username) > MaxUsernameLen {
		return fmt.Errorf("username must be at most %d characters", MaxUsernameLen)
	}

	for _, r := range username {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '.' || r == '_' || r == '-':
		default:
			return fmt.Errorf("username can only contain letters, digits, '.', '_', '-'")
		}
	}

	return nil
}

func (v *CredentialValidator) ValidatePassword(password string) error {
	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLen)
	}

	hasLower := false
	hasUpper := false
	hasDigit := false
	hasSpecial := false

	for _, r := range password {
		switch {
		case unicode.IsSpace(r):
			return fmt.Errorf("password must not contain whitespace")
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if !hasLower {
		return fmt.Errorf("password must contain at least one lowercase letter")
	}

	if !hasUpper {
		return fmt.Errorf("password must contain at least one uppercase letter")
	}

	if !hasDigit {
		return fmt.Errorf("password must contain at least one digit")
	}

	if !hasSpecial {
		return fmt.Errorf("password must contain at least one special character")
	}

	return nil
}
