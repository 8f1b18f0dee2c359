package auth

import (
	"fmt"
	"strings"
)

// ErrInvalidPassword indicates the login password did not match
type ErrInvalidPassword struct{}

func (e *ErrInvalidPassword) Error() string {
	return "invalid password provided"
}

// ErrIncorrectAnswer indicates the recovery answer did not match
type ErrIncorrectAnswer struct{}

func (e *ErrIncorrectAnswer) Error() string {
	return "incorrect security answer"
}

// ErrMissingFields indicates one or more required form fields were empty
type ErrMissingFields struct {
	Fields []string
}

func (e *ErrMissingFields) Error() string {
	if len(e.Fields) == 0 {
		return "please fill in all fields"
	}
	return fmt.Sprintf("please fill in all fields: %s", strings.Join(e.Fields, ", "))
}

// ErrPasswordTooShort indicates a new password below the minimum length
type ErrPasswordTooShort struct {
	Min int
}

func (e *ErrPasswordTooShort) Error() string {
	return fmt.Sprintf("password too short: minimum %d characters", e.Min)
}
