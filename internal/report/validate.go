package report

import (
	"errors"

	"github.com/balkashynov/taskreport/internal/models"
)

var (
	ErrMissingCompany   = errors.New("user record has no company name")
	ErrMissingName      = errors.New("user record has no name")
	ErrMissingEmail     = errors.New("user record has no email")
	ErrMissingTitle     = errors.New("task record has no title")
	ErrInvalidCompleted = errors.New("task record has no boolean completed flag")
)

// ValidateUser checks that a fetched user record carries every field the
// report header needs.
func ValidateUser(u models.User) error {
	if u.Company.Name == "" {
		return ErrMissingCompany
	}
	if u.Name == "" {
		return ErrMissingName
	}
	if u.Email == "" {
		return ErrMissingEmail
	}
	return nil
}

// ValidateTask checks that a fetched task record carries every field the
// report body needs. A completed flag that is not a JSON boolean is rejected
// here instead of being dropped without a trace further down.
func ValidateTask(t models.Task) error {
	if t.Title == "" {
		return ErrMissingTitle
	}
	if t.Completed == models.CompletionInvalid {
		return ErrInvalidCompleted
	}
	return nil
}
