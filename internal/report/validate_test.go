package report

import (
	"errors"
	"testing"

	"github.com/balkashynov/taskreport/internal/models"
)

func validUser() models.User {
	return models.User{
		ID:       1,
		Username: "jdoe",
		Name:     "John Doe",
		Email:    "jdoe@example.com",
		Company:  models.Company{Name: "Acme"},
	}
}

func TestValidateUserSuccess(t *testing.T) {
	if err := ValidateUser(validUser()); err != nil {
		t.Fatalf("expected valid user, got error: %v", err)
	}
}

func TestValidateUserMissingFields(t *testing.T) {
	u := validUser()
	u.Company.Name = ""
	if err := ValidateUser(u); !errors.Is(err, ErrMissingCompany) {
		t.Fatalf("expected ErrMissingCompany, got: %v", err)
	}

	u = validUser()
	u.Name = ""
	if err := ValidateUser(u); !errors.Is(err, ErrMissingName) {
		t.Fatalf("expected ErrMissingName, got: %v", err)
	}

	u = validUser()
	u.Email = ""
	if err := ValidateUser(u); !errors.Is(err, ErrMissingEmail) {
		t.Fatalf("expected ErrMissingEmail, got: %v", err)
	}
}

func TestValidateTask(t *testing.T) {
	task := models.Task{ID: 1, Title: "write docs", Completed: models.CompletionPending}
	if err := ValidateTask(task); err != nil {
		t.Fatalf("expected valid task, got error: %v", err)
	}

	task.Title = ""
	if err := ValidateTask(task); !errors.Is(err, ErrMissingTitle) {
		t.Fatalf("expected ErrMissingTitle, got: %v", err)
	}

	task.Title = "write docs"
	task.Completed = models.CompletionInvalid
	if err := ValidateTask(task); !errors.Is(err, ErrInvalidCompleted) {
		t.Fatalf("expected ErrInvalidCompleted, got: %v", err)
	}
}
