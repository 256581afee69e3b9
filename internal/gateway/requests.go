package gateway

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"taskboard/internal/models"
)

type RegisterRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type CreateBoardRequest struct {
	Title string `json:"title" validate:"required"`
	Color string `json:"color" validate:"required"`
}

type UpdateBoardRequest struct {
	BoardID string `json:"boardId" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Color   string `json:"color" validate:"required"`
}

type CreateTaskRequest struct {
	BoardID     string          `json:"boardId" validate:"required"`
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description"`
	DueDate     string          `json:"dueDate" validate:"omitempty,duedate"`
	Priority    models.Priority `json:"priority" validate:"omitempty,oneof=low medium high"`
}

// UpdateTaskRequest is a partial update: nil fields keep their current
// value. An empty DueDate clears the deadline.
type UpdateTaskRequest struct {
	BoardID     string           `json:"boardId" validate:"required"`
	TaskID      string           `json:"taskId" validate:"required"`
	Title       *string          `json:"title" validate:"omitnil,min=1"`
	Description *string          `json:"description"`
	DueDate     *string          `json:"dueDate" validate:"omitnil,duedate"`
	Priority    *models.Priority `json:"priority" validate:"omitnil,oneof=low medium high"`
	Completed   *bool            `json:"completed"`
}

type DeleteTaskRequest struct {
	BoardID string `json:"boardId" validate:"required"`
	TaskID  string `json:"taskId" validate:"required"`
}

var dueDateLayouts = []string{
	time.DateOnly,
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// ValidDueDate reports whether s is a calendar date or a date-time. The
// empty string means "no deadline" and is valid.
func ValidDueDate(s string) bool {
	if s == "" {
		return true
	}
	for _, layout := range dueDateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

// NewValidator returns a validator that reports JSON field names and knows
// the "duedate" tag.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("duedate", func(fl validator.FieldLevel) bool {
		return ValidDueDate(fl.Field().String())
	})
	return v
}

// check validates req and turns the first violation into a 400 naming the
// offending field.
func (g *Gateway) check(req interface{}) *Error {
	err := g.validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return badRequest("Validation error")
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return badRequest(fmt.Sprintf("%s is required", fe.Field()))
	case "min":
		return badRequest(fmt.Sprintf("%s cannot be empty", fe.Field()))
	case "oneof":
		return badRequest(fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param()))
	case "duedate":
		return badRequest(fmt.Sprintf("%s must be a date (YYYY-MM-DD) or a date-time (YYYY-MM-DDTHH:MM)", fe.Field()))
	default:
		return badRequest(fmt.Sprintf("%s is invalid", fe.Field()))
	}
}
