// Package apps tracks job-application records, independent of the resume
// tree: which positions were applied to, when, and with what outcome.
package apps

import (
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ymxu/resumefill/internal/common"
)

// Status is one of the two application buckets.
type Status string

const (
	StatusPending   Status = "pending"
	StatusSubmitted Status = "submitted"
)

const dateLayout = "2006-01-02"

// Application is one job-application record.
type Application struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Date      string    `json:"date"`
	Link      string    `json:"link"`
	Notes     string    `json:"notes"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// Input carries the user-editable fields of an application.
type Input struct {
	Title  string
	Date   string
	Link   string
	Notes  string
	Status Status
}

// Validate checks required fields and formats. An empty date is allowed
// and defaults to the current day on save.
func (in Input) Validate() error {
	err := validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.Required.Error("title is required")),
		validation.Field(&in.Status, validation.Required, validation.In(StatusPending, StatusSubmitted)),
		validation.Field(&in.Date, validation.By(validDate)),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", err.Error(), common.ErrValidation)
	}
	return nil
}

func validDate(value any) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := time.Parse(dateLayout, s); err != nil {
		return validation.NewError("apps.date_format", "date must be YYYY-MM-DD")
	}
	return nil
}

// Today returns the current day formatted as an ISO date string.
func Today() string {
	return time.Now().Format(dateLayout)
}
