// Package validation checks form values before any write is attempted.
// Checks are pure and synchronous; nothing here talks to the store.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"ats-api/internal/models"
	"ats-api/internal/transport/dto"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a form field (by its JSON name) to the message of its
// first failing constraint.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for field := range fe {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, fe[field]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// messages holds the user-facing text for field/tag pairs. Pairs not listed
// fall back to a generic message.
var messages = map[string]string{
	"title.min":           "Title must be at least 2 characters.",
	"title.required":      "Title is required.",
	"department.required": "Department is required.",
	"department.min":      "Department is required.",
	"location.required":   "Location is required.",
	"location.min":        "Location is required.",
	"type.required":       "Job type is required.",
	"type.min":            "Job type is required.",

	"name.min":    "Name must be at least 2 characters.",
	"email.email": "Invalid email address.",
	"phone.min":   "Phone number is required.",
	"role.min":    "Role is required.",

	"candidateId.required":        "Candidate is required.",
	"jobId.required":              "Job is required.",
	"scheduledDate.required":      "Date is required.",
	"scheduledDate.datetime":      "Date must be in YYYY-MM-DD format.",
	"scheduledDate.required_with": "Date and time must be changed together.",
	"scheduledTime.required":      "Time is required.",
	"scheduledTime.datetime":      "Time must be in HH:MM format.",
	"scheduledTime.required_with": "Date and time must be changed together.",
	"duration.min":                "Duration must be at least 15 minutes.",

	"interviewerName.min": "Interviewer name is required.",
	"rating.min":          "Rating is required.",
	"rating.max":          "Maximum rating is 5.",
	"notes.min":           "Please provide detailed feedback (minimum 10 characters).",

	"label.min":     "Label is required.",
	"color.min":     "Color is required.",
	"sortOrder.min": "Sort order cannot be negative.",
}

// Validator validates forms against their struct tags.
type Validator struct {
	validate *validator.Validate
}

// New returns a Validator with the domain enum tags registered:
// jobstatus, stage and interviewstatus.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Body forms are keyed by their json name, query filters by their form name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})

	_ = v.RegisterValidation("jobstatus", func(fl validator.FieldLevel) bool {
		return models.JobStatus(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("stage", func(fl validator.FieldLevel) bool {
		return models.InterviewStage(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("interviewstatus", func(fl validator.FieldLevel) bool {
		return models.InterviewStatus(fl.Field().String()).Valid()
	})

	v.RegisterStructValidation(scheduleTogether, dto.UpdateInterviewRequest{})

	return &Validator{validate: v}
}

// scheduleTogether rejects an interview update that moves only the date or
// only the time.
func scheduleTogether(sl validator.StructLevel) {
	req := sl.Current().Interface().(dto.UpdateInterviewRequest)
	switch {
	case req.ScheduledDate != nil && req.ScheduledTime == nil:
		sl.ReportError(req.ScheduledTime, "scheduledTime", "ScheduledTime", "required_with", "scheduledDate")
	case req.ScheduledDate == nil && req.ScheduledTime != nil:
		sl.ReportError(req.ScheduledDate, "scheduledDate", "ScheduledDate", "required_with", "scheduledTime")
	}
}

// Validate returns nil when form passes, FieldErrors when it does not.
func (v *Validator) Validate(form any) error {
	err := v.validate.Struct(form)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("invalid form: %w", err)
	}
	return FormatValidationErrors(validationErrors)
}

// FormatValidationErrors keeps the first failure reported for each field.
func FormatValidationErrors(validationErrors validator.ValidationErrors) FieldErrors {
	fe := make(FieldErrors, len(validationErrors))
	for _, fieldError := range validationErrors {
		field := fieldError.Field()
		if _, seen := fe[field]; seen {
			continue
		}
		fe[field] = message(fieldError)
	}
	return fe
}

func message(fieldError validator.FieldError) string {
	field := fieldError.Field()
	base := field
	if i := strings.IndexByte(field, '['); i >= 0 {
		base = field[:i]
	}
	if msg, ok := messages[base+"."+fieldError.Tag()]; ok {
		return msg
	}

	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf("Field '%s' is required", field)
	case "email":
		return fmt.Sprintf("Field '%s' must be a valid email address", field)
	case "min":
		return fmt.Sprintf("Field '%s' must be at least %s", field, fieldError.Param())
	case "max":
		return fmt.Sprintf("Field '%s' must be at most %s", field, fieldError.Param())
	case "stage", "jobstatus", "interviewstatus", "oneof":
		return fmt.Sprintf("Field '%s' has an unknown value '%v'", field, fieldError.Value())
	}
	return fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", field, fieldError.Tag())
}
