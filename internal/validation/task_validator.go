// Package validation enforces the input-boundary rules for task form data.
// The task store itself tolerates any string; these checks belong to the
// surface collecting user input.
package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"task-manager/internal/config"
	"task-manager/internal/domain"
	"task-manager/internal/errors"
)

// TaskValidator validates and cleans task form data before it reaches the
// store.
type TaskValidator struct {
	titleMaxLength       int
	descriptionMaxLength int
}

// NewTaskValidator creates a validator with the configured length limits.
func NewTaskValidator(cfg config.ValidationConfig) *TaskValidator {
	return &TaskValidator{
		titleMaxLength:       cfg.TitleMaxLength,
		descriptionMaxLength: cfg.DescriptionMaxLength,
	}
}

// CleanFormData trims the form fields, applies the default priority and
// validates the result. It returns the cleaned data ready for the store.
func (tv *TaskValidator) CleanFormData(data domain.TaskFormData) (domain.TaskFormData, error) {
	cleaned := domain.TaskFormData{
		Title:       strings.TrimSpace(data.Title),
		Description: strings.TrimSpace(data.Description),
		Priority:    data.Priority,
	}

	if cleaned.Title == "" {
		return domain.TaskFormData{}, errors.NewValidationError("title is required", nil)
	}
	if utf8.RuneCountInString(cleaned.Title) > tv.titleMaxLength {
		return domain.TaskFormData{}, errors.NewValidationError(
			fmt.Sprintf("title must be at most %d characters", tv.titleMaxLength), nil)
	}
	if utf8.RuneCountInString(cleaned.Description) > tv.descriptionMaxLength {
		return domain.TaskFormData{}, errors.NewValidationError(
			fmt.Sprintf("description must be at most %d characters", tv.descriptionMaxLength), nil)
	}

	if cleaned.Priority == "" {
		cleaned.Priority = domain.DefaultPriority
	} else if !cleaned.Priority.IsValid() {
		return domain.TaskFormData{}, errors.NewValidationError(
			fmt.Sprintf("priority must be one of low, medium, high (got %q)", cleaned.Priority), nil)
	}

	return cleaned, nil
}

// ValidateTaskID checks that an id argument was actually supplied. Whether
// the id exists is not a validation concern: mutations on unknown ids are
// silent no-ops.
func (tv *TaskValidator) ValidateTaskID(id string) error {
	if strings.TrimSpace(id) == "" {
		return errors.NewValidationError("task id is required", nil)
	}
	return nil
}
