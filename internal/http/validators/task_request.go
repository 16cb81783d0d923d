package validators

import (
	dto "task-tracker-system.com/task-tracker-system/internal/data_models"
	errs "task-tracker-system.com/task-tracker-system/internal/errors"
)

func ValidateTaskRequest(r *dto.TaskRequestData) error {
	if r.Name == "" || r.Deadline.IsZero() {
		return errs.ErrTaskFieldsRequired
	}
	return nil
}
