package validators

import (
	dto "task-tracker-system.com/task-tracker-system/internal/data_models"
	errs "task-tracker-system.com/task-tracker-system/internal/errors"
)

func ValidateUserRequest(r *dto.UserRequestData) error {
	if r.Name == "" || r.Email == "" {
		return errs.ErrUserFieldsRequired
	}
	return nil
}
