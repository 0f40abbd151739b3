package services

import (
	"errors"

	"jobportal/internal/repositories"
	"jobportal/internal/validator"
	"jobportal/pkg/apperrors"
)

// fieldError - ошибка валидации одного поля в формате валидатора
func fieldError(domain, field, message string) *apperrors.AppError {
	return apperrors.Validation(domain, message).WithDetails(map[string]string{field: message})
}

// requireParam - обязательный параметр запроса не должен быть пустым
func requireParam(domain, name, value string) error {
	if validator.IsBlank(value) {
		return fieldError(domain, name, name+" is required")
	}
	return nil
}

func handleUserError(err error, id string) error {
	switch {
	case errors.Is(err, repositories.ErrUserNotFound):
		return apperrors.NotFound("user", "User", id)
	case errors.Is(err, repositories.ErrDuplicate):
		return apperrors.Conflict("user", "username", "Username or email already exists").WithError(err)
	}
	return apperrors.InternalError(err)
}

func handleJobError(err error, id string) error {
	if errors.Is(err, repositories.ErrJobNotFound) {
		return apperrors.NotFound("job", "Job", id)
	}
	return apperrors.InternalError(err)
}

func handleApplicationError(err error, id string) error {
	switch {
	case errors.Is(err, repositories.ErrApplicationNotFound):
		return apperrors.NotFound("application", "Job application", id)
	case errors.Is(err, repositories.ErrDuplicate):
		return apperrors.Conflict("application", "jobId",
			"A pending application already exists for this job seeker and job").WithError(err)
	case errors.Is(err, repositories.ErrStaleStatus):
		return apperrors.Conflict("application", "status",
			"Application status was changed by another request").WithError(err)
	}
	return apperrors.InternalError(err)
}
