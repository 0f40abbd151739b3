package apperrors

import "fmt"

/*
Фабрики ошибок по категориям. Сервисы возвращают только их,
HTTP-слой переводит категорию в статус через таблицу в codes.go.
*/

// Validation - некорректный или отсутствующий ввод (400)
func Validation(domain, message string) *AppError {
	return New(CodeValidation, domain, message)
}

// ValidationError - ошибка валидации с картой "поле -> сообщение"
func ValidationError(details interface{}) *AppError {
	return New(CodeValidation, "validation", "Validation failed").WithDetails(details)
}

// NotFound - сущность не найдена (404)
func NotFound(domain, resource, id string) *AppError {
	if id == "" {
		return New(CodeNotFound, domain, fmt.Sprintf("%s not found", resource))
	}
	return New(CodeNotFound, domain, fmt.Sprintf("%s not found with id: %s", resource, id))
}

// Conflict - дубликат уникального поля или отклика (409).
// field попадает в details, чтобы клиент знал, какое поле конфликтует.
func Conflict(domain, field, message string) *AppError {
	err := New(CodeConflict, domain, message)
	if field != "" {
		err.Details = map[string]string{"field": field}
	}
	return err
}

// Forbidden - роль не позволяет выполнить действие (403)
func Forbidden(domain, message string) *AppError {
	return New(CodeForbidden, domain, message)
}

// NewUnauthorizedError - нет или неверные учетные данные (401)
func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, "auth", message)
}

// ErrInvalidCredentials - неверный логин или пароль
var ErrInvalidCredentials = New(CodeUnauthorized, "auth", "Invalid username or password")

// ErrRateLimited - превышен лимит запросов (429)
var ErrRateLimited = New(CodeRateLimited, "ratelimit", "Too many requests, try again later")

// InternalError оборачивает неизвестную системную ошибку
func InternalError(err error) *AppError {
	return Wrap(err, CodeInternal, "system", "Internal server error")
}
