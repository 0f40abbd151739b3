package validator

import (
	"log"
	"reflect"

	"jobportal/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует кастомные теги в экземпляре валидатора.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Без правил сервис запускать нельзя
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// Перечисления из statuses.go
	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-application-status", validateApplicationStatus)
	mustRegister("is-work-preference", validateWorkPreference)

	// Форматы
	mustRegister("phone", validatePhone)
	mustRegister("cv-url", validateCVURL)
	mustRegister("notblank-items", validateNotBlankItems)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // пустое значение ловит 'required'
	}
	_, err := models.ParseUserRole(value)
	return err == nil
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := models.ParseApplicationStatus(value)
	return err == nil
}

func validateWorkPreference(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := models.ParseWorkPreference(value)
	return err == nil
}

func validatePhone(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return IsPhone(value)
}

func validateCVURL(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return IsCVURL(value)
}

func validateNotBlankItems(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.Slice {
		return false
	}
	items := make([]string, 0, field.Len())
	for i := 0; i < field.Len(); i++ {
		if field.Index(i).Kind() == reflect.String {
			items = append(items, field.Index(i).String())
		}
	}
	return HasNonBlankItem(items)
}
