package validator

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@(.+)$`)
	phonePattern = regexp.MustCompile(`^[+]?[0-9]{10,15}$`)
)

// cvURLPrefixes - допустимые префиксы ссылки на резюме
var cvURLPrefixes = []string{"http://", "https://", "/uploads/"}

func IsBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

func IsEmail(value string) bool {
	return emailPattern.MatchString(strings.TrimSpace(value))
}

func IsPhone(value string) bool {
	return phonePattern.MatchString(strings.TrimSpace(value))
}

func IsCVURL(value string) bool {
	value = strings.TrimSpace(value)
	for _, prefix := range cvURLPrefixes {
		if strings.HasPrefix(value, prefix) && len(value) > len(prefix) {
			return true
		}
	}
	return false
}

// HasNonBlankItem - в списке есть хотя бы один непустой элемент
func HasNonBlankItem(items []string) bool {
	for _, item := range items {
		if !IsBlank(item) {
			return true
		}
	}
	return false
}

// CleanItems обрезает пробелы и выбрасывает пустые элементы, сохраняя порядок
func CleanItems(items []string) []string {
	cleaned := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	return cleaned
}
