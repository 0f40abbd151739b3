package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrDuplicate - нарушение уникального индекса (gorm с TranslateError: true)
var ErrDuplicate = errors.New("duplicate record")

// likePattern строит шаблон для LOWER(col) LIKE ? ESCAPE '\'
func likePattern(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + replacer.Replace(strings.ToLower(strings.TrimSpace(term))) + "%"
}

func translateWriteError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}
