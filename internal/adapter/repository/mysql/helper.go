package mysql

import (
	"errors"
	"fmt"
	"strings"

	"claims-backoffice/internal/domain/apperr"

	"gorm.io/gorm"
)

// notFound maps gorm's sentinel onto the domain one.
func notFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", what, apperr.ErrNotFound)
	}
	return err
}

// duplicate maps a unique-index violation onto the domain conflict. It needs
// gorm's TranslateError so every dialect reports gorm.ErrDuplicatedKey.
func duplicate(err error, what string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%s: %w", what, apperr.ErrConflict)
	}
	return err
}

// likeEscape is portable across MySQL, Postgres and SQLite, unlike backslash.
const likeEscape = "ESCAPE '!'"

// likePattern escapes LIKE wildcards in a user supplied fragment.
func likePattern(fragment string) string {
	r := strings.NewReplacer(`!`, `!!`, `%`, `!%`, `_`, `!_`)
	return "%" + strings.ToLower(r.Replace(fragment)) + "%"
}

func clampLimit(n int) int {
	if n <= 0 || n > 100 {
		return 20
	}
	return n
}
