package repository

import (
	"context"
	"errors"

	"market/internal/domain/entity"
)

// ErrLanguageNotFound is returned when no language row matches the lookup.
var ErrLanguageNotFound = errors.New("language not found")

// LanguageRepository resolves marketplace locales. Used to widen translation
// loading to (caller locale ∪ system default locale).
type LanguageRepository interface {
	// FindDefault retrieves the system default language.
	FindDefault(ctx context.Context) (*entity.Language, error)
}
