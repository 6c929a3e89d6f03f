package postgres

import (
	"context"

	"market/internal/domain/entity"
	"market/internal/domain/repository"
	"market/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// languageRepository implements the repository.LanguageRepository interface.
type languageRepository struct {
	db *gorm.DB
}

// NewLanguageRepository is the constructor for languageRepository.
func NewLanguageRepository(db *gorm.DB) repository.LanguageRepository {
	return &languageRepository{
		db: db,
	}
}

// FindDefault retrieves the system default language.
func (repo *languageRepository) FindDefault(ctx context.Context) (*entity.Language, error) {
	var languageM model.LanguageModel

	if err := repo.db.WithContext(ctx).
		Where("is_default = ? AND active = ?", true, true).
		First(&languageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLanguageNotFound
		}

		return nil, errors.Wrap(err, "failed to find default language")
	}

	return &entity.Language{
		ID:      languageM.ID,
		Locale:  languageM.Locale,
		Default: languageM.Default,
		Active:  languageM.Active,
	}, nil
}
