package postgres

import (
	"context"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// tagRepository implements the repository.TagRepository interface.
type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository is the constructor for tagRepository.
func NewTagRepository(db *gorm.DB) repository.TagRepository {
	return &tagRepository{
		db: db,
	}
}

// SyncShopTags sets the shop's tag associations to exactly the given IDs.
// Association replace removes stale join rows and inserts missing ones, so
// the call is idempotent.
func (repo *tagRepository) SyncShopTags(ctx context.Context, shopID uint64, tagIDs []uint64) error {
	var tagModels []*model.TagModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", tagIDs).
		Find(&tagModels).Error; err != nil {
		return errors.Wrap(err, "failed to resolve tags")
	}

	if len(tagModels) != len(tagIDs) {
		return domainerrors.ErrTagNotFound.WrapMessage("unknown tag in tag set")
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.ShopModel{ID: shopID}).
		Association("Tags").
		Replace(tagModels); err != nil {
		return errors.Wrap(err, "failed to sync shop tags")
	}

	return nil
}

// toTagDomain converts a GORM TagModel to a domain Tag entity.
func toTagDomain(data *model.TagModel) *entity.Tag {
	if data == nil {
		return nil
	}

	tag := &entity.Tag{
		ID:     data.ID,
		Active: data.Active,
	}
	for _, translationM := range data.Translations {
		tag.Translations = append(tag.Translations, &entity.TagTranslation{
			ID:     translationM.ID,
			TagID:  translationM.TagID,
			Locale: translationM.Locale,
			Title:  translationM.Title,
		})
	}

	return tag
}
