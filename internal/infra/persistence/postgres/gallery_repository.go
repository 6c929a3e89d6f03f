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

// galleryRepository implements the repository.GalleryRepository interface.
type galleryRepository struct {
	db *gorm.DB
}

// NewGalleryRepository is the constructor for galleryRepository.
func NewGalleryRepository(db *gorm.DB) repository.GalleryRepository {
	return &galleryRepository{
		db: db,
	}
}

// CreateBatch persists one gallery entry per element.
func (repo *galleryRepository) CreateBatch(ctx context.Context, entries []*entity.Gallery) error {
	if len(entries) == 0 {
		return nil
	}

	galleryModels := make([]*model.GalleryModel, 0, len(entries))
	for _, entry := range entries {
		galleryModels = append(galleryModels, &model.GalleryModel{
			ShopID: entry.ShopID,
			Title:  entry.Title,
			Path:   entry.Path,
			Type:   string(entry.Type),
		})
	}

	if err := repo.db.WithContext(ctx).Create(&galleryModels).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrShopNotFound.WrapMessage("gallery entries reference a missing shop")
		}

		return errors.Wrap(err, "failed to create gallery entries")
	}

	for i, galleryM := range galleryModels {
		entries[i].ID = galleryM.ID
		entries[i].CreatedAt = galleryM.CreatedAt
	}

	return nil
}

// DeleteByShop removes every gallery entry of the shop and returns the
// stored file paths of the removed entries.
func (repo *galleryRepository) DeleteByShop(ctx context.Context, shopID uint64) ([]string, error) {
	var paths []string

	if err := repo.db.WithContext(ctx).
		Model(&model.GalleryModel{}).
		Where("shop_id = ?", shopID).
		Pluck("path", &paths).Error; err != nil {
		return nil, errors.Wrap(err, "failed to collect gallery paths")
	}

	if err := repo.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Delete(&model.GalleryModel{}).Error; err != nil {
		return nil, errors.Wrap(err, "failed to delete gallery entries")
	}

	return paths, nil
}

// DeleteByShopExceptType removes the shop's gallery entries except those of
// the given category.
func (repo *galleryRepository) DeleteByShopExceptType(ctx context.Context, shopID uint64, keep entity.GalleryType) error {
	if err := repo.db.WithContext(ctx).
		Where("shop_id = ? AND type <> ?", shopID, string(keep)).
		Delete(&model.GalleryModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete gallery entries by type")
	}

	return nil
}

// toGalleryDomain converts a GORM GalleryModel to a domain Gallery entity.
func toGalleryDomain(data *model.GalleryModel) *entity.Gallery {
	if data == nil {
		return nil
	}

	return &entity.Gallery{
		ID:        data.ID,
		ShopID:    data.ShopID,
		Title:     data.Title,
		Path:      data.Path,
		Type:      entity.GalleryType(data.Type),
		CreatedAt: data.CreatedAt,
	}
}
