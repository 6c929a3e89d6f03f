// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// shopRepository implements the repository.ShopRepository interface.
type shopRepository struct {
	db *gorm.DB
}

// NewShopRepository is the constructor for shopRepository.
func NewShopRepository(db *gorm.DB) repository.ShopRepository {
	return &shopRepository{
		db: db,
	}
}

// FindByID retrieves a shop by its numeric primary key.
func (repo *shopRepository) FindByID(ctx context.Context, id uint64) (*entity.Shop, error) {
	var shopM model.ShopModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&shopM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by ID")
	}

	return toShopDomain(&shopM), nil
}

// FindByUUID retrieves a shop by its public UUID.
func (repo *shopRepository) FindByUUID(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	var shopM model.ShopModel

	if err := repo.db.WithContext(ctx).
		Where("uuid = ?", id).
		First(&shopM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by UUID")
	}

	return toShopDomain(&shopM), nil
}

// FindByUUIDForSeller retrieves a shop by UUID scoped to the owning seller.
// A shop owned by someone else is indistinguishable from a missing one.
func (repo *shopRepository) FindByUUIDForSeller(ctx context.Context, id uuid.UUID, sellerID uint64) (*entity.Shop, error) {
	var shopM model.ShopModel

	if err := repo.db.WithContext(ctx).
		Where("uuid = ? AND seller_id = ?", id, sellerID).
		First(&shopM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by UUID for seller")
	}

	return toShopDomain(&shopM), nil
}

// FindBySeller retrieves the single shop owned by the given user.
func (repo *shopRepository) FindBySeller(ctx context.Context, sellerID uint64) (*entity.Shop, error) {
	var shopM model.ShopModel

	if err := repo.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		First(&shopM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by seller")
	}

	return toShopDomain(&shopM), nil
}

// FindDetailed retrieves a shop with its eager-loaded relation graph.
// Translations of the shop and its tags are filtered to opts.Locales.
func (repo *shopRepository) FindDetailed(ctx context.Context, id uint64, opts repository.DetailOptions) (*entity.Shop, error) {
	var shopM model.ShopModel

	query := repo.db.WithContext(ctx).
		Preload("Seller").
		Preload("Seller.Roles").
		Preload("Tags", "active = ?", true).
		Preload("Galleries").
		Preload("Subscription")

	if len(opts.Locales) > 0 {
		query = query.
			Preload("Translations", "locale IN ?", opts.Locales).
			Preload("Tags.Translations", "locale IN ?", opts.Locales)
	} else {
		query = query.
			Preload("Translations").
			Preload("Tags.Translations")
	}

	if opts.WithSchedule {
		query = query.
			Preload("WorkingDays").
			Preload("ClosedDates")
	}

	if err := query.Where("id = ?", id).First(&shopM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find detailed shop")
	}

	return toShopDomain(&shopM), nil
}

// Create persists a new shop row. Associations are written by their own
// repositories inside the same transaction.
func (repo *shopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	shopM := fromShopDomain(shop)

	if err := repo.db.WithContext(ctx).Create(shopM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrShopAlreadyExists.WrapMessage("seller already owns a shop")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrShopCreationFailed.WrapMessage("invalid seller reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shop")
	}

	// Update the entity with generated values
	shop.ID = shopM.ID
	shop.CreatedAt = shopM.CreatedAt
	shop.UpdatedAt = shopM.UpdatedAt

	return nil
}

// Update saves the merged scalar state of an existing shop row.
func (repo *shopRepository) Update(ctx context.Context, shop *entity.Shop) error {
	shopM := fromShopDomain(shop)

	if err := repo.db.WithContext(ctx).Save(shopM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update shop")
	}

	shop.UpdatedAt = shopM.UpdatedAt

	return nil
}

// SoftDelete marks a shop as deleted without removing the row.
func (repo *shopRepository) SoftDelete(ctx context.Context, id uint64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ShopModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to soft delete shop")
	}

	if result.RowsAffected == 0 {
		return repository.ErrShopNotFound
	}

	return nil
}

// UpsertTranslations inserts or updates one translation row per locale
// present in the list. Rows of other locales stay untouched.
func (repo *shopRepository) UpsertTranslations(ctx context.Context, shopID uint64, translations []*entity.ShopTranslation) error {
	if len(translations) == 0 {
		return nil
	}

	translationModels := make([]*model.ShopTranslationModel, 0, len(translations))
	for _, translation := range translations {
		translationModels = append(translationModels, &model.ShopTranslationModel{
			ShopID:      shopID,
			Locale:      translation.Locale,
			Title:       translation.Title,
			Description: translation.Description,
			Address:     translation.Address,
		})
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "shop_id"}, {Name: "locale"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "description", "address"}),
		}).
		Create(&translationModels).Error; err != nil {
		return errors.Wrap(err, "failed to upsert shop translations")
	}

	return nil
}

// --- Mapper Functions ---

// toShopDomain converts a GORM ShopModel to a domain Shop entity.
func toShopDomain(data *model.ShopModel) *entity.Shop {
	if data == nil {
		return nil
	}

	shop := &entity.Shop{
		ID:            data.ID,
		UUID:          data.UUID,
		SellerID:      data.SellerID,
		Type:          data.Type,
		LogoImg:       data.LogoImg,
		BackgroundImg: data.BackgroundImg,
		Phone:         data.Phone,
		Open:          data.Open,
		Visibility:    data.Visibility,
		Verify:        data.Verify,
		MinAmount:     data.MinAmount,
		Tax:           data.Tax,
		Percent:       data.Percent,
		DeliveryType:  entity.DeliveryType(data.DeliveryType),
		DeliveryTime:  data.DeliveryTime.Data(),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}

	if data.DeletedAt.Valid {
		deletedAt := data.DeletedAt.Time
		shop.DeletedAt = &deletedAt
	}

	shop.Seller = toUserDomain(data.Seller)

	for _, translationM := range data.Translations {
		shop.Translations = append(shop.Translations, toShopTranslationDomain(translationM))
	}
	for _, tagM := range data.Tags {
		shop.Tags = append(shop.Tags, toTagDomain(tagM))
	}
	for _, galleryM := range data.Galleries {
		shop.Galleries = append(shop.Galleries, toGalleryDomain(galleryM))
	}
	if data.Subscription != nil {
		shop.Subscription = &entity.ShopSubscription{
			ID:        data.Subscription.ID,
			ShopID:    data.Subscription.ShopID,
			Active:    data.Subscription.Active,
			ExpiredAt: data.Subscription.ExpiredAt,
		}
	}
	for _, dayM := range data.WorkingDays {
		shop.WorkingDays = append(shop.WorkingDays, &entity.ShopWorkingDay{
			ID:       dayM.ID,
			ShopID:   dayM.ShopID,
			Day:      dayM.Day,
			From:     dayM.From,
			To:       dayM.To,
			Disabled: dayM.Disabled,
		})
	}
	for _, dateM := range data.ClosedDates {
		shop.ClosedDates = append(shop.ClosedDates, &entity.ShopClosedDate{
			ID:     dateM.ID,
			ShopID: dateM.ShopID,
			Day:    dateM.Day,
		})
	}

	return shop
}

// fromShopDomain converts a domain Shop entity to a GORM ShopModel.
// Associations are deliberately left nil so GORM never upserts them as a
// side effect of saving the shop row.
func fromShopDomain(shop *entity.Shop) *model.ShopModel {
	return &model.ShopModel{
		ID:            shop.ID,
		UUID:          shop.UUID,
		SellerID:      shop.SellerID,
		Type:          shop.Type,
		LogoImg:       shop.LogoImg,
		BackgroundImg: shop.BackgroundImg,
		Phone:         shop.Phone,
		Open:          shop.Open,
		Visibility:    shop.Visibility,
		Verify:        shop.Verify,
		MinAmount:     shop.MinAmount,
		Tax:           shop.Tax,
		Percent:       shop.Percent,
		DeliveryType:  shop.DeliveryType.String(),
		DeliveryTime:  datatypes.NewJSONType(shop.DeliveryTime),
		CreatedAt:     shop.CreatedAt,
		UpdatedAt:     shop.UpdatedAt,
	}
}

// toShopTranslationDomain converts a GORM ShopTranslationModel to a domain ShopTranslation.
func toShopTranslationDomain(data *model.ShopTranslationModel) *entity.ShopTranslation {
	if data == nil {
		return nil
	}

	return &entity.ShopTranslation{
		ID:          data.ID,
		ShopID:      data.ShopID,
		Locale:      data.Locale,
		Title:       data.Title,
		Description: data.Description,
		Address:     data.Address,
	}
}
