package postgres

import (
	"context"

	"market/internal/domain/repository"
	"market/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// DeletePointHistoriesByShop removes the point-history rows of every order
// belonging to the shop.
func (repo *orderRepository) DeletePointHistoriesByShop(ctx context.Context, shopID uint64) error {
	orderIDs := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("id").
		Where("shop_id = ?", shopID)

	if err := repo.db.WithContext(ctx).
		Where("order_id IN (?)", orderIDs).
		Delete(&model.PointHistoryModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete point histories by shop")
	}

	return nil
}
