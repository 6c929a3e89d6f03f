package postgres

import (
	"context"

	"market/internal/domain/repository"
	"market/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// invitationRepository implements the repository.InvitationRepository interface.
type invitationRepository struct {
	db *gorm.DB
}

// NewInvitationRepository is the constructor for invitationRepository.
func NewInvitationRepository(db *gorm.DB) repository.InvitationRepository {
	return &invitationRepository{
		db: db,
	}
}

// DeleteByShop removes every invitation of the given shop.
func (repo *invitationRepository) DeleteByShop(ctx context.Context, shopID uint64) error {
	if err := repo.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Delete(&model.InvitationModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete invitations by shop")
	}

	return nil
}
