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

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a user with roles loaded by their numeric ID.
func (repo *userRepository) FindByID(ctx context.Context, id uint64) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("Roles").
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// SyncRoles replaces the user's role set with exactly the given roles.
// Role rows are seeded; only the user_roles join table changes.
func (repo *userRepository) SyncRoles(ctx context.Context, userID uint64, roles entity.Roles) error {
	var roleModels []*model.RoleModel

	if err := repo.db.WithContext(ctx).
		Where("name IN ?", roles.ToStrings()).
		Find(&roleModels).Error; err != nil {
		return errors.Wrap(err, "failed to resolve roles")
	}

	if len(roleModels) != len(roles) {
		return domainerrors.ErrRoleSyncFailed.WrapMessage("unknown role in role set")
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{ID: userID}).
		Association("Roles").
		Replace(roleModels); err != nil {
		return errors.Wrap(domainerrors.ErrRoleSyncFailed, err.Error())
	}

	return nil
}

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	roleNames := make([]string, 0, len(data.Roles))
	for _, roleM := range data.Roles {
		roleNames = append(roleNames, roleM.Name)
	}

	return &entity.User{
		ID:        data.ID,
		UUID:      data.UUID,
		Firstname: data.Firstname,
		Lastname:  data.Lastname,
		Email:     data.Email,
		Phone:     data.Phone,
		Active:    data.Active,
		Roles:     entity.RolesFromStrings(roleNames),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
