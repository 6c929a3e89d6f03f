package impl

import (
	"context"
	"testing"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	mockRepo "market/internal/mocks/repository"
	"market/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestShopService_CreateShop_MissingSellerID(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()

	shop, err := fx.service.CreateShop(ctx, "en", usecase.CreateShopInput{})

	assert.Error(t, err)
	assert.Nil(t, shop)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestShopService_CreateShop_SellerNotFound(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrUserNotFound, "seller not found"), func(factory *mockRepo.MockRepositoryFactory) {
		shopRepo := mockRepo.NewMockShopRepository(t)
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().ShopRepo().Return(shopRepo)
		factory.EXPECT().UserRepo().Return(userRepo)

		userRepo.EXPECT().FindByID(ctx, uint64(7)).Return(nil, repository.ErrUserNotFound)
	})

	shop, err := fx.service.CreateShop(ctx, "en", usecase.CreateShopInput{SellerID: 7})

	assert.Error(t, err)
	assert.Nil(t, shop)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestShopService_CreateShop_SellerIsAdmin(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrShopOwnerIsAdmin, "seller holds the administrator role"), func(factory *mockRepo.MockRepositoryFactory) {
		shopRepo := mockRepo.NewMockShopRepository(t)
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().ShopRepo().Return(shopRepo)
		factory.EXPECT().UserRepo().Return(userRepo)

		userRepo.EXPECT().
			FindByID(ctx, uint64(7)).
			Return(&entity.User{ID: 7, Roles: entity.Roles{entity.RoleAdmin}}, nil)
	})

	shop, err := fx.service.CreateShop(ctx, "en", usecase.CreateShopInput{SellerID: 7})

	assert.Error(t, err)
	assert.Nil(t, shop)
	assert.True(t, errors.Is(err, domainerrors.ErrShopOwnerIsAdmin))
}

func TestShopService_CreateShop_SellerAlreadyOwnsShop(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrShopAlreadyExists, "seller already owns a shop"), func(factory *mockRepo.MockRepositoryFactory) {
		shopRepo := mockRepo.NewMockShopRepository(t)
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().ShopRepo().Return(shopRepo)
		factory.EXPECT().UserRepo().Return(userRepo)

		userRepo.EXPECT().
			FindByID(ctx, uint64(7)).
			Return(&entity.User{ID: 7, Roles: entity.Roles{entity.RoleUser}}, nil)

		shopRepo.EXPECT().
			FindBySeller(ctx, uint64(7)).
			Return(&entity.Shop{ID: 1, SellerID: 7}, nil)
	})

	shop, err := fx.service.CreateShop(ctx, "en", usecase.CreateShopInput{SellerID: 7})

	assert.Error(t, err)
	assert.Nil(t, shop)
	assert.True(t, errors.Is(err, domainerrors.ErrShopAlreadyExists))
}

func TestShopService_CreateShop_PersistFailureRollsBack(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()

	fx.onExecute(ctx, errors.Wrap(errors.New("db error"), "failed to create shop"), func(factory *mockRepo.MockRepositoryFactory) {
		shopRepo := mockRepo.NewMockShopRepository(t)
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().ShopRepo().Return(shopRepo)
		factory.EXPECT().UserRepo().Return(userRepo)

		userRepo.EXPECT().
			FindByID(ctx, uint64(7)).
			Return(&entity.User{ID: 7, Roles: entity.Roles{entity.RoleUser}}, nil)

		shopRepo.EXPECT().
			FindBySeller(ctx, uint64(7)).
			Return(nil, repository.ErrShopNotFound)

		shopRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Shop")).
			Return(errors.New("db error"))
	})

	shop, err := fx.service.CreateShop(ctx, "en", usecase.CreateShopInput{SellerID: 7})

	assert.Error(t, err)
	assert.Nil(t, shop)
	assert.Contains(t, err.Error(), "failed to create shop")
}

func TestShopService_UpdateShop_NotFound(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	shopUUID := uuid.New()

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrShopNotFound, "shop not found"), func(factory *mockRepo.MockRepositoryFactory) {
		shopRepo := mockRepo.NewMockShopRepository(t)
		factory.EXPECT().ShopRepo().Return(shopRepo)

		shopRepo.EXPECT().
			FindByUUID(ctx, shopUUID).
			Return(nil, repository.ErrShopNotFound)
	})

	shop, err := fx.service.UpdateShop(ctx, "en", shopUUID, usecase.UpdateShopInput{})

	assert.Error(t, err)
	assert.Nil(t, shop)
	assert.True(t, errors.Is(err, domainerrors.ErrShopNotFound))
}

func TestShopService_UpdateShop_ForeignShopLooksMissing(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	shopUUID := uuid.New()
	sellerID := uint64(9)

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrShopNotFound, "shop not found"), func(factory *mockRepo.MockRepositoryFactory) {
		shopRepo := mockRepo.NewMockShopRepository(t)
		factory.EXPECT().ShopRepo().Return(shopRepo)

		shopRepo.EXPECT().
			FindByUUIDForSeller(ctx, shopUUID, sellerID).
			Return(nil, repository.ErrShopNotFound)
	})

	shop, err := fx.service.UpdateShop(ctx, "en", shopUUID, usecase.UpdateShopInput{SellerID: &sellerID})

	assert.Error(t, err)
	assert.Nil(t, shop)
	assert.True(t, errors.Is(err, domainerrors.ErrShopNotFound))
}

func TestShopService_DeleteShops_CascadeFailureStillSucceeds(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("tx failed"))

	err := fx.service.DeleteShops(ctx, []uint64{5})

	// Individual cascade failures are logged, the batch never fails.
	assert.NoError(t, err)
}

func TestShopService_ToggleVerify_UnknownIdentifier(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()

	shop, err := fx.service.ToggleVerify(ctx, "not-an-id")

	assert.Error(t, err)
	assert.Nil(t, shop)
	assert.True(t, errors.Is(err, domainerrors.ErrShopNotFound))
}

func TestShopService_ToggleVerify_UUIDNotFound(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	shopUUID := uuid.New()

	fx.shopRepo.EXPECT().
		FindByUUID(ctx, shopUUID).
		Return(nil, repository.ErrShopNotFound)

	shop, err := fx.service.ToggleVerify(ctx, shopUUID.String())

	assert.Error(t, err)
	assert.Nil(t, shop)
	assert.True(t, errors.Is(err, domainerrors.ErrShopNotFound))
}

func TestShopService_GetShop_NotFound(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	shopUUID := uuid.New()

	fx.shopRepo.EXPECT().
		FindByUUID(ctx, shopUUID).
		Return(nil, repository.ErrShopNotFound)

	shop, err := fx.service.GetShop(ctx, "en", shopUUID)

	assert.Error(t, err)
	assert.Nil(t, shop)
	assert.True(t, errors.Is(err, domainerrors.ErrShopNotFound))
}

func TestShopService_StorefrontQR_NotFound(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	shopUUID := uuid.New()

	fx.shopRepo.EXPECT().
		FindByUUID(ctx, shopUUID).
		Return(nil, repository.ErrShopNotFound)

	qrCode, err := fx.service.StorefrontQR(ctx, shopUUID)

	assert.Error(t, err)
	assert.Nil(t, qrCode)
	assert.True(t, errors.Is(err, domainerrors.ErrShopNotFound))
}
