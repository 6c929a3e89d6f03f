package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"market/config"
	"market/internal/domain/entity"
	"market/internal/domain/repository"
	"market/internal/domain/service"
	mockRepo "market/internal/mocks/repository"
	mockSvc "market/internal/mocks/service"
	"market/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// shopServiceFixtures holds all test dependencies for shop service tests.
type shopServiceFixtures struct {
	t              *testing.T
	service        usecase.ShopUsecase
	txManager      *mockRepo.MockTransactionManager
	shopRepo       *mockRepo.MockShopRepository
	languageRepo   *mockRepo.MockLanguageRepository
	qrService      *mockSvc.MockQRCodeService
	mediaStorage   *mockSvc.MockMediaStorage
	eventPublisher *mockSvc.MockEventPublisher
}

func createTestShopService(t *testing.T) shopServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	shopRepo := mockRepo.NewMockShopRepository(t)
	languageRepo := mockRepo.NewMockLanguageRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	mediaStorage := mockSvc.NewMockMediaStorage(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)
	cfg := &config.Config{
		Shop: &config.ShopConfig{
			DefaultLocale: "en",
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewShopService(ShopServiceParams{
		TxManager:      txManager,
		ShopRepo:       shopRepo,
		LanguageRepo:   languageRepo,
		QRCodeService:  qrService,
		MediaStorage:   mediaStorage,
		EventPublisher: eventPublisher,
		Config:         cfg,
		Logger:         logger,
	})

	return shopServiceFixtures{
		t:              t,
		service:        svc,
		txManager:      txManager,
		shopRepo:       shopRepo,
		languageRepo:   languageRepo,
		qrService:      qrService,
		mediaStorage:   mediaStorage,
		eventPublisher: eventPublisher,
	}
}

// onExecute stubs the transaction manager: setup wires the per-transaction
// repository mocks, result is what Execute reports back to the service.
func (fx shopServiceFixtures) onExecute(ctx context.Context, result error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(factory)
			_ = fn(factory)
		}).
		Return(result)
}

func (fx shopServiceFixtures) expectDefaultLanguage(ctx context.Context) {
	fx.languageRepo.EXPECT().
		FindDefault(ctx).
		Return(&entity.Language{ID: 1, Locale: "en", Default: true, Active: true}, nil)
}

func TestShopService_CreateShop_Success(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	from := "10:00"
	to := "20:00"
	unit := "minutes"
	input := usecase.CreateShopInput{
		SellerID:     7,
		Phone:        "+380501112233",
		MinAmount:    100,
		Tax:          5,
		Percent:      10,
		DeliveryType: entity.DeliveryTypeExternal,
		DeliveryTime: entity.DeliveryTimePatch{From: &from, To: &to, Type: &unit},
		Translations: map[string]usecase.ShopTranslationInput{
			"uk": {Title: "Крамниця", Description: "опис", Address: "Київ"},
			"en": {Title: "Corner Shop", Description: "desc", Address: "Kyiv"},
		},
		Images:    []string{"shops/logo.png", "shops/bg.png"},
		Documents: []string{"shop-documents/license.pdf"},
		Tags:      []uint64{1, 2},
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		shopRepo := mockRepo.NewMockShopRepository(t)
		userRepo := mockRepo.NewMockUserRepository(t)
		galleryRepo := mockRepo.NewMockGalleryRepository(t)
		tagRepo := mockRepo.NewMockTagRepository(t)

		factory.EXPECT().ShopRepo().Return(shopRepo)
		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().GalleryRepo().Return(galleryRepo)
		factory.EXPECT().TagRepo().Return(tagRepo)

		userRepo.EXPECT().
			FindByID(ctx, uint64(7)).
			Return(&entity.User{ID: 7, Roles: entity.Roles{entity.RoleUser}}, nil)

		shopRepo.EXPECT().
			FindBySeller(ctx, uint64(7)).
			Return(nil, repository.ErrShopNotFound)

		shopRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Shop")).
			Run(func(_ context.Context, shop *entity.Shop) {
				assert.Equal(t, uint64(7), shop.SellerID)
				assert.Equal(t, entity.ShopTypeShop, shop.Type)
				assert.NotEqual(t, uuid.Nil, shop.UUID)
				assert.Equal(t, "shops/logo.png", shop.LogoImg)
				assert.Equal(t, "shops/bg.png", shop.BackgroundImg)
				assert.Equal(t, entity.DeliveryTime{From: "10:00", To: "20:00", Type: "minutes"}, shop.DeliveryTime)
				shop.ID = 42
			}).
			Return(nil)

		shopRepo.EXPECT().
			UpsertTranslations(ctx, uint64(42), mock.AnythingOfType("[]*entity.ShopTranslation")).
			Run(func(_ context.Context, _ uint64, translations []*entity.ShopTranslation) {
				assert.Len(t, translations, 2)
			}).
			Return(nil)

		galleryRepo.EXPECT().
			CreateBatch(ctx, mock.AnythingOfType("[]*entity.Gallery")).
			Return(nil)

		tagRepo.EXPECT().
			SyncShopTags(ctx, uint64(42), []uint64{1, 2}).
			Return(nil)

		userRepo.EXPECT().
			SyncRoles(ctx, uint64(7), entity.Roles{entity.RoleUser, entity.RoleSeller}).
			Return(nil)
	})

	fx.expectDefaultLanguage(ctx)

	detailed := &entity.Shop{ID: 42, UUID: uuid.New(), SellerID: 7}
	fx.shopRepo.EXPECT().
		FindDetailed(ctx, uint64(42), repository.DetailOptions{Locales: []string{"uk", "en"}}).
		Return(detailed, nil)

	fx.eventPublisher.EXPECT().
		PublishShopEvent(ctx, mock.AnythingOfType("*service.ShopEvent")).
		Run(func(_ context.Context, event *service.ShopEvent) {
			assert.Equal(t, service.ShopEventCreated, event.Type)
			assert.Equal(t, uint64(42), event.ShopID)
		}).
		Return(nil)

	shop, err := fx.service.CreateShop(ctx, "uk", input)

	require.NoError(t, err)
	assert.Equal(t, detailed, shop)
}

func TestShopService_CreateShop_SellerAlreadyHasSellerRole(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	input := usecase.CreateShopInput{SellerID: 7}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		shopRepo := mockRepo.NewMockShopRepository(t)
		userRepo := mockRepo.NewMockUserRepository(t)
		galleryRepo := mockRepo.NewMockGalleryRepository(t)

		factory.EXPECT().ShopRepo().Return(shopRepo)
		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().GalleryRepo().Return(galleryRepo)

		userRepo.EXPECT().
			FindByID(ctx, uint64(7)).
			Return(&entity.User{ID: 7, Roles: entity.Roles{entity.RoleUser, entity.RoleSeller}}, nil)

		shopRepo.EXPECT().
			FindBySeller(ctx, uint64(7)).
			Return(nil, repository.ErrShopNotFound)

		shopRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Shop")).
			Run(func(_ context.Context, shop *entity.Shop) { shop.ID = 42 }).
			Return(nil)

		// No SyncRoles call: the role set already contains seller.
	})

	fx.expectDefaultLanguage(ctx)
	fx.shopRepo.EXPECT().
		FindDetailed(ctx, uint64(42), repository.DetailOptions{Locales: []string{"uk", "en"}}).
		Return(&entity.Shop{ID: 42, SellerID: 7}, nil)
	fx.eventPublisher.EXPECT().
		PublishShopEvent(ctx, mock.AnythingOfType("*service.ShopEvent")).
		Return(nil)

	_, err := fx.service.CreateShop(ctx, "uk", input)

	require.NoError(t, err)
}

func TestShopService_UpdateShop_ImagesSupersedeGalleries(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	shopUUID := uuid.New()
	phone := "+380671234567"
	input := usecase.UpdateShopInput{
		Phone:  &phone,
		Images: []string{"shops/new-logo.png"},
	}

	existing := &entity.Shop{
		ID:            42,
		UUID:          shopUUID,
		SellerID:      7,
		LogoImg:       "shops/old-logo.png",
		BackgroundImg: "shops/old-bg.png",
		DeliveryTime:  entity.DeliveryTime{From: "09:00", To: "18:00", Type: "minutes"},
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		shopRepo := mockRepo.NewMockShopRepository(t)
		galleryRepo := mockRepo.NewMockGalleryRepository(t)

		factory.EXPECT().ShopRepo().Return(shopRepo)
		factory.EXPECT().GalleryRepo().Return(galleryRepo)

		shopRepo.EXPECT().
			FindByUUID(ctx, shopUUID).
			Return(existing, nil)

		galleryRepo.EXPECT().
			DeleteByShop(ctx, uint64(42)).
			Return([]string{"shops/old-logo.png", "shops/old-bg.png"}, nil)

		shopRepo.EXPECT().
			Update(ctx, mock.AnythingOfType("*entity.Shop")).
			Run(func(_ context.Context, shop *entity.Shop) {
				assert.Equal(t, "+380671234567", shop.Phone)
				assert.Equal(t, "shops/new-logo.png", shop.LogoImg)
				assert.Empty(t, shop.BackgroundImg)
				// Untouched delivery window survives the partial update.
				assert.Equal(t, entity.DeliveryTime{From: "09:00", To: "18:00", Type: "minutes"}, shop.DeliveryTime)
			}).
			Return(nil)

		galleryRepo.EXPECT().
			CreateBatch(ctx, mock.AnythingOfType("[]*entity.Gallery")).
			Return(nil)
	})

	fx.mediaStorage.EXPECT().Delete(ctx, "shops/old-logo.png").Return(nil)
	fx.mediaStorage.EXPECT().Delete(ctx, "shops/old-bg.png").Return(nil)

	fx.expectDefaultLanguage(ctx)
	fx.shopRepo.EXPECT().
		FindDetailed(ctx, uint64(42), repository.DetailOptions{Locales: []string{"en"}, WithSchedule: true}).
		Return(&entity.Shop{ID: 42, UUID: shopUUID}, nil)

	shop, err := fx.service.UpdateShop(ctx, "en", shopUUID, input)

	require.NoError(t, err)
	assert.Equal(t, uint64(42), shop.ID)
}

func TestShopService_UpdateShop_InHousePurgesInvitations(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	shopUUID := uuid.New()
	inHouse := entity.DeliveryTypeInHouse
	input := usecase.UpdateShopInput{DeliveryType: &inHouse}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		shopRepo := mockRepo.NewMockShopRepository(t)
		galleryRepo := mockRepo.NewMockGalleryRepository(t)
		invitationRepo := mockRepo.NewMockInvitationRepository(t)

		factory.EXPECT().ShopRepo().Return(shopRepo)
		factory.EXPECT().GalleryRepo().Return(galleryRepo)
		factory.EXPECT().InvitationRepo().Return(invitationRepo)

		shopRepo.EXPECT().
			FindByUUID(ctx, shopUUID).
			Return(&entity.Shop{ID: 42, UUID: shopUUID, DeliveryType: entity.DeliveryTypeExternal}, nil)

		shopRepo.EXPECT().
			Update(ctx, mock.AnythingOfType("*entity.Shop")).
			Return(nil)

		invitationRepo.EXPECT().
			DeleteByShop(ctx, uint64(42)).
			Return(nil)
	})

	fx.expectDefaultLanguage(ctx)
	fx.shopRepo.EXPECT().
		FindDetailed(ctx, uint64(42), repository.DetailOptions{Locales: []string{"en"}, WithSchedule: true}).
		Return(&entity.Shop{ID: 42, UUID: shopUUID}, nil)

	_, err := fx.service.UpdateShop(ctx, "en", shopUUID, input)

	require.NoError(t, err)
}

func TestShopService_UpdateShop_DeliveryWindowPartialMerge(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	shopUUID := uuid.New()
	from := "11:30"
	input := usecase.UpdateShopInput{
		DeliveryTime: entity.DeliveryTimePatch{From: &from},
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		shopRepo := mockRepo.NewMockShopRepository(t)
		galleryRepo := mockRepo.NewMockGalleryRepository(t)

		factory.EXPECT().ShopRepo().Return(shopRepo)
		factory.EXPECT().GalleryRepo().Return(galleryRepo)

		shopRepo.EXPECT().
			FindByUUID(ctx, shopUUID).
			Return(&entity.Shop{
				ID:           42,
				UUID:         shopUUID,
				DeliveryTime: entity.DeliveryTime{From: "09:00", To: "18:00", Type: "minutes"},
			}, nil)

		shopRepo.EXPECT().
			Update(ctx, mock.AnythingOfType("*entity.Shop")).
			Run(func(_ context.Context, shop *entity.Shop) {
				assert.Equal(t, entity.DeliveryTime{From: "11:30", To: "18:00", Type: "minutes"}, shop.DeliveryTime)
			}).
			Return(nil)
	})

	fx.expectDefaultLanguage(ctx)
	fx.shopRepo.EXPECT().
		FindDetailed(ctx, uint64(42), repository.DetailOptions{Locales: []string{"en"}, WithSchedule: true}).
		Return(&entity.Shop{ID: 42, UUID: shopUUID}, nil)

	_, err := fx.service.UpdateShop(ctx, "en", shopUUID, input)

	require.NoError(t, err)
}

func TestShopService_DeleteShops_Cascade(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	shopUUID := uuid.New()

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		shopRepo := mockRepo.NewMockShopRepository(t)
		userRepo := mockRepo.NewMockUserRepository(t)
		galleryRepo := mockRepo.NewMockGalleryRepository(t)
		orderRepo := mockRepo.NewMockOrderRepository(t)

		factory.EXPECT().ShopRepo().Return(shopRepo)
		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().GalleryRepo().Return(galleryRepo)
		factory.EXPECT().OrderRepo().Return(orderRepo)

		shopRepo.EXPECT().
			FindByID(ctx, uint64(5)).
			Return(&entity.Shop{ID: 5, UUID: shopUUID, SellerID: 7}, nil)

		galleryRepo.EXPECT().
			DeleteByShopExceptType(ctx, uint64(5), entity.GalleryTypeShopGallery).
			Return(nil)

		userRepo.EXPECT().
			FindByID(ctx, uint64(7)).
			Return(&entity.User{ID: 7, Roles: entity.Roles{entity.RoleUser, entity.RoleSeller}}, nil)

		userRepo.EXPECT().
			SyncRoles(ctx, uint64(7), entity.Roles{entity.RoleUser}).
			Return(nil)

		orderRepo.EXPECT().
			DeletePointHistoriesByShop(ctx, uint64(5)).
			Return(nil)

		shopRepo.EXPECT().
			SoftDelete(ctx, uint64(5)).
			Return(nil)
	})

	fx.eventPublisher.EXPECT().
		PublishShopEvent(ctx, mock.AnythingOfType("*service.ShopEvent")).
		Run(func(_ context.Context, event *service.ShopEvent) {
			assert.Equal(t, service.ShopEventDeleted, event.Type)
			assert.Equal(t, uint64(5), event.ShopID)
		}).
		Return(nil)

	err := fx.service.DeleteShops(ctx, []uint64{5})

	require.NoError(t, err)
}

func TestShopService_DeleteShops_AdminOwnerKeepsRoles(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		shopRepo := mockRepo.NewMockShopRepository(t)
		userRepo := mockRepo.NewMockUserRepository(t)
		galleryRepo := mockRepo.NewMockGalleryRepository(t)
		orderRepo := mockRepo.NewMockOrderRepository(t)

		factory.EXPECT().ShopRepo().Return(shopRepo)
		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().GalleryRepo().Return(galleryRepo)
		factory.EXPECT().OrderRepo().Return(orderRepo)

		shopRepo.EXPECT().
			FindByID(ctx, uint64(5)).
			Return(&entity.Shop{ID: 5, UUID: uuid.New(), SellerID: 9}, nil)

		galleryRepo.EXPECT().
			DeleteByShopExceptType(ctx, uint64(5), entity.GalleryTypeShopGallery).
			Return(nil)

		userRepo.EXPECT().
			FindByID(ctx, uint64(9)).
			Return(&entity.User{ID: 9, Roles: entity.Roles{entity.RoleAdmin}}, nil)

		// No SyncRoles call: administrators are never demoted.

		orderRepo.EXPECT().
			DeletePointHistoriesByShop(ctx, uint64(5)).
			Return(nil)

		shopRepo.EXPECT().
			SoftDelete(ctx, uint64(5)).
			Return(nil)
	})

	fx.eventPublisher.EXPECT().
		PublishShopEvent(ctx, mock.AnythingOfType("*service.ShopEvent")).
		Return(nil)

	err := fx.service.DeleteShops(ctx, []uint64{5})

	require.NoError(t, err)
}

func TestShopService_DeleteShops_MissingShopSkipped(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		shopRepo := mockRepo.NewMockShopRepository(t)
		factory.EXPECT().ShopRepo().Return(shopRepo)

		shopRepo.EXPECT().
			FindByID(ctx, uint64(99)).
			Return(nil, repository.ErrShopNotFound)
	})

	err := fx.service.DeleteShops(ctx, []uint64{99})

	require.NoError(t, err)
}

func TestShopService_ToggleVerify_ByUUID(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	shopUUID := uuid.New()
	shop := &entity.Shop{ID: 42, UUID: shopUUID, SellerID: 7, Verify: false}

	fx.shopRepo.EXPECT().
		FindByUUID(ctx, shopUUID).
		Return(shop, nil)

	fx.shopRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Shop")).
		Return(nil)

	fx.eventPublisher.EXPECT().
		PublishShopEvent(ctx, mock.AnythingOfType("*service.ShopEvent")).
		Run(func(_ context.Context, event *service.ShopEvent) {
			assert.Equal(t, service.ShopEventVerifyToggle, event.Type)
			assert.True(t, event.Verified)
		}).
		Return(nil)

	updated, err := fx.service.ToggleVerify(ctx, shopUUID.String())

	require.NoError(t, err)
	assert.True(t, updated.Verify)
}

func TestShopService_ToggleVerify_NumericFallback(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	shop := &entity.Shop{ID: 123, UUID: uuid.New(), Verify: true}

	fx.shopRepo.EXPECT().
		FindByID(ctx, uint64(123)).
		Return(shop, nil)

	fx.shopRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Shop")).
		Return(nil)

	fx.eventPublisher.EXPECT().
		PublishShopEvent(ctx, mock.AnythingOfType("*service.ShopEvent")).
		Return(nil)

	updated, err := fx.service.ToggleVerify(ctx, "123")

	require.NoError(t, err)
	assert.False(t, updated.Verify)
}

func TestShopService_GetShop_Success(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	shopUUID := uuid.New()

	fx.shopRepo.EXPECT().
		FindByUUID(ctx, shopUUID).
		Return(&entity.Shop{ID: 42, UUID: shopUUID}, nil)

	fx.expectDefaultLanguage(ctx)

	detailed := &entity.Shop{ID: 42, UUID: shopUUID}
	fx.shopRepo.EXPECT().
		FindDetailed(ctx, uint64(42), repository.DetailOptions{Locales: []string{"uk", "en"}}).
		Return(detailed, nil)

	shop, err := fx.service.GetShop(ctx, "uk", shopUUID)

	require.NoError(t, err)
	assert.Equal(t, detailed, shop)
}

func TestShopService_GetShop_LanguageLookupFallsBackToConfig(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	shopUUID := uuid.New()

	fx.shopRepo.EXPECT().
		FindByUUID(ctx, shopUUID).
		Return(&entity.Shop{ID: 42, UUID: shopUUID}, nil)

	fx.languageRepo.EXPECT().
		FindDefault(ctx).
		Return(nil, repository.ErrLanguageNotFound)

	fx.shopRepo.EXPECT().
		FindDetailed(ctx, uint64(42), repository.DetailOptions{Locales: []string{"fr", "en"}}).
		Return(&entity.Shop{ID: 42, UUID: shopUUID}, nil)

	_, err := fx.service.GetShop(ctx, "fr", shopUUID)

	require.NoError(t, err)
}

func TestShopService_StorefrontQR_Success(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	shopUUID := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.shopRepo.EXPECT().
		FindByUUID(ctx, shopUUID).
		Return(&entity.Shop{ID: 42, UUID: shopUUID}, nil)

	fx.qrService.EXPECT().
		GenerateStorefrontQR(shopUUID).
		Return(png, nil)

	qrCode, err := fx.service.StorefrontQR(ctx, shopUUID)

	require.NoError(t, err)
	assert.Equal(t, png, qrCode)
}
