// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strconv"

	"market/config"
	deliverycontext "market/internal/delivery/context"
	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/domain/service"
	"market/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// shopService implements the ShopUsecase interface.
type shopService struct {
	txManager      repository.TransactionManager
	shopRepo       repository.ShopRepository
	languageRepo   repository.LanguageRepository
	qrcodeService  service.QRCodeService
	mediaStorage   service.MediaStorage
	eventPublisher service.EventPublisher
	config         *config.Config
	logger         *slog.Logger
}

// ShopServiceParams holds dependencies for shopService, injected by Fx.
type ShopServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	ShopRepo       repository.ShopRepository
	LanguageRepo   repository.LanguageRepository
	QRCodeService  service.QRCodeService
	MediaStorage   service.MediaStorage
	EventPublisher service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewShopService is the constructor for shopService.
func NewShopService(params ShopServiceParams) usecase.ShopUsecase {
	return &shopService{
		txManager:      params.TxManager,
		shopRepo:       params.ShopRepo,
		languageRepo:   params.LanguageRepo,
		qrcodeService:  params.QRCodeService,
		mediaStorage:   params.MediaStorage,
		eventPublisher: params.EventPublisher,
		config:         params.Config,
		logger:         params.Logger,
	}
}

// CreateShop creates a new shop for a seller. All writes happen inside one
// transaction: the shop row, translations, gallery entries, tag associations
// and the seller-role grant commit together or not at all.
func (srv *shopService) CreateShop(ctx context.Context, locale string, input usecase.CreateShopInput) (*entity.Shop, error) {
	srv.logger.Info("Creating shop", "sellerID", input.SellerID)

	if input.SellerID == 0 {
		return nil, domainerrors.ErrUserNotFound.WrapMessage("seller id is required")
	}

	var shopID uint64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shopRepo := repoFactory.ShopRepo()
		userRepo := repoFactory.UserRepo()

		// 1. Resolve the seller with roles.
		seller, err := userRepo.FindByID(ctx, input.SellerID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "seller not found")
			}

			return errors.Wrap(err, "failed to find seller")
		}

		// 2. An administrator cannot simultaneously own a shop.
		if seller.IsAdmin() {
			return errors.Wrap(domainerrors.ErrShopOwnerIsAdmin, "seller holds the administrator role")
		}

		// 3. At most one shop per seller.
		if _, err := shopRepo.FindBySeller(ctx, seller.ID); err == nil {
			return errors.Wrap(domainerrors.ErrShopAlreadyExists, "seller already owns a shop")
		} else if !errors.Is(err, repository.ErrShopNotFound) {
			return errors.Wrap(err, "failed to check for existing shop")
		}

		// 4. Build and persist the shop row.
		shop := &entity.Shop{
			UUID:         uuid.New(),
			SellerID:     seller.ID,
			Type:         entity.ShopTypeShop,
			Phone:        input.Phone,
			MinAmount:    input.MinAmount,
			Tax:          input.Tax,
			Percent:      input.Percent,
			DeliveryType: input.DeliveryType,
			DeliveryTime: entity.DeliveryTime{}.Merge(input.DeliveryTime),
		}
		if len(input.Images) > 0 {
			shop.LogoImg = input.Images[0]
			if len(input.Images) > 1 {
				shop.BackgroundImg = input.Images[1]
			}
		}

		if err := shopRepo.Create(ctx, shop); err != nil {
			return errors.Wrap(err, "failed to create shop")
		}

		// 5. Attach translations, media and tags.
		if err := attachTranslations(ctx, shopRepo, shop.ID, input.Translations); err != nil {
			return err
		}
		if err := attachGalleries(ctx, repoFactory.GalleryRepo(), shop.ID, input.Images, entity.GalleryTypeShopImages); err != nil {
			return err
		}
		if err := attachGalleries(ctx, repoFactory.GalleryRepo(), shop.ID, input.Documents, entity.GalleryTypeShopDocuments); err != nil {
			return err
		}
		if len(input.Tags) > 0 {
			if err := repoFactory.TagRepo().SyncShopTags(ctx, shop.ID, input.Tags); err != nil {
				return errors.Wrap(err, "failed to sync shop tags")
			}
		}

		// 6. Owning a shop grants the seller role.
		if !seller.Roles.Contains(entity.RoleSeller) {
			roles := append(entity.Roles{}, seller.Roles...)
			roles = append(roles, entity.RoleSeller)
			if err := userRepo.SyncRoles(ctx, seller.ID, roles); err != nil {
				return errors.Wrap(err, "failed to grant the seller role")
			}
		}

		shopID = shop.ID

		return nil
	})

	if err != nil {
		srv.logger.Error("failed to create shop", "sellerID", input.SellerID, "error", err)

		return nil, errors.Wrap(err, "failed to create shop")
	}

	detailed, err := srv.loadDetailed(ctx, shopID, locale, false)
	if err != nil {
		return nil, err
	}

	srv.publishEvent(ctx, &service.ShopEvent{
		Type:     service.ShopEventCreated,
		ShopID:   detailed.ID,
		ShopUUID: detailed.UUID.String(),
		SellerID: detailed.SellerID,
	})

	return detailed, nil
}

// UpdateShop applies a partial update to a shop. The whole update runs in a
// single transaction so a failure partway through leaves nothing applied.
func (srv *shopService) UpdateShop(ctx context.Context, locale string, shopUUID uuid.UUID, input usecase.UpdateShopInput) (*entity.Shop, error) {
	srv.logger.Info("Updating shop", "shopUUID", shopUUID)

	var (
		shopID       uint64
		removedPaths []string
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shopRepo := repoFactory.ShopRepo()

		// Ownership is folded into the lookup: seller-scoped callers can
		// only ever see their own shop.
		var (
			shop *entity.Shop
			err  error
		)
		if input.SellerID != nil {
			shop, err = shopRepo.FindByUUIDForSeller(ctx, shopUUID, *input.SellerID)
		} else {
			shop, err = shopRepo.FindByUUID(ctx, shopUUID)
		}
		if err != nil {
			if errors.Is(err, repository.ErrShopNotFound) {
				return errors.Wrap(domainerrors.ErrShopNotFound, "shop not found")
			}

			return errors.Wrap(err, "failed to find shop")
		}

		// Merge the delivery window before applying scalar fields: unset
		// sub-fields must survive the partial update.
		shop.DeliveryTime = shop.DeliveryTime.Merge(input.DeliveryTime)
		applyShopPatch(shop, input)

		// New images supersede every previous gallery entry.
		if len(input.Images) > 0 {
			paths, err := repoFactory.GalleryRepo().DeleteByShop(ctx, shop.ID)
			if err != nil {
				return errors.Wrap(err, "failed to delete previous gallery entries")
			}
			removedPaths = paths

			shop.LogoImg = input.Images[0]
			shop.BackgroundImg = ""
			if len(input.Images) > 1 {
				shop.BackgroundImg = input.Images[1]
			}
		}

		if err := shopRepo.Update(ctx, shop); err != nil {
			return errors.Wrap(err, "failed to update shop")
		}

		// In-house delivery makes pending deliveryman invitations moot.
		if shop.DeliveryType == entity.DeliveryTypeInHouse {
			if err := repoFactory.InvitationRepo().DeleteByShop(ctx, shop.ID); err != nil {
				return errors.Wrap(err, "failed to purge deliveryman invitations")
			}
		}

		if err := attachTranslations(ctx, shopRepo, shop.ID, input.Translations); err != nil {
			return err
		}
		if err := attachGalleries(ctx, repoFactory.GalleryRepo(), shop.ID, input.Images, entity.GalleryTypeShopImages); err != nil {
			return err
		}
		if err := attachGalleries(ctx, repoFactory.GalleryRepo(), shop.ID, input.Documents, entity.GalleryTypeShopDocuments); err != nil {
			return err
		}
		if len(input.Tags) > 0 {
			if err := repoFactory.TagRepo().SyncShopTags(ctx, shop.ID, input.Tags); err != nil {
				return errors.Wrap(err, "failed to sync shop tags")
			}
		}

		shopID = shop.ID

		return nil
	})

	if err != nil {
		srv.logger.Error("failed to update shop", "shopUUID", shopUUID, "error", err)

		return nil, errors.Wrap(err, "failed to update shop")
	}

	// Superseded files are removed only after the transaction committed.
	for _, path := range removedPaths {
		if err := srv.mediaStorage.Delete(ctx, path); err != nil {
			srv.logger.Warn("failed to delete superseded media file", "path", path, "error", err)
		}
	}

	return srv.loadDetailed(ctx, shopID, locale, true)
}

// DeleteShops soft-deletes the given shops. Each shop's cascade (galleries,
// seller demotion, order point histories, the shop row itself) runs in its
// own transaction; there is no atomicity across the batch and the batch
// always reports success, matching the original behavior. Failures are
// logged per shop.
func (srv *shopService) DeleteShops(ctx context.Context, ids []uint64) error {
	srv.logger.Info("Deleting shops", "count", len(ids))

	for _, id := range ids {
		var event *service.ShopEvent

		err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			shopRepo := repoFactory.ShopRepo()

			shop, err := shopRepo.FindByID(ctx, id)
			if err != nil {
				if errors.Is(err, repository.ErrShopNotFound) {
					// Unmatched ids are skipped silently.
					return nil
				}

				return errors.Wrap(err, "failed to find shop")
			}

			// Primary gallery entries are preserved for audit/display.
			if err := repoFactory.GalleryRepo().DeleteByShopExceptType(ctx, shop.ID, entity.GalleryTypeShopGallery); err != nil {
				return errors.Wrap(err, "failed to delete gallery entries")
			}

			// Losing the shop demotes the owner back to a plain user,
			// unless the owner is an administrator.
			seller, err := repoFactory.UserRepo().FindByID(ctx, shop.SellerID)
			if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(err, "failed to find seller")
			}
			if seller != nil && !seller.IsAdmin() {
				if err := repoFactory.UserRepo().SyncRoles(ctx, seller.ID, entity.Roles{entity.RoleUser}); err != nil {
					return errors.Wrap(err, "failed to demote seller")
				}
			}

			if err := repoFactory.OrderRepo().DeletePointHistoriesByShop(ctx, shop.ID); err != nil {
				return errors.Wrap(err, "failed to delete order point histories")
			}

			if err := shopRepo.SoftDelete(ctx, shop.ID); err != nil {
				return errors.Wrap(err, "failed to soft delete shop")
			}

			event = &service.ShopEvent{
				Type:     service.ShopEventDeleted,
				ShopID:   shop.ID,
				ShopUUID: shop.UUID.String(),
				SellerID: shop.SellerID,
			}

			return nil
		})

		if err != nil {
			srv.logger.Error("shop delete cascade failed", "shopID", id, "error", err)

			continue
		}

		if event != nil {
			srv.publishEvent(ctx, event)
		}
	}

	return nil
}

// ToggleVerify flips the verification flag of the shop identified by a UUID
// or a numeric id. The UUID lookup is attempted first; a numeric-looking
// input falls back to a primary-key lookup.
func (srv *shopService) ToggleVerify(ctx context.Context, idOrUUID string) (*entity.Shop, error) {
	srv.logger.Info("Toggling shop verification", "id", idOrUUID)

	shop, err := srv.findByAnyID(ctx, idOrUUID)
	if err != nil {
		return nil, err
	}

	shop.Verify = !shop.Verify
	if err := srv.shopRepo.Update(ctx, shop); err != nil {
		return nil, errors.Wrap(err, "failed to update shop verification")
	}

	srv.publishEvent(ctx, &service.ShopEvent{
		Type:     service.ShopEventVerifyToggle,
		ShopID:   shop.ID,
		ShopUUID: shop.UUID.String(),
		SellerID: shop.SellerID,
		Verified: shop.Verify,
	})

	return shop, nil
}

// GetShop retrieves a shop with the same eager-loaded shape as CreateShop.
func (srv *shopService) GetShop(ctx context.Context, locale string, shopUUID uuid.UUID) (*entity.Shop, error) {
	shop, err := srv.shopRepo.FindByUUID(ctx, shopUUID)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, errors.Wrap(domainerrors.ErrShopNotFound, "shop not found")
		}

		return nil, errors.Wrap(err, "failed to find shop")
	}

	return srv.loadDetailed(ctx, shop.ID, locale, false)
}

// StorefrontQR renders a QR code linking to the shop's storefront.
func (srv *shopService) StorefrontQR(ctx context.Context, shopUUID uuid.UUID) ([]byte, error) {
	if _, err := srv.shopRepo.FindByUUID(ctx, shopUUID); err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, errors.Wrap(domainerrors.ErrShopNotFound, "shop not found")
		}

		return nil, errors.Wrap(err, "failed to find shop")
	}

	qrCode, err := srv.qrcodeService.GenerateStorefrontQR(shopUUID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate storefront QR")
	}

	return qrCode, nil
}

// findByAnyID looks the shop up by UUID first, then falls back to a numeric
// primary-key lookup when the input parses as an integer.
func (srv *shopService) findByAnyID(ctx context.Context, idOrUUID string) (*entity.Shop, error) {
	if parsed, err := uuid.Parse(idOrUUID); err == nil {
		shop, err := srv.shopRepo.FindByUUID(ctx, parsed)
		if err == nil {
			return shop, nil
		}
		if !errors.Is(err, repository.ErrShopNotFound) {
			return nil, errors.Wrap(err, "failed to find shop by uuid")
		}
	}

	if id, err := strconv.ParseUint(idOrUUID, 10, 64); err == nil {
		shop, err := srv.shopRepo.FindByID(ctx, id)
		if err == nil {
			return shop, nil
		}
		if !errors.Is(err, repository.ErrShopNotFound) {
			return nil, errors.Wrap(err, "failed to find shop by id")
		}
	}

	return nil, errors.Wrap(domainerrors.ErrShopNotFound, "shop not found by uuid or id")
}

// loadDetailed reloads a shop with its eager-loaded relation graph, widening
// translation loading to (caller locale ∪ system default locale).
func (srv *shopService) loadDetailed(ctx context.Context, shopID uint64, locale string, withSchedule bool) (*entity.Shop, error) {
	shop, err := srv.shopRepo.FindDetailed(ctx, shopID, repository.DetailOptions{
		Locales:      srv.resolveLocales(ctx, locale),
		WithSchedule: withSchedule,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load shop details")
	}

	return shop, nil
}

// resolveLocales returns the caller locale widened with the system default
// locale. The configured fallback covers an unreachable language table.
func (srv *shopService) resolveLocales(ctx context.Context, locale string) []string {
	defaultLocale := srv.config.Shop.DefaultLocale
	if language, err := srv.languageRepo.FindDefault(ctx); err == nil {
		defaultLocale = language.Locale
	} else {
		srv.logger.Warn("failed to resolve default language, using configured fallback", "error", err)
	}

	locales := make([]string, 0, 2)
	if locale != "" {
		locales = append(locales, locale)
	}
	if defaultLocale != "" && defaultLocale != locale {
		locales = append(locales, defaultLocale)
	}

	return locales
}

// applyShopPatch copies the present scalar fields of the patch onto the shop.
func applyShopPatch(shop *entity.Shop, input usecase.UpdateShopInput) {
	if input.Phone != nil {
		shop.Phone = *input.Phone
	}
	if input.Open != nil {
		shop.Open = *input.Open
	}
	if input.Visibility != nil {
		shop.Visibility = *input.Visibility
	}
	if input.MinAmount != nil {
		shop.MinAmount = *input.MinAmount
	}
	if input.Tax != nil {
		shop.Tax = *input.Tax
	}
	if input.Percent != nil {
		shop.Percent = *input.Percent
	}
	if input.DeliveryType != nil {
		shop.DeliveryType = *input.DeliveryType
	}
}

// publishEvent publishes a lifecycle event best-effort: event delivery never
// fails the operation that produced it.
func (srv *shopService) publishEvent(ctx context.Context, event *service.ShopEvent) {
	if event.RequestID == "" {
		event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	}

	if err := srv.eventPublisher.PublishShopEvent(ctx, event); err != nil {
		srv.logger.Warn("failed to publish shop event", "type", event.Type, "shopID", event.ShopID, "error", err)
	}
}
