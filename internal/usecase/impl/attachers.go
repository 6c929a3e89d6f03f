package impl

import (
	"context"
	"maps"
	"path"
	"slices"

	"market/internal/domain/entity"
	"market/internal/domain/repository"
	"market/internal/usecase"

	"github.com/pkg/errors"
)

// attachTranslations upserts one translation row per locale present in the
// input. Locales missing from the input keep their stored rows; present
// locales are overwritten wholesale. A no-op on an empty input.
func attachTranslations(ctx context.Context, shopRepo repository.ShopRepository, shopID uint64, inputs map[string]usecase.ShopTranslationInput) error {
	if len(inputs) == 0 {
		return nil
	}

	translations := make([]*entity.ShopTranslation, 0, len(inputs))
	for _, locale := range slices.Sorted(maps.Keys(inputs)) {
		input := inputs[locale]
		translations = append(translations, &entity.ShopTranslation{
			ShopID:      shopID,
			Locale:      locale,
			Title:       input.Title,
			Description: input.Description,
			Address:     input.Address,
		})
	}

	if err := shopRepo.UpsertTranslations(ctx, shopID, translations); err != nil {
		return errors.Wrap(err, "failed to upsert shop translations")
	}

	return nil
}

// attachGalleries records one gallery entry per file reference under the
// given category. File contents are stored elsewhere; only the reference is
// attached here. A no-op on an empty input.
func attachGalleries(ctx context.Context, galleryRepo repository.GalleryRepository, shopID uint64, paths []string, galleryType entity.GalleryType) error {
	if len(paths) == 0 {
		return nil
	}

	entries := make([]*entity.Gallery, 0, len(paths))
	for _, filePath := range paths {
		entries = append(entries, &entity.Gallery{
			ShopID: shopID,
			Title:  path.Base(filePath),
			Path:   filePath,
			Type:   galleryType,
		})
	}

	if err := galleryRepo.CreateBatch(ctx, entries); err != nil {
		return errors.Wrap(err, "failed to attach gallery entries")
	}

	return nil
}
