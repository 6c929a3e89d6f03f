package main

import (
	"market/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.ShopModel{},
		model.ShopTranslationModel{},
		model.ShopSubscriptionModel{},
		model.ShopWorkingDayModel{},
		model.ShopClosedDateModel{},
		model.UserModel{},
		model.RoleModel{},
		model.TagModel{},
		model.TagTranslationModel{},
		model.GalleryModel{},
		model.InvitationModel{},
		model.OrderModel{},
		model.PointHistoryModel{},
		model.LanguageModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
