// Package handler contains the echo handlers of the HTTP delivery.
package handler

import (
	"net/http"
	"strings"
	"time"

	"market/internal/delivery/http/middleware"
	"market/internal/delivery/http/response"
	"market/internal/domain/entity"
	"market/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ShopHandler exposes the shop lifecycle operations over HTTP.
type ShopHandler struct {
	shopUsecase usecase.ShopUsecase
}

// NewShopHandler is the constructor for ShopHandler.
func NewShopHandler(shopUsecase usecase.ShopUsecase) *ShopHandler {
	return &ShopHandler{shopUsecase: shopUsecase}
}

// --- Request DTOs ---

type shopTranslationRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Address     string `json:"address"`
}

type deliveryTimeRequest struct {
	From *string `json:"from"`
	To   *string `json:"to"`
	Type *string `json:"type"`
}

type createShopRequest struct {
	SellerID     uint64                            `json:"seller_id" validate:"required"`
	Phone        string                            `json:"phone"`
	MinAmount    float64                           `json:"min_amount" validate:"gte=0"`
	Tax          float64                           `json:"tax" validate:"gte=0"`
	Percent      float64                           `json:"percent" validate:"gte=0"`
	DeliveryType string                            `json:"delivery_type" validate:"omitempty,oneof=in_house external pickup"`
	DeliveryTime deliveryTimeRequest               `json:"delivery_time"`
	Translations map[string]shopTranslationRequest `json:"translations" validate:"dive"`
	Images       []string                          `json:"images"`
	Documents    []string                          `json:"documents"`
	Tags         []uint64                          `json:"tags"`
}

type updateShopRequest struct {
	Phone        *string                           `json:"phone"`
	Open         *bool                             `json:"open"`
	Visibility   *bool                             `json:"visibility"`
	MinAmount    *float64                          `json:"min_amount" validate:"omitempty,gte=0"`
	Tax          *float64                          `json:"tax" validate:"omitempty,gte=0"`
	Percent      *float64                          `json:"percent" validate:"omitempty,gte=0"`
	DeliveryType *string                           `json:"delivery_type" validate:"omitempty,oneof=in_house external pickup"`
	DeliveryTime deliveryTimeRequest               `json:"delivery_time"`
	Translations map[string]shopTranslationRequest `json:"translations" validate:"dive"`
	Images       []string                          `json:"images"`
	Documents    []string                          `json:"documents"`
	Tags         []uint64                          `json:"tags"`
}

type deleteShopsRequest struct {
	IDs []uint64 `json:"ids" validate:"required,min=1,dive,required"`
}

// --- Response DTOs ---

type shopTranslationResponse struct {
	Locale      string `json:"locale"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Address     string `json:"address"`
}

type tagResponse struct {
	ID    uint64 `json:"id"`
	Title string `json:"title"`
}

type galleryResponse struct {
	ID    uint64 `json:"id"`
	Title string `json:"title"`
	Path  string `json:"path"`
	Type  string `json:"type"`
}

type subscriptionResponse struct {
	Active    bool      `json:"active"`
	ExpiredAt time.Time `json:"expired_at"`
}

type workingDayResponse struct {
	Day      string `json:"day"`
	From     string `json:"from"`
	To       string `json:"to"`
	Disabled bool   `json:"disabled"`
}

type deliveryTimeResponse struct {
	From string `json:"from"`
	To   string `json:"to"`
	Type string `json:"type"`
}

type shopResponse struct {
	ID            uint64                    `json:"id"`
	UUID          string                    `json:"uuid"`
	SellerID      uint64                    `json:"seller_id"`
	LogoImg       string                    `json:"logo_img"`
	BackgroundImg string                    `json:"background_img"`
	Phone         string                    `json:"phone"`
	Open          bool                      `json:"open"`
	Visibility    bool                      `json:"visibility"`
	Verify        bool                      `json:"verify"`
	MinAmount     float64                   `json:"min_amount"`
	Tax           float64                   `json:"tax"`
	Percent       float64                   `json:"percent"`
	DeliveryType  string                    `json:"delivery_type"`
	DeliveryTime  deliveryTimeResponse      `json:"delivery_time"`
	Translations  []shopTranslationResponse `json:"translations"`
	Tags          []tagResponse             `json:"tags"`
	Galleries     []galleryResponse         `json:"galleries"`
	Subscription  *subscriptionResponse     `json:"subscription,omitempty"`
	WorkingDays   []workingDayResponse      `json:"working_days,omitempty"`
	ClosedDates   []string                  `json:"closed_dates,omitempty"`
	CreatedAt     time.Time                 `json:"created_at"`
	UpdatedAt     time.Time                 `json:"updated_at"`
}

func toShopResponse(shop *entity.Shop) *shopResponse {
	resp := &shopResponse{
		ID:            shop.ID,
		UUID:          shop.UUID.String(),
		SellerID:      shop.SellerID,
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
		DeliveryTime: deliveryTimeResponse{
			From: shop.DeliveryTime.From,
			To:   shop.DeliveryTime.To,
			Type: shop.DeliveryTime.Type,
		},
		Translations: make([]shopTranslationResponse, 0, len(shop.Translations)),
		Tags:         make([]tagResponse, 0, len(shop.Tags)),
		Galleries:    make([]galleryResponse, 0, len(shop.Galleries)),
		CreatedAt:    shop.CreatedAt,
		UpdatedAt:    shop.UpdatedAt,
	}

	for _, translation := range shop.Translations {
		resp.Translations = append(resp.Translations, shopTranslationResponse{
			Locale:      translation.Locale,
			Title:       translation.Title,
			Description: translation.Description,
			Address:     translation.Address,
		})
	}

	for _, tag := range shop.Tags {
		item := tagResponse{ID: tag.ID}
		if len(tag.Translations) > 0 {
			item.Title = tag.Translations[0].Title
		}
		resp.Tags = append(resp.Tags, item)
	}

	for _, gallery := range shop.Galleries {
		resp.Galleries = append(resp.Galleries, galleryResponse{
			ID:    gallery.ID,
			Title: gallery.Title,
			Path:  gallery.Path,
			Type:  gallery.Type.String(),
		})
	}

	if shop.Subscription != nil {
		resp.Subscription = &subscriptionResponse{
			Active:    shop.Subscription.Active,
			ExpiredAt: shop.Subscription.ExpiredAt,
		}
	}

	for _, day := range shop.WorkingDays {
		resp.WorkingDays = append(resp.WorkingDays, workingDayResponse{
			Day:      day.Day,
			From:     day.From,
			To:       day.To,
			Disabled: day.Disabled,
		})
	}

	for _, closed := range shop.ClosedDates {
		resp.ClosedDates = append(resp.ClosedDates, closed.Day.Format(time.DateOnly))
	}

	return resp
}

// requestLocale resolves the caller locale from the query string or the
// Accept-Language header. Empty means "use the marketplace default".
func requestLocale(c echo.Context) string {
	if locale := c.QueryParam("locale"); locale != "" {
		return locale
	}

	header := c.Request().Header.Get("Accept-Language")
	if header == "" {
		return ""
	}

	locale, _, _ := strings.Cut(header, ",")
	locale, _, _ = strings.Cut(locale, ";")

	return strings.TrimSpace(locale)
}

func shopUUIDParam(c echo.Context) (uuid.UUID, bool) {
	shopUUID, err := uuid.Parse(c.Param("uuid"))

	return shopUUID, err == nil
}

func translationInputs(reqs map[string]shopTranslationRequest) map[string]usecase.ShopTranslationInput {
	if len(reqs) == 0 {
		return nil
	}

	inputs := make(map[string]usecase.ShopTranslationInput, len(reqs))
	for locale, translation := range reqs {
		inputs[locale] = usecase.ShopTranslationInput{
			Title:       translation.Title,
			Description: translation.Description,
			Address:     translation.Address,
		}
	}

	return inputs
}

// CreateShop handles POST /admin/shops.
func (h *ShopHandler) CreateShop(c echo.Context) error {
	var req createShopRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", err.Error())
	}

	input := usecase.CreateShopInput{
		SellerID:     req.SellerID,
		Phone:        req.Phone,
		MinAmount:    req.MinAmount,
		Tax:          req.Tax,
		Percent:      req.Percent,
		DeliveryType: entity.DeliveryType(req.DeliveryType),
		DeliveryTime: entity.DeliveryTimePatch{
			From: req.DeliveryTime.From,
			To:   req.DeliveryTime.To,
			Type: req.DeliveryTime.Type,
		},
		Translations: translationInputs(req.Translations),
		Images:       req.Images,
		Documents:    req.Documents,
		Tags:         req.Tags,
	}

	shop, err := h.shopUsecase.CreateShop(c.Request().Context(), requestLocale(c), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toShopResponse(shop), "Shop created successfully")
}

// UpdateShop handles PUT /admin/shops/:uuid. Admin callers may update any shop.
func (h *ShopHandler) UpdateShop(c echo.Context) error {
	return h.updateShop(c, nil)
}

// UpdateMyShop handles PUT /seller/shop/:uuid. The lookup is scoped to the
// authenticated seller, so foreign shops come back as not found.
func (h *ShopHandler) UpdateMyShop(c echo.Context) error {
	sellerID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
	}

	return h.updateShop(c, &sellerID)
}

func (h *ShopHandler) updateShop(c echo.Context, sellerID *uint64) error {
	shopUUID, ok := shopUUIDParam(c)
	if !ok {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shop UUID")
	}

	var req updateShopRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", err.Error())
	}

	input := usecase.UpdateShopInput{
		SellerID:   sellerID,
		Phone:      req.Phone,
		Open:       req.Open,
		Visibility: req.Visibility,
		MinAmount:  req.MinAmount,
		Tax:        req.Tax,
		Percent:    req.Percent,
		DeliveryTime: entity.DeliveryTimePatch{
			From: req.DeliveryTime.From,
			To:   req.DeliveryTime.To,
			Type: req.DeliveryTime.Type,
		},
		Translations: translationInputs(req.Translations),
		Images:       req.Images,
		Documents:    req.Documents,
		Tags:         req.Tags,
	}
	if req.DeliveryType != nil {
		deliveryType := entity.DeliveryType(*req.DeliveryType)
		input.DeliveryType = &deliveryType
	}

	shop, err := h.shopUsecase.UpdateShop(c.Request().Context(), requestLocale(c), shopUUID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toShopResponse(shop), "Shop updated successfully")
}

// DeleteShops handles DELETE /admin/shops. The batch reports success even
// when individual cascades fail; those are logged server-side.
func (h *ShopHandler) DeleteShops(c echo.Context) error {
	var req deleteShopsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", err.Error())
	}

	if err := h.shopUsecase.DeleteShops(c.Request().Context(), req.IDs); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Shops deleted successfully")
}

// ToggleVerify handles PUT /admin/shops/:id/verify. The path segment accepts
// either the shop UUID or its numeric id.
func (h *ShopHandler) ToggleVerify(c echo.Context) error {
	shop, err := h.shopUsecase.ToggleVerify(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toShopResponse(shop), "Shop verification toggled")
}

// GetShop handles GET /shops/:uuid.
func (h *ShopHandler) GetShop(c echo.Context) error {
	shopUUID, ok := shopUUIDParam(c)
	if !ok {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shop UUID")
	}

	shop, err := h.shopUsecase.GetShop(c.Request().Context(), requestLocale(c), shopUUID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toShopResponse(shop), "")
}

// StorefrontQR handles GET /shops/:uuid/qr and streams a PNG.
func (h *ShopHandler) StorefrontQR(c echo.Context) error {
	shopUUID, ok := shopUUIDParam(c)
	if !ok {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shop UUID")
	}

	png, err := h.shopUsecase.StorefrontQR(c.Request().Context(), shopUUID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
