package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"market/internal/delivery/http/middleware"
	"market/internal/delivery/http/validator"
	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	mockusecase "market/internal/mocks/usecase"
	"market/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool           `json:"success"`
	Code    int            `json:"code"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var resp envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return resp
}

func testShop(shopUUID uuid.UUID) *entity.Shop {
	return &entity.Shop{
		ID:       42,
		UUID:     shopUUID,
		SellerID: 7,
		Phone:    "+380501234567",
		Open:     true,
		DeliveryTime: entity.DeliveryTime{
			From: "09:00",
			To:   "18:00",
			Type: "minutes",
		},
		Translations: []*entity.ShopTranslation{
			{Locale: "en", Title: "Corner Store"},
		},
	}
}

func TestShopHandler_GetShop_Success(t *testing.T) {
	e := newTestEcho()
	shopUsecase := mockusecase.NewMockShopUsecase(t)
	h := NewShopHandler(shopUsecase)
	shopUUID := uuid.New()

	shopUsecase.EXPECT().
		GetShop(mock.Anything, "uk", shopUUID).
		Return(testShop(shopUUID), nil)

	req := httptest.NewRequest(http.MethodGet, "/shops/"+shopUUID.String()+"?locale=uk", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("uuid")
	c.SetParamValues(shopUUID.String())

	require.NoError(t, h.GetShop(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, shopUUID.String(), resp.Data["uuid"])
	assert.Equal(t, float64(42), resp.Data["id"])
}

func TestShopHandler_GetShop_AcceptLanguageFallback(t *testing.T) {
	e := newTestEcho()
	shopUsecase := mockusecase.NewMockShopUsecase(t)
	h := NewShopHandler(shopUsecase)
	shopUUID := uuid.New()

	shopUsecase.EXPECT().
		GetShop(mock.Anything, "uk", shopUUID).
		Return(testShop(shopUUID), nil)

	req := httptest.NewRequest(http.MethodGet, "/shops/"+shopUUID.String(), nil)
	req.Header.Set("Accept-Language", "uk;q=0.9, en;q=0.8")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("uuid")
	c.SetParamValues(shopUUID.String())

	require.NoError(t, h.GetShop(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestShopHandler_GetShop_InvalidUUID(t *testing.T) {
	e := newTestEcho()
	shopUsecase := mockusecase.NewMockShopUsecase(t)
	h := NewShopHandler(shopUsecase)

	req := httptest.NewRequest(http.MethodGet, "/shops/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("uuid")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.GetShop(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "INVALID_INPUT", resp.Error.Code)
}

func TestShopHandler_CreateShop_Success(t *testing.T) {
	e := newTestEcho()
	shopUsecase := mockusecase.NewMockShopUsecase(t)
	h := NewShopHandler(shopUsecase)
	shopUUID := uuid.New()

	var captured usecase.CreateShopInput
	shopUsecase.EXPECT().
		CreateShop(mock.Anything, "en", mock.AnythingOfType("usecase.CreateShopInput")).
		Run(func(_ context.Context, _ string, input usecase.CreateShopInput) {
			captured = input
		}).
		Return(testShop(shopUUID), nil)

	body := `{
		"seller_id": 7,
		"phone": "+380501234567",
		"min_amount": 100,
		"delivery_type": "in_house",
		"delivery_time": {"from": "09:00", "to": "18:00", "type": "minutes"},
		"translations": {"en": {"title": "Corner Store"}},
		"images": ["shops/logo.png", "shops/background.png"],
		"tags": [1, 2]
	}`
	req := httptest.NewRequest(http.MethodPost, "/admin/shops?locale=en", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.CreateShop(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.True(t, resp.Success)

	assert.Equal(t, uint64(7), captured.SellerID)
	assert.Equal(t, entity.DeliveryTypeInHouse, captured.DeliveryType)
	require.NotNil(t, captured.DeliveryTime.From)
	assert.Equal(t, "09:00", *captured.DeliveryTime.From)
	assert.Equal(t, "Corner Store", captured.Translations["en"].Title)
	assert.Equal(t, []string{"shops/logo.png", "shops/background.png"}, captured.Images)
	assert.Equal(t, []uint64{1, 2}, captured.Tags)
}

func TestShopHandler_CreateShop_MissingSellerID(t *testing.T) {
	e := newTestEcho()
	shopUsecase := mockusecase.NewMockShopUsecase(t)
	h := NewShopHandler(shopUsecase)

	body := `{"phone": "+380501234567"}`
	req := httptest.NewRequest(http.MethodPost, "/admin/shops", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.CreateShop(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "INVALID_INPUT", resp.Error.Code)
}

func TestShopHandler_CreateShop_SellerAlreadyOwnsShop(t *testing.T) {
	e := newTestEcho()
	shopUsecase := mockusecase.NewMockShopUsecase(t)
	h := NewShopHandler(shopUsecase)

	shopUsecase.EXPECT().
		CreateShop(mock.Anything, "", mock.AnythingOfType("usecase.CreateShopInput")).
		Return(nil, domainerrors.ErrShopAlreadyExists)

	body := `{"seller_id": 7}`
	req := httptest.NewRequest(http.MethodPost, "/admin/shops", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.CreateShop(c))

	assert.Equal(t, domainerrors.ErrShopAlreadyExists.HTTPCode(), rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, domainerrors.ErrShopAlreadyExists.ErrorCode(), resp.Error.Code)
}

func TestShopHandler_UpdateMyShop_ScopesToSeller(t *testing.T) {
	e := newTestEcho()
	shopUsecase := mockusecase.NewMockShopUsecase(t)
	h := NewShopHandler(shopUsecase)
	shopUUID := uuid.New()

	var captured usecase.UpdateShopInput
	shopUsecase.EXPECT().
		UpdateShop(mock.Anything, "", shopUUID, mock.AnythingOfType("usecase.UpdateShopInput")).
		Run(func(_ context.Context, _ string, _ uuid.UUID, input usecase.UpdateShopInput) {
			captured = input
		}).
		Return(testShop(shopUUID), nil)

	body := `{"open": false}`
	req := httptest.NewRequest(http.MethodPut, "/seller/shop/"+shopUUID.String(), strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("uuid")
	c.SetParamValues(shopUUID.String())
	c.Set(middleware.ContextKeyUserID, uint64(7))

	require.NoError(t, h.UpdateMyShop(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, captured.SellerID)
	assert.Equal(t, uint64(7), *captured.SellerID)
	require.NotNil(t, captured.Open)
	assert.False(t, *captured.Open)
}

func TestShopHandler_UpdateMyShop_MissingIdentity(t *testing.T) {
	e := newTestEcho()
	shopUsecase := mockusecase.NewMockShopUsecase(t)
	h := NewShopHandler(shopUsecase)
	shopUUID := uuid.New()

	req := httptest.NewRequest(http.MethodPut, "/seller/shop/"+shopUUID.String(), strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("uuid")
	c.SetParamValues(shopUUID.String())

	require.NoError(t, h.UpdateMyShop(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestShopHandler_UpdateShop_AdminUnscoped(t *testing.T) {
	e := newTestEcho()
	shopUsecase := mockusecase.NewMockShopUsecase(t)
	h := NewShopHandler(shopUsecase)
	shopUUID := uuid.New()

	var captured usecase.UpdateShopInput
	shopUsecase.EXPECT().
		UpdateShop(mock.Anything, "", shopUUID, mock.AnythingOfType("usecase.UpdateShopInput")).
		Run(func(_ context.Context, _ string, _ uuid.UUID, input usecase.UpdateShopInput) {
			captured = input
		}).
		Return(testShop(shopUUID), nil)

	req := httptest.NewRequest(http.MethodPut, "/admin/shops/"+shopUUID.String(), strings.NewReader(`{"visibility": true}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("uuid")
	c.SetParamValues(shopUUID.String())

	require.NoError(t, h.UpdateShop(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, captured.SellerID)
}

func TestShopHandler_DeleteShops_Success(t *testing.T) {
	e := newTestEcho()
	shopUsecase := mockusecase.NewMockShopUsecase(t)
	h := NewShopHandler(shopUsecase)

	shopUsecase.EXPECT().
		DeleteShops(mock.Anything, []uint64{1, 2, 3}).
		Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/admin/shops", strings.NewReader(`{"ids": [1, 2, 3]}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.DeleteShops(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.True(t, resp.Success)
}

func TestShopHandler_DeleteShops_EmptyIDs(t *testing.T) {
	e := newTestEcho()
	shopUsecase := mockusecase.NewMockShopUsecase(t)
	h := NewShopHandler(shopUsecase)

	req := httptest.NewRequest(http.MethodDelete, "/admin/shops", strings.NewReader(`{"ids": []}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.DeleteShops(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestShopHandler_ToggleVerify_NumericID(t *testing.T) {
	e := newTestEcho()
	shopUsecase := mockusecase.NewMockShopUsecase(t)
	h := NewShopHandler(shopUsecase)
	shopUUID := uuid.New()

	verified := testShop(shopUUID)
	verified.Verify = true
	shopUsecase.EXPECT().
		ToggleVerify(mock.Anything, "123").
		Return(verified, nil)

	req := httptest.NewRequest(http.MethodPut, "/admin/shops/123/verify", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("123")

	require.NoError(t, h.ToggleVerify(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.Equal(t, true, resp.Data["verify"])
}

func TestShopHandler_StorefrontQR_Success(t *testing.T) {
	e := newTestEcho()
	shopUsecase := mockusecase.NewMockShopUsecase(t)
	h := NewShopHandler(shopUsecase)
	shopUUID := uuid.New()

	png := []byte{0x89, 0x50, 0x4E, 0x47}
	shopUsecase.EXPECT().
		StorefrontQR(mock.Anything, shopUUID).
		Return(png, nil)

	req := httptest.NewRequest(http.MethodGet, "/shops/"+shopUUID.String()+"/qr", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("uuid")
	c.SetParamValues(shopUUID.String())

	require.NoError(t, h.StorefrontQR(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestShopHandler_StorefrontQR_NotFound(t *testing.T) {
	e := newTestEcho()
	shopUsecase := mockusecase.NewMockShopUsecase(t)
	h := NewShopHandler(shopUsecase)
	shopUUID := uuid.New()

	shopUsecase.EXPECT().
		StorefrontQR(mock.Anything, shopUUID).
		Return(nil, domainerrors.ErrShopNotFound)

	req := httptest.NewRequest(http.MethodGet, "/shops/"+shopUUID.String()+"/qr", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("uuid")
	c.SetParamValues(shopUUID.String())

	require.NoError(t, h.StorefrontQR(c))
	assert.Equal(t, domainerrors.ErrShopNotFound.HTTPCode(), rec.Code)
}
