package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"agriconnect/internal/delivery/http/middleware"
	"agriconnect/internal/delivery/http/validator"
	"agriconnect/internal/domain/entity"
	domainerrors "agriconnect/internal/domain/errors"
	mockRepo "agriconnect/internal/mocks/repository"
	mockSvc "agriconnect/internal/mocks/service"
	"agriconnect/internal/usecase"
	"agriconnect/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestEcho() *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	return e
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

// stubOrderUsecase lets each test pin the usecase outcome.
type stubOrderUsecase struct {
	createOrderFn   func(ctx context.Context, input *usecase.CreateOrderInput) (*entity.Order, error)
	createSummaryFn func(ctx context.Context, input *usecase.CreateOrderSummaryInput) error
}

func (s *stubOrderUsecase) CreateOrder(ctx context.Context, input *usecase.CreateOrderInput) (*entity.Order, error) {
	return s.createOrderFn(ctx, input)
}

func (s *stubOrderUsecase) CreateOrderSummary(ctx context.Context, input *usecase.CreateOrderSummaryInput) error {
	return s.createSummaryFn(ctx, input)
}

func TestOrderHandler_CreateOrder_ReturnsCreated(t *testing.T) {
	e := newTestEcho()
	uc := &stubOrderUsecase{
		createOrderFn: func(_ context.Context, input *usecase.CreateOrderInput) (*entity.Order, error) {
			return &entity.Order{OrderID: input.OrderID, GrandTotal: 216}, nil
		},
	}
	e.POST("/createorder", NewOrderHandler(uc, discardLogger()).CreateOrder)

	rec := doJSON(e, http.MethodPost, "/createorder", `{
		"orderId": "order-1",
		"userId": "buyer-1",
		"products": [{"price": 100, "quantity": 2, "unit": "kg"}],
		"deliveryAddress": {"municipality": "Dauis", "barangay": "Poblacion"},
		"distance": 3
	}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), `"grandTotal":216`)
}

func TestOrderHandler_CreateOrder_MissingFields(t *testing.T) {
	e := newTestEcho()
	uc := &stubOrderUsecase{
		createOrderFn: func(_ context.Context, _ *usecase.CreateOrderInput) (*entity.Order, error) {
			t.Fatal("usecase must not be called on invalid input")

			return nil, nil
		},
	}
	e.POST("/createorder", NewOrderHandler(uc, discardLogger()).CreateOrder)

	rec := doJSON(e, http.MethodPost, "/createorder", `{"orderId": "order-1"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing required fields")
}

func TestOrderHandler_CreateOrderSummary_MissingIDs(t *testing.T) {
	e := newTestEcho()
	uc := &stubOrderUsecase{
		createSummaryFn: func(_ context.Context, _ *usecase.CreateOrderSummaryInput) error {
			t.Fatal("usecase must not be called on invalid input")

			return nil
		},
	}
	e.POST("/orders", NewOrderHandler(uc, discardLogger()).CreateOrderSummary)

	rec := doJSON(e, http.MethodPost, "/orders", `{"orderDetails": {}}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing sellerId or orderId")
}

func TestOrderHandler_CreateOrderSummary_SellerNotFound(t *testing.T) {
	e := newTestEcho()
	uc := &stubOrderUsecase{
		createSummaryFn: func(_ context.Context, _ *usecase.CreateOrderSummaryInput) error {
			return domainerrors.ErrSellerNotFound
		},
	}
	e.POST("/orders", NewOrderHandler(uc, discardLogger()).CreateOrderSummary)

	rec := doJSON(e, http.MethodPost, "/orders", `{"sellerId": "ghost", "orderId": "order-1"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Seller not found")
}

// stubRegistrationUsecase records the last input it received.
type stubRegistrationUsecase struct {
	lastInput *usecase.RegisterInput
}

func (s *stubRegistrationUsecase) RegisterBuyer(_ context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	s.lastInput = input

	return &usecase.RegisterOutput{UID: "uid-1"}, nil
}

func (s *stubRegistrationUsecase) RegisterSeller(_ context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	s.lastInput = input

	return &usecase.RegisterOutput{UID: "uid-1"}, nil
}

func (s *stubRegistrationUsecase) RegisterRider(_ context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	s.lastInput = input

	return &usecase.RegisterOutput{UID: "uid-1"}, nil
}

func TestRegistrationHandler_RegisterBuyer_PinsRole(t *testing.T) {
	e := newTestEcho()
	uc := &stubRegistrationUsecase{}
	e.POST("/register/buyer", NewRegistrationHandler(uc, discardLogger()).RegisterBuyer)

	rec := doJSON(e, http.MethodPost, "/register/buyer", `{
		"firstName": "Jane",
		"lastName": "Doe",
		"email": "jane@example.com",
		"password": "secret123",
		"role": "seller"
	}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, uc.lastInput)
	assert.Equal(t, string(entity.RoleBuyer), uc.lastInput.Role)
}

func TestRegistrationHandler_RegisterBuyer_MissingRole(t *testing.T) {
	e := newTestEcho()
	uc := &stubRegistrationUsecase{}
	e.POST("/register/buyer", NewRegistrationHandler(uc, discardLogger()).RegisterBuyer)

	rec := doJSON(e, http.MethodPost, "/register/buyer", `{
		"firstName": "Jane",
		"lastName": "Doe",
		"email": "jane@example.com",
		"password": "secret123"
	}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing required fields")
	assert.Nil(t, uc.lastInput)
}

func TestRegistrationHandler_RegisterBuyer_MissingFields(t *testing.T) {
	e := newTestEcho()
	uc := &stubRegistrationUsecase{}
	e.POST("/register/buyer", NewRegistrationHandler(uc, discardLogger()).RegisterBuyer)

	rec := doJSON(e, http.MethodPost, "/register/buyer", `{"email": "jane@example.com"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing required fields")
	assert.Nil(t, uc.lastInput)
}

// stubNotificationUsecase pins the gateway outcome.
type stubNotificationUsecase struct {
	resp map[string]any
	err  error
}

func (s *stubNotificationUsecase) SendDirect(_ context.Context, _ *usecase.SendPushInput) (map[string]any, error) {
	return s.resp, s.err
}

func TestNotificationHandler_SendNotification_MissingFields(t *testing.T) {
	e := newTestEcho()
	uc := &stubNotificationUsecase{}
	e.POST("/send-notification", NewNotificationHandler(uc, discardLogger()).SendNotification)

	rec := doJSON(e, http.MethodPost, "/send-notification", `{"title": "Hello"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing required fields")
}

func TestNotificationHandler_SendNotification_Success(t *testing.T) {
	e := newTestEcho()
	uc := &stubNotificationUsecase{
		resp: map[string]any{"data": map[string]any{"status": "ok"}},
	}
	e.POST("/send-notification", NewNotificationHandler(uc, discardLogger()).SendNotification)

	rec := doJSON(e, http.MethodPost, "/send-notification", `{
		"expoPushToken": "ExponentPushToken[abc]",
		"title": "Hello",
		"body": "World"
	}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

// A coordinate of exactly 0 is a present value and must not trip the
// required-field check; only an absent coordinate is rejected.
func TestAddressHandler_CreateDeliveryAddress_ZeroLatitude(t *testing.T) {
	addresses := mockRepo.NewMockDeliveryAddressRepository(t)
	addresses.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)

	uc := impl.NewAddressService(discardLogger(), addresses, mockRepo.NewMockRiderLocationRepository(t))

	e := newTestEcho()
	e.POST("/createaddress", NewAddressHandler(uc, discardLogger()).CreateDeliveryAddress)

	rec := doJSON(e, http.MethodPost, "/createaddress", `{
		"addressId": "addr-1",
		"userId": "buyer-1",
		"name": "Pontoon",
		"municipality": "Equator Town",
		"barangay": "Centro",
		"latitude": 0,
		"longitude": 123.85
	}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"latitude":0`)
}

func TestAddressHandler_CreateDeliveryAddress_MissingLatitude(t *testing.T) {
	uc := impl.NewAddressService(
		discardLogger(),
		mockRepo.NewMockDeliveryAddressRepository(t),
		mockRepo.NewMockRiderLocationRepository(t),
	)

	e := newTestEcho()
	e.POST("/createaddress", NewAddressHandler(uc, discardLogger()).CreateDeliveryAddress)

	rec := doJSON(e, http.MethodPost, "/createaddress", `{
		"addressId": "addr-1",
		"userId": "buyer-1",
		"name": "Home",
		"municipality": "Tagbilaran",
		"barangay": "Cogon",
		"longitude": 123.85
	}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing required fields")
}

func doEmptyPut(e *echo.Echo, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

// An update with no body must succeed as a no-op through the whole
// handler and service chain, not just at the usecase layer.
func TestStoreHandler_UpdateStore_EmptyBody(t *testing.T) {
	stores := mockRepo.NewMockStoreRepository(t)
	stores.EXPECT().
		FindByID(mock.Anything, "store-1").
		Return(&entity.Store{StoreID: "store-1", StoreName: "Bohol Fresh"}, nil)
	stores.EXPECT().
		Save(mock.Anything, mock.Anything).
		Return(nil)

	uc := impl.NewStoreService(discardLogger(), stores, mockSvc.NewMockGeocoder(t))

	e := newTestEcho()
	e.PUT("/updatestore/:storeId", NewStoreHandler(uc, discardLogger()).UpdateStore)

	rec := doEmptyPut(e, "/updatestore/store-1")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), `"storeName":"Bohol Fresh"`)
}

func TestProductHandler_UpdateProduct_EmptyBody(t *testing.T) {
	products := mockRepo.NewMockProductRepository(t)
	products.EXPECT().
		FindByID(mock.Anything, "prod-1").
		Return(&entity.Product{ProductID: "prod-1", ProductName: "Brown Rice"}, nil)
	products.EXPECT().
		Save(mock.Anything, mock.Anything).
		Return(nil)

	uc := impl.NewProductService(discardLogger(), products)

	e := newTestEcho()
	e.PUT("/updateproduct/:productId", NewProductHandler(uc, discardLogger()).UpdateProduct)

	rec := doEmptyPut(e, "/updateproduct/prod-1")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), `"productName":"Brown Rice"`)
}
