package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"FigureShopAPI/internal/middleware"
	"FigureShopAPI/internal/model"
	"FigureShopAPI/internal/repository"
	"FigureShopAPI/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGateway struct {
	resp *model.PaymentResponse
	err  error
}

func (g *stubGateway) RequestPayment(ctx context.Context, req model.PaymentRequest) (*model.PaymentResponse, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.resp, nil
}

func newTestServer(gw services.PaymentGateway) *echo.Echo {
	store := repository.NewMemoryStore()
	catalogRepo := repository.NewCatalogRepository()
	cartRepo := repository.NewCartRepository(store)
	orderRepo := repository.NewOrderRepository(store)

	e := echo.New()
	api := e.Group("/figure-shop")
	registerCatalogRoutes(api, services.NewCatalogService(catalogRepo))
	registerCartRoutes(api, services.NewCartService(cartRepo, catalogRepo))
	registerCheckoutRoutes(api, services.NewCheckoutService(cartRepo, orderRepo, gw, "iamporttest_3", "channel-key"))
	return e
}

func doJSON(e *echo.Echo, method, path, session, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if session != "" {
		req.Header.Set(middleware.SessionHeader, session)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCatalogEndpoint(t *testing.T) {
	e := newTestServer(nil)

	rec := doJSON(e, http.MethodGet, "/figure-shop/catalog?category=Marvel&q=hot+toys", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Products []model.Product `json:"products"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out.Products, 2)
	assert.Equal(t, "Iron Man Mark LXXXV", out.Products[0].Name)
}

func TestCartEndpointsIssueAndScopeSessions(t *testing.T) {
	e := newTestServer(nil)

	// first request without a session id gets one issued
	rec := doJSON(e, http.MethodPost, "/figure-shop/cart", "", `{"productid":"1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	session := rec.Header().Get(middleware.SessionHeader)
	require.NotEmpty(t, session)

	// same session sees the cart, a different one does not
	rec = doJSON(e, http.MethodGet, "/figure-shop/cart", session, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var cart model.CartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cart))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(450000), cart.Total)

	rec = doJSON(e, http.MethodGet, "/figure-shop/cart", "other-session", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cart))
	assert.Empty(t, cart.Items)
}

func TestCartUpdateAndRemoveEndpoints(t *testing.T) {
	e := newTestServer(nil)

	rec := doJSON(e, http.MethodPost, "/figure-shop/cart", "s1", `{"productid":"1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodPut, "/figure-shop/cart/1", "s1", `{"delta":2}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var cart model.CartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cart))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)

	rec = doJSON(e, http.MethodDelete, "/figure-shop/cart/1", "s1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cart))
	assert.Empty(t, cart.Items)
}

func TestCheckoutEndpointSuccess(t *testing.T) {
	e := newTestServer(&stubGateway{resp: &model.PaymentResponse{}})

	doJSON(e, http.MethodPost, "/figure-shop/cart", "s1", `{"productid":"1"}`)

	rec := doJSON(e, http.MethodPost, "/figure-shop/checkout", "s1",
		`{"name":"Hong Gildong","phone":"010-0000-0000","email":"c@example.com","address":"Seoul"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var confirmation model.OrderConfirmation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &confirmation))
	assert.True(t, strings.HasPrefix(confirmation.OrderID, "payment-"))
	assert.Equal(t, int64(450000), confirmation.TotalPrice)

	// cart is now empty and the confirmation is retrievable
	rec = doJSON(e, http.MethodGet, "/figure-shop/cart", "s1", "")
	var cart model.CartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cart))
	assert.Empty(t, cart.Items)

	rec = doJSON(e, http.MethodGet, "/figure-shop/orders/last", "s1", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCheckoutEndpointDeclined(t *testing.T) {
	code := "PAY_CANCEL"
	e := newTestServer(&stubGateway{resp: &model.PaymentResponse{Code: &code, Message: "user cancelled the payment"}})

	doJSON(e, http.MethodPost, "/figure-shop/cart", "s1", `{"productid":"1"}`)

	rec := doJSON(e, http.MethodPost, "/figure-shop/checkout", "s1",
		`{"name":"n","phone":"p","email":"e","address":"a"}`)
	require.Equal(t, http.StatusPaymentRequired, rec.Code)
	assert.Contains(t, rec.Body.String(), "PAY_CANCEL")
	assert.Contains(t, rec.Body.String(), "user cancelled the payment")

	// cart untouched, no order recorded
	rec = doJSON(e, http.MethodGet, "/figure-shop/cart", "s1", "")
	var cart model.CartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cart))
	assert.Len(t, cart.Items, 1)

	rec = doJSON(e, http.MethodGet, "/figure-shop/orders/last", "s1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCheckoutEndpointGatewayNotReady(t *testing.T) {
	e := newTestServer(nil)

	doJSON(e, http.MethodPost, "/figure-shop/cart", "s1", `{"productid":"1"}`)

	rec := doJSON(e, http.MethodPost, "/figure-shop/checkout", "s1",
		`{"name":"n","phone":"p","email":"e","address":"a"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestCheckoutEndpointIncompleteForm(t *testing.T) {
	e := newTestServer(&stubGateway{resp: &model.PaymentResponse{}})

	doJSON(e, http.MethodPost, "/figure-shop/cart", "s1", `{"productid":"1"}`)

	rec := doJSON(e, http.MethodPost, "/figure-shop/checkout", "s1",
		`{"name":"n","phone":"","email":"e","address":"a"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
