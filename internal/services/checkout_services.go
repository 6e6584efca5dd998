package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"FigureShopAPI/internal/metrics"
	"FigureShopAPI/internal/model"
	"FigureShopAPI/internal/repository"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	CurrencyKRW   = "CURRENCY_KRW"
	PayMethodCard = "CARD"

	// the storefront ships without a postcode field, the gateway requires one
	defaultZipcode = "12345"
)

// PaymentGateway is the single asynchronous operation the external payment
// widget exposes. The call resolves or rejects on the gateway's own schedule;
// no timeout or retry is applied on top of it.
type PaymentGateway interface {
	RequestPayment(ctx context.Context, req model.PaymentRequest) (*model.PaymentResponse, error)
}

// CheckoutService validates the order form and hands the cart off to the
// payment gateway. Every failure path leaves the cart and form untouched and
// requires a fresh user-initiated attempt.
type CheckoutService struct {
	CartRepo  *repository.CartRepository
	OrderRepo *repository.OrderRepository
	Gateway   PaymentGateway

	StoreID    string
	ChannelKey string

	mu       sync.Mutex
	inFlight map[string]bool
}

func NewCheckoutService(
	cr *repository.CartRepository,
	or *repository.OrderRepository,
	gw PaymentGateway,
	storeID, channelKey string,
) *CheckoutService {
	return &CheckoutService{
		CartRepo:   cr,
		OrderRepo:  or,
		Gateway:    gw,
		StoreID:    storeID,
		ChannelKey: channelKey,
		inFlight:   make(map[string]bool),
	}
}

// Pay runs one payment attempt for the session's cart. On success the
// confirmation is persisted as the session's last order and the cart is
// cleared; on any failure both are left exactly as they were.
func (s *CheckoutService) Pay(ctx context.Context, sessionID string, form model.OrderForm) (*model.OrderConfirmation, error) {
	if !formValid(form) {
		return nil, ErrIncompleteForm
	}

	lines := s.CartRepo.Load(sessionID)
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	if s.Gateway == nil {
		return nil, ErrGatewayNotReady
	}

	// one payment attempt per session at a time
	if !s.begin(sessionID) {
		return nil, ErrPaymentInFlight
	}
	defer s.end(sessionID)

	total := model.Total(lines)
	req := model.PaymentRequest{
		StoreID:     s.StoreID,
		ChannelKey:  s.ChannelKey,
		PaymentID:   "payment-" + uuid.NewString(),
		OrderName:   orderName(lines),
		TotalAmount: total,
		Currency:    CurrencyKRW,
		PayMethod:   PayMethodCard,
		Customer: model.PaymentCustomer{
			FullName:    form.Name,
			PhoneNumber: form.Phone,
			Email:       form.Email,
			Address:     form.Address,
			Zipcode:     defaultZipcode,
		},
	}

	resp, err := s.Gateway.RequestPayment(ctx, req)
	if err != nil {
		metrics.OrdersTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("payment failed unexpectedly: %w", err)
	}
	if resp.Code != nil {
		metrics.OrdersTotal.WithLabelValues("declined").Inc()
		return nil, &GatewayError{Code: *resp.Code, Message: resp.Message}
	}

	confirmation := model.OrderConfirmation{
		OrderID:    req.PaymentID,
		Items:      lines,
		TotalPrice: total,
		Date:       time.Now().UTC(),
		Buyer:      form,
	}
	if err := s.OrderRepo.SaveLastOrder(sessionID, confirmation); err != nil {
		return nil, err
	}
	if err := s.CartRepo.Clear(sessionID); err != nil {
		return nil, err
	}

	metrics.OrdersTotal.WithLabelValues("paid").Inc()
	metrics.PaymentAmount.Observe(float64(total))
	log.WithFields(log.Fields{
		"order_id": confirmation.OrderID,
		"total":    total,
		"items":    len(lines),
	}).Info("order confirmed")

	return &confirmation, nil
}

// LastOrder returns the session's most recent confirmation, if any.
func (s *CheckoutService) LastOrder(sessionID string) (*model.OrderConfirmation, bool) {
	return s.OrderRepo.GetLastOrder(sessionID)
}

func (s *CheckoutService) begin(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[sessionID] {
		return false
	}
	s.inFlight[sessionID] = true
	return true
}

func (s *CheckoutService) end(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, sessionID)
}

// orderName labels the order after the first item plus a count of the rest.
func orderName(lines []model.CartLine) string {
	name := "Figure shop order: " + lines[0].Product.Name
	if len(lines) > 1 {
		name += fmt.Sprintf(" and %d more", len(lines)-1)
	}
	return name
}

func formValid(f model.OrderForm) bool {
	return f.Name != "" && f.Phone != "" && f.Email != "" && f.Address != ""
}
