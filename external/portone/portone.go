package portone

import (
	"context"
	"errors"
	"fmt"
	"os"

	"FigureShopAPI/internal/model"

	"github.com/go-resty/resty/v2"
)

// Client requests payments from the PortOne V2 API. It stands in for the
// browser widget the storefront would normally hand the order descriptor to:
// one asynchronous operation, resolving to a response whose Code field is
// nil on success.
type Client struct {
	http *resty.Client
}

func NewClient() (*Client, error) {
	secret := os.Getenv("PORTONE_API_SECRET")
	if secret == "" {
		return nil, errors.New("PORTONE_API_SECRET not set")
	}

	baseURL := os.Getenv("PORTONE_API_URL")
	if baseURL == "" {
		baseURL = "https://api.portone.io"
	}

	return &Client{
		// No timeout: the call resolves or rejects on the gateway's own
		// schedule, and there is no automatic retry.
		http: resty.New().
			SetBaseURL(baseURL).
			SetHeader("Authorization", "PortOne "+secret).
			SetRetryCount(0),
	}, nil
}

// RequestPayment submits the order descriptor and returns the gateway
// verdict. A transport or decoding failure is returned as an error; a
// gateway-reported failure comes back as a response with a non-nil Code.
func (c *Client) RequestPayment(ctx context.Context, req model.PaymentRequest) (*model.PaymentResponse, error) {
	var out model.PaymentResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		SetError(&out).
		Post("/payments/" + req.PaymentID + "/instant")
	if err != nil {
		return nil, err
	}

	// error statuses must carry a gateway code; anything else is unexpected
	if resp.IsError() && out.Code == nil {
		return nil, fmt.Errorf("portone: unexpected status %s", resp.Status())
	}

	return &out, nil
}
