package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client - payment gateway HTTP client. The access token is attached to every
// request, the gateway treats a missing one as an authorization failure.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  HTTPClient
	limiter     *RateLimiter
}

func NewClient(baseURL string, accessToken string, client HTTPClient) *Client {
	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		httpClient:  client,
		limiter:     NewRateLimiter(),
	}
}

// do applies the shared rate limit, sends the request and pauses the limiter
// when the gateway answers 429
func (c *Client) do(req *http.Request) (*http.Response, error) {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return nil, errors.Wrap(err, "wait rate limit")
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		c.limiter.BlockFor(ParseRetryAfter(resp.Header))
	}
	return resp, nil
}

// CreatePreference mints a checkout session for the cart
func (c *Client) CreatePreference(ctx context.Context, preference PreferenceRequest) (*PreferenceResponse, error) {
	body, err := json.Marshal(preference)
	if err != nil {
		return nil, errors.Wrap(err, "marshal preference")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/checkout/preferences", bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "build preference request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.do(req)
	if err != nil {
		return nil, errors.Wrap(err, "post preference")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, HandleErrorResponse(resp)
	}

	var result PreferenceResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errors.Wrap(err, "decode preference response")
	}
	return &result, nil
}

// GetPayment fetches the authoritative payment state by id
func (c *Client) GetPayment(ctx context.Context, paymentID string) (*PaymentResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/payments/"+paymentID, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build payment request")
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.do(req)
	if err != nil {
		return nil, errors.Wrap(err, "get payment")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, HandleErrorResponse(resp)
	}

	var result PaymentResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errors.Wrap(err, "decode payment response")
	}
	return &result, nil
}

// SearchPaymentByReference finds the newest payment attached to an external
// reference. No payment for the reference maps to ErrPaymentNotFound.
func (c *Client) SearchPaymentByReference(ctx context.Context, externalReference string) (*PaymentResponse, error) {
	query := url.Values{}
	query.Set("external_reference", externalReference)
	query.Set("sort", "date_created")
	query.Set("criteria", "desc")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/payments/search?"+query.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "build payment search request")
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.do(req)
	if err != nil {
		return nil, errors.Wrap(err, "search payment")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, HandleErrorResponse(resp)
	}

	var result PaymentSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errors.Wrap(err, "decode payment search response")
	}
	if len(result.Results) == 0 {
		return nil, ErrPaymentNotFound
	}
	return &result.Results[0], nil
}

func HandleErrorResponse(resp *http.Response) error {
	// error bodies carry a reason the caller may want to surface
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))

	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		return NewRateLimitError(resp.Header)
	case http.StatusNotFound:
		return ErrPaymentNotFound
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusUnprocessableEntity:
		return errors.Wrap(ErrBadRequest, string(body))
	default:
		return ErrGatewayUnavailable
	}
}
