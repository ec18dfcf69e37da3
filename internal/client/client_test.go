package client

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/ebarbosa87/pixmart/internal/config"
	"github.com/ebarbosa87/pixmart/internal/logger"
)

type stubHTTPClient struct {
	response *http.Response
	err      error
	lastReq  *http.Request
}

func (s *stubHTTPClient) Do(req *http.Request) (*http.Response, error) {
	s.lastReq = req
	return s.response, s.err
}

func makeResponse(status int, body string, headers http.Header) *http.Response {
	if headers == nil {
		headers = http.Header{}
	}
	return &http.Response{
		StatusCode: status,
		Header:     headers,
		Body:       io.NopCloser(bytes.NewReader([]byte(body))),
	}
}

func TestClient_GetPayment(t *testing.T) {
	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	testCases := []struct {
		Name          string
		Response      *http.Response
		DoError       error
		ExpectedError error
	}{
		{
			Name:          "Error. Transport failure #1",
			DoError:       errors.New("connection refused"),
			ExpectedError: errors.New("connection refused"),
		},
		{
			Name:          "Error. Payment not found #2",
			Response:      makeResponse(http.StatusNotFound, "", nil),
			ExpectedError: ErrPaymentNotFound,
		},
		{
			Name:          "Error. Unauthorized maps to bad request #3",
			Response:      makeResponse(http.StatusUnauthorized, `{"message":"invalid token"}`, nil),
			ExpectedError: ErrBadRequest,
		},
		{
			Name:          "Error. Server failure maps to unavailable #4",
			Response:      makeResponse(http.StatusInternalServerError, "", nil),
			ExpectedError: ErrGatewayUnavailable,
		},
		{
			Name:          "Success. #5",
			Response:      makeResponse(http.StatusOK, `{"id":42,"status":"approved","external_reference":"o1"}`, nil),
			ExpectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			stub := &stubHTTPClient{response: tc.Response, err: tc.DoError}
			client := NewClient("https://gateway.test", "token-1", stub)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			payment, err := client.GetPayment(ctx, "42")

			if tc.ExpectedError == nil {
				if err != nil {
					t.Fatalf("Expected no error, got: '%v'", err)
				}
				if payment.ID != 42 || payment.Status != "approved" || payment.ExternalReference != "o1" {
					t.Errorf("Unexpected payment: %+v", payment)
				}
				if got := stub.lastReq.Header.Get("Authorization"); got != "Bearer token-1" {
					t.Errorf("Expected bearer auth header, got: '%s'", got)
				}
				return
			}
			if err == nil {
				t.Fatalf("Expected error '%v', got none", tc.ExpectedError)
			}
			if !errors.Is(err, tc.ExpectedError) && !errorContains(err, tc.ExpectedError) {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
		})
	}
}

func errorContains(err error, target error) bool {
	return err != nil && target != nil && strings.Contains(err.Error(), target.Error())
}

func TestClient_CreatePreference(t *testing.T) {
	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	stub := &stubHTTPClient{response: makeResponse(http.StatusCreated, `{"id":"pref-1","init_point":"https://pay/pref-1"}`, nil)}
	client := NewClient("https://gateway.test", "token-1", stub)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	preference, err := client.CreatePreference(ctx, PreferenceRequest{
		Items:             []PreferenceItem{{Title: "Keyboard", Quantity: 2, UnitPrice: 25}},
		ExternalReference: "o1",
	})
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	if preference.ID != "pref-1" || preference.InitPoint != "https://pay/pref-1" {
		t.Errorf("Unexpected preference: %+v", preference)
	}
	if stub.lastReq.Method != http.MethodPost {
		t.Errorf("Expected POST, got: '%s'", stub.lastReq.Method)
	}
	if got := stub.lastReq.Header.Get("Content-Type"); got != "application/json" {
		t.Errorf("Expected json content type, got: '%s'", got)
	}
}

func TestClient_SearchPaymentByReference(t *testing.T) {
	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	testCases := []struct {
		Name          string
		Response      *http.Response
		ExpectedError error
	}{
		{
			Name:          "Empty result set maps to not found #1",
			Response:      makeResponse(http.StatusOK, `{"results":[]}`, nil),
			ExpectedError: ErrPaymentNotFound,
		},
		{
			Name:          "Error. Server failure maps to unavailable #2",
			Response:      makeResponse(http.StatusInternalServerError, "", nil),
			ExpectedError: ErrGatewayUnavailable,
		},
		{
			Name:          "Success. Newest payment returned #3",
			Response:      makeResponse(http.StatusOK, `{"results":[{"id":42,"status":"approved","external_reference":"o1"}]}`, nil),
			ExpectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			stub := &stubHTTPClient{response: tc.Response}
			client := NewClient("https://gateway.test", "token-1", stub)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			payment, err := client.SearchPaymentByReference(ctx, "o1")

			if tc.ExpectedError == nil {
				if err != nil {
					t.Fatalf("Expected no error, got: '%v'", err)
				}
				if payment.ID != 42 || payment.Status != "approved" {
					t.Errorf("Unexpected payment: %+v", payment)
				}
			} else if !errors.Is(err, tc.ExpectedError) {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}

			if stub.lastReq.URL.Path != "/v1/payments/search" {
				t.Errorf("Expected the search path, got: '%s'", stub.lastReq.URL.Path)
			}
			if got := stub.lastReq.URL.Query().Get("external_reference"); got != "o1" {
				t.Errorf("Expected external_reference 'o1', got: '%s'", got)
			}
		})
	}
}

func TestParseRetryAfter(t *testing.T) {
	testCases := []struct {
		Name     string
		Header   string
		Expected time.Duration
	}{
		{Name: "Seconds #1", Header: "30", Expected: 30 * time.Second},
		{Name: "Missing falls back to a minute #2", Header: "", Expected: time.Minute},
		{Name: "Garbage falls back to a minute #3", Header: "soon", Expected: time.Minute},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			headers := http.Header{}
			if tc.Header != "" {
				headers.Set("Retry-After", tc.Header)
			}
			if got := ParseRetryAfter(headers); got != tc.Expected {
				t.Errorf("Expected '%v', got: '%v'", tc.Expected, got)
			}
		})
	}
}

func TestHandleErrorResponse_RateLimit(t *testing.T) {
	headers := http.Header{}
	headers.Set("Retry-After", "15")

	err := HandleErrorResponse(makeResponse(http.StatusTooManyRequests, "", headers))

	var rateLimitErr *RateLimitError
	if !errors.As(err, &rateLimitErr) {
		t.Fatalf("Expected a rate limit error, got: '%v'", err)
	}
	if rateLimitErr.RetryAfter != 15*time.Second {
		t.Errorf("Expected retry after 15s, got: '%v'", rateLimitErr.RetryAfter)
	}
}
