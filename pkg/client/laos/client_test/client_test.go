package client_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/vladislavprovich/marketplace-sdk/pkg/client/laos"
)

func TestBasicClient_GetTokenBalances(t *testing.T) {
	tests := []struct {
		name             string
		mockStatusCode   int
		mockResponseBody string
		expectedErr      string
		expectedStatus   int64
		expectedTokenIDs []string
	}{
		{
			name:           "valid_response",
			mockStatusCode: http.StatusOK,
			mockResponseBody: `{"page":{"pageSize":100},"balances":[
				{"contractType":"LAOS-ERC721","contractAddress":"0xc","accountAddress":"0xa","tokenID":"1","balance":"1","chainId":62850},
				{"contractType":"LAOS-ERC721","contractAddress":"0xc","accountAddress":"0xa","tokenID":"2","balance":"1","chainId":62850}
			]}`,
			expectedTokenIDs: []string{"1", "2"},
		},
		{
			name:             "api_error",
			mockStatusCode:   http.StatusBadRequest,
			mockResponseBody: `{"code":"INVALID_CHAIN","message":"unsupported chain"}`,
			expectedErr:      "unsupported chain",
			expectedStatus:   http.StatusBadRequest,
		},
		{
			name:             "non_json_error_body",
			mockStatusCode:   http.StatusBadGateway,
			mockResponseBody: `upstream unavailable`,
			expectedErr:      "upstream unavailable",
			expectedStatus:   http.StatusBadGateway,
		},
		{
			name:             "invalid_json_response",
			mockStatusCode:   http.StatusOK,
			mockResponseBody: `{invalid-json}`,
			expectedErr:      "error unmarshalling response body for GetTokenBalances",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/token/GetTokenBalances" {
					t.Errorf("unexpected path %q", r.URL.Path)
				}
				body, _ := io.ReadAll(r.Body)
				if !strings.Contains(string(body), `"accountAddress":"0xa"`) {
					t.Errorf("unexpected body %s", body)
				}
				w.WriteHeader(tt.mockStatusCode)
				_, _ = w.Write([]byte(tt.mockResponseBody))
			}))
			defer server.Close()

			client := laos.NewBasicClient(server.Client(), &laos.Config{BaseURL: server.URL + "/"}, slog.Default())

			resp, err := client.GetTokenBalances(context.Background(), &laos.GetTokenBalancesRequest{
				ChainID:         "62850",
				AccountAddress:  "0xa",
				ContractAddress: "0xc",
				IncludeMetadata: true,
			})

			if tt.expectedErr != "" {
				if err == nil {
					t.Fatalf("expected error %q but got nil", tt.expectedErr)
				}
				if !strings.Contains(err.Error(), tt.expectedErr) {
					t.Errorf("expected error to contain %q, got %q", tt.expectedErr, err.Error())
				}
				var apiErr *laos.APIError
				if tt.expectedStatus != 0 {
					if !errors.As(err, &apiErr) {
						t.Fatalf("expected *laos.APIError, got %T", err)
					}
					if apiErr.StatusCode != tt.expectedStatus {
						t.Errorf("expected status %d, got %d", tt.expectedStatus, apiErr.StatusCode)
					}
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			var got []string
			for _, b := range resp.Balances {
				got = append(got, b.TokenID)
			}
			if strings.Join(got, ",") != strings.Join(tt.expectedTokenIDs, ",") {
				t.Errorf("unexpected token ids: got %v want %v", got, tt.expectedTokenIDs)
			}
		})
	}
}

func TestBasicClient_GetTokenSupplies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/token/GetTokenSupplies" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"contractType":"LAOS-ERC721","tokenIDs":[{"tokenID":"9","supply":"1","chainId":62850}]}`))
	}))
	defer server.Close()

	client := laos.NewBasicClient(server.Client(), &laos.Config{BaseURL: server.URL}, slog.Default())

	resp, err := client.GetTokenSupplies(context.Background(), &laos.GetTokenSuppliesRequest{
		ChainID:         "62850",
		ContractAddress: "0xc",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.TokenIDs) != 1 || resp.TokenIDs[0].TokenID != "9" {
		t.Errorf("unexpected supplies: %+v", resp.TokenIDs)
	}
}

func TestBasicClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := laos.NewBasicClient(server.Client(), &laos.Config{
		BaseURL: server.URL,
		Timeout: 100 * time.Millisecond,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	start := time.Now()
	_, err := client.GetTokenBalances(context.Background(), &laos.GetTokenBalancesRequest{
		ChainID:         "62850",
		AccountAddress:  "0xa",
		ContractAddress: "0xc",
	})
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}
	if time.Since(start) > 5*time.Second {
		t.Errorf("request was not bounded by the timeout")
	}
}
