package laos

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

func (c *BasicClient) post(ctx context.Context, endpoint string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("error marshalling request for %s: %w", endpoint, err)
	}

	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	url := fmt.Sprintf("%s/token/%s", strings.TrimRight(c.cfg.BaseURL, "/"), endpoint)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("error creating new request for %s: %w", endpoint, err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("error doing request for %s: %w", endpoint, err)
	}

	defer func() {
		if err = res.Body.Close(); err != nil {
			c.logger.ErrorContext(ctx,
				"error closing response body",
				slog.String("endpoint", endpoint),
				slog.Any("error", err),
			)
		}
	}()

	respBody, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("error reading response body for %s: %w", endpoint, err)
	}

	if res.StatusCode != http.StatusOK {
		var apiErr APIError
		if err = json.Unmarshal(respBody, &apiErr); err != nil {
			apiErr.Message = string(respBody)
		}
		apiErr.StatusCode = int64(res.StatusCode)
		return &apiErr
	}

	if err = json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("error unmarshalling response body for %s: %w", endpoint, err)
	}

	return nil
}
