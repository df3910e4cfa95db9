// Package testutils holds helpers shared by the HTTP handler tests.
package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/amirasaad/moneykit/infra/initializer"
	"github.com/amirasaad/moneykit/pkg/config"
	"github.com/amirasaad/moneykit/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// NewTestDeps returns dependencies with a discarding logger and a generous
// rate limit. mutate, when given, adjusts the config before wiring.
func NewTestDeps(mutate func(*config.App)) *initializer.Deps {
	cfg := &config.App{
		Env:       "test",
		Server:    &config.Server{Scheme: "http", Host: "localhost", Port: 3000},
		Log:       &config.Log{Format: "text"},
		Money:     &config.Money{DefaultCurrency: "EUR"},
		RateLimit: &config.RateLimit{MaxRequests: 1000, Window: time.Minute},
	}
	if mutate != nil {
		mutate(cfg)
	}
	return initializer.NewDeps(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// MakeRequestWithApp is a helper for making HTTP requests with a standalone app (for non-suite tests)
func MakeRequestWithApp(app *fiber.App, method, path, body string) *http.Response {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		panic(err) // For standalone tests, panic on error
	}
	return resp
}

// DecodeResponse decodes a success envelope, with its data into data.
func DecodeResponse(resp *http.Response, data any) (common.Response, error) {
	defer resp.Body.Close() //nolint:errcheck
	var envelope struct {
		common.Response
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return common.Response{}, err
	}
	if data != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, data); err != nil {
			return common.Response{}, err
		}
	}
	return envelope.Response, nil
}

// DecodeProblem decodes a problem details body.
func DecodeProblem(resp *http.Response) (common.ProblemDetails, error) {
	defer resp.Body.Close() //nolint:errcheck
	var pd common.ProblemDetails
	err := json.NewDecoder(resp.Body).Decode(&pd)
	return pd, err
}
