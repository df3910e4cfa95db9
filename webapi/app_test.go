package webapi

import (
	"testing"
	"time"

	"github.com/amirasaad/moneykit/pkg/config"
	"github.com/amirasaad/moneykit/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type RateLimitTestSuite struct {
	suite.Suite
	app *fiber.App
}

func (s *RateLimitTestSuite) SetupTest() {
	deps := testutils.NewTestDeps(func(cfg *config.App) {
		cfg.RateLimit = &config.RateLimit{MaxRequests: 5, Window: time.Second}
	})
	s.app = NewApp(deps)
}

func (s *RateLimitTestSuite) TestRateLimit() {
	// Send requests until rate limit is hit
	for i := range [6]int{} {
		resp := testutils.MakeRequestWithApp(s.app, fiber.MethodGet, "/", "")
		defer resp.Body.Close() //nolint: errcheck

		if i < 5 {
			s.Assert().Equal(fiber.StatusOK, resp.StatusCode, "Expected OK for request %d", i+1)
		} else {
			s.Assert().Equal(fiber.StatusTooManyRequests, resp.StatusCode, "Expected Too Many Requests for request %d", i+1)
		}
	}

	// Wait for the rate limit window to reset
	time.Sleep(1100 * time.Millisecond)

	resp := testutils.MakeRequestWithApp(s.app, fiber.MethodGet, "/", "")
	defer resp.Body.Close() //nolint: errcheck
	s.Assert().Equal(fiber.StatusOK, resp.StatusCode, "Expected OK after rate limit reset")
}

func (s *RateLimitTestSuite) TestRateLimitProblemDetails() {
	for range [5]int{} {
		resp := testutils.MakeRequestWithApp(s.app, fiber.MethodGet, "/", "")
		resp.Body.Close() //nolint: errcheck
	}
	resp := testutils.MakeRequestWithApp(s.app, fiber.MethodGet, "/", "")
	s.Require().Equal(fiber.StatusTooManyRequests, resp.StatusCode)
	s.Equal("application/problem+json", resp.Header.Get(fiber.HeaderContentType))

	pd, err := testutils.DecodeProblem(resp)
	s.Require().NoError(err)
	s.Equal("Too Many Requests", pd.Title)
	s.Equal("Rate limit exceeded", pd.Detail)
}

func TestRateLimitTestSuite(t *testing.T) {
	suite.Run(t, new(RateLimitTestSuite))
}

func TestNewApp_UnknownRoute(t *testing.T) {
	app := NewApp(testutils.NewTestDeps(nil))
	resp := testutils.MakeRequestWithApp(app, fiber.MethodGet, "/nope", "")
	defer resp.Body.Close() //nolint: errcheck

	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestNewApp_RequestID(t *testing.T) {
	app := NewApp(testutils.NewTestDeps(nil))
	resp := testutils.MakeRequestWithApp(app, fiber.MethodGet, "/", "")
	defer resp.Body.Close() //nolint: errcheck

	if _, err := uuid.Parse(resp.Header.Get(fiber.HeaderXRequestID)); err != nil {
		t.Fatalf("expected a UUID request id, got %q: %v", resp.Header.Get(fiber.HeaderXRequestID), err)
	}
}
