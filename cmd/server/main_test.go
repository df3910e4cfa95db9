package main_test

import (
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"testing"

	"github.com/amirasaad/moneykit/webapi"
	"github.com/amirasaad/moneykit/webapi/testutils"
	"github.com/stretchr/testify/suite"
)

// TestMain runs before any tests and applies globally for all tests in the package.
func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	log.SetOutput(io.Discard)

	exitVal := m.Run()
	os.Exit(exitVal)
}

type MainTestSuite struct {
	suite.Suite
}

func TestMainTestSuite(t *testing.T) {
	suite.Run(t, new(MainTestSuite))
}

func (s *MainTestSuite) TestStartServer_RootRoute() {
	app := webapi.NewApp(testutils.NewTestDeps(nil))

	resp := testutils.MakeRequestWithApp(app, http.MethodGet, "/", "")
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	s.Equal("App is working! 🚀", string(body))
}

func (s *MainTestSuite) TestStartServer_ParseRoute() {
	app := webapi.NewApp(testutils.NewTestDeps(nil))

	resp := testutils.MakeRequestWithApp(app, http.MethodPost, "/api/money/parse", `{"value":"10.40 EUR"}`)
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusOK, resp.StatusCode)
}
