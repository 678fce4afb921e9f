package server

import (
	"net/http/httptest"
	"testing"

	"soundkey-be/internal/bootstrap"
	"soundkey-be/internal/config"
	"soundkey-be/internal/pkg/logger"
	"soundkey-be/internal/repository/memory"
	"soundkey-be/internal/repository/unitofwork"
	"soundkey-be/pkg/corpus"
	"soundkey-be/pkg/notation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	generated, err := corpus.Generate(notation.NewParser())
	require.NoError(t, err)

	factory := unitofwork.NewMemoryRepositoryFactory(
		memory.NewChordRepository(generated.Chords...),
		memory.NewScaleRepository(generated.ScaleGroups, generated.Scales...),
	)
	cfg := &config.Config{App: config.AppConfig{Port: "0", CorsAllowedOrigins: "http://localhost:5173"}}
	return New(cfg, bootstrap.NewContainerWithFactory(factory, logger.NewNopLogger()))
}

func TestServer_Routes(t *testing.T) {
	srv := newTestServer(t)

	for _, url := range []string{
		"/api/chord/v1?root=C&category=Triad",
		"/api/chord/v1/deductions?notes=C,E,G,B",
		"/api/scale/v1?root=C&group_id=1",
		"/api/scale/v1/search?q=dorian",
	} {
		t.Run(url, func(t *testing.T) {
			resp, err := srv.GetApp().Test(httptest.NewRequest("GET", url, nil))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
			assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
		})
	}
}

func TestServer_ValidationErrorsAreBadRequests(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.GetApp().Test(httptest.NewRequest("GET", "/api/scale/v1/modes?root=C&mode=bebop", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestServer_UnknownRoute(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.GetApp().Test(httptest.NewRequest("GET", "/api/notebook/v1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
