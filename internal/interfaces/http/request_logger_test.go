package http_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/warehome-api/internal/interfaces/http"
)

// observedRequest lo que el middleware entregó al observador.
type observedRequest struct {
	method string
	route  string
	code   int
}

// recordingObserver guarda cada observación sin copiar las cadenas recibidas.
type recordingObserver struct {
	mu   sync.Mutex
	seen []observedRequest
}

func (o *recordingObserver) ObserveHTTP(method, route string, code int, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.seen = append(o.seen, observedRequest{method: method, route: route, code: code})
}

// ──────────────────────────────────────────────────────────────────────────────
// RequestLogger
// ──────────────────────────────────────────────────────────────────────────────

func TestRequestLogger_ValoresRetenidosSobrevivenPeticionesPosteriores(t *testing.T) {
	obs := &recordingObserver{}
	var ids []string

	app := fiber.New()
	app.Use(apphttp.RequestLogger(zerolog.Nop(), obs))
	keepID := func(c *fiber.Ctx) error {
		ids = append(ids, apphttp.GetRequestID(c))
		return c.SendStatus(fiber.StatusOK)
	}
	app.Post("/items", keepID)
	app.Get("/items", keepID)
	app.Delete("/items", keepID)
	app.Put("/items", keepID)

	sent := []struct{ method, id string }{
		{http.MethodPost, "id-post-0001"},
		{http.MethodGet, "id-get-0002"},
		{http.MethodDelete, "id-delete-0003"},
		{http.MethodPut, "id-put-0004"},
	}
	for _, s := range sent {
		req := httptest.NewRequest(s.method, "/items", nil)
		req.Header.Set(apphttp.HeaderRequestID, s.id)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	require.Len(t, obs.seen, len(sent))
	require.Len(t, ids, len(sent))
	for i, s := range sent {
		assert.Equal(t, s.method, obs.seen[i].method, "método de la petición %d", i)
		assert.Equal(t, "/items", obs.seen[i].route)
		assert.Equal(t, http.StatusOK, obs.seen[i].code)
		assert.Equal(t, s.id, ids[i], "id de la petición %d", i)
	}
}

func TestRequestLogger_ErrorDelHandlerSeObservaConSuCodigo(t *testing.T) {
	obs := &recordingObserver{}
	app := fiber.New()
	app.Use(apphttp.RequestLogger(zerolog.Nop(), obs))
	app.Get("/falla", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "no")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/falla", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)

	require.Len(t, obs.seen, 1)
	assert.Equal(t, observedRequest{method: http.MethodGet, route: "/falla", code: fiber.StatusTeapot}, obs.seen[0])
}
