package http

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"cv-builder/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAggregator struct {
	data map[string]interface{}
	err  error
}

func (a *stubAggregator) AggregateCV(context.Context, string) (map[string]interface{}, error) {
	return a.data, a.err
}

type stubEntitlements struct{ premium bool }

func (e *stubEntitlements) HasPremium(context.Context, string) (bool, error) {
	return e.premium, nil
}

func newTestApp(agg Aggregator, ent Entitlements) *fiber.App {
	p := usecase.NewProcessor(nil, nil, nil, "../../../templates", "")
	app := fiber.New()
	NewHandler(p, agg, ent).Register(app)
	return app
}

func TestHealthz(t *testing.T) {
	app := newTestApp(&stubAggregator{}, &stubEntitlements{})

	resp, err := app.Test(httptest.NewRequest("GET", "/healthz", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRenderCVRequiresUserID(t *testing.T) {
	app := newTestApp(&stubAggregator{}, &stubEntitlements{})

	resp, err := app.Test(httptest.NewRequest("GET", "/cv/basic", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRenderCVRejectsUnknownStyle(t *testing.T) {
	app := newTestApp(&stubAggregator{}, &stubEntitlements{})

	req := httptest.NewRequest("GET", "/cv/fancy", nil)
	req.Header.Set("X-User-ID", uuid.NewString())
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRenderCVAdvancedRequiresPremium(t *testing.T) {
	app := newTestApp(&stubAggregator{data: map[string]interface{}{"full_name": "jane doe"}}, &stubEntitlements{premium: false})

	req := httptest.NewRequest("GET", "/cv/advanced", nil)
	req.Header.Set("X-User-ID", uuid.NewString())
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusPaymentRequired, resp.StatusCode)
}

func TestRenderCVReturnsPDF(t *testing.T) {
	agg := &stubAggregator{data: map[string]interface{}{
		"full_name":        "jane doe",
		"email":            "jane@example.com",
		"technical_skills": []interface{}{"Go"},
	}}
	app := newTestApp(agg, &stubEntitlements{premium: true})

	req := httptest.NewRequest("GET", "/cv/advanced", nil)
	req.Header.Set("X-User-ID", uuid.NewString())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "_cv_advanced.pdf")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), "%PDF"))
}

func TestRenderCVJSONFormat(t *testing.T) {
	agg := &stubAggregator{data: map[string]interface{}{"full_name": "jane doe"}}
	app := newTestApp(agg, &stubEntitlements{})

	req := httptest.NewRequest("GET", "/cv/basic?format=json", nil)
	req.Header.Set("X-User-ID", uuid.NewString())
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "jane doe")
}

func TestRenderCVAggregationFailure(t *testing.T) {
	app := newTestApp(&stubAggregator{err: errors.New("db down")}, &stubEntitlements{})

	req := httptest.NewRequest("GET", "/cv/basic", nil)
	req.Header.Set("X-User-ID", uuid.NewString())
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
