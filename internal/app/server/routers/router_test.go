package routers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/app/config"
	"storefront/internal/app/pkg/logger"
)

func TestHealthAndAdminGate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg, err := config.Load("")
	require.NoError(t, err)

	// handlers are not reached: /health is inline and admin routes stop at the gate
	cfg.Shipping.Formula = "ZONE"
	r := SetupRoutes(cfg, logger.NewNop(), Handlers{ShippingFormula: "zone"})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "zone", body["formula"])

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/orders", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}
