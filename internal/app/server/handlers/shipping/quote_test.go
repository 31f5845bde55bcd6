package shipping

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/app/domains/apimodel/response"
	"storefront/internal/app/domains/entity/etshipping"
	"storefront/internal/app/domains/modules/mdshipping"
	"storefront/internal/app/domains/services/svshipping"
	"storefront/internal/app/infra/postal"
	"storefront/internal/app/pkg/ginx"
	"storefront/internal/app/pkg/logger"
	"storefront/internal/app/server/middlewares"
)

func newRouter(t *testing.T, formula string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	points, err := postal.Embedded(context.Background(), logger.NewNop())
	require.NoError(t, err)
	table, err := etshipping.NewPostalTable(points)
	require.NoError(t, err)
	est, err := mdshipping.NewDistanceEstimator(table, "11549")
	require.NoError(t, err)
	f, err := mdshipping.NewFormula(formula, mdshipping.DefaultRates())
	require.NoError(t, err)

	svc := svshipping.NewQuoteService(est, mdshipping.NewPricingEngine(nil, f, mdshipping.DefaultRates()), logger.NewNop(), "3-5 business days")

	r := gin.New()
	r.Use(middlewares.ErrorHandler(logger.NewNop(), false))
	r.POST("/api/v1/shipping/quote", NewShippingHandler(svc).Quote)
	return r
}

func post(r http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/shipping/quote", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestQuote_OK(t *testing.T) {
	w := post(newRouter(t, mdshipping.FormulaZone), `{"destinationZip":"90210","destinationCountry":"US"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	for _, key := range []string{"success", "shippingCost", "breakdown", "distance", "city", "state",
		"currency", "estimatedDelivery", "algorithm", "factors"} {
		assert.Contains(t, raw, key)
	}

	var resp response.ShippingQuoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 41.00, resp.ShippingCost)
	assert.Equal(t, 17.50, resp.Breakdown.Distance)
	assert.InDelta(t, 2470, resp.Distance, 30)
	assert.Equal(t, "Beverly Hills", resp.City)
	assert.Equal(t, "CA", resp.State)
	assert.Equal(t, "USD", resp.Currency)
	assert.Equal(t, "3-5 business days", resp.EstimatedDelivery)
	assert.Equal(t, "zone", resp.Algorithm)
	assert.NotEmpty(t, resp.Factors)
}

func TestQuote_Itemized(t *testing.T) {
	w := post(newRouter(t, mdshipping.FormulaItemized), `{"destinationZip":"90210","destinationCountry":"us","weight":3}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp response.ShippingQuoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 47.65, resp.ShippingCost)
	assert.Equal(t, "itemized", resp.Algorithm)
	assert.Len(t, resp.Factors, 7)
}

func TestQuote_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"missing country", `{"destinationZip":"90210"}`, "destinationCountry"},
		{"missing zip", `{"destinationCountry":"US"}`, "destinationZip"},
		{"unsupported region", `{"destinationZip":"90210","destinationCountry":"CA"}`, "CA"},
		{"unknown zip", `{"destinationZip":"59999","destinationCountry":"US"}`, "59999"},
		{"malformed zip", `{"destinationZip":"ABCDE","destinationCountry":"US"}`, "ABCDE"},
		{"zero weight", `{"destinationZip":"90210","destinationCountry":"US","weight":0}`, "weight"},
		{"bad json", `{"destinationZip":`, ""},
	}

	r := newRouter(t, mdshipping.FormulaZone)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(r, tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code)

			var resp ginx.Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.NotEmpty(t, resp.Error)
			assert.Contains(t, resp.Error, tt.wantErr)
		})
	}
}
