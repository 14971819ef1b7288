package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/auramart-backend/internal/catalog"
	"github.com/your-org/auramart-backend/internal/config"
	"github.com/your-org/auramart-backend/internal/infrastructure/kv"
	"github.com/your-org/auramart-backend/internal/interfaces/http/middleware"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	cfg := &config.Config{
		Session: config.SessionConfig{CookieName: "session_id", TTL: time.Hour},
	}

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	router := gin.New()
	router.Use(middleware.Session(cfg))
	SetupRoutes(router.Group("/api/v1"), catalog.New(), kv.Wrap(rdb), cfg, logger)

	return router
}

type client struct {
	router *gin.Engine
	cookie string
}

func (c *client) do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.cookie != "" {
		req.Header.Set("Cookie", c.cookie)
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	// Keep the session cookie for subsequent requests
	if c.cookie == "" {
		for _, sc := range w.Result().Cookies() {
			if sc.Name == "session_id" {
				c.cookie = sc.Name + "=" + sc.Value
			}
		}
	}

	var parsed map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}

	return w, parsed
}

func data(body map[string]interface{}) map[string]interface{} {
	d, _ := body["data"].(map[string]interface{})
	return d
}

func TestProductListingFilters(t *testing.T) {
	c := &client{router: newTestRouter(t)}

	w, body := c.do(t, http.MethodGet, "/api/v1/products?category=audio&sort_by=price-low", "")
	require.Equal(t, http.StatusOK, w.Code)

	products := data(body)["products"].([]interface{})
	require.Len(t, products, 2)
	first := products[0].(map[string]interface{})
	second := products[1].(map[string]interface{})
	assert.Equal(t, float64(1), first["id"])
	assert.Equal(t, float64(4), second["id"])
}

func TestCartFlow(t *testing.T) {
	c := &client{router: newTestRouter(t)}

	// Add product 1 twice and product 3 once
	for _, payload := range []string{
		`{"product_id":1}`, `{"product_id":1}`, `{"product_id":3}`,
	} {
		w, _ := c.do(t, http.MethodPost, "/api/v1/cart/items", payload)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w, body := c.do(t, http.MethodGet, "/api/v1/cart", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(3), data(body)["count"])
	assert.InDelta(t, 797.00, data(body)["total"].(float64), 0.001)
	assert.Len(t, data(body)["items"].([]interface{}), 2)

	// Quantity zero removes the item
	w, body = c.do(t, http.MethodPut, "/api/v1/cart/items/1", `{"quantity":0}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, data(body)["items"].([]interface{}), 1)
	assert.InDelta(t, 199.00, data(body)["total"].(float64), 0.001)
}

func TestAddUnknownProductIs404(t *testing.T) {
	c := &client{router: newTestRouter(t)}

	w, _ := c.do(t, http.MethodPost, "/api/v1/cart/items", `{"product_id":42}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCheckoutClearsCartAndCreditsPoints(t *testing.T) {
	c := &client{router: newTestRouter(t)}

	w, _ := c.do(t, http.MethodPost, "/api/v1/cart/items", `{"product_id":5}`)
	require.Equal(t, http.StatusOK, w.Code)

	w, body := c.do(t, http.MethodPost, "/api/v1/checkout", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(999), data(body)["points_awarded"])

	w, body = c.do(t, http.MethodGet, "/api/v1/cart", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), data(body)["count"])

	w, body = c.do(t, http.MethodGet, "/api/v1/rewards", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(999), data(body)["points"])
	assert.Equal(t, float64(2), data(body)["level"])
}

func TestCheckoutEmptyCartIsBadRequest(t *testing.T) {
	c := &client{router: newTestRouter(t)}

	w, _ := c.do(t, http.MethodPost, "/api/v1/checkout", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWishlistToggleSequence(t *testing.T) {
	c := &client{router: newTestRouter(t)}

	want := []bool{true, false, true}
	for _, expected := range want {
		w, body := c.do(t, http.MethodPost, "/api/v1/wishlist/5/toggle", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, expected, data(body)["in_wishlist"])
	}

	w, body := c.do(t, http.MethodGet, "/api/v1/wishlist/5", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, data(body)["in_wishlist"])
}

func TestProductDetailRecordsRecentlyViewed(t *testing.T) {
	c := &client{router: newTestRouter(t)}

	for _, id := range []string{"1", "2", "1"} {
		w, _ := c.do(t, http.MethodGet, "/api/v1/products/"+id, "")
		require.Equal(t, http.StatusOK, w.Code)
	}

	w, body := c.do(t, http.MethodGet, "/api/v1/recently-viewed", "")
	require.Equal(t, http.StatusOK, w.Code)

	ids := data(body)["ids"].([]interface{})
	require.Len(t, ids, 2)
	assert.Equal(t, float64(1), ids[0])
	assert.Equal(t, float64(2), ids[1])
}

func TestSessionsAreIsolated(t *testing.T) {
	router := newTestRouter(t)

	first := &client{router: router}
	w, _ := first.do(t, http.MethodPost, "/api/v1/cart/items", `{"product_id":1}`)
	require.Equal(t, http.StatusOK, w.Code)

	second := &client{router: router}
	w, body := second.do(t, http.MethodGet, "/api/v1/cart", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), data(body)["count"])
}
