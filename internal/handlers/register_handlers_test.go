package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	portssvc "github.com/fintrackr/finance_tracker_app/internal/core/ports/services"
	"github.com/fintrackr/finance_tracker_app/internal/handlers"
	"github.com/fintrackr/finance_tracker_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

const testJWTSecret = "test-secret-key-that-is-long-enough"

// testConfig returns a minimal config for routing tests. IsProduction is set
// so the swagger routes stay out of the way.
func testConfig() *config.Config {
	return &config.Config{
		IsProduction:      true,
		JWTSecret:         testJWTSecret,
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "finance-tracker-test",
	}
}

// newTestRouter builds a gin engine with the full route table registered
// against the provided service container.
func newTestRouter(services *portssvc.ServiceContainer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers.RegisterRoutes(r, testConfig(), services)
	return r
}

// generateTestToken creates a signed JWT for testing protected routes.
func generateTestToken(t interface{ FailNow() }, userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "finance-tracker-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		t.FailNow()
	}
	return signed
}

func TestHealthRoute(t *testing.T) {
	router := newTestRouter(&portssvc.ServiceContainer{})

	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}
