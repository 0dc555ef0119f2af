package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"car-rental-backend/models"
	"car-rental-backend/services"
	"car-rental-backend/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestBearerToken(t *testing.T) {
	cases := map[string]string{
		"Bearer abc":   "abc",
		"bearer  abc ": "abc",
		"Basic abc":    "",
		"":             "",
		"Bearerabc":    "",
	}
	for header, want := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Request.Header.Set("Authorization", header)
		assert.Equal(t, want, bearerToken(c), header)
	}
}

func TestRequireAuthThenAdmin(t *testing.T) {
	db := testutil.NewDB(t)
	users := services.NewUserService(db)
	sessions, err := services.NewSessionService("middleware-test-secret-0123", time.Hour)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/me", RequireAuth(sessions, users), func(c *gin.Context) {
		u, ok := CurrentUser(c)
		require.True(t, ok)
		c.String(http.StatusOK, u.Username)
	})
	r.GET("/admin", RequireAuth(sessions, users), RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	get := func(path, token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	plain, err := users.Create("pat", "pw", models.RoleUser)
	require.NoError(t, err)
	admin, err := users.Create("root", "pw", models.RoleAdmin)
	require.NoError(t, err)
	plainToken, _, err := sessions.Issue(plain)
	require.NoError(t, err)
	adminToken, _, err := sessions.Issue(admin)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, get("/me", "").Code)
	assert.Equal(t, http.StatusUnauthorized, get("/me", "bogus").Code)

	w := get("/me", plainToken)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pat", w.Body.String())

	assert.Equal(t, http.StatusForbidden, get("/admin", plainToken).Code)
	assert.Equal(t, http.StatusNoContent, get("/admin", adminToken).Code)

	ghostToken, _, err := sessions.Issue(&models.User{ID: 999})
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, get("/me", ghostToken).Code)
}

func TestRequireAdmin_WithoutAuth(t *testing.T) {
	r := gin.New()
	r.GET("/admin", RequireAdmin(), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
