package auth

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fleet-operations-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *models.User {
	return &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Login:     "acastro",
		FirstName: "Ana",
		LastName:  "Castro",
		Email:     "acastro@example.com",
		Active:    true,
		Role: &models.Role{
			Name:     "operator",
			Title:    "Operator",
			Category: models.RoleCategoryOperations,
		},
	}
}

func TestJWTRoundTrip(t *testing.T) {
	svc := NewService("test-signing-key", time.Hour, nil, nil)
	user := testUser()

	token, err := svc.GenerateJWT(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "acastro", claims.Login)
	assert.Equal(t, "acastro@example.com", claims.Email)
	assert.Equal(t, "operator", claims.RoleName)
	assert.Equal(t, "fleet-operations-backend", claims.Issuer)
}

func TestValidateJWTRejectsWrongKey(t *testing.T) {
	issuer := NewService("key-one", time.Hour, nil, nil)
	verifier := NewService("key-two", time.Hour, nil, nil)

	token, err := issuer.GenerateJWT(testUser())
	require.NoError(t, err)

	_, err = verifier.ValidateJWT(token)
	assert.Error(t, err)
}

func TestValidateJWTRejectsExpired(t *testing.T) {
	svc := NewService("test-signing-key", -time.Minute, nil, nil)

	token, err := svc.GenerateJWT(testUser())
	require.NoError(t, err)

	_, err = svc.ValidateJWT(token)
	assert.Error(t, err)
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	svc := NewService("test-signing-key", time.Hour, nil, nil)
	_, err := svc.ValidateJWT("not.a.token")
	assert.Error(t, err)
}

func TestPermissionConfigGrants(t *testing.T) {
	config := &PermissionConfig{Roles: map[string][]string{
		"admin":    {"*"},
		"operator": {"schedules:write", "maneuvers:write"},
	}}

	assert.True(t, config.Grants("admin", "users:write"))
	assert.True(t, config.Grants("operator", "schedules:write"))
	assert.False(t, config.Grants("operator", "users:write"))
	assert.False(t, config.Grants("unknown", "schedules:write"))
}

func TestLoadPermissionConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "permissions.yaml")
	content := "roles:\n  admin:\n    - \"*\"\n  inspector:\n    - vessels:write\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	config, err := LoadPermissionConfig(path)
	require.NoError(t, err)
	assert.True(t, config.Grants("admin", "anything"))
	assert.True(t, config.Grants("inspector", "vessels:write"))
	assert.False(t, config.Grants("inspector", "users:write"))
}

func TestLoadPermissionConfigMissingFile(t *testing.T) {
	config, err := LoadPermissionConfig("/nonexistent/permissions.yaml")
	require.NoError(t, err)
	assert.False(t, config.Grants("admin", "anything"))
}

func TestRequireAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := NewService("test-signing-key", time.Hour, nil, nil)
	mw := NewMiddleware(svc)

	router := gin.New()
	router.GET("/protected", mw.RequireAuth(), func(c *gin.Context) {
		claims := ClaimsFromContext(c)
		require.NotNil(t, claims)
		c.JSON(http.StatusOK, gin.H{"login": claims.Login})
	})

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Token abc")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		token, err := svc.GenerateJWT(testUser())
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "acastro")
	})
}
