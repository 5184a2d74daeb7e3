package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLoggerCarriesAuthenticatedUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hook := logrustest.NewGlobal()
	defer hook.Reset()

	router := gin.New()
	router.Use(RequestLogger())
	router.GET("/ping", func(c *gin.Context) {
		c.Set("login", "acastro")
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping?verbose=1", nil)
	router.ServeHTTP(w, req)

	require.NotEmpty(t, hook.Entries)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "request completed", entry.Message)
	assert.Equal(t, "acastro", entry.Data["user"])
	assert.Equal(t, http.MethodGet, entry.Data["method"])
	assert.Equal(t, "/ping?verbose=1", entry.Data["path"])
	assert.Equal(t, http.StatusOK, entry.Data["status"])
}

func TestRequestLoggerAnonymousRejection(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hook := logrustest.NewGlobal()
	defer hook.Reset()

	router := gin.New()
	router.Use(RequestLogger())
	router.GET("/denied", func(c *gin.Context) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/denied", nil)
	router.ServeHTTP(w, req)

	require.NotEmpty(t, hook.Entries)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "unknown", entry.Data["user"])
	assert.Equal(t, http.StatusUnauthorized, entry.Data["status"])
}
