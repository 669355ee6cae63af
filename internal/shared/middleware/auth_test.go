package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookong/internal/shared/session"
	"bookong/pkg/token"
)

const testCookie = "test_session"

func newGatedRouter(tokens *token.Manager, store session.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(LoadSession(testCookie, tokens, store))
	r.POST("/protected", RequireSession(), func(c *gin.Context) {
		sess := CurrentSession(c)
		c.JSON(http.StatusOK, gin.H{"username": sess.Username})
	})
	return r
}

func TestRequireSessionRedirectsAnonymous(t *testing.T) {
	tokens := token.NewManager("test-secret", time.Hour)
	r := newGatedRouter(tokens, session.NewMemoryStore())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/protected", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, LoginPath, w.Header().Get("Location"))
}

func TestRequireSessionAcceptsValidCookie(t *testing.T) {
	tokens := token.NewManager("test-secret", time.Hour)
	store := session.NewMemoryStore()
	r := newGatedRouter(tokens, store)

	sess := session.New(1, "admin", "admin")
	require.NoError(t, store.Save(t.Context(), sess, time.Hour))
	signed, err := tokens.Generate(sess.ID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: signed})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin")
}

func TestRequireSessionRejectsTamperedCookie(t *testing.T) {
	tokens := token.NewManager("test-secret", time.Hour)
	store := session.NewMemoryStore()
	r := newGatedRouter(tokens, store)

	sess := session.New(1, "admin", "admin")
	require.NoError(t, store.Save(t.Context(), sess, time.Hour))

	// Signed with a different secret, so the signature check fails.
	forged, err := token.NewManager("other-secret", time.Hour).Generate(sess.ID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: forged})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
}

func TestRequireSessionRejectsUnknownSession(t *testing.T) {
	tokens := token.NewManager("test-secret", time.Hour)
	r := newGatedRouter(tokens, session.NewMemoryStore())

	// Valid signature but the session was never stored (or expired
	// server-side).
	signed, err := tokens.Generate("gone-session-id")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: signed})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
}

func TestCurrentSessionNilForAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Nil(t, CurrentSession(c))
}
