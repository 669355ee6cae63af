package handler

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bookong/internal/config"
	"bookong/internal/domains/user"
	"bookong/internal/shared/middleware"
	"bookong/internal/shared/response"
	"bookong/internal/shared/session"
	"bookong/pkg/token"
)

// AuthHandler drives the login/logout lifecycle: credentials in, a
// stored session plus a signed cookie out.
type AuthHandler struct {
	service  user.Service
	sessions session.Store
	tokens   *token.Manager
	cfg      config.SessionConfig
	secure   bool
}

func NewAuthHandler(svc user.Service, sessions session.Store, tokens *token.Manager, cfg config.SessionConfig, environment string) *AuthHandler {
	return &AuthHandler{
		service:  svc,
		sessions: sessions,
		tokens:   tokens,
		cfg:      cfg,
		secure:   environment == "production",
	}
}

// LoginForm - GET /auth/login
// Already-authenticated visitors are sent straight to the dashboard.
func (h *AuthHandler) LoginForm(c *gin.Context) {
	if middleware.CurrentSession(c) != nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"title": "Login"})
}

// Login - POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Username and password are required")
		return
	}

	dto, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		var vErrs validation.Errors
		if errors.As(err, &vErrs) {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid login request", vErrs)
			return
		}
		response.Unauthorized(c, "Invalid username or password")
		return
	}

	sess := session.New(dto.ID, dto.Username, dto.Role)
	if err := h.sessions.Save(c.Request.Context(), sess, h.cfg.TTL); err != nil {
		log.Error().Err(err).Msg("Failed to save session")
		response.InternalServerError(c, "An error occurred. Please try again.")
		return
	}

	signed, err := h.tokens.Generate(sess.ID)
	if err != nil {
		log.Error().Err(err).Msg("Failed to sign session token")
		response.InternalServerError(c, "An error occurred. Please try again.")
		return
	}

	c.SetCookie(h.cfg.CookieName, signed, int(h.cfg.TTL.Seconds()), "/", "", h.secure, true)

	log.Info().Str("username", dto.Username).Msg("User logged in")
	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout - GET /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if sess := middleware.CurrentSession(c); sess != nil {
		if err := h.sessions.Delete(c.Request.Context(), sess.ID); err != nil {
			log.Error().Err(err).Msg("Failed to delete session")
		}
	}

	c.SetCookie(h.cfg.CookieName, "", -1, "/", "", h.secure, true)
	c.Redirect(http.StatusFound, "/")
}

// Me - GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	if sess == nil {
		response.Unauthorized(c, "Not logged in")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"id":       sess.UserID,
		"username": sess.Username,
		"role":     sess.Role,
	})
}
