package handler

import (
	"net/http"
	"time"

	appidentity "github.com/acme/dashboard/internal/application/identity"
	"github.com/acme/dashboard/internal/infrastructure/auth"
	"github.com/acme/dashboard/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
)

// DashboardPath is where a successful login lands
const DashboardPath = "/dashboard"

// AuthHandler handles credential sign-in
type AuthHandler struct {
	authenticator *appidentity.Authenticator
	jwtService    *auth.JWTService
	cookie        config.CookieConfig
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authenticator *appidentity.Authenticator, jwtService *auth.JWTService, cookie config.CookieConfig) *AuthHandler {
	return &AuthHandler{
		authenticator: authenticator,
		jwtService:    jwtService,
		cookie:        cookie,
	}
}

// RegisterRoutes registers auth routes
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/login", h.Login)
	rg.POST("/logout", h.Logout)
}

// Login authenticates the submitted credentials. Classified failures come
// back as a message with a 401; anything unclassified is a server fault.
func (h *AuthHandler) Login(c *gin.Context) {
	if !parseForm(c) {
		return
	}

	creds := appidentity.Credentials{
		Email:    c.Request.PostForm.Get("email"),
		Password: c.Request.PostForm.Get("password"),
	}

	user, message, err := h.authenticator.Authenticate(c.Request.Context(), creds)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error."})
		return
	}
	if message != "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": message})
		return
	}

	token, expiresAt, err := h.jwtService.GenerateSessionToken(user.ID, user.Email)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error."})
		return
	}

	c.SetSameSite(sameSiteMode(h.cookie.SameSite))
	c.SetCookie(
		h.cookie.Name,
		token,
		int(time.Until(expiresAt).Seconds()),
		h.cookie.Path,
		h.cookie.Domain,
		h.cookie.Secure,
		true,
	)
	c.Redirect(http.StatusSeeOther, DashboardPath)
}

// Logout clears the session cookie
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(sameSiteMode(h.cookie.SameSite))
	c.SetCookie(h.cookie.Name, "", -1, h.cookie.Path, h.cookie.Domain, h.cookie.Secure, true)
	c.Redirect(http.StatusSeeOther, "/login")
}

func sameSiteMode(mode string) http.SameSite {
	switch mode {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
