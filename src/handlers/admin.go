package handlers

import (
	"errors"
	"net/http"

	"github.com/formworks/survey-server/src/services"
	"github.com/formworks/survey-server/src/validation"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// sessionCookie is the name of the session token cookie.
const sessionCookie = "token"

// CookiePolicy captures the deployment-dependent cookie attributes. A
// cross-site frontend needs SameSite=None with Secure; a same-site
// deployment can use Strict.
type CookiePolicy struct {
	Secure    bool
	CrossSite bool
}

func (p CookiePolicy) sameSite() http.SameSite {
	if p.CrossSite {
		return http.SameSiteNoneMode
	}
	return http.SameSiteStrictMode
}

// AdminHandler handles admin authentication
type AdminHandler struct {
	admins  *services.AdminService
	tokens  *services.TokenService
	cookies CookiePolicy
	maxAge  int
}

// NewAdminHandler creates a new admin handler. maxAge is the cookie
// lifetime in seconds and matches the token TTL.
func NewAdminHandler(admins *services.AdminService, tokens *services.TokenService, cookies CookiePolicy, maxAge int) *AdminHandler {
	return &AdminHandler{
		admins:  admins,
		tokens:  tokens,
		cookies: cookies,
		maxAge:  maxAge,
	}
}

// LoginRequest represents the request body for admin login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// HandleLogin authenticates an admin and sets the session token cookie.
func (ah *AdminHandler) HandleLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request body",
		})
		return
	}

	if err := validation.ValidateLogin(validation.LoginInput(req)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Username and password are required",
		})
		return
	}

	admin, err := ah.admins.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid credentials",
			})
			return
		}
		log.Error().Err(err).Msg("login failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Internal server error",
		})
		return
	}

	token, err := ah.tokens.Issue(admin.ID, admin.Username)
	if err != nil {
		log.Error().Err(err).Msg("failed to issue session token")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Internal server error",
		})
		return
	}

	c.SetSameSite(ah.cookies.sameSite())
	c.SetCookie(sessionCookie, token, ah.maxAge, "/", "", ah.cookies.Secure, true)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Admin logged in successfully",
		"user":    gin.H{"username": admin.Username},
	})
}

// HandleLogout clears the session cookie. It is idempotent: logging out
// without a session still responds 200.
func (ah *AdminHandler) HandleLogout(c *gin.Context) {
	c.SetSameSite(ah.cookies.sameSite())
	c.SetCookie(sessionCookie, "", -1, "/", "", ah.cookies.Secure, true)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged out successfully",
	})
}
