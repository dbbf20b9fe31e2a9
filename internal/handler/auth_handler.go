package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/florandefossez/capsules/internal/service"
	"github.com/florandefossez/capsules/internal/session"
)

type AuthHandler struct {
	auth     *service.AuthService
	sessions *session.Manager
}

func NewAuthHandler(auth *service.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions}
}

// ShowLogin renders the login form.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"Failed": false})
}

// Login authenticates the submitted credentials. Any failure re-renders
// the form without saying which factor was wrong.
func (h *AuthHandler) Login(c *gin.Context) {
	user, err := h.auth.Login(c.PostForm("username"), c.PostForm("password"))
	if err != nil {
		c.HTML(http.StatusOK, "login.html", gin.H{"Failed": true})
		return
	}
	if err := h.sessions.Establish(c.Writer, c.Request, user); err != nil {
		log.Error().Err(err).Msg("failed to save session")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// Logout destroys the current session and returns to the login page.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessions.Destroy(c.Writer, c.Request); err != nil {
		log.Error().Err(err).Msg("failed to destroy session")
	}
	c.Redirect(http.StatusFound, "/login")
}
