package api

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/millbooks/backend/internal/platform/config"
	"github.com/millbooks/backend/internal/platform/token"
)

// Handler implements the single-credential login.
type Handler struct {
	cfg    config.AuthConfig
	tokens *token.Service
}

func NewHandler(cfg config.AuthConfig, tokens *token.Service) *Handler {
	return &Handler{cfg: cfg, tokens: tokens}
}

// RegisterRoutes mounts the login route on the given group.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/login", h.Login)
}

// LoginReq is the login request body.
type LoginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /login. Credentials are compared against the configured
// pair; a match yields a signed session token.
func (h *Handler) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password are required."})
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.cfg.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.cfg.Password)) == 1
	if !userOK || !passOK {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "INVALID CREDENTIALS"})
		return
	}

	signed, err := h.tokens.Generate(req.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "INTERNAL SERVER ERROR"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "WELCOME ONBOARD " + strings.ToUpper(req.Username),
		"token":   signed,
	})
}
