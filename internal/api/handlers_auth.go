package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"aquamon.dev/aquamon/internal/auth"
	"aquamon.dev/aquamon/internal/store"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// handleRegister creates a new user account with a bcrypt-hashed
// credential. Duplicate emails and missing fields are client errors.
func (h *Handlers) handleRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Missing JSON in request"})
		return
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Missing username, email, or password"})
		return
	}

	ctx := c.Request.Context()

	var existing store.User
	err := h.db.WithContext(ctx).Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Email already registered"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		h.logger.Error("failed to check email", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Internal server error"})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.logger.Error("failed to hash password", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Internal server error"})
		return
	}

	user := store.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	}

	if err := h.db.WithContext(ctx).Create(&user).Error; err != nil {
		h.logger.Error("failed to create user", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Internal server error"})
		return
	}

	if h.metrics != nil {
		h.metrics.UsersRegistered.Inc()
	}

	h.logger.Info("user registered", "user_id", user.ID)

	c.JSON(http.StatusOK, gin.H{"msg": "User created successfully"})
}

// handleLogin verifies credentials and issues a bearer token bound to the
// user's email. Unknown email and bad password yield the same response so
// account existence does not leak.
func (h *Handlers) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Missing JSON in request"})
		return
	}

	ctx := c.Request.Context()

	var user store.User
	err := h.db.WithContext(ctx).Where("email = ?", req.Email).First(&user).Error
	if err != nil || !auth.CheckPassword(user.PasswordHash, req.Password) {
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			h.logger.Error("failed to look up user", "error", err)
		}
		if h.metrics != nil {
			h.metrics.AuthFailuresTotal.WithLabelValues("bad_credentials").Inc()
		}
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Bad email or password"})
		return
	}

	token, err := h.tokens.Issue(user.Email)
	if err != nil {
		h.logger.Error("failed to issue token", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Internal server error"})
		return
	}

	h.logger.Info("user logged in", "user_id", user.ID)

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"username":     user.Username,
		"user_id":      user.ID,
	})
}
