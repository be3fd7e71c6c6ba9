package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"lunchscan/internal/auth"
	"lunchscan/internal/respond"
)

type signupRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// Signup creates an admin account and returns a token with the redacted view.
func (h *Handler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Fail(c, http.StatusBadRequest, "Email, name, and password are required")
		return
	}

	creds, err := h.auth.Signup(c.Request.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		respond.Error(c, err, "Internal server error during signup")
		return
	}
	respond.OK(c, http.StatusCreated, "Admin signed up successfully", creds)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates an admin and returns a fresh token.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Fail(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	creds, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respond.Error(c, err, "Internal server error during login")
		return
	}
	respond.OK(c, http.StatusOK, "Login successful", creds)
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

// ForgotPassword resets the credential and mails the replacement. The reply
// for unknown emails is indistinguishable from a successful reset.
func (h *Handler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Fail(c, http.StatusBadRequest, "Email is required")
		return
	}

	msg, err := h.auth.ForgotPassword(c.Request.Context(), req.Email)
	if err != nil {
		respond.Error(c, err, "Internal server error during password reset")
		return
	}
	respond.OK(c, http.StatusOK, msg, nil)
}

// VerifyToken validates a supplied bearer token and echoes its claims.
func (h *Handler) VerifyToken(c *gin.Context) {
	token := headerToken(c)
	if token == "" {
		respond.Fail(c, http.StatusUnauthorized, "No token provided")
		return
	}

	claims, err := auth.Parse(token, h.auth.Secret())
	if err != nil {
		if errors.Is(err, auth.ErrTokenExpired) {
			respond.Fail(c, http.StatusUnauthorized, "Token expired")
			return
		}
		respond.Fail(c, http.StatusUnauthorized, "Invalid token")
		return
	}
	respond.OK(c, http.StatusOK, "Token is valid", claims)
}

// Profile returns the calling admin's redacted record. The route is wired
// without the gate middleware, matching the original configuration; the
// handler verifies the bearer token itself.
func (h *Handler) Profile(c *gin.Context) {
	token := headerToken(c)
	if token == "" {
		respond.Fail(c, http.StatusUnauthorized, "No token provided")
		return
	}

	claims, err := auth.Parse(token, h.auth.Secret())
	if err != nil {
		respond.Fail(c, http.StatusUnauthorized, "Invalid token")
		return
	}

	view, err := h.auth.Profile(c.Request.Context(), claims.AdminID)
	if err != nil {
		respond.Error(c, err, "Internal server error")
		return
	}
	respond.OK(c, http.StatusOK, "Profile retrieved successfully", view)
}

// headerToken pulls the second segment of the Authorization header, the way
// the auth endpoints read it.
func headerToken(c *gin.Context) string {
	parts := strings.Split(c.GetHeader("Authorization"), " ")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}
