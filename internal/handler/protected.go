package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"lunchscan/internal/auth"
	"lunchscan/internal/respond"
)

// Dashboard is an illustrative gated endpoint echoing token identity.
func (h *Handler) Dashboard(c *gin.Context) {
	claims, _ := auth.ClaimsFrom(c)
	respond.OK(c, http.StatusOK, "Dashboard data retrieved successfully", gin.H{
		"adminId":    claims.AdminID,
		"adminName":  claims.Name,
		"adminEmail": claims.Email,
		"role":       claims.Role,
		"dashboard": gin.H{
			"totalUsers":     150,
			"activeSessions": 25,
			"recentActivity": []gin.H{
				{"action": "User login", "time": time.Now().UTC().Format(time.RFC3339)},
				{"action": "Password reset", "time": time.Now().UTC().Format(time.RFC3339)},
			},
		},
	})
}

// AdminInfo is a second gated example endpoint.
func (h *Handler) AdminInfo(c *gin.Context) {
	claims, _ := auth.ClaimsFrom(c)
	respond.OK(c, http.StatusOK, "Admin information retrieved successfully", gin.H{
		"adminId":     claims.AdminID,
		"name":        claims.Name,
		"email":       claims.Email,
		"role":        claims.Role,
		"permissions": []string{"read", "write", "delete"},
		"lastLogin":   time.Now().UTC().Format(time.RFC3339),
	})
}
