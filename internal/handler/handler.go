// Package handler holds the gin handlers for the /auth, /admin and
// /protected route groups.
package handler

import (
	"lunchscan/internal/attendance"
	"lunchscan/internal/auth"
)

// QRMailer delivers the QR check-in mail with an inline image.
type QRMailer interface {
	SendWithInlinePNG(to, subject, html, cid string, png []byte) error
}

type Handler struct {
	auth       *auth.Service
	attendance *attendance.Service
	mail       QRMailer
}

func New(authSvc *auth.Service, attSvc *attendance.Service, mail QRMailer) *Handler {
	return &Handler{auth: authSvc, attendance: attSvc, mail: mail}
}
