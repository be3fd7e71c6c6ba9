package handler

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"lunchscan/internal/excel"
	"lunchscan/internal/mailer"
	"lunchscan/internal/qr"
	"lunchscan/internal/respond"
)

const maxUploadBytes = 10 << 20

// GetAllUsers lists every employee record with its lunch status.
func (h *Handler) GetAllUsers(c *gin.Context) {
	employees, err := h.attendance.ListAll(c.Request.Context())
	if err != nil {
		respond.Error(c, err, "Error in Fetching All Users Data !")
		return
	}
	respond.OK(c, http.StatusOK, "Users fetched successfully", employees)
}

type updateStatusRequest struct {
	EmpID string `json:"empId"`
}

// UpdateUserStatus applies a scan event to one employee.
func (h *Handler) UpdateUserStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Fail(c, http.StatusBadRequest, "empId is required")
		return
	}

	result, err := h.attendance.Scan(c.Request.Context(), req.EmpID)
	if err != nil {
		respond.Error(c, err, "Error in Updating Users Status!")
		return
	}
	respond.OK(c, http.StatusOK, result.Message, nil)
}

// UploadExcel bulk-imports employee eligibility from an .xlsx upload.
func (h *Handler) UploadExcel(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		respond.Fail(c, http.StatusBadRequest, "No file uploaded.")
		return
	}
	if header.Size > maxUploadBytes {
		respond.Fail(c, http.StatusUnprocessableEntity, "File size exceeds 10MB limit.")
		return
	}
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".xlsx" && ext != ".xls" {
		respond.Fail(c, http.StatusUnprocessableEntity, "Only XLSX and XLS files are allowed.")
		return
	}

	file, err := header.Open()
	if err != nil {
		respond.Fail(c, http.StatusInternalServerError, "Error in file upload")
		return
	}
	defer file.Close()

	rows, err := excel.ReadRows(file)
	if err != nil {
		respond.Fail(c, http.StatusUnprocessableEntity, "Invalid spreadsheet file.")
		return
	}

	imported, err := h.attendance.Import(c.Request.Context(), rows)
	if err != nil {
		respond.Error(c, err, "An unknown error occurred.")
		return
	}
	respond.OK(c, http.StatusOK, fmt.Sprintf("Imported %d users.", imported), nil)
}

type generateQRRequest struct {
	EmpID string `json:"empId"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// GenerateQR encodes the employee payload as a QR PNG and mails it inline.
func (h *Handler) GenerateQR(c *gin.Context) {
	var req generateQRRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.EmpID == "" || req.Name == "" || req.Email == "" {
		respond.Fail(c, http.StatusBadRequest, "empId, name, and email are required")
		return
	}

	png, err := qr.PNG(qr.Payload{EmpID: req.EmpID, Name: req.Name, Email: req.Email})
	if err != nil {
		respond.Fail(c, http.StatusInternalServerError, "Failed to generate QR code.")
		return
	}

	html := mailer.QRCodeHTML(req.Name, req.EmpID, req.Email)
	if err := h.mail.SendWithInlinePNG(req.Email, "Your Lunch Scan QR Code", html, mailer.QRCodeCID, png); err != nil {
		respond.Fail(c, http.StatusInternalServerError, "Failed to send email.")
		return
	}
	respond.OK(c, http.StatusOK, "QR code generated and sent to email successfully.", nil)
}
