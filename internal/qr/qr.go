// Package qr encodes check-in payloads as QR PNG images.
package qr

import (
	"encoding/json"

	qrcode "github.com/skip2/go-qrcode"
)

// Payload is the data embedded in an employee's lunch QR code.
type Payload struct {
	EmpID string `json:"empId"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PNG renders the payload as a QR code PNG, sized for inline email display.
func PNG(p Payload) ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return qrcode.Encode(string(data), qrcode.Medium, 256)
}
