package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func gateRouter(mandatory bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	gate := RequireAuth(testSecret)
	if !mandatory {
		gate = OptionalAuth(testSecret)
	}
	r.GET("/x", gate, func(c *gin.Context) {
		claims, ok := ClaimsFrom(c)
		c.JSON(http.StatusOK, gin.H{"authed": ok, "adminId": claims.AdminID})
	})
	return r
}

func doGet(t *testing.T, r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func messageOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body.Message
}

func TestRequireAuth(t *testing.T) {
	admin := testAdmin()
	valid, err := Issue(admin, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	expired, err := Issue(admin, testSecret, 0)
	if err != nil {
		t.Fatalf("issue expired: %v", err)
	}
	foreign, err := Issue(admin, "some-other-secret", time.Hour)
	if err != nil {
		t.Fatalf("issue foreign: %v", err)
	}

	r := gateRouter(true)

	tests := []struct {
		name        string
		header      string
		wantStatus  int
		wantMessage string
	}{
		{"missing header", "", http.StatusUnauthorized, "Access token is required"},
		{"scheme only", "Bearer", http.StatusUnauthorized, "Access token is required"},
		{"empty token", "Bearer ", http.StatusUnauthorized, "Access token is required"},
		{"extra segments", "Bearer " + valid + " extra", http.StatusUnauthorized, "Invalid Token"},
		{"garbage token", "Bearer not-a-token", http.StatusUnauthorized, "Invalid token"},
		{"wrong signature", "Bearer " + foreign, http.StatusUnauthorized, "Invalid token"},
		{"expired token", "Bearer " + expired, http.StatusUnauthorized, "Token has expired"},
		{"valid token", "Bearer " + valid, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGet(t, r, tt.header)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantMessage != "" {
				if got := messageOf(t, w); got != tt.wantMessage {
					t.Errorf("message = %q, want %q", got, tt.wantMessage)
				}
			}
		})
	}
}

func TestRequireAuthAttachesClaims(t *testing.T) {
	admin := testAdmin()
	token, err := Issue(admin, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	w := doGet(t, gateRouter(true), "Bearer "+token)
	var body struct {
		Authed  bool   `json:"authed"`
		AdminID string `json:"adminId"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Authed || body.AdminID != admin.UID {
		t.Errorf("claims not attached: %+v", body)
	}
}

func TestOptionalAuth(t *testing.T) {
	admin := testAdmin()
	token, err := Issue(admin, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	r := gateRouter(false)

	tests := []struct {
		name       string
		header     string
		wantAuthed bool
	}{
		{"no header still proceeds", "", false},
		{"invalid token ignored", "Bearer junk", false},
		{"expired-shape header ignored", "Bearer a b c", false},
		{"valid token attaches identity", "Bearer " + token, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGet(t, r, tt.header)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", w.Code)
			}
			var body struct {
				Authed bool `json:"authed"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Authed != tt.wantAuthed {
				t.Errorf("authed = %v, want %v", body.Authed, tt.wantAuthed)
			}
		})
	}
}
