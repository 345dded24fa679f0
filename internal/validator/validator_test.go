package validator

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/classforge/classroom-backend/internal/model"
)

func bindJSON(t *testing.T, body string, dst interface{}) map[string]string {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")

	return Bind(c, dst)
}

func TestMain(m *testing.M) {
	Setup()
	m.Run()
}

func TestBindValidPayload(t *testing.T) {
	var req model.AddToClassRequest
	fields := bindJSON(t, `{"user_name":"jdoe"}`, &req)
	if fields != nil {
		t.Fatalf("Bind returned fields %v, want nil", fields)
	}
	if req.UserName != "jdoe" {
		t.Errorf("UserName = %q, want %q", req.UserName, "jdoe")
	}
}

func TestBindMissingRequiredField(t *testing.T) {
	var req model.AddToClassRequest
	fields := bindJSON(t, `{}`, &req)
	if fields == nil {
		t.Fatal("Bind returned nil, want field errors")
	}
	// Field names come from the JSON tag, not the struct field name.
	if _, ok := fields["user_name"]; !ok {
		t.Errorf("field errors = %v, want a user_name entry", fields)
	}
}

func TestBindInvalidEmail(t *testing.T) {
	var req model.RegisterRequest
	fields := bindJSON(t, `{
		"first_name": "Ada",
		"last_name": "Lovelace",
		"user_name": "ada",
		"email": "not-an-email",
		"password": "secret123"
	}`, &req)
	if fields == nil {
		t.Fatal("Bind returned nil, want field errors")
	}
	if _, ok := fields["email"]; !ok {
		t.Errorf("field errors = %v, want an email entry", fields)
	}
}

func TestBindMalformedJSON(t *testing.T) {
	var req model.AddToClassRequest
	fields := bindJSON(t, `{"user_name":`, &req)
	if fields == nil {
		t.Fatal("Bind returned nil, want a detail entry")
	}
	if _, ok := fields["detail"]; !ok {
		t.Errorf("field errors = %v, want a detail entry", fields)
	}
}
