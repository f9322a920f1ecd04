package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizedEmail(t *testing.T) {
	assert.Equal(t, "f***@*******.com", SanitizedEmail("farm@example.com"))
	assert.Equal(t, "a@****.uz", SanitizedEmail("a@xons.uz"))
	assert.Equal(t, "[invalid-email]", SanitizedEmail("not-an-email"))
}

func TestSanitizeQueryString(t *testing.T) {
	assert.False(t, SanitizeQueryString(""))
	assert.False(t, SanitizeQueryString("page=2&sortBy=amountPaid&search=diesel"))
	assert.True(t, SanitizeQueryString("email=farm%40example.com"))
	assert.True(t, SanitizeQueryString("Token=abc"))
	assert.True(t, SanitizeQueryString("a=%zz"))
}

func TestRedactedAttr(t *testing.T) {
	assert.Equal(t, "[REDACTED]", RedactedAttr("code", "123456", "production").Value.String())
	assert.Equal(t, "123456", RedactedAttr("code", "123456", "development").Value.String())
}

func TestAuditLogger_LogAuthAttempt(t *testing.T) {
	var buf bytes.Buffer
	al := NewAuditLogger(slog.New(slog.NewJSONHandler(&buf, nil)))

	al.LogAuthAttempt(context.Background(), AuditEvent{
		EventType:     EventLogin,
		Email:         "farm@example.com",
		Success:       false,
		FailureReason: "invalid_credentials",
	})

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "WARN", record["level"])
	assert.Equal(t, "login", record["event_type"])
	assert.Equal(t, "f***@*******.com", record["email"])
	assert.Equal(t, "invalid_credentials", record["failure_reason"])
}

func TestAuditLogger_LogAccountAction(t *testing.T) {
	var buf bytes.Buffer
	al := NewAuditLogger(slog.New(slog.NewJSONHandler(&buf, nil)))

	al.LogAccountAction(context.Background(), EventUserDeleted, "1", "42", map[string]string{"codes": "removed"})

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "INFO", record["level"])
	assert.Equal(t, "42", record["target_id"])
	assert.Equal(t, "removed", record["codes"])
}

func TestAuditLogger_RequestContext(t *testing.T) {
	var buf bytes.Buffer
	al := NewAuditLogger(slog.New(slog.NewJSONHandler(&buf, nil)))

	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "host/abc-000001")
	ctx = WithClientIP(ctx, "203.0.113.7")

	al.LogAuthAttempt(ctx, AuditEvent{EventType: EventRegister, Success: true})

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "203.0.113.7", record["ip_address"])
	assert.Equal(t, "host/abc-000001", record["request_id"])

	buf.Reset()
	al.LogAccountAction(ctx, EventUserDeleted, "1", "2", nil)
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "203.0.113.7", record["ip_address"])
	assert.Equal(t, "host/abc-000001", record["request_id"])
}

func TestAuditLogger_NoRequestContext(t *testing.T) {
	var buf bytes.Buffer
	al := NewAuditLogger(slog.New(slog.NewJSONHandler(&buf, nil)))

	al.LogAuthAttempt(context.Background(), AuditEvent{EventType: EventLogin})

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.NotContains(t, record, "ip_address")
	assert.NotContains(t, record, "request_id")
}
