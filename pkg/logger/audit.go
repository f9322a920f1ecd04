package logger

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// Audit event types
const (
	EventRegister    = "register"
	EventLogin       = "login"
	EventVerifyEmail = "verify_email"
	EventResendCode  = "resend_code"
	EventUserDeleted = "user_deleted"
)

// AuditEvent represents a security audit event
type AuditEvent struct {
	EventType     string
	UserID        string
	Email         string
	IPAddress     string
	RequestID     string
	Success       bool
	FailureReason string
}

type clientIPKey struct{}

// WithClientIP stores the caller's address for audit records.
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey{}, ip)
}

// ClientIP returns the address stored by WithClientIP, or "".
func ClientIP(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey{}).(string)
	return ip
}

// requestAttrs appends the request ID and client IP carried by ctx.
func requestAttrs(ctx context.Context, attrs []slog.Attr, ip, requestID string) []slog.Attr {
	if ip == "" {
		ip = ClientIP(ctx)
	}
	if requestID == "" {
		requestID = middleware.GetReqID(ctx)
	}
	if ip != "" {
		attrs = append(attrs, slog.String("ip_address", ip))
	}
	if requestID != "" {
		attrs = append(attrs, slog.String("request_id", requestID))
	}
	return attrs
}

// AuditLogger writes security-relevant events as structured log records.
type AuditLogger struct {
	logger *slog.Logger
}

func NewAuditLogger(logger *slog.Logger) *AuditLogger {
	return &AuditLogger{logger: logger}
}

// LogAuthAttempt logs an authentication flow outcome. Emails are masked.
// IPAddress and RequestID default to the values carried by ctx.
func (al *AuditLogger) LogAuthAttempt(ctx context.Context, event AuditEvent) {
	attrs := []slog.Attr{
		slog.String("audit_type", "auth"),
		slog.String("event_type", event.EventType),
		slog.Bool("success", event.Success),
		slog.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
	}

	if event.UserID != "" {
		attrs = append(attrs, slog.String("user_id", event.UserID))
	}
	if event.Email != "" {
		attrs = append(attrs, slog.String("email", SanitizedEmail(event.Email)))
	}
	attrs = requestAttrs(ctx, attrs, event.IPAddress, event.RequestID)
	if event.FailureReason != "" {
		attrs = append(attrs, slog.String("failure_reason", event.FailureReason))
	}

	level := slog.LevelInfo
	if !event.Success {
		level = slog.LevelWarn
	}
	al.logger.LogAttrs(ctx, level, "audit", attrs...)
}

// LogAccountAction logs an administrative action taken on an account.
func (al *AuditLogger) LogAccountAction(ctx context.Context, eventType, actorID, targetID string, metadata map[string]string) {
	attrs := []slog.Attr{
		slog.String("audit_type", "account"),
		slog.String("event_type", eventType),
		slog.String("actor_id", actorID),
		slog.String("target_id", targetID),
		slog.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
	}

	attrs = requestAttrs(ctx, attrs, "", "")

	for key, val := range metadata {
		attrs = append(attrs, slog.String(key, val))
	}

	al.logger.LogAttrs(ctx, slog.LevelInfo, "audit", attrs...)
}
