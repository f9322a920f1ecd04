package models

import "time"

// VerificationCode is a one-time numeric code proving control of an email.
// A code is accepted only while UsedAt is nil and ExpiresAt is strictly
// after the time of the attempt.
type VerificationCode struct {
	ID        int64
	UserID    int64
	Code      string
	ExpiresAt time.Time
	UsedAt    *time.Time
	CreatedAt time.Time
}
