package auth

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"time"
)

// FailureDelay pads failed authentication attempts to a minimum duration plus
// random jitter, so unknown-account and wrong-password failures take
// similar time.
type FailureDelay struct {
	base   time.Duration
	jitter time.Duration
}

func NewFailureDelay(base, jitter time.Duration) *FailureDelay {
	return &FailureDelay{base: base, jitter: jitter}
}

// WaitFrom sleeps until at least base+jitter has elapsed since start, or ctx
// is done.
func (d *FailureDelay) WaitFrom(ctx context.Context, start time.Time) {
	if d == nil || d.base <= 0 {
		return
	}

	target := d.base + randomDuration(d.jitter)
	remaining := target - time.Since(start)
	if remaining <= 0 {
		return
	}

	timer := time.NewTimer(remaining)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

func randomDuration(max time.Duration) time.Duration {
	if max <= 0 {
		return 0
	}
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0
	}
	return time.Duration(binary.BigEndian.Uint64(b[:]) % uint64(max))
}
