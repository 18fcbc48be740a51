package llm

import (
	"context"
	"errors"
	"strings"
)

var ErrNotConfigured = errors.New("AI service is not configured")

// ErrorKind groups vendor failures by how callers should respond to them.
type ErrorKind int

const (
	KindOther ErrorKind = iota
	KindNotConfigured
	KindQuota
	KindNetwork
	KindAuth
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotConfigured:
		return "not_configured"
	case KindQuota:
		return "quota"
	case KindNetwork:
		return "network"
	case KindAuth:
		return "auth"
	default:
		return "other"
	}
}

// Classify inspects a vendor error. The SDKs surface status only in the message,
// so matching is by substring.
func Classify(err error) ErrorKind {
	if err == nil {
		return KindOther
	}
	if errors.Is(err, ErrNotConfigured) {
		return KindNotConfigured
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindNetwork
	}

	msg := err.Error()
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "quota"),
		strings.Contains(msg, "RESOURCE_EXHAUSTED"),
		strings.Contains(msg, "429"),
		strings.Contains(lower, "rate limit"):
		return KindQuota
	case strings.Contains(msg, "API key"),
		strings.Contains(msg, "PERMISSION_DENIED"),
		strings.Contains(msg, "UNAUTHENTICATED"):
		return KindAuth
	case strings.Contains(lower, "network"),
		strings.Contains(lower, "connection refused"),
		strings.Contains(lower, "no such host"),
		strings.Contains(lower, "timeout"),
		strings.Contains(msg, "UNAVAILABLE"),
		strings.Contains(msg, "503"):
		return KindNetwork
	default:
		return KindOther
	}
}
