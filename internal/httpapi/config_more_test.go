package httpapi

import (
	"testing"
	"time"
)

func TestSetMaxBodyBytes_DefaultWhenNonPositive(t *testing.T) {
	SetMaxBodyBytes(-1)
	if maxBodyBytes != 1<<20 {
		t.Fatalf("expected default 1MiB, got %d", maxBodyBytes)
	}
	SetMaxBodyBytes(0)
	if maxBodyBytes != 1<<20 {
		t.Fatalf("expected default 1MiB on zero, got %d", maxBodyBytes)
	}
}

func TestSetMaxBodyBytes_PositiveSetsValue(t *testing.T) {
	SetMaxBodyBytes(1234)
	defer SetMaxBodyBytes(0)
	if maxBodyBytes != 1234 {
		t.Fatalf("expected 1234, got %d", maxBodyBytes)
	}
}

func TestSetRequestTimeoutSeconds_NormalizesNegativeToZero(t *testing.T) {
	SetRequestTimeoutSeconds(-5)
	if requestTimeout != 0 || requestTimeoutDuration() != 0 {
		t.Fatalf("expected 0, got %d", requestTimeout)
	}
	SetRequestTimeoutSeconds(3)
	defer SetRequestTimeoutSeconds(0)
	if requestTimeoutDuration() != 3*time.Second {
		t.Fatalf("expected 3s, got %s", requestTimeoutDuration())
	}
}
