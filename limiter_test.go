package site

import (
	"testing"
	"time"
)

func TestRateLimiterAllowsUpToMax(t *testing.T) {
	l := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !l.Allow("10.0.0.1") {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}
	if l.Allow("10.0.0.1") {
		t.Error("attempt past the limit should be blocked")
	}
	if !l.Allow("10.0.0.2") {
		t.Error("a different IP should not be affected")
	}
}

func TestRateLimiterWindowExpiry(t *testing.T) {
	l := NewRateLimiter(1, 30*time.Millisecond)

	if !l.Allow("10.0.0.1") {
		t.Fatal("first attempt should be allowed")
	}
	if l.Allow("10.0.0.1") {
		t.Fatal("second attempt inside the window should be blocked")
	}
	time.Sleep(50 * time.Millisecond)
	if !l.Allow("10.0.0.1") {
		t.Error("attempt after the window should be allowed again")
	}
}
