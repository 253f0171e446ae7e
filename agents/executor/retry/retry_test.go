/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package retry

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

var errTransient = errors.New("overloaded")

func fastConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:  3,
		BaseBackoff: time.Millisecond,
		MaxBackoff:  5 * time.Millisecond,
		MaxJitter:   0,
	}
}

func TestRetryWithBackoffSucceedsFirstTry(t *testing.T) {
	calls := 0
	got, err := RetryWithBackoff(context.Background(), fastConfig(), "op", func(error) bool { return true }, func() (int, error) {
		calls++
		return 42, nil
	})
	if err != nil {
		t.Fatalf("RetryWithBackoff() error = %v", err)
	}
	if got != 42 || calls != 1 {
		t.Errorf("got %d after %d calls, want 42 after 1 call", got, calls)
	}
}

func TestRetryWithBackoffRecoversAfterTransientErrors(t *testing.T) {
	calls := 0
	got, err := RetryWithBackoff(context.Background(), fastConfig(), "op", func(err error) bool {
		return errors.Is(err, errTransient)
	}, func() (string, error) {
		calls++
		if calls < 3 {
			return "", errTransient
		}
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("RetryWithBackoff() error = %v", err)
	}
	if got != "ok" || calls != 3 {
		t.Errorf("got %q after %d calls, want %q after 3 calls", got, calls, "ok")
	}
}

func TestRetryWithBackoffStopsOnNonRetryable(t *testing.T) {
	fatal := errors.New("invalid request")
	calls := 0
	_, err := RetryWithBackoff(context.Background(), fastConfig(), "op", func(err error) bool {
		return errors.Is(err, errTransient)
	}, func() (int, error) {
		calls++
		return 0, fatal
	})
	if !errors.Is(err, fatal) {
		t.Fatalf("RetryWithBackoff() error = %v, want %v", err, fatal)
	}
	if calls != 1 {
		t.Errorf("fn called %d times, want 1", calls)
	}
}

func TestRetryWithBackoffExhaustsRetries(t *testing.T) {
	cfg := fastConfig()
	calls := 0
	_, err := RetryWithBackoff(context.Background(), cfg, "stream_message", func(error) bool { return true }, func() (int, error) {
		calls++
		return 0, errTransient
	})
	if err == nil {
		t.Fatal("RetryWithBackoff() error = nil, want exhaustion error")
	}
	if !errors.Is(err, errTransient) {
		t.Errorf("exhaustion error does not wrap the last error: %v", err)
	}
	if !strings.Contains(err.Error(), "stream_message") {
		t.Errorf("exhaustion error does not name the operation: %v", err)
	}
	if want := cfg.MaxRetries + 1; calls != want {
		t.Errorf("fn called %d times, want %d", calls, want)
	}
}

func TestRetryWithBackoffZeroRetriesMeansSingleAttempt(t *testing.T) {
	cfg := fastConfig()
	cfg.MaxRetries = 0
	calls := 0
	_, err := RetryWithBackoff(context.Background(), cfg, "op", func(error) bool { return true }, func() (int, error) {
		calls++
		return 0, errTransient
	})
	if err == nil {
		t.Fatal("RetryWithBackoff() error = nil, want error")
	}
	if calls != 1 {
		t.Errorf("fn called %d times, want 1", calls)
	}
}

func TestRetryWithBackoffHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := fastConfig()
	cfg.BaseBackoff = time.Minute

	calls := 0
	done := make(chan error, 1)
	go func() {
		_, err := RetryWithBackoff(ctx, cfg, "op", func(error) bool { return true }, func() (int, error) {
			calls++
			return 0, errTransient
		})
		done <- err
	}()

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("RetryWithBackoff() error = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("RetryWithBackoff did not return after cancellation")
	}
}

func TestRetryConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     RetryConfig
		wantErr bool
	}{{
		name: "default config is valid",
		cfg:  DefaultRetryConfig(),
	}, {
		name: "zero config is valid",
		cfg:  RetryConfig{},
	}, {
		name:    "negative retries",
		cfg:     RetryConfig{MaxRetries: -1},
		wantErr: true,
	}, {
		name:    "negative base backoff",
		cfg:     RetryConfig{BaseBackoff: -time.Second},
		wantErr: true,
	}, {
		name:    "negative max backoff",
		cfg:     RetryConfig{MaxBackoff: -time.Second},
		wantErr: true,
	}, {
		name:    "negative jitter",
		cfg:     RetryConfig{MaxJitter: -time.Millisecond},
		wantErr: true,
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
