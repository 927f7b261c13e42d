package http

import (
	"context"
	"testing"
	"time"

	"umamiconnector/internal/platform/config"
)

func TestNewServerAddr(t *testing.T) {
	cfg := config.New().Prefix("SRV_TEST_")
	if got := NewServer(cfg).Addr(); got != ":4000" {
		t.Fatalf("default addr = %q", got)
	}
	t.Setenv("SRV_TEST_API_PORT", "8080")
	if got := NewServer(cfg).Addr(); got != ":8080" {
		t.Fatalf("bare port addr = %q", got)
	}
	t.Setenv("SRV_TEST_API_PORT", "127.0.0.1:9000")
	if got := NewServer(cfg).Addr(); got != "127.0.0.1:9000" {
		t.Fatalf("host port addr = %q", got)
	}
}

func TestRunStopsWithContext(t *testing.T) {
	t.Setenv("SRV_RUN_API_PORT", "127.0.0.1:0")
	t.Setenv("SRV_RUN_SHUTDOWN_GRACE", "1s")
	s := NewServer(config.New().Prefix("SRV_RUN_"))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run = %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
