package integration

import (
	"context"
	"io"
	"testing"
	"time"

	"collatz/internal/app"
)

func TestCtrlC_MidRun_Exit130(t *testing.T) {
	// Enough work that the run is still going when cancel lands.
	argv := []string{"--steps", "--output", "jsonl", "1..2000000"}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	code := app.RunContext(ctx, argv, io.Discard, io.Discard)
	if code != 130 {
		t.Fatalf("expected exit 130 on cancel, got %d", code)
	}
}
