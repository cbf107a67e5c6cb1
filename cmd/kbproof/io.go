package main

import (
	"context"
	"fmt"
	"os"
)

// readFileWithContext reads path on a worker goroutine and respects
// ctx cancellation while waiting — the one place in this CLI that
// reuses the goroutine+context.Context pattern the logic kernel this
// module's core was modeled on uses for its own query evaluation.
// That pattern never crosses into internal/prover's synchronous core;
// it belongs to process-level I/O only.
func readFileWithContext(ctx context.Context, path string) ([]byte, error) {
	type result struct {
		data []byte
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		data, err := os.ReadFile(path)
		ch <- result{data: data, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("reading %s: %w", path, ctx.Err())
	case r := <-ch:
		if r.err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, r.err)
		}
		return r.data, nil
	}
}
