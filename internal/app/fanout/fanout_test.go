package fanout_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/jsamuelsen11/blog-domain/internal/app/fanout"
)

func double(_ context.Context, n int) (int, error) { return n * 2, nil }

func TestRun_Empty(t *testing.T) {
	t.Parallel()

	results := fanout.Run(context.Background(), 4, nil, func(context.Context, int) (int, error) {
		t.Fatal("fn called for empty input")
		return 0, nil
	})
	if results == nil || len(results) != 0 {
		t.Errorf("Run(nil) = %v, want empty non-nil slice", results)
	}
}

func TestRun_KeepsInputOrder(t *testing.T) {
	t.Parallel()

	delays := []time.Duration{30 * time.Millisecond, 0, 15 * time.Millisecond}
	results := fanout.Run(context.Background(), len(delays), delays, func(_ context.Context, d time.Duration) (time.Duration, error) {
		time.Sleep(d)
		return d, nil
	})

	got, err := fanout.Collect(results)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if diff := cmp.Diff(delays, got); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_LimitsWorkers(t *testing.T) {
	t.Parallel()

	const workers = 2
	var active, peak atomic.Int32

	items := make([]int, 12)
	fanout.Run(context.Background(), workers, items, func(_ context.Context, _ int) (struct{}, error) {
		cur := active.Add(1)
		defer active.Add(-1)
		for {
			p := peak.Load()
			if cur <= p || peak.CompareAndSwap(p, cur) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		return struct{}{}, nil
	})

	if p := peak.Load(); p > workers {
		t.Errorf("peak concurrency = %d, want <= %d", p, workers)
	}
}

func TestRun_NonPositiveWorkers(t *testing.T) {
	t.Parallel()

	got, err := fanout.Collect(fanout.Run(context.Background(), 0, []int{1, 2, 3}, double))
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if diff := cmp.Diff([]int{2, 4, 6}, got); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_CanceledWhileWaiting(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	results := fanout.Run(ctx, 1, []int{1, 2, 3}, func(_ context.Context, n int) (int, error) {
		if n == 1 {
			cancel()
			time.Sleep(20 * time.Millisecond)
		}
		return n, nil
	})

	var canceled int
	for _, r := range results {
		if errors.Is(r.Err, context.Canceled) {
			canceled++
		}
	}
	if canceled == 0 {
		t.Error("no result reported context.Canceled")
	}
}

func TestCollect_JoinsErrors(t *testing.T) {
	t.Parallel()
	errOdd := errors.New("odd")

	results := fanout.Run(context.Background(), 3, []int{1, 2, 3}, func(_ context.Context, n int) (int, error) {
		if n%2 == 1 {
			return 0, errOdd
		}
		return n, nil
	})

	got, err := fanout.Collect(results)
	if !errors.Is(err, errOdd) {
		t.Fatalf("Collect() error = %v, want %v", err, errOdd)
	}
	if diff := cmp.Diff([]int{0, 2, 0}, got); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}
