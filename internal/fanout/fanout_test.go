// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fanout

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestCollectAllResults(t *testing.T) {
	tasks := []Task[int]{
		func(context.Context) (int, bool) { return 1, true },
		func(context.Context) (int, bool) { return 2, true },
		func(context.Context) (int, bool) { return 3, true },
	}

	got := Collect(context.Background(), tasks, 3)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	sort.Ints(got)
	for i, want := range []int{1, 2, 3} {
		if got[i] != want {
			t.Errorf("got[%d] = %d, want %d", i, got[i], want)
		}
	}
}

func TestStreamSkipsUnusableResults(t *testing.T) {
	tasks := []Task[string]{
		func(context.Context) (string, bool) { return "keep", true },
		func(context.Context) (string, bool) { return "drop", false },
	}

	got := Collect(context.Background(), tasks, 2)
	if len(got) != 1 || got[0] != "keep" {
		t.Errorf("got %v, want [keep]", got)
	}
}

func TestStreamCompletionOrder(t *testing.T) {
	// The slow task is submitted first but must arrive last.
	tasks := []Task[string]{
		func(context.Context) (string, bool) {
			time.Sleep(50 * time.Millisecond)
			return "slow", true
		},
		func(context.Context) (string, bool) { return "fast", true },
	}

	got := Collect(context.Background(), tasks, 2)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0] != "fast" || got[1] != "slow" {
		t.Errorf("completion order = %v, want [fast slow]", got)
	}
}

func TestStreamPanicIsolation(t *testing.T) {
	tasks := []Task[int]{
		func(context.Context) (int, bool) { panic("adapter bug") },
		func(context.Context) (int, bool) { return 7, true },
	}

	got := Collect(context.Background(), tasks, 2)
	if len(got) != 1 || got[0] != 7 {
		t.Errorf("got %v, want [7]", got)
	}
}

func TestStreamBoundsWorkers(t *testing.T) {
	var running, peak int32
	var mu sync.Mutex

	task := func(context.Context) (int, bool) {
		n := atomic.AddInt32(&running, 1)
		mu.Lock()
		if n > peak {
			peak = n
		}
		mu.Unlock()
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt32(&running, -1)
		return 0, true
	}

	tasks := make([]Task[int], 8)
	for i := range tasks {
		tasks[i] = task
	}

	got := Collect(context.Background(), tasks, 2)
	if len(got) != 8 {
		t.Fatalf("len = %d, want 8", len(got))
	}
	mu.Lock()
	defer mu.Unlock()
	if peak > 2 {
		t.Errorf("peak concurrency = %d, want <= 2", peak)
	}
}

func TestStreamEarlyStopDoesNotBlockWorkers(t *testing.T) {
	done := make(chan struct{})
	tasks := make([]Task[int], 4)
	for i := range tasks {
		i := i
		tasks[i] = func(context.Context) (int, bool) { return i, true }
	}

	go func() {
		ch := Stream(context.Background(), tasks, 4)
		<-ch // take one result, abandon the rest
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("caller blocked after early stop")
	}
}

func TestStreamNoTasks(t *testing.T) {
	got := Collect[int](context.Background(), nil, 2)
	if len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}
