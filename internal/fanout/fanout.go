// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fanout runs independent lookup tasks on a bounded worker pool
// and streams their usable results back in completion order.
package fanout

import (
	"context"
	"sync"
)

// Task produces one value; ok reports whether the value is usable.
// Tasks are expected to absorb their own failures and report ok=false.
type Task[T any] func(ctx context.Context) (T, bool)

// Stream runs tasks on at most maxWorkers goroutines and delivers each
// usable result as it completes, not in submission order. The returned
// channel is closed once every task has finished. A failing or panicking
// task never cancels or delays its siblings; it simply contributes
// nothing. The channel is buffered for the full task count, so a caller
// that stops draining early leaks no goroutines.
//
// There is no timeout at this layer: each task is bounded only by its own
// per-call timeout through ctx and the HTTP client.
func Stream[T any](ctx context.Context, tasks []Task[T], maxWorkers int) <-chan T {
	out := make(chan T, len(tasks))
	if len(tasks) == 0 {
		close(out)
		return out
	}
	if maxWorkers <= 0 || maxWorkers > len(tasks) {
		maxWorkers = len(tasks)
	}

	queue := make(chan Task[T])
	var wg sync.WaitGroup
	for i := 0; i < maxWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range queue {
				if v, ok := run(ctx, task); ok {
					out <- v
				}
			}
		}()
	}

	go func() {
		for _, task := range tasks {
			queue <- task
		}
		close(queue)
		wg.Wait()
		close(out)
	}()

	return out
}

// Collect drains Stream into a slice, in completion order.
func Collect[T any](ctx context.Context, tasks []Task[T], maxWorkers int) []T {
	var results []T
	for v := range Stream(ctx, tasks, maxWorkers) {
		results = append(results, v)
	}
	return results
}

// run isolates a single task, converting a panic into "no result".
func run[T any](ctx context.Context, task Task[T]) (v T, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()
	return task(ctx)
}
