// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package waiter correlates fire-and-forget requests with results that the
// hub pushes later on.
//
// A [Queue] holds the pending waiters of one push-notification kind in
// request order. Arming a waiter enqueues it; every pushed result resolves the
// oldest pending waiter exactly once. Results are handed over through a
// buffered channel, so the transport's receive goroutine never blocks on a
// caller.
package waiter

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is returned by [Slot.Wait] when the queue was failed before a
// result arrived (e.g. the connection was stopped).
var ErrClosed = errors.New("waiter closed")

type outcome[T any] struct {
	value T
	err   error
}

// Queue is a FIFO of pending waiters. The zero value is ready to use.
type Queue[T any] struct {
	mu      sync.Mutex
	pending []*Slot[T]
}

// Slot is a single pending result handle returned by [Queue.Arm].
type Slot[T any] struct {
	queue *Queue[T]
	done  chan outcome[T]
}

// Arm enqueues a fresh waiter and returns its handle.
func (q *Queue[T]) Arm() *Slot[T] {
	s := &Slot[T]{queue: q, done: make(chan outcome[T], 1)}

	q.mu.Lock()
	q.pending = append(q.pending, s)
	q.mu.Unlock()

	return s
}

// Resolve completes the oldest pending waiter with value. It reports false
// when no waiter is armed; the value is dropped in that case.
func (q *Queue[T]) Resolve(value T) bool {
	q.mu.Lock()
	if len(q.pending) == 0 {
		q.mu.Unlock()
		return false
	}
	s := q.pending[0]
	q.pending[0] = nil
	q.pending = q.pending[1:]
	q.mu.Unlock()

	s.done <- outcome[T]{value: value}
	return true
}

// Fail completes every pending waiter with err (or [ErrClosed] when err is
// nil) and returns how many were failed.
func (q *Queue[T]) Fail(err error) int {
	if err == nil {
		err = ErrClosed
	}

	q.mu.Lock()
	pending := q.pending
	q.pending = nil
	q.mu.Unlock()

	for _, s := range pending {
		s.done <- outcome[T]{err: err}
	}
	return len(pending)
}

// Len returns the number of pending waiters.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Wait blocks until the slot is resolved or failed, or ctx is done.
//
// A slot abandoned through ctx stays queued: the hub answers requests in
// order, so the late result still belongs to it and must not be handed to a
// newer request.
func (s *Slot[T]) Wait(ctx context.Context) (T, error) {
	select {
	case o := <-s.done:
		return o.value, o.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Cancel removes the slot from its queue if it is still pending. It is used
// when the request never reached the hub, so no result will be pushed for it.
// It reports whether the slot was removed.
func (s *Slot[T]) Cancel() bool {
	q := s.queue
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, p := range q.pending {
		if p == s {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return true
		}
	}
	return false
}
