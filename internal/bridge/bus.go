// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bridge

import (
	"context"
	"sort"
	"sync"
)

// Bus is the in-process registry of receivers. It is safe for concurrent use.
type Bus struct {
	mu        sync.RWMutex
	receivers map[Endpoint]registration
	seq       uint64
}

type registration struct {
	receiver Receiver
	seq      uint64
}

func NewBus() *Bus {
	return &Bus{receivers: make(map[Endpoint]registration)}
}

// Register attaches r to e, replacing any previous receiver. The returned
// function detaches r; it does nothing if r has been replaced meanwhile.
func (b *Bus) Register(e Endpoint, r Receiver) (unregister func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.seq++
	seq := b.seq
	b.receivers[e] = registration{receiver: r, seq: seq}

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if current, ok := b.receivers[e]; ok && current.seq == seq {
			delete(b.receivers, e)
		}
	}
}

// Send delivers msg to the receiver of e.
func (b *Bus) Send(ctx context.Context, e Endpoint, msg Message) (Response, error) {
	b.mu.RLock()
	reg, ok := b.receivers[e]
	b.mu.RUnlock()

	if !ok {
		return Response{}, ErrNoReceiver
	}
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}

	return reg.receiver.Receive(ctx, msg), nil
}

// Has reports whether e has a receiver.
func (b *Bus) Has(e Endpoint) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.receivers[e]
	return ok
}

// Tabs lists the tab ids that have a receiver, in ascending order.
func (b *Bus) Tabs() []int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]int, 0, len(b.receivers))
	for e := range b.receivers {
		if !e.IsCoordinator() {
			out = append(out, e.TabID)
		}
	}
	sort.Ints(out)
	return out
}
