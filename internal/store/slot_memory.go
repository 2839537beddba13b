// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"slices"
	"sync"
)

// memorySlot keeps the blob in process memory. A positive capacity makes it
// behave like quota-limited browser storage: a Save larger than capacity
// fails with ErrQuotaExceeded and leaves the previous blob in place.
type memorySlot struct {
	capacity int

	mu   sync.RWMutex
	data []byte
}

// NewMemorySlot returns an in-memory [Slot]. capacity is in bytes; zero or
// negative means unlimited.
func NewMemorySlot(capacity int) Slot {
	return &memorySlot{capacity: capacity}
}

func (m *memorySlot) Load(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.data), nil
}

func (m *memorySlot) Save(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.capacity > 0 && len(data) > m.capacity {
		return fmt.Errorf("%w: %d bytes exceeds capacity of %d", ErrQuotaExceeded, len(data), m.capacity)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = slices.Clone(data)
	return nil
}

func (m *memorySlot) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = nil
	return nil
}
