// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionStorage_SaveFind(t *testing.T) {
	ctx := context.Background()
	s := NewMemorySessionStorage()

	require.NoError(t, s.Save(ctx, "tok", "alice"))

	got, err := s.Find(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, "alice", got)

	// lookups are non-destructive
	got, err = s.Find(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, "alice", got)

	_, err = s.Find(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	assert.ErrorIs(t, s.Save(ctx, "tok", "bob"), ErrSessionAlreadyExists)
	got, _ = s.Find(ctx, "tok")
	assert.Equal(t, "alice", got)
}

func TestMemorySessionStorage_Concurrent(t *testing.T) {
	ctx := context.Background()
	s := NewMemorySessionStorage()

	const n = 64
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, s.Save(ctx, fmt.Sprintf("tok-%d", i), fmt.Sprintf("user-%d", i)))
		}(i)
		go func(i int) {
			defer wg.Done()
			_, _ = s.Find(ctx, fmt.Sprintf("tok-%d", i))
		}(i)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		got, err := s.Find(ctx, fmt.Sprintf("tok-%d", i))
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("user-%d", i), got)
	}
}
