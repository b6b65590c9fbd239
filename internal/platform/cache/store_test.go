package cache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStore_SetGetDelete(t *testing.T) {
	store := NewStore(time.Minute)
	ctx := t.Context()

	store.Set(ctx, "key", 42)
	value, ok := store.Get(ctx, "key")
	require.True(t, ok)
	require.Equal(t, 42, value)

	store.Delete(ctx, "key")
	_, ok = store.Get(ctx, "key")
	require.False(t, ok, "expected key gone after delete")
}

func TestStore_Expiry(t *testing.T) {
	store := NewStore(10 * time.Millisecond)
	ctx := t.Context()

	store.Set(ctx, "key", "value")
	time.Sleep(25 * time.Millisecond)

	_, ok := store.Get(ctx, "key")
	require.False(t, ok, "expected entry expired")
}

func TestStore_DeletePrefix(t *testing.T) {
	store := NewStore(time.Minute)
	ctx := t.Context()

	store.Set(ctx, "standings:league-1:0", 1)
	store.Set(ctx, "standings:league-1:3", 2)
	store.Set(ctx, "standings:league-2:0", 3)

	store.DeletePrefix(ctx, "standings:league-1:")

	_, ok := store.Get(ctx, "standings:league-1:0")
	require.False(t, ok, "expected league-1 entries purged")
	_, ok = store.Get(ctx, "standings:league-1:3")
	require.False(t, ok, "expected league-1 entries purged")
	_, ok = store.Get(ctx, "standings:league-2:0")
	require.True(t, ok, "expected league-2 entry kept")
}

func TestStore_GetOrLoad_LoadsOnce(t *testing.T) {
	store := NewStore(time.Minute)
	ctx := t.Context()

	loads := 0
	loader := func(context.Context) (any, error) {
		loads++
		return "loaded", nil
	}

	for range 3 {
		value, err := store.GetOrLoad(ctx, "key", loader)
		require.NoError(t, err)
		require.Equal(t, "loaded", value)
	}

	require.Equal(t, 1, loads, "expected a single load")
}

func TestStore_GetOrLoad_ErrorNotCached(t *testing.T) {
	store := NewStore(time.Minute)
	ctx := t.Context()

	boom := errors.New("boom")
	calls := 0
	_, err := store.GetOrLoad(ctx, "key", func(context.Context) (any, error) {
		calls++
		return nil, boom
	})
	require.ErrorIs(t, err, boom)

	value, err := store.GetOrLoad(ctx, "key", func(context.Context) (any, error) {
		calls++
		return "ok", nil
	})
	require.NoError(t, err)
	require.Equal(t, "ok", value)
	require.Equal(t, 2, calls, "expected the retry to hit the loader")
}

func TestStore_GetOrLoad_Concurrent(t *testing.T) {
	store := NewStore(time.Minute)
	ctx := t.Context()

	var mu sync.Mutex
	loads := 0
	loader := func(context.Context) (any, error) {
		mu.Lock()
		loads++
		mu.Unlock()
		time.Sleep(5 * time.Millisecond)
		return "shared", nil
	}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			value, err := store.GetOrLoad(ctx, "key", loader)
			if err != nil || value != "shared" {
				t.Errorf("unexpected result %v err=%v", value, err)
			}
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, 1, loads, "expected singleflight to collapse loads")
}
