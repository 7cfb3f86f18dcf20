package usecase

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"skyscore-srv/internal/model"
	"skyscore-srv/internal/userdata"
	"skyscore-srv/internal/userdata/repository"
	"skyscore-srv/pkg/log"
)

type fakeProvider struct {
	calls int32
	delay time.Duration
	err   error
}

func (p *fakeProvider) Collect(ctx context.Context, handle string) (model.RawUserData, error) {
	atomic.AddInt32(&p.calls, 1)
	if p.delay > 0 {
		time.Sleep(p.delay)
	}
	if p.err != nil {
		return model.RawUserData{}, p.err
	}
	return model.RawUserData{
		Profile: model.Profile{Handle: handle},
		Posts:   []model.Post{{ID: "post_0", Text: "hello"}},
	}, nil
}

type fakeCache struct {
	mu   sync.Mutex
	data map[string]model.RawUserData
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string]model.RawUserData)}
}

func (c *fakeCache) GetUserData(ctx context.Context, handle string) (model.RawUserData, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d, ok := c.data[handle]; ok {
		return d, nil
	}
	return model.RawUserData{}, repository.ErrCacheMiss
}

func (c *fakeCache) SetUserData(ctx context.Context, handle string, d model.RawUserData) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[handle] = d
	return nil
}

func TestCollect(t *testing.T) {
	ctx := context.Background()

	t.Run("fetches from provider and fills cache on miss", func(t *testing.T) {
		provider := &fakeProvider{}
		cache := newFakeCache()
		uc := New(provider, cache, log.NewNopLogger())

		data, err := uc.Collect(ctx, "alice.bsky.social")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if data.Profile.Handle != "alice.bsky.social" {
			t.Errorf("handle mismatch: got %s", data.Profile.Handle)
		}
		if atomic.LoadInt32(&provider.calls) != 1 {
			t.Errorf("expected 1 provider call, got %d", provider.calls)
		}
		if _, err := cache.GetUserData(ctx, "alice.bsky.social"); err != nil {
			t.Errorf("expected data to be cached: %v", err)
		}
	})

	t.Run("serves from cache without hitting provider", func(t *testing.T) {
		provider := &fakeProvider{}
		cache := newFakeCache()
		_ = cache.SetUserData(ctx, "bob.bsky.social", model.RawUserData{
			Profile: model.Profile{Handle: "bob.bsky.social"},
		})
		uc := New(provider, cache, log.NewNopLogger())

		data, err := uc.Collect(ctx, "bob.bsky.social")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if data.Profile.Handle != "bob.bsky.social" {
			t.Errorf("handle mismatch: got %s", data.Profile.Handle)
		}
		if atomic.LoadInt32(&provider.calls) != 0 {
			t.Errorf("expected 0 provider calls, got %d", provider.calls)
		}
	})

	t.Run("concurrent requests for one handle coalesce", func(t *testing.T) {
		provider := &fakeProvider{delay: 50 * time.Millisecond}
		cache := newFakeCache()
		uc := New(provider, cache, log.NewNopLogger())

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := uc.Collect(ctx, "carol.bsky.social"); err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}()
		}
		wg.Wait()

		if got := atomic.LoadInt32(&provider.calls); got != 1 {
			t.Errorf("expected coalesced single provider call, got %d", got)
		}
	})

	t.Run("rejects empty handle", func(t *testing.T) {
		uc := New(&fakeProvider{}, newFakeCache(), log.NewNopLogger())
		if _, err := uc.Collect(ctx, ""); err != userdata.ErrInvalidHandle {
			t.Errorf("expected ErrInvalidHandle, got %v", err)
		}
	})

	t.Run("propagates provider failure", func(t *testing.T) {
		provider := &fakeProvider{err: userdata.ErrProviderUnavailable}
		uc := New(provider, newFakeCache(), log.NewNopLogger())
		if _, err := uc.Collect(ctx, "dave.bsky.social"); err != userdata.ErrProviderUnavailable {
			t.Errorf("expected ErrProviderUnavailable, got %v", err)
		}
	})
}
