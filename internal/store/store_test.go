package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"bookstore/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *Store {
	return New(newTestReducer(), Initial([]model.Book{testBook("b1", 10)}, nil))
}

func TestStore_DispatchAppliesInOrder(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	got := s.Dispatch(ctx,
		AddToCart{Book: testBook("b1", 10)},
		AddToCart{Book: testBook("b1", 10)},
		UpdateCartQuantity{BookID: "b1", Quantity: 3},
	)

	require.Len(t, got.Cart, 1)
	assert.Equal(t, 3, got.Cart[0].Quantity)
	assert.Equal(t, got, s.State())
}

func TestStore_SnapshotsAreStable(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	before := s.State()
	s.Dispatch(ctx, AddToCart{Book: testBook("b1", 10)})

	assert.Empty(t, before.Cart)
	assert.Len(t, s.State().Cart, 1)
}

func TestStore_Subscribe(t *testing.T) {
	s := newTestStore()
	var seen []ActionType
	s.Subscribe(func(prev, next State, a Action) {
		seen = append(seen, a.Type())
		if a.Type() == TypeAddToCart {
			assert.Len(t, next.Cart, len(prev.Cart)+1)
		}
	})

	s.Dispatch(context.Background(), AddToCart{Book: testBook("b1", 10)}, ClearCart{})

	assert.Equal(t, []ActionType{TypeAddToCart, TypeClearCart}, seen)
}

func TestStore_DispatchAfter(t *testing.T) {
	t.Run("Applies after the delay", func(t *testing.T) {
		s := newTestStore()
		done := s.DispatchAfter(context.Background(), 10*time.Millisecond, Login{User: testCustomer()}, SetLoading{Loading: false})

		assert.False(t, s.State().Auth.IsAuthenticated)

		select {
		case st := <-done:
			assert.True(t, st.Auth.IsAuthenticated)
			assert.True(t, s.State().Auth.IsAuthenticated)
		case <-time.After(time.Second):
			t.Fatal("deferred dispatch never ran")
		}
	})

	t.Run("Cancelling the caller does not withdraw it", func(t *testing.T) {
		s := newTestStore()
		ctx, cancel := context.WithCancel(context.Background())
		done := s.DispatchAfter(ctx, 10*time.Millisecond, AddToCart{Book: testBook("b1", 10)})
		cancel()

		select {
		case st := <-done:
			assert.Len(t, st.Cart, 1)
		case <-time.After(time.Second):
			t.Fatal("deferred dispatch never ran")
		}
	})

	t.Run("Immediate dispatch before a deferred one keeps call order", func(t *testing.T) {
		s := newTestStore()
		done := s.DispatchAfter(context.Background(), 20*time.Millisecond, UpdateCartQuantity{BookID: "b1", Quantity: 7})
		s.Dispatch(context.Background(), AddToCart{Book: testBook("b1", 10)})

		st := <-done
		assert.Equal(t, 7, st.Cart[0].Quantity)
	})
}

func TestStore_ConcurrentDispatchesSerialize(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Dispatch(ctx, AddToCart{Book: testBook("b1", 10)})
			_ = s.State()
		}()
	}
	wg.Wait()

	require.Len(t, s.State().Cart, 1)
	assert.Equal(t, 50, s.State().Cart[0].Quantity)
}
