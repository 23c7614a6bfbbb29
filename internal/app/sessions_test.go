package app

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quoteboard/internal/mocks"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

func newTestSessions(t *testing.T, store *mocks.MockQuoteStore, ttl time.Duration, maxSessions int) (*Sessions, *fakeClock) {
	t.Helper()

	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	n := 0

	s := NewSessions(SessionsConfig{
		Board: BoardConfig{Store: store, Logger: discardLogger(), RequestFencing: true},
		TTL:   ttl,
		Max:   maxSessions,
	})
	s.now = clock.Now
	s.newID = func() string {
		n++
		return fmt.Sprintf("session-%d", n)
	}

	return s, clock
}

func TestNewSessions_PanicsWithoutStore(t *testing.T) {
	assert.Panics(t, func() {
		NewSessions(SessionsConfig{})
	})
}

func TestSessions_Board(t *testing.T) {
	t.Run("empty id starts a session", func(t *testing.T) {
		s, _ := newTestSessions(t, mocks.NewMockQuoteStore(t), time.Hour, 10)

		id, board := s.Board("")

		assert.Equal(t, "session-1", id)
		require.NotNil(t, board)
		assert.Equal(t, 1, s.Len())
	})

	t.Run("known id returns the same board", func(t *testing.T) {
		s, _ := newTestSessions(t, mocks.NewMockQuoteStore(t), time.Hour, 10)

		id, first := s.Board("")
		again, second := s.Board(id)

		assert.Equal(t, id, again)
		assert.Same(t, first, second)
	})

	t.Run("unknown id is replaced", func(t *testing.T) {
		s, _ := newTestSessions(t, mocks.NewMockQuoteStore(t), time.Hour, 10)

		id, _ := s.Board("chosen-by-client")

		assert.Equal(t, "session-1", id)
	})

	t.Run("each session has its own board", func(t *testing.T) {
		s, _ := newTestSessions(t, mocks.NewMockQuoteStore(t), time.Hour, 10)

		_, a := s.Board("")
		_, b := s.Board("")

		assert.NotSame(t, a, b)
		assert.Equal(t, 2, s.Len())
	})
}

func TestSessions_BoardsDoNotShareState(t *testing.T) {
	store := mocks.NewMockQuoteStore(t)
	store.EXPECT().ListQuotes(mock.Anything, 0).Return(testQuotes(), nil).Twice()
	store.EXPECT().ListQuotes(mock.Anything, 7).Return(testQuotes()[:1], nil).Once()
	store.EXPECT().CreateQuote(mock.Anything, mock.Anything).Return(nil, errStoreDown).Once()

	s, _ := newTestSessions(t, store, time.Hour, 10)
	ctx := context.Background()

	_, alice := s.Board("")
	_, bob := s.Board("")

	alice.Mount(ctx)
	bob.Mount(ctx)

	require.NoError(t, alice.SelectFilter(ctx, 7))
	alice.SubmitQuote(ctx, "alice", "private draft")

	aliceState := alice.State()
	assert.Equal(t, 7, aliceState.MaxAgeDays)
	assert.Equal(t, Draft{Name: "alice", Message: "private draft"}, aliceState.Draft)

	bobState := bob.State()
	assert.Equal(t, 0, bobState.MaxAgeDays)
	assert.Equal(t, Draft{}, bobState.Draft)
	assert.Len(t, bobState.Quotes, 2)
}

func TestSessions_Expiry(t *testing.T) {
	s, clock := newTestSessions(t, mocks.NewMockQuoteStore(t), 30*time.Minute, 10)

	id, first := s.Board("")

	clock.Advance(29 * time.Minute)
	same, board := s.Board(id)
	assert.Equal(t, id, same)
	assert.Same(t, first, board, "use refreshes the idle timer")

	clock.Advance(29 * time.Minute)
	_, board = s.Board(id)
	assert.Same(t, first, board)

	clock.Advance(30 * time.Minute)
	fresh, board := s.Board(id)
	assert.NotEqual(t, id, fresh)
	assert.NotSame(t, first, board)
	assert.Equal(t, 1, s.Len(), "the expired session is dropped")
}

func TestSessions_EvictsLeastRecentlyUsed(t *testing.T) {
	s, clock := newTestSessions(t, mocks.NewMockQuoteStore(t), time.Hour, 2)

	oldID, _ := s.Board("")
	clock.Advance(time.Minute)
	keptID, kept := s.Board("")
	clock.Advance(time.Minute)

	_, _ = s.Board("")

	assert.Equal(t, 2, s.Len())

	again, board := s.Board(keptID)
	assert.Equal(t, keptID, again)
	assert.Same(t, kept, board)

	replaced, _ := s.Board(oldID)
	assert.NotEqual(t, oldID, replaced, "the oldest session was evicted")
}

func TestSessions_ConcurrentBrowsers(t *testing.T) {
	s := NewSessions(SessionsConfig{
		Board: BoardConfig{Store: mocks.NewMockQuoteStore(t), Logger: discardLogger()},
		TTL:   time.Hour,
		Max:   1000,
	})

	var wg sync.WaitGroup

	for range 50 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			id, board := s.Board("")
			again, same := s.Board(id)

			assert.Equal(t, id, again)
			assert.Same(t, board, same)
		}()
	}

	wg.Wait()

	assert.Equal(t, 50, s.Len())
}
