package app

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionsConfig contains what every session board is built from.
type SessionsConfig struct {
	// Board is the configuration each new board is created with.
	Board BoardConfig

	// TTL is how long an idle session keeps its board.
	TTL time.Duration

	// Max caps the number of live boards; the least recently used one is
	// dropped to make room.
	Max int
}

// Sessions keeps one Board per browser session so each visitor has its own
// filter, draft and list. Session IDs are always issued here; an ID the
// caller does not hold is replaced rather than adopted.
type Sessions struct {
	boardCfg BoardConfig
	ttl      time.Duration
	max      int
	logger   *slog.Logger

	now   func() time.Time
	newID func() string

	mu       sync.Mutex
	sessions map[string]*session
}

type session struct {
	board    *Board
	lastSeen time.Time
}

// NewSessions creates an empty session store. Panics if the board
// configuration has no Store.
func NewSessions(cfg SessionsConfig) *Sessions {
	if cfg.Board.Store == nil {
		panic("Sessions: Board.Store is required")
	}

	logger := cfg.Board.Logger
	if logger == nil {
		logger = slog.Default()
	}

	maxSessions := cfg.Max
	if maxSessions <= 0 {
		maxSessions = 1
	}

	return &Sessions{
		boardCfg: cfg.Board,
		ttl:      cfg.TTL,
		max:      maxSessions,
		logger:   logger.With(slog.String("component", "app.Sessions")),
		now:      time.Now,
		newID:    uuid.NewString,
		sessions: make(map[string]*session),
	}
}

// Board returns the board for id and the ID the caller should keep using.
// Empty, unknown and expired IDs start a new session with a fresh board
// that has not been mounted yet.
func (s *Sessions) Board(id string) (string, *Board) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[id]; ok {
		if !s.expired(sess, now) {
			sess.lastSeen = now
			return id, sess.board
		}

		delete(s.sessions, id)
	}

	s.makeRoomLocked(now)

	id = s.newID()
	board := NewBoard(s.boardCfg)
	s.sessions[id] = &session{board: board, lastSeen: now}

	s.logger.Debug("session started", slog.Int("sessions", len(s.sessions)))

	return id, board
}

// Len returns the number of live sessions, expired ones included until
// they are swept.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.sessions)
}

func (s *Sessions) expired(sess *session, now time.Time) bool {
	return s.ttl > 0 && now.Sub(sess.lastSeen) >= s.ttl
}

// makeRoomLocked sweeps expired sessions and, if the store is still full,
// drops the least recently used ones.
func (s *Sessions) makeRoomLocked(now time.Time) {
	if len(s.sessions) < s.max {
		return
	}

	for id, sess := range s.sessions {
		if s.expired(sess, now) {
			delete(s.sessions, id)
		}
	}

	for len(s.sessions) >= s.max {
		var (
			oldestID string
			oldest   time.Time
		)

		for id, sess := range s.sessions {
			if oldestID == "" || sess.lastSeen.Before(oldest) {
				oldestID, oldest = id, sess.lastSeen
			}
		}

		delete(s.sessions, oldestID)
		s.logger.Debug("session evicted", slog.Duration("idle", now.Sub(oldest)))
	}
}
