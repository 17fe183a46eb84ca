package intake

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/yanqian/risk-intake/pkg/errors"
	"github.com/yanqian/risk-intake/pkg/util"
)

// Config wires runtime knobs for intake sessions.
type Config struct {
	SessionTTL    time.Duration
	SweepInterval time.Duration
}

type session struct {
	controller *Controller
	lastSeen   time.Time
}

// Sessions keeps one controller per form session and forgets idle ones.
type Sessions struct {
	mu        sync.RWMutex
	sessions  map[string]*session
	cfg       Config
	predictor Predictor
	logger    *slog.Logger
	log       *slog.Logger
	now       util.Clock
	newID     func() string
}

// NewSessions builds an empty session registry.
func NewSessions(cfg Config, predictor Predictor, logger *slog.Logger) *Sessions {
	return &Sessions{
		sessions:  make(map[string]*session),
		cfg:       cfg,
		predictor: predictor,
		logger:    logger,
		log:       logger.With("component", "intake.sessions"),
		now:       util.NowUTC,
		newID:     uuid.NewString,
	}
}

// Create starts a session with a fresh controller.
func (s *Sessions) Create() (string, *Controller) {
	id := s.newID()
	ctrl := NewController(s.predictor, s.logger.With("session", id))

	s.mu.Lock()
	s.sessions[id] = &session{controller: ctrl, lastSeen: s.now.Now()}
	s.mu.Unlock()

	s.log.Info("session created", "session", id)
	return id, ctrl
}

// Get returns the session's controller and refreshes its idle timer.
func (s *Sessions) Get(id string) (*Controller, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok || s.expiredLocked(sess) {
		if ok {
			delete(s.sessions, id)
		}
		return nil, apperrors.Wrap(apperrors.CodeSessionNotFound, "session not found", nil)
	}
	sess.lastSeen = s.now.Now()
	return sess.controller, nil
}

// Delete ends a session. It reports whether the session existed.
func (s *Sessions) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	return true
}

// Len reports the number of live sessions.
func (s *Sessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep drops idle sessions and returns how many were removed.
func (s *Sessions) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, sess := range s.sessions {
		if s.expiredLocked(sess) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps on SweepInterval until ctx is done.
func (s *Sessions) Run(ctx context.Context) {
	interval := s.cfg.SweepInterval
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				s.log.Info("expired sessions removed", "count", n, "remaining", s.Len())
			}
		}
	}
}

func (s *Sessions) expiredLocked(sess *session) bool {
	if s.cfg.SessionTTL <= 0 {
		return false
	}
	return s.now.Now().Sub(sess.lastSeen) > s.cfg.SessionTTL
}
