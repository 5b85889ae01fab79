package session

import (
	"context"
	"sync"
	"time"

	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/goroutine"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
)

// IdleWatcher expires sessions after a period without activity. Each session
// carries exactly one timer; any request through the activity middleware
// rearms it. Expiry fires at most once per session: the timer is removed
// from the map before the callback runs, so a concurrent Touch of an
// already-expired session simply starts nothing.
type IdleWatcher struct {
	store   Store
	hub     *Hub
	timeout time.Duration
	logger  logger.Interface

	mu     sync.Mutex
	timers map[string]*idleTimer
}

type idleTimer struct {
	timer  *time.Timer
	userID uint
}

func NewIdleWatcher(store Store, hub *Hub, timeout time.Duration, log logger.Interface) *IdleWatcher {
	return &IdleWatcher{
		store:   store,
		hub:     hub,
		timeout: timeout,
		logger:  log,
		timers:  make(map[string]*idleTimer),
	}
}

// Watch starts idle tracking for a session. Calling it again for the same
// session rearms the existing timer.
func (w *IdleWatcher) Watch(sessionID string, userID uint) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if existing, ok := w.timers[sessionID]; ok {
		existing.timer.Reset(w.timeout)
		return
	}

	it := &idleTimer{userID: userID}
	it.timer = time.AfterFunc(w.timeout, func() {
		w.expire(sessionID)
	})
	w.timers[sessionID] = it
}

// Touch rearms the idle timer for a session. Unknown sessions are ignored:
// either the session already expired or it was never watched.
func (w *IdleWatcher) Touch(sessionID string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if it, ok := w.timers[sessionID]; ok {
		it.timer.Reset(w.timeout)
	}
}

// Stop removes the timer without expiring the session, for explicit
// sign-out.
func (w *IdleWatcher) Stop(sessionID string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if it, ok := w.timers[sessionID]; ok {
		it.timer.Stop()
		delete(w.timers, sessionID)
	}
}

func (w *IdleWatcher) expire(sessionID string) {
	w.mu.Lock()
	it, ok := w.timers[sessionID]
	if ok {
		delete(w.timers, sessionID)
	}
	w.mu.Unlock()
	if !ok {
		// Stop raced the timer; the session was signed out already.
		return
	}

	goroutine.SafeGo(w.logger, "session-expire", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := w.store.Delete(ctx, sessionID); err != nil {
			w.logger.Warnw("failed to delete expired session", "session_id", sessionID, "error", err)
		}
		w.hub.Publish(Event{Type: EventSessionExpired, UserID: it.userID, SessionID: sessionID})
		w.logger.Infow("session expired after inactivity", "session_id", sessionID, "user_id", it.userID)
	})
}
