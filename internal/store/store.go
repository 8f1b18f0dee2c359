package store

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/jonathan/devfolio/internal/types"
)

// Persister writes the whole document. Save must not return an error; the
// storage adapter logs and swallows write failures.
type Persister interface {
	Save(ctx context.Context, doc *types.Document)
}

// Listener is notified with the new document after each handled action.
// Listeners may Subscribe or unsubscribe but must not call Dispatch.
type Listener func(doc *types.Document)

// Store owns the current document. Dispatch is the only mutation path.
type Store struct {
	mu  sync.Mutex
	doc *types.Document

	// notifyMu orders notifications; listenersMu guards the listener set.
	notifyMu    sync.Mutex
	listenersMu sync.Mutex
	listeners   map[int]Listener
	nextID      int

	persister Persister
	logger    *zap.Logger
}

// New creates a store holding initial. persister may be nil for a purely
// in-memory store; logger may be nil.
func New(initial *types.Document, persister Persister, logger *zap.Logger) *Store {
	if initial == nil {
		initial = types.DefaultDocument()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		doc:       initial.Clone(),
		listeners: make(map[int]Listener),
		persister: persister,
		logger:    logger,
	}
}

// State returns a copy of the current document.
func (s *Store) State() *types.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// Read calls fn with the current document while holding the store lock.
// fn must not retain or modify doc.
func (s *Store) Read(fn func(doc *types.Document)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.doc)
}

// Dispatch applies action. When the action is handled the new document is
// saved before it becomes visible to State and listeners. It reports whether
// the action was handled.
func (s *Store) Dispatch(ctx context.Context, action Action) bool {
	handled, _ := s.DispatchIf(ctx, nil, action)
	return handled
}

// DispatchIf runs check against the current document and applies action only
// when check returns nil. Both happen under one hold of the store lock, so no
// other action can land between them. A nil check always passes.
func (s *Store) DispatchIf(ctx context.Context, check func(doc *types.Document) error, action Action) (bool, error) {
	s.mu.Lock()

	if check != nil {
		if err := check(s.doc); err != nil {
			s.mu.Unlock()
			return false, err
		}
	}

	next, handled := Reduce(s.doc, action)
	if !handled {
		s.mu.Unlock()
		s.logger.Warn("ignoring unhandled action", zap.String("action", string(action.Type)))
		return false, nil
	}

	if s.persister != nil {
		s.persister.Save(ctx, next)
	}
	s.doc = next
	s.logger.Debug("action applied", zap.String("action", string(action.Type)))

	// Take the notify lock before releasing the state lock so listeners see
	// transitions in dispatch order.
	s.notifyMu.Lock()
	s.mu.Unlock()
	defer s.notifyMu.Unlock()

	for _, fn := range s.snapshotListeners() {
		fn(next.Clone())
	}
	return true, nil
}

// Subscribe registers fn and returns a function that removes it.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.listenersMu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.listenersMu.Unlock()

	return func() {
		s.listenersMu.Lock()
		delete(s.listeners, id)
		s.listenersMu.Unlock()
	}
}

// snapshotListeners returns the registered listeners in subscription order.
func (s *Store) snapshotListeners() []Listener {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()

	out := make([]Listener, 0, len(s.listeners))
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.listeners[id]; ok {
			out = append(out, fn)
		}
	}
	return out
}
