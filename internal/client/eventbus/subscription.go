package eventbus

import "sync"

// Subscription is one handler registration.
type Subscription struct {
	bus   *Bus
	typ   EventType
	entry *entry
	once  sync.Once
}

// Unsubscribe removes the handler. It is safe to call more than once. A
// publish already in progress skips the handler unless it has started it.
func (s *Subscription) Unsubscribe() {
	s.once.Do(func() { s.bus.remove(s.typ, s.entry) })
}

// Scope collects the registrations of one owner so they can be dropped
// together when the owner goes away.
type Scope struct {
	bus *Bus

	mu     sync.Mutex
	subs   []*Subscription
	closed bool
}

func NewScope(b *Bus) *Scope {
	return &Scope{bus: b}
}

func (s *Scope) Register(t EventType, h Handler) {
	s.track(s.bus.Register(t, h))
}

func (s *Scope) RegisterAsync(t EventType, h AsyncHandler) {
	s.track(s.bus.RegisterAsync(t, h))
}

func (s *Scope) track(sub *Subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		sub.Unsubscribe()
		return
	}
	s.subs = append(s.subs, sub)
}

// Close unsubscribes everything registered through s. Later registrations
// are dropped immediately.
func (s *Scope) Close() {
	s.mu.Lock()
	subs := s.subs
	s.subs = nil
	s.closed = true
	s.mu.Unlock()

	for _, sub := range subs {
		sub.Unsubscribe()
	}
}
