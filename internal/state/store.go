package state

import (
	"context"
	"sync"

	"github.com/postdeck/postdeck/internal/post"
)

// Dispatcher is the capability handed to tasks: dispatch only, no direct
// state access. *Store satisfies it.
type Dispatcher interface {
	Dispatch(Action)
}

// Task is deferred work that issues its own dispatches over time. Dispatching
// a task and dispatching an action are separate entry points, so the store
// never has to inspect the shape of a dispatched value.
type Task func(ctx context.Context, d Dispatcher)

// Observer sees every completed state transition. Meant for development-time
// inspection; the default is a no-op and its absence changes nothing.
type Observer interface {
	StateChanged(prev, next State, a Action)
}

type nopObserver struct{}

func (nopObserver) StateChanged(State, State, Action) {}

// Store holds the composite state and is its single writer: every change goes
// through Dispatch, which runs the root reducer and swaps the state wholesale.
type Store struct {
	mu    sync.Mutex
	state State
	subs  map[int]func(State)
	next  int
	obs   Observer
}

// Option configures a Store at construction.
type Option func(*Store)

// WithObserver installs a state-transition observer.
func WithObserver(o Observer) Option {
	return func(s *Store) {
		if o != nil {
			s.obs = o
		}
	}
}

// New returns a store holding the initial state.
func New(opts ...Option) *Store {
	s := &Store{
		state: Initial(),
		subs:  map[int]func(State){},
		obs:   nopObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dispatch runs a through the root reducer, replaces the state, and notifies
// the observer and all subscribers. Each call is a complete, isolated
// transition; callbacks run outside the lock.
func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	prev := s.state
	next := Reduce(prev, a)
	s.state = next
	subs := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	s.obs.StateChanged(prev, next, a)
	for _, fn := range subs {
		fn(next)
	}
}

// Run invokes t with the store's dispatch capability. The task's synchronous
// prefix completes before Run returns; anything the task defers resumes later
// as ordinary Dispatch calls.
func (s *Store) Run(ctx context.Context, t Task) {
	t(ctx, s)
}

// Subscribe registers fn to be called after every state change and returns
// its deregistration func. Calling the deregistration func twice is fine.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	id := s.next
	s.next++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// State returns a snapshot of the current state. The posts slice is copied so
// callers cannot reach into the store's own backing array.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.state
	snap.Posts = append([]post.Post{}, s.state.Posts...)
	return snap
}
