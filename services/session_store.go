package services

import (
	"context"
	"sync"

	"github.com/Shaan-kapoor/restaurant-menu-platform/entity"
)

// SessionStore tracks one client session: the current identity (or none) and
// its role. Identity-change notifications are delivered asynchronously from a
// single dispatch goroutine, exactly once per transition: signed-out to
// signed-in, signed-in to signed-out, or identity swap. A session seeded from
// a bare token starts with an unknown role until the profile fetch resolves;
// callers must treat that as distinct from the anonymous "no role".
type SessionStore struct {
	auth *AuthService

	mu        sync.Mutex
	current   *entity.User
	role      string
	roleKnown bool
	subs      map[int]func(*entity.User)
	nextSub   int

	events chan *entity.User
	done   chan struct{}
	once   sync.Once
}

func NewSessionStore(auth *AuthService) *SessionStore {
	s := &SessionStore{
		auth:   auth,
		subs:   make(map[int]func(*entity.User)),
		events: make(chan *entity.User, 8),
		done:   make(chan struct{}),
	}
	go s.dispatch()
	return s
}

func (s *SessionStore) dispatch() {
	for {
		select {
		case user := <-s.events:
			s.mu.Lock()
			fns := make([]func(*entity.User), 0, len(s.subs))
			for _, fn := range s.subs {
				fns = append(fns, fn)
			}
			s.mu.Unlock()
			for _, fn := range fns {
				fn(user)
			}
		case <-s.done:
			return
		}
	}
}

// setIdentity records the new identity and emits a notification only when it
// is an actual transition.
func (s *SessionStore) setIdentity(user *entity.User, roleKnown bool) {
	s.mu.Lock()
	same := (s.current == nil && user == nil) ||
		(s.current != nil && user != nil && s.current.ID == user.ID)
	s.current = user
	if user == nil {
		s.role = ""
		s.roleKnown = true // anonymous: role is definitively "none"
	} else {
		s.role = user.Role
		s.roleKnown = roleKnown
	}
	s.mu.Unlock()

	if !same {
		select {
		case s.events <- user:
		case <-s.done:
		}
	}
}

// SignUp creates the account and signs the session in as it.
func (s *SessionStore) SignUp(ctx context.Context, in SignUpInput) (*entity.User, error) {
	user, err := s.auth.SignUp(ctx, in)
	if err != nil {
		return nil, err
	}
	s.setIdentity(user, true)
	return user, nil
}

func (s *SessionStore) LogIn(ctx context.Context, email, password string) (*entity.User, error) {
	_, user, err := s.auth.LogIn(ctx, email, password)
	if err != nil {
		return nil, err
	}
	s.setIdentity(user, true)
	return user, nil
}

// LogOut clears the session. Always succeeds.
func (s *SessionStore) LogOut() error {
	s.setIdentity(nil, true)
	return nil
}

// Attach binds an already-authenticated identity (e.g. from a bearer token)
// and resolves its profile in the background. Until the fetch resolves the
// role is unknown, not absent.
func (s *SessionStore) Attach(ctx context.Context, userID uint) {
	s.mu.Lock()
	s.roleKnown = false
	s.mu.Unlock()

	go func() {
		user, err := s.auth.Profile(ctx, userID)
		if err != nil {
			// record missing or fetch failed: treat as signed out
			s.setIdentity(nil, true)
			return
		}
		s.setIdentity(user, true)
	}()
}

func (s *SessionStore) Current() *entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Role returns the active identity's role. known is false while a profile
// fetch is still in flight; an anonymous session reports "", true.
func (s *SessionStore) Role() (role string, known bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.role, s.roleKnown
}

// OnIdentityChange registers fn and returns its unsubscribe function. fn is
// called with the new identity, or nil on sign-out.
func (s *SessionStore) OnIdentityChange(fn func(*entity.User)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Close stops the dispatch goroutine. Pending notifications are dropped.
func (s *SessionStore) Close() {
	s.once.Do(func() { close(s.done) })
}
