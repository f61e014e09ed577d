package carsales

import (
	"github.com/google/uuid"

	"verdict/pkg/engine"
	"verdict/pkg/facts"
)

// Session binds one customer conversation to its private fact store. The
// resolver may be shared across sessions; the store never is.
type Session struct {
	ID       string
	Store    *facts.Store
	resolver *engine.Resolver
}

// NewSession opens a conversation with a fresh store and its own resolver.
func NewSession(opts ...engine.Option) (*Session, error) {
	r, err := NewResolver(opts...)
	if err != nil {
		return nil, err
	}
	return NewSessionWith(r), nil
}

// NewSessionWith opens a conversation backed by an existing shared resolver.
func NewSessionWith(r *engine.Resolver) *Session {
	return &Session{
		ID:       uuid.NewString(),
		Store:    NewStore(),
		resolver: r,
	}
}

// Next resolves the next conversational action for this session.
func (s *Session) Next() *engine.Resolution {
	return s.resolver.Resolve(s.Store)
}
