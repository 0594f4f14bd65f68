package repository

import "context"

// ErrSessionNotFound is returned by Load when no session is persisted.
// It is defined here (not in domain/errors) because an absent session
// is a normal state, not a failure the user ever sees.
type sessionNotFound struct{}

func (sessionNotFound) Error() string { return "no persisted session" }

// ErrSessionNotFound signals an empty session store.
var ErrSessionNotFound error = sessionNotFound{}

// StoredSession is the raw persisted form of a session: the bearer
// token plus the serialized user profile, exactly two values. They are
// always written together and cleared together — never independently.
type StoredSession struct {
	Token   string
	UserRaw []byte
}

// SessionRepository is the durable storage port for the session store.
type SessionRepository interface {
	// Load reads both persisted values. Returns ErrSessionNotFound when
	// either value is absent (a half-written session counts as absent).
	Load(ctx context.Context) (StoredSession, error)

	// Save writes both values atomically with respect to Load: a
	// concurrent Load sees either the old pair or the new pair.
	Save(ctx context.Context, s StoredSession) error

	// Clear removes both values. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error
}
