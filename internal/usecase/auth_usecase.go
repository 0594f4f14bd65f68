// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"washify/internal/domain/entity"
)

// AuthUsecase owns the authenticated identity and its persistence.
//
// The both-or-neither invariant holds across every operation: after
// any sequence of Initialize, Login and Logout calls, the session
// either carries both token and user or neither.
type AuthUsecase interface {
	// Initialize restores the persisted session at startup. A malformed
	// or half-present persisted pair is cleared and treated as logged
	// out. Makes no network call. Until it returns, IsLoading reports
	// true and no protected route should be served.
	Initialize(ctx context.Context) error

	// Login exchanges credentials for a session. Empty credentials are
	// rejected before any network traffic. On success the session is
	// persisted and subscribers are notified.
	Login(ctx context.Context, creds entity.Credentials) (entity.Session, error)

	// Logout clears the in-memory session unconditionally and the
	// persisted pair best-effort. It never fails.
	Logout(ctx context.Context)

	// Session returns the current session; ok is false when logged out.
	Session() (session entity.Session, ok bool)

	// IsAuthenticated reports whether a full session is active.
	IsAuthenticated() bool

	// IsLoading reports whether Initialize is still running.
	IsLoading() bool

	// Subscribe registers a listener for session changes. The returned
	// function removes the listener.
	Subscribe(fn func(entity.Session)) (unsubscribe func())
}
