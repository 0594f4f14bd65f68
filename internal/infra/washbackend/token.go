package washbackend

import "sync"

// TokenHolder carries the session bearer token between the auth flow
// and the HTTP client. The auth usecase writes it, the client reads it
// on every request. Safe for concurrent use.
type TokenHolder struct {
	mu    sync.RWMutex
	token string
}

// NewTokenHolder creates an empty TokenHolder.
func NewTokenHolder() *TokenHolder {
	return &TokenHolder{}
}

// Set replaces the current token.
func (h *TokenHolder) Set(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = token
}

// Clear removes the current token.
func (h *TokenHolder) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = ""
}

// Token returns the current token, empty when no session is active.
func (h *TokenHolder) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.token
}
