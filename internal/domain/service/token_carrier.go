package service

// TokenCarrier propagates the session bearer token to whichever
// component attaches it to outgoing requests. The auth usecase sets it
// on login and restore, and clears it on logout; the HTTP client reads
// it on every request.
type TokenCarrier interface {
	// Set replaces the current token.
	Set(token string)

	// Clear removes the current token.
	Clear()
}
