package entity

// Session is the authenticated identity against the Washify backend.
// Invariant: a session is all-or-nothing — a non-empty Token implies a
// non-nil User and vice versa. Callers must never persist or expose one
// half without the other.
type Session struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// Valid reports whether the session satisfies the both-or-neither
// invariant with both halves present.
func (s Session) Valid() bool {
	return s.Token != "" && s.User != nil
}

// Credentials is a login request. Username may be a username, an email
// address, or a phone number; the backend resolves it.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
