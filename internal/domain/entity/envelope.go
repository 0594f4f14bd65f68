package entity

// Envelope is the canonical internal form every backend response is
// normalized into. The backend emits several shapes ({success, message,
// data}, {data}, or a bare payload); the gateway layer folds all of
// them into this one type so shape detection happens exactly once.
//
// Invariant: when Success is false, Data carries only a safe fallback
// (empty slice, zero value) regardless of what the backend sent.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data,omitempty"`
}

// Ok wraps a payload in a successful envelope.
func Ok[T any](data T) Envelope[T] {
	return Envelope[T]{Success: true, Data: data}
}

// Fail wraps a fallback payload in a failed envelope. The message is
// what list views surface inline ("data unavailable" style).
func Fail[T any](fallback T, message string) Envelope[T] {
	return Envelope[T]{Success: false, Message: message, Data: fallback}
}
