// Package attrib decides who owns a logged text operation: an
// authenticated user, an anonymous client session, or nobody.
// The resolver is a pure classifier; it never touches storage
package attrib

import "strings"

// Kind enumerates attribution outcomes
type Kind uint8

const (
	// KindNone means neither a user nor a session was available
	KindNone Kind = iota

	// KindUser attributes the operation to an authenticated user
	KindUser

	// KindSession attributes the operation to an anonymous session
	KindSession
)

// String returns the lowercase name of the kind
func (k Kind) String() string {
	switch k {
	case KindUser:
		return "user"
	case KindSession:
		return "session"
	default:
		return "none"
	}
}

// Attribution is the resolved owner of a single operation.
// At most one of UserID / SessionID is non-empty, matching Kind
type Attribution struct {
	Kind      Kind
	UserID    string
	SessionID string
}

// Resolve classifies ownership. First match wins:
// a user id attributes to that user and discards the session token,
// else a non-blank session token attributes to that session,
// else the attribution is degenerate (KindNone). Degenerate is tolerated,
// not rejected; the caller decides whether to emit a diagnostic
func Resolve(userID, sessionID string) Attribution {
	if userID != "" {
		return Attribution{Kind: KindUser, UserID: userID}
	}
	if s := strings.TrimSpace(sessionID); s != "" {
		return Attribution{Kind: KindSession, SessionID: sessionID}
	}
	return Attribution{Kind: KindNone}
}
