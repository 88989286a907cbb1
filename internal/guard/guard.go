// Package guard implements the client-side access gate for role-restricted
// pages as an explicit state machine. A guard is created per page mount in
// the Loading state, receives exactly one Resolve call when the asynchronous
// identity fetch settles, and either admits the viewer or triggers a
// redirect. The guard is advisory: it keeps unauthorized viewers from seeing
// a page, while real enforcement stays with the server-side role checks.
package guard

import (
	"sync"

	"equiprent-backend/internal/domain"
)

type State int

const (
	StateLoading State = iota
	StateAuthorized
	StateUnauthenticated
	StateUnauthorized
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateAuthorized:
		return "authorized"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateUnauthorized:
		return "unauthorized"
	}
	return "unknown"
}

// Redirect targets for denied viewers.
const (
	LoginPath        = "/login"
	UnauthorizedPath = "/unauthorized"
)

// Identity is the resolved viewer identity the guard branches on.
type Identity struct {
	UserID int32
	Role   domain.Role
}

// Navigator performs the redirect side effect.
type Navigator interface {
	Navigate(target string)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(target string)

func (f NavigatorFunc) Navigate(target string) { f(target) }

// Guard gates one page mount. All methods are safe for concurrent use; the
// identity fetch typically settles on a different goroutine than the one
// that tears the page down.
type Guard struct {
	mu      sync.Mutex
	allowed map[domain.Role]struct{}
	nav     Navigator
	state   State
	closed  bool
}

// New creates a guard in the Loading state for a page that admits the given
// roles.
func New(nav Navigator, allowed ...domain.Role) *Guard {
	set := make(map[domain.Role]struct{}, len(allowed))
	for _, r := range allowed {
		set[r] = struct{}{}
	}
	return &Guard{
		allowed: set,
		nav:     nav,
		state:   StateLoading,
	}
}

// Resolve consumes the settled identity fetch and performs the single
// transition out of Loading. A nil identity means no session. The resulting
// state is terminal; later Resolve calls return it unchanged. Navigation is
// suppressed when the guard was closed before resolution.
func (g *Guard) Resolve(id *Identity) State {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StateLoading {
		return g.state
	}

	var target string
	switch {
	case id == nil:
		g.state = StateUnauthenticated
		target = LoginPath
	case !g.roleAllowed(id.Role):
		g.state = StateUnauthorized
		target = UnauthorizedPath
	default:
		g.state = StateAuthorized
	}

	if target != "" && !g.closed {
		g.nav.Navigate(target)
	}
	return g.state
}

// Close marks the page mount as gone. Any navigation a later Resolve would
// trigger is suppressed.
func (g *Guard) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.closed = true
}

// State returns the guard's current state.
func (g *Guard) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Authorized reports whether the page body may render.
func (g *Guard) Authorized() bool {
	return g.State() == StateAuthorized
}

func (g *Guard) roleAllowed(role domain.Role) bool {
	_, ok := g.allowed[role]
	return ok
}
