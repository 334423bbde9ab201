package service

import (
	"sync"

	"darshan/internal/models"

	"github.com/rs/zerolog"
)

// NavigationStack tracks where the user came from so "back" is well-defined
// across arbitrarily deep navigation. The stack holds ancestors only, never
// the current view; depth is unbounded.
type NavigationStack struct {
	mu      sync.Mutex
	home    models.View
	current models.View
	stack   []models.View
	logger  *zerolog.Logger
}

func NewNavigationStack(home models.View, logger *zerolog.Logger) *NavigationStack {
	return &NavigationStack{
		home:    home,
		current: home,
		logger:  logger,
	}
}

// Navigate pushes the current view onto history and makes to current.
// Navigating to the view already shown is a no-op, which keeps the current
// view out of its own history.
func (n *NavigationStack) Navigate(to models.View) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if to == n.current {
		return
	}
	n.stack = append(n.stack, n.current)
	n.current = to
}

// Back pops the most recent ancestor and makes it current. With no history
// left it lands on the home view; back never errors and never goes below
// empty.
func (n *NavigationStack) Back() models.View {
	n.mu.Lock()
	defer n.mu.Unlock()

	if len(n.stack) == 0 {
		n.current = n.home
		return n.current
	}

	n.current = n.stack[len(n.stack)-1]
	n.stack = n.stack[:len(n.stack)-1]
	return n.current
}

// ResetTo discards all history and shows view directly. Primary navigation
// clicks use this; the abandoned trail is intentionally not back-reachable.
func (n *NavigationStack) ResetTo(view models.View) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.stack = n.stack[:0]
	n.current = view
}

func (n *NavigationStack) Current() models.View {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

func (n *NavigationStack) Depth() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.stack)
}
