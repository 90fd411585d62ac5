package access

import (
	"context"
	"sync"

	"cabinet/internal/errors"
)

// SessionSource supplies the current session state. The guard only reads it.
type SessionSource interface {
	Session(ctx context.Context) SessionState
}

// SessionFunc adapts a function to SessionSource.
type SessionFunc func(ctx context.Context) SessionState

// Session implements SessionSource.
func (f SessionFunc) Session(ctx context.Context) SessionState {
	return f(ctx)
}

// Navigator performs a redirect. Navigate returns once the navigation has
// been carried out or has failed.
type Navigator interface {
	Navigate(ctx context.Context, target string) error
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(ctx context.Context, target string) error

// Navigate implements Navigator.
func (f NavigatorFunc) Navigate(ctx context.Context, target string) error {
	return f(ctx, target)
}

// applied identifies a redirect already issued: the outcome and the path it
// was issued from.
type applied struct {
	outcome Outcome
	from    string
}

// Guard applies a Policy to a changing session. At most one redirect is in
// flight at a time and an outcome already applied for the same path is never
// re-applied.
type Guard struct {
	policy Policy
	source SessionSource
	nav    Navigator

	mu          sync.Mutex
	current     Outcome
	last        applied
	hasLast     bool
	redirecting bool
}

// NewGuard wires a guard to its session source and navigator.
func NewGuard(policy Policy, source SessionSource, nav Navigator) (*Guard, error) {
	if source == nil {
		return nil, errors.New("session source is required")
	}
	if nav == nil {
		return nil, errors.New("navigator is required")
	}

	return &Guard{
		policy:  policy,
		source:  source,
		nav:     nav,
		current: Outcome{Decision: DecisionPending},
	}, nil
}

// Current returns the outcome of the latest evaluation.
func (g *Guard) Current() Outcome {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.current
}

// Evaluate reads the session and applies the resulting outcome.
func (g *Guard) Evaluate(ctx context.Context) (Outcome, error) {
	return g.apply(ctx, g.source.Session(ctx))
}

// Watch re-evaluates on every state received from changes until ctx is done
// or changes is closed. Navigation errors are returned immediately.
func (g *Guard) Watch(ctx context.Context, changes <-chan SessionState) error {
	for {
		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case state, ok := <-changes:
			if !ok {
				return nil
			}
			if _, err := g.apply(ctx, state); err != nil {
				return err
			}
		}
	}
}

func (g *Guard) apply(ctx context.Context, state SessionState) (Outcome, error) {
	outcome := g.policy.Evaluate(state)
	from := NormalizePath(state.CurrentPath)

	g.mu.Lock()
	g.current = outcome

	if outcome.Target == "" {
		g.hasLast = false
		g.mu.Unlock()

		return outcome, nil
	}

	next := applied{outcome: outcome, from: from}
	if g.redirecting || from == NormalizePath(outcome.Target) || (g.hasLast && g.last == next) {
		g.mu.Unlock()

		return outcome, nil
	}

	g.redirecting = true
	g.mu.Unlock()

	err := g.nav.Navigate(ctx, outcome.Target)

	g.mu.Lock()
	g.redirecting = false
	if err == nil {
		g.last = next
		g.hasLast = true
	}
	g.mu.Unlock()

	if err != nil {
		return outcome, errors.Wrapf(err, "navigate to %s", outcome.Target)
	}

	return outcome, nil
}
