package access

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"cabinet/internal/domain/entity"
	"cabinet/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicy_Decide(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		name  string
		state SessionState
		want  Decision
	}{
		{
			name:  "loading wins over everything",
			state: SessionState{IsLoading: true, IsAuthenticated: true, Role: entity.PlainRoleClaim("staff"), CurrentPath: "/admin/dashboard"},
			want:  DecisionPending,
		},
		{
			name:  "loading without session",
			state: SessionState{IsLoading: true},
			want:  DecisionPending,
		},
		{
			name:  "unauthenticated on admin path is not forbidden",
			state: SessionState{CurrentPath: "/admin/x"},
			want:  DecisionUnauthenticated,
		},
		{
			name:  "plain staff role on admin path",
			state: SessionState{IsAuthenticated: true, Role: entity.PlainRoleClaim("staff"), CurrentPath: "/admin/dashboard"},
			want:  DecisionForbidden,
		},
		{
			name:  "structured staff role on admin path",
			state: SessionState{IsAuthenticated: true, Role: entity.StructuredRoleClaim("staff", "Staff User"), CurrentPath: "/admin/items"},
			want:  DecisionForbidden,
		},
		{
			name:  "structured role matched by name",
			state: SessionState{IsAuthenticated: true, Role: entity.StructuredRoleClaim("ward-7", "staff"), CurrentPath: "/admin/items"},
			want:  DecisionForbidden,
		},
		{
			name:  "admin on admin path",
			state: SessionState{IsAuthenticated: true, Role: entity.PlainRoleClaim("admin"), CurrentPath: "/admin/dashboard"},
			want:  DecisionAllowed,
		},
		{
			name:  "staff on staff path",
			state: SessionState{IsAuthenticated: true, Role: entity.PlainRoleClaim("staff"), CurrentPath: "/staff/items"},
			want:  DecisionAllowed,
		},
		{
			name:  "absent role on admin path defaults to allowed",
			state: SessionState{IsAuthenticated: true, CurrentPath: "/admin/dashboard"},
			want:  DecisionAllowed,
		},
		{
			name:  "dot segments cannot hide the admin area",
			state: SessionState{IsAuthenticated: true, Role: entity.PlainRoleClaim("staff"), CurrentPath: "/staff/../admin/users"},
			want:  DecisionForbidden,
		},
		{
			name:  "query string ignored",
			state: SessionState{IsAuthenticated: true, Role: entity.PlainRoleClaim("staff"), CurrentPath: "/admin?tab=users"},
			want:  DecisionForbidden,
		},
		{
			name:  "role name that only contains staff",
			state: SessionState{IsAuthenticated: true, Role: entity.StructuredRoleClaim("nurse", "Staff User"), CurrentPath: "/admin/items"},
			want:  DecisionAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.Decide(tt.state))
		})
	}
}

func TestPolicy_RoleAbsentDefer(t *testing.T) {
	policy := DefaultPolicy()
	policy.RoleAbsent = RoleAbsentDefer

	assert.Equal(t, DecisionPending, policy.Decide(SessionState{IsAuthenticated: true, CurrentPath: "/admin/dashboard"}))
	assert.Equal(t, DecisionAllowed, policy.Decide(SessionState{IsAuthenticated: true, CurrentPath: "/staff/items"}))
	assert.Equal(t, DecisionUnauthenticated, policy.Decide(SessionState{CurrentPath: "/admin/dashboard"}))
}

func TestPolicy_EvaluateTargets(t *testing.T) {
	policy := DefaultPolicy()

	assert.Equal(t, Outcome{Decision: DecisionUnauthenticated, Target: "/login"}, policy.Evaluate(SessionState{CurrentPath: "/admin"}))
	assert.Equal(t, Outcome{Decision: DecisionForbidden, Target: "/403"},
		policy.Evaluate(SessionState{IsAuthenticated: true, Role: entity.PlainRoleClaim("staff"), CurrentPath: "/admin"}))

	allowed := policy.Evaluate(SessionState{IsAuthenticated: true, Role: entity.PlainRoleClaim("admin"), CurrentPath: "/admin"})
	assert.True(t, allowed.Render())
	assert.Empty(t, allowed.Target)

	pending := policy.Evaluate(SessionState{IsLoading: true})
	assert.False(t, pending.Render())
	assert.Empty(t, pending.Target)
}

func TestNewPolicy(t *testing.T) {
	policy, err := NewPolicy("/console", "ward-staff", "/signin", "/denied", "defer")
	require.NoError(t, err)
	assert.Equal(t, "/console", policy.AdminPrefix)
	assert.Equal(t, entity.Role("ward-staff"), policy.StaffRole)
	assert.Equal(t, "/signin", policy.LoginPath)
	assert.Equal(t, "/denied", policy.ForbiddenPath)
	assert.Equal(t, RoleAbsentDefer, policy.RoleAbsent)

	defaults, err := NewPolicy("", "", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultPolicy(), defaults)

	_, err = NewPolicy("", "", "", "", "maybe")
	assert.Error(t, err)

	_, err = NewPolicy("admin", "", "", "", "")
	assert.Error(t, err)
}

func TestNewPolicy_TrailingSlashOnAdminPrefix(t *testing.T) {
	policy, err := NewPolicy("/admin/", "", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, "/admin", policy.AdminPrefix)
	assert.True(t, policy.IsAdminPath("/admin"))
	assert.True(t, policy.IsAdminPath("/admin/users"))

	staff := SessionState{IsAuthenticated: true, Role: entity.PlainRoleClaim("staff"), CurrentPath: "/admin"}
	assert.Equal(t, DecisionForbidden, policy.Decide(staff))
}

func TestPolicy_IsAdminPathIsPlainPrefix(t *testing.T) {
	policy := DefaultPolicy()

	assert.True(t, policy.IsAdminPath("/admin"))
	assert.True(t, policy.IsAdminPath("/administrator"))
	assert.True(t, policy.IsAdminPath("/items/../admin/users"))
	assert.False(t, policy.IsAdminPath("/items/admin"))
	assert.False(t, policy.IsAdminPath("/"))
}

func TestDecision_String(t *testing.T) {
	assert.Equal(t, "pending", DecisionPending.String())
	assert.Equal(t, "unauthenticated", DecisionUnauthenticated.String())
	assert.Equal(t, "forbidden", DecisionForbidden.String())
	assert.Equal(t, "allowed", DecisionAllowed.String())
	assert.Equal(t, "unknown", Decision(42).String())
}

type sessionBox struct {
	mu    sync.Mutex
	state SessionState
}

func (b *sessionBox) Session(context.Context) SessionState {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.state
}

func (b *sessionBox) set(state SessionState) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.state = state
}

type recordingNavigator struct {
	mu      sync.Mutex
	targets []string
	err     error
}

func (n *recordingNavigator) Navigate(_ context.Context, target string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.targets = append(n.targets, target)

	return n.err
}

func (n *recordingNavigator) calls() []string {
	n.mu.Lock()
	defer n.mu.Unlock()

	return append([]string(nil), n.targets...)
}

func TestGuard_RedirectIsIdempotent(t *testing.T) {
	box := &sessionBox{state: SessionState{CurrentPath: "/admin/x"}}
	nav := &recordingNavigator{}
	guard, err := NewGuard(DefaultPolicy(), box, nav)
	require.NoError(t, err)

	ctx := context.Background()
	for range 3 {
		outcome, err := guard.Evaluate(ctx)
		require.NoError(t, err)
		assert.Equal(t, DecisionUnauthenticated, outcome.Decision)
	}

	assert.Equal(t, []string{"/login"}, nav.calls())
}

func TestGuard_NoRedirectWhenAlreadyOnTarget(t *testing.T) {
	box := &sessionBox{state: SessionState{CurrentPath: "/login"}}
	nav := &recordingNavigator{}
	guard, err := NewGuard(DefaultPolicy(), box, nav)
	require.NoError(t, err)

	outcome, err := guard.Evaluate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DecisionUnauthenticated, outcome.Decision)
	assert.Empty(t, nav.calls())
}

func TestGuard_PendingNeverRedirects(t *testing.T) {
	box := &sessionBox{state: SessionState{IsLoading: true, CurrentPath: "/admin/x"}}
	nav := &recordingNavigator{}
	guard, err := NewGuard(DefaultPolicy(), box, nav)
	require.NoError(t, err)

	outcome, err := guard.Evaluate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DecisionPending, outcome.Decision)
	assert.Empty(t, nav.calls())
	assert.Equal(t, DecisionPending, guard.Current().Decision)
}

func TestGuard_ReevaluatesOnEveryChange(t *testing.T) {
	nav := &recordingNavigator{}
	guard, err := NewGuard(DefaultPolicy(), SessionFunc(func(context.Context) SessionState {
		return SessionState{IsLoading: true}
	}), nav)
	require.NoError(t, err)

	staff := entity.PlainRoleClaim("staff")
	changes := make(chan SessionState, 8)
	changes <- SessionState{IsLoading: true, CurrentPath: "/admin/items"}
	changes <- SessionState{IsAuthenticated: true, Role: staff, CurrentPath: "/admin/items"}
	changes <- SessionState{IsAuthenticated: true, Role: staff, CurrentPath: "/admin/items"}
	changes <- SessionState{IsAuthenticated: true, Role: staff, CurrentPath: "/403"}
	changes <- SessionState{IsAuthenticated: true, Role: staff, CurrentPath: "/admin/users"}
	changes <- SessionState{IsAuthenticated: true, Role: staff, CurrentPath: "/staff/items"}
	changes <- SessionState{CurrentPath: "/staff/items"}
	close(changes)

	require.NoError(t, guard.Watch(context.Background(), changes))

	assert.Equal(t, []string{"/403", "/403", "/login"}, nav.calls())
	assert.Equal(t, Outcome{Decision: DecisionUnauthenticated, Target: "/login"}, guard.Current())
}

func TestGuard_WatchStopsOnContext(t *testing.T) {
	guard, err := NewGuard(DefaultPolicy(), SessionFunc(func(context.Context) SessionState {
		return SessionState{}
	}), &recordingNavigator{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = guard.Watch(ctx, make(chan SessionState))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestGuard_SecondRedirectSuppressedWhileInFlight(t *testing.T) {
	box := &sessionBox{state: SessionState{CurrentPath: "/admin/x"}}

	entered := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32
	nav := NavigatorFunc(func(context.Context, string) error {
		if calls.Add(1) == 1 {
			close(entered)
			<-release
		}

		return nil
	})

	guard, err := NewGuard(DefaultPolicy(), box, nav)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := guard.Evaluate(context.Background())
		done <- err
	}()
	<-entered

	box.set(SessionState{IsAuthenticated: true, Role: entity.PlainRoleClaim("staff"), CurrentPath: "/admin/y"})
	outcome, err := guard.Evaluate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DecisionForbidden, outcome.Decision)
	assert.Equal(t, int32(1), calls.Load())

	close(release)
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("first redirect never completed")
	}

	_, err = guard.Evaluate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestGuard_FailedNavigationIsRetried(t *testing.T) {
	box := &sessionBox{state: SessionState{CurrentPath: "/admin/x"}}
	nav := &recordingNavigator{err: errors.New("router unavailable")}
	guard, err := NewGuard(DefaultPolicy(), box, nav)
	require.NoError(t, err)

	_, err = guard.Evaluate(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "navigate to /login")

	nav.mu.Lock()
	nav.err = nil
	nav.mu.Unlock()

	_, err = guard.Evaluate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"/login", "/login"}, nav.calls())
}

func TestNewGuard_RequiresCollaborators(t *testing.T) {
	_, err := NewGuard(DefaultPolicy(), nil, &recordingNavigator{})
	assert.Error(t, err)

	_, err = NewGuard(DefaultPolicy(), SessionFunc(func(context.Context) SessionState { return SessionState{} }), nil)
	assert.Error(t, err)
}
