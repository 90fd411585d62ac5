package impl

import (
	"context"
	"log/slog"

	"cabinet/config"
	deliverycontext "cabinet/internal/delivery/context"
	"cabinet/internal/domain/access"
	"cabinet/internal/domain/service"
	"cabinet/internal/errors"
	"cabinet/internal/usecase"

	"go.uber.org/fx"
)

type guardService struct {
	policy       access.Policy
	tokenService service.TokenService
	logger       *slog.Logger
}

// GuardServiceParams holds dependencies for GuardService, injected by Fx.
type GuardServiceParams struct {
	fx.In

	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewGuardService builds the guard policy from configuration.
func NewGuardService(params GuardServiceParams) (usecase.GuardUsecase, error) {
	policy := access.DefaultPolicy()
	if guardCfg := params.Config.Guard; guardCfg != nil {
		var err error
		policy, err = access.NewPolicy(
			guardCfg.AdminPrefix,
			guardCfg.StaffRole,
			guardCfg.LoginPath,
			guardCfg.ForbiddenPath,
			guardCfg.RoleAbsentPolicy,
		)
		if err != nil {
			return nil, errors.Wrap(err, "invalid guard configuration")
		}
	}

	return &guardService{
		policy:       policy,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}, nil
}

// Evaluate resolves the session from the access token alone. The role is
// taken from the token claims, so a server-side evaluation is never loading.
func (srv *guardService) Evaluate(ctx context.Context, input *usecase.GuardInput) access.Outcome {
	state := access.SessionState{CurrentPath: input.Path}

	if input.AccessToken != "" {
		claims, err := srv.tokenService.ValidateAccessToken(input.AccessToken)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Guard received invalid token", slog.Any("error", err))
		} else {
			state.IsAuthenticated = true
			state.Role = claims.Role
		}
	}

	return srv.policy.Evaluate(state)
}

func (srv *guardService) Policy() access.Policy {
	return srv.policy
}
