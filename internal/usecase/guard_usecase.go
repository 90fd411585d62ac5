package usecase

import (
	"context"

	"cabinet/internal/domain/access"
)

// GuardInput is a request to evaluate the route guard for a path.
type GuardInput struct {
	// AccessToken is the raw bearer token; empty means no session.
	AccessToken string
	Path        string
}

// GuardUsecase evaluates the route guard on the server side.
type GuardUsecase interface {
	// Evaluate never fails: a missing or invalid token is an unauthenticated session.
	Evaluate(ctx context.Context, input *GuardInput) access.Outcome
	// Policy returns the active guard policy.
	Policy() access.Policy
}
