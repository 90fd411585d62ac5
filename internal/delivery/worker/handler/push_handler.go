package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"cabinet/config"
	deliverycontext "cabinet/internal/delivery/context"
	"cabinet/internal/domain/constants"
	"cabinet/internal/domain/entity"
	domainerrors "cabinet/internal/domain/errors"
	"cabinet/internal/domain/service"
	"cabinet/internal/errors"
	"cabinet/internal/infra/pubsub"
	"cabinet/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	_, ok := errors.AsType[*retryableError](err)

	return ok
}

// TokenValidator checks a Google-signed OIDC token for an audience.
type TokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler handles Pub/Sub push messages carrying stock events
type PushHandler struct {
	verifyPushAuth bool
	pushAudience   string
	validateToken  TokenValidator
	logger         *slog.Logger
	stockAlertUC   usecase.StockAlertUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config       *config.Config
	Logger       *slog.Logger
	StockAlertUC usecase.StockAlertUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only real Pub/Sub pushes carry an OIDC token; local emulation and
	// development deployments skip verification.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	var pushAudience string
	if params.Config.PubSub != nil {
		pushAudience = params.Config.PubSub.PushAudience
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		pushAudience:   pushAudience,
		validateToken:  idtoken.Validate,
		logger:         params.Logger,
		stockAlertUC:   params.StockAlertUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
// It answers 503 when a retry may succeed and 200 otherwise so poison
// messages are not redelivered forever.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	msg, err := pushMsg.DecodeStockEvent()
	if err != nil {
		// Redelivery cannot fix a malformed payload
		h.logger.Error("[Worker] Dropping undecodable stock event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusOK)
	}

	// Priority: message attributes > event envelope > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, msg)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	event := msg.Event
	reqLogger.Info("[Worker] Processing stock event",
		slog.String("event_id", event.EventID.String()),
		slog.String("type", string(event.Type)),
		slog.String("cabinet", event.CabinetCode),
		slog.Int("quantity_after", event.QuantityAfter),
	)

	alert, err := h.processStockEvent(ctx, msg)
	if err != nil {
		reqLogger.Error("[Worker] Failed to process stock event",
			slog.String("event_id", event.EventID.String()),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	if alert != nil {
		reqLogger.Info("[Worker] Stock alert recorded",
			slog.String("event_id", event.EventID.String()),
			slog.String("alert_id", alert.ID.String()),
		)
	}

	return c.NoContent(http.StatusOK)
}

// processStockEvent classifies failures: business errors below 500 are
// permanent, everything else is retried.
func (h *PushHandler) processStockEvent(ctx context.Context, msg *service.StockEventMessage) (*entity.StockAlert, error) {
	alert, err := h.stockAlertUC.ProcessStockEvent(ctx, msg.Event)
	if err != nil {
		if appErr, ok := errors.AsType[domainerrors.AppError](err); ok && appErr.HTTPCode() < http.StatusInternalServerError {
			return nil, err
		}

		return nil, newRetryableError(err)
	}

	return alert, nil
}

// extractRequestID extracts request_id from message attributes, the event envelope, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, msg *service.StockEventMessage) string {
	if requestID := deliverycontext.SanitizeRequestID(pushMsg.Message.Attributes[pubsub.AttrRequestID]); requestID != "" {
		return requestID
	}

	if requestID := deliverycontext.SanitizeRequestID(msg.RequestID); requestID != "" {
		return requestID
	}

	// From RequestIDMiddleware via X-Request-Id header
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return deliverycontext.NewRequestID()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience defaults to the URL of this endpoint
	audience := h.pushAudience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
