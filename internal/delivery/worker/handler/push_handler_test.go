package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"cabinet/config"
	deliverycontext "cabinet/internal/delivery/context"
	"cabinet/internal/domain/constants"
	"cabinet/internal/domain/entity"
	domainerrors "cabinet/internal/domain/errors"
	"cabinet/internal/domain/service"
	"cabinet/internal/errors"
	"cabinet/internal/infra/pubsub"
	mockusecase "cabinet/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockusecase.MockStockAlertUsecase) {
	t.Helper()

	if cfg == nil {
		cfg = &config.Config{}
		cfg.Env.Env = constants.EnvDevelop
	}
	alertUC := mockusecase.NewMockStockAlertUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:       cfg,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		StockAlertUC: alertUC,
	})

	return h, alertUC
}

func newPushBody(t *testing.T, msg *service.StockEventMessage, attributes map[string]string) []byte {
	t.Helper()

	data, err := json.Marshal(msg)
	require.NoError(t, err)

	var push pubsub.PushMessage
	push.Subscription = "projects/test/subscriptions/stock-events"
	push.Message.Data = base64.StdEncoding.EncodeToString(data)
	push.Message.Attributes = attributes
	push.Message.MessageID = "m-1"

	body, err := json.Marshal(push)
	require.NoError(t, err)

	return body
}

func servePush(h *PushHandler, body []byte, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	_ = h.HandlePush(c)

	return rec
}

func sampleEvent() *entity.StockEvent {
	return &entity.StockEvent{
		EventID:       uuid.New(),
		Type:          entity.StockEventAdjusted,
		MovementID:    uuid.New(),
		CabinetCode:   "ICU-01",
		ItemID:        uuid.New(),
		Delta:         -3,
		QuantityAfter: 2,
	}
}

func TestPushHandler_HandlePush(t *testing.T) {
	t.Run("records alert and propagates the request id", func(t *testing.T) {
		h, alertUC := newTestPushHandler(t, nil)
		event := sampleEvent()

		var seenRequestID string
		alertUC.EXPECT().ProcessStockEvent(mock.Anything, mock.MatchedBy(func(e *entity.StockEvent) bool {
			return e.EventID == event.EventID && e.QuantityAfter == 2
		})).RunAndReturn(func(ctx context.Context, e *entity.StockEvent) (*entity.StockAlert, error) {
			seenRequestID = deliverycontext.GetRequestIDFromContext(ctx)

			return &entity.StockAlert{ID: uuid.New(), EventID: e.EventID}, nil
		})

		body := newPushBody(t,
			&service.StockEventMessage{RequestID: "from-envelope", Event: event},
			map[string]string{pubsub.AttrRequestID: "from-attributes"},
		)
		rec := servePush(h, body, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "from-attributes", seenRequestID)
	})

	t.Run("envelope request id when attributes lack one", func(t *testing.T) {
		h, alertUC := newTestPushHandler(t, nil)

		var seenRequestID string
		alertUC.EXPECT().ProcessStockEvent(mock.Anything, mock.Anything).
			RunAndReturn(func(ctx context.Context, _ *entity.StockEvent) (*entity.StockAlert, error) {
				seenRequestID = deliverycontext.GetRequestIDFromContext(ctx)

				return nil, nil
			})

		rec := servePush(h, newPushBody(t, &service.StockEventMessage{RequestID: "from-envelope", Event: sampleEvent()}, nil), nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "from-envelope", seenRequestID)
	})

	t.Run("infrastructure failure asks for redelivery", func(t *testing.T) {
		h, alertUC := newTestPushHandler(t, nil)
		alertUC.EXPECT().ProcessStockEvent(mock.Anything, mock.Anything).
			Return(nil, errors.Wrap(errors.New("connection reset"), "failed to store stock alert"))

		rec := servePush(h, newPushBody(t, &service.StockEventMessage{Event: sampleEvent()}, nil), nil)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("unknown item is acknowledged", func(t *testing.T) {
		h, alertUC := newTestPushHandler(t, nil)
		alertUC.EXPECT().ProcessStockEvent(mock.Anything, mock.Anything).
			Return(nil, errors.WithStack(domainerrors.ErrItemNotFound))

		rec := servePush(h, newPushBody(t, &service.StockEventMessage{Event: sampleEvent()}, nil), nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("undecodable payload is acknowledged", func(t *testing.T) {
		h, _ := newTestPushHandler(t, nil)

		rec := servePush(h, []byte(`{"message":{"data":"!!not-base64!!","messageId":"m-2"}}`), nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unparseable body is rejected", func(t *testing.T) {
		h, _ := newTestPushHandler(t, nil)

		rec := servePush(h, []byte(`{`), nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPushHandler_VerifiesGoogleTokens(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{
		Provider:     constants.PubSubProviderGoogle,
		PushAudience: "https://worker.example/push",
	}}
	cfg.Env.Env = constants.EnvProduction

	t.Run("missing token", func(t *testing.T) {
		h, _ := newTestPushHandler(t, cfg)
		h.validateToken = func(context.Context, string, string) (*idtoken.Payload, error) {
			t.Fatal("validator must not be called without a token")

			return nil, nil
		}

		rec := servePush(h, newPushBody(t, &service.StockEventMessage{Event: sampleEvent()}, nil), nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		h, _ := newTestPushHandler(t, cfg)
		h.validateToken = func(context.Context, string, string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example"}, nil
		}

		rec := servePush(h, newPushBody(t, &service.StockEventMessage{Event: sampleEvent()}, nil),
			http.Header{echo.HeaderAuthorization: {"Bearer tok"}})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token with configured audience", func(t *testing.T) {
		h, alertUC := newTestPushHandler(t, cfg)
		var seenAudience string
		h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			seenAudience = audience

			return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
		}
		alertUC.EXPECT().ProcessStockEvent(mock.Anything, mock.Anything).Return(nil, nil)

		rec := servePush(h, newPushBody(t, &service.StockEventMessage{Event: sampleEvent()}, nil),
			http.Header{echo.HeaderAuthorization: {"Bearer tok"}})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "https://worker.example/push", seenAudience)
	})
}
