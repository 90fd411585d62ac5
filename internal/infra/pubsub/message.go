package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"cabinet/internal/domain/service"
	"cabinet/internal/errors"
)

const (
	// AttrEventID carries the stock event ID on every published message.
	AttrEventID = "event_id"
	// AttrEventType carries the stock event type for subscription filters.
	AttrEventType = "event_type"
	// AttrCabinetCode lets subscribers filter by cabinet.
	AttrCabinetCode = "cabinet_code"
	// AttrRequestID propagates the originating API request ID.
	AttrRequestID = "request_id"

	localSubscription = "projects/local/subscriptions/stock-events"
)

// PushMessage is the JSON body Pub/Sub sends to push endpoints.
// The local publisher produces the same shape.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// DecodeStockEvent extracts the stock event envelope from a push message.
func (m *PushMessage) DecodeStockEvent() (*service.StockEventMessage, error) {
	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode message data")
	}

	var msg service.StockEventMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, errors.Wrap(err, "failed to parse stock event")
	}
	if msg.Event == nil {
		return nil, errors.New("stock event payload is empty")
	}

	return &msg, nil
}

func encodeStockEvent(msg *service.StockEventMessage) ([]byte, map[string]string, error) {
	if msg == nil || msg.Event == nil {
		return nil, nil, errors.New("stock event is required")
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		AttrEventID:     msg.Event.EventID.String(),
		AttrEventType:   string(msg.Event.Type),
		AttrCabinetCode: msg.Event.CabinetCode,
	}
	if msg.RequestID != "" {
		attributes[AttrRequestID] = msg.RequestID
	}

	return data, attributes, nil
}

func newPushMessage(data []byte, attributes map[string]string, messageID string, now time.Time) PushMessage {
	var push PushMessage
	push.Subscription = localSubscription
	push.Message.Data = base64.StdEncoding.EncodeToString(data)
	push.Message.Attributes = attributes
	push.Message.MessageID = messageID
	push.Message.PublishTime = now.UTC().Format(time.RFC3339)

	return push
}
