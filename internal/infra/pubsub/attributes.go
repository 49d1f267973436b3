package pubsub

import (
	"encoding/json"

	"giftshop/internal/domain/service"

	"github.com/pkg/errors"
)

// encodeEvent returns the JSON body and the message attributes used for filtering and tracing.
func encodeEvent(event *service.OrderEvent) ([]byte, map[string]string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		"event_id":   event.EventID,
		"event_type": event.Type,
		"order_id":   event.OrderID,
		"user_id":    event.UserID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return data, attributes, nil
}
