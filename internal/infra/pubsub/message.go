package pubsub

import (
	"encoding/json"

	"courier/internal/domain/service"

	"github.com/pkg/errors"
)

// Attribute keys attached to every published order event.
const (
	attrEventType = "event_type"
	attrOrderID   = "order_id"
	attrStatus    = "status"
	attrDriverID  = "driver_id"
	attrRequestID = "request_id"
)

// encodeEvent returns the JSON payload and the routing attributes that
// subscribers filter on.
func encodeEvent(event *service.OrderEvent) ([]byte, map[string]string, error) {
	if event == nil {
		return nil, nil, errors.New("order event is nil")
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "encode %s event", event.Type)
	}

	attrs := map[string]string{
		attrEventType: event.Type,
		attrOrderID:   event.OrderID,
		attrStatus:    event.Status,
	}
	if event.DriverID != "" {
		attrs[attrDriverID] = event.DriverID
	}
	if event.RequestID != "" {
		attrs[attrRequestID] = event.RequestID
	}

	return payload, attrs, nil
}
