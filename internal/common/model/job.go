package model

import "encoding/json"

// Job envelope of every message on the queues
type Job struct {
	RequestID  string          `json:"request_id"`  // trace id of the originating request
	ActionType string          `json:"action_type"` // selects the worker handler
	ID         string          `json:"id"`          // business id, e.g. the order id
	Data       json.RawMessage `json:"data"`
}

// ActionOrderReconcile settles an order against its payment intent
const ActionOrderReconcile = "order_reconcile"

// OrderReconcileData payload of ActionOrderReconcile
type OrderReconcileData struct {
	OrderID         string `json:"order_id"`
	PaymentIntentID string `json:"payment_intent_id"`
}

// NewOrderReconcileJob builds the job published after checkout
func NewOrderReconcileJob(requestID, orderID, paymentIntentID string) (*Job, error) {
	data, err := json.Marshal(OrderReconcileData{OrderID: orderID, PaymentIntentID: paymentIntentID})
	if err != nil {
		return nil, err
	}
	return &Job{
		RequestID:  requestID,
		ActionType: ActionOrderReconcile,
		ID:         orderID,
		Data:       data,
	}, nil
}
