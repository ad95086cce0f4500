// Package push delivers notifications to subscribed endpoints through the
// push gateway, which performs the Web Push encryption and vendor handoff.
package push

import (
	"context"

	"github.com/subplan/notification-dispatch/internal/domain"
)

//go:generate mockgen -source=transport.go -destination=transport_mock.go -package=push

// Message is the payload delivered to a single device.
type Message struct {
	Title   string `json:"title"`
	Body    string `json:"body"`
	DateKey string `json:"date"`
	Count   int    `json:"count"`
}

// SendResult reports the outcome of one delivery attempt. Remove is set when
// the endpoint is permanently gone and its subscription should be dropped.
type SendResult struct {
	OK         bool
	Remove     bool
	StatusCode int
	Reason     string
}

type Transport interface {
	Send(ctx context.Context, device domain.Device, msg Message) (SendResult, error)
}
