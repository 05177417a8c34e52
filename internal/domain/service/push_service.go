package service

import (
	"context"
	"strings"
)

// PushMessage is a single push notification addressed to one device
// token.
type PushMessage struct {
	To    string            `json:"to"`
	Sound string            `json:"sound,omitempty"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

// PushTicket is the gateway's per-message delivery receipt.
type PushTicket struct {
	ID      string `json:"id,omitempty"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// PushService delivers notifications through the push gateway.
type PushService interface {
	// Send delivers a single message and returns the gateway's decoded
	// raw response. Used by the ad-hoc send endpoint, which forwards
	// that response verbatim.
	Send(ctx context.Context, msg PushMessage) (map[string]any, error)

	// SendBatch delivers messages in gateway-sized chunks and returns
	// the accumulated tickets.
	SendBatch(ctx context.Context, msgs []PushMessage) ([]PushTicket, error)
}

// IsExpoPushToken reports whether the token has the Expo push token
// shape. Tokens failing this check are never sent to the gateway.
func IsExpoPushToken(token string) bool {
	if !strings.HasSuffix(token, "]") {
		return false
	}

	return strings.HasPrefix(token, "ExponentPushToken[") || strings.HasPrefix(token, "ExpoPushToken[")
}
