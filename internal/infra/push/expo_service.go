// Package push delivers notifications through the Expo push gateway
// over plain HTTP.
package push

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"agriconnect/config"
	"agriconnect/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultEndpoint = "https://exp.host/--/api/v2/push/send"

// maxChunkSize is the gateway's per-request message limit.
const maxChunkSize = 100

type expoService struct {
	endpoint   string
	httpClient *http.Client
}

// NewExpoService creates a PushService backed by the Expo push gateway.
func NewExpoService(cfg *config.Config) service.PushService {
	endpoint := defaultEndpoint
	if cfg.Expo != nil && cfg.Expo.Endpoint != "" {
		endpoint = cfg.Expo.Endpoint
	}

	return &expoService{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Send delivers a single message and returns the gateway's decoded raw
// response.
func (s *expoService) Send(ctx context.Context, msg service.PushMessage) (map[string]any, error) {
	body, err := json.Marshal(msg)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := s.post(ctx, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var decoded map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, errors.Wrap(err, "decode push gateway response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("push gateway returned status %d", resp.StatusCode)
	}

	return decoded, nil
}

// SendBatch delivers messages in gateway-sized chunks and returns the
// accumulated tickets.
func (s *expoService) SendBatch(ctx context.Context, msgs []service.PushMessage) ([]service.PushTicket, error) {
	tickets := make([]service.PushTicket, 0, len(msgs))

	for start := 0; start < len(msgs); start += maxChunkSize {
		end := start + maxChunkSize
		if end > len(msgs) {
			end = len(msgs)
		}

		chunk, err := s.sendChunk(ctx, msgs[start:end])
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, chunk...)
	}

	return tickets, nil
}

func (s *expoService) sendChunk(ctx context.Context, msgs []service.PushMessage) ([]service.PushTicket, error) {
	body, err := json.Marshal(msgs)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := s.post(ctx, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("push gateway returned status %d", resp.StatusCode)
	}

	var decoded struct {
		Data []service.PushTicket `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, errors.Wrap(err, "decode push gateway response")
	}

	return decoded.Data, nil
}

func (s *expoService) post(ctx context.Context, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "call push gateway")
	}

	return resp, nil
}
