// AngelaMos | 2026
// fcm.go

package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/angelamos/streamora/internal/config"
)

// Sender abstracts push delivery so the service layer never depends on
// a concrete transport.
type Sender interface {
	Send(ctx context.Context, tokens []string, title, body string) error
}

// FCMSender dispatches through the FCM HTTP v1 API, one request per
// device token. Individual token failures are logged and skipped; the
// push is best-effort by contract.
type FCMSender struct {
	client    *http.Client
	endpoint  string
	projectID string
	authToken string
}

func NewFCMSender(cfg config.FCMConfig) *FCMSender {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = "https://fcm.googleapis.com"
	}

	return &FCMSender{
		client:    &http.Client{Timeout: 10 * time.Second},
		endpoint:  endpoint,
		projectID: cfg.ProjectID,
		authToken: cfg.AccessToken,
	}
}

type fcmMessage struct {
	Message struct {
		Token        string `json:"token"`
		Notification struct {
			Title string `json:"title"`
			Body  string `json:"body"`
		} `json:"notification"`
	} `json:"message"`
}

func (s *FCMSender) Send(
	ctx context.Context,
	tokens []string,
	title, body string,
) error {
	url := fmt.Sprintf("%s/v1/projects/%s/messages:send",
		s.endpoint, s.projectID)

	var lastErr error
	for _, token := range tokens {
		if err := s.sendOne(ctx, url, token, title, body); err != nil {
			slog.Warn("push dispatch failed",
				"token", truncateToken(token),
				"error", err,
			)
			lastErr = err
		}
	}

	return lastErr
}

func (s *FCMSender) sendOne(
	ctx context.Context,
	url, token, title, body string,
) error {
	var msg fcmMessage
	msg.Message.Token = token
	msg.Message.Notification.Title = title
	msg.Message.Notification.Body = body

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.authToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // response body close

	if resp.StatusCode >= http.StatusBadRequest {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("fcm responded %d: %s",
			resp.StatusCode, string(detail))
	}

	return nil
}

// truncateToken keeps enough of a device token to match it against the
// client registration without logging the full credential.
func truncateToken(token string) string {
	if len(token) <= 12 {
		return token
	}
	return token[:12] + "..."
}
