// AngelaMos | 2026
// service.go

package notification

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/angelamos/streamora/internal/core"
)

// DeviceStore is the slice of the user domain this package touches:
// registering a device token and reading a user's token set back.
type DeviceStore interface {
	RegisterDevice(ctx context.Context, userID, token string) error
	DeviceTokens(ctx context.Context, userID string) ([]string, error)
}

type Service struct {
	devices DeviceStore
	sender  Sender
}

func NewService(devices DeviceStore, sender Sender) *Service {
	return &Service{
		devices: devices,
		sender:  sender,
	}
}

// RegisterDevice is idempotent: registering the same token twice leaves
// one entry.
func (s *Service) RegisterDevice(
	ctx context.Context,
	userID, token string,
) error {
	return s.devices.RegisterDevice(ctx, userID, token)
}

func (s *Service) Send(ctx context.Context, req SendRequest) error {
	if uuid.Validate(req.RecipientUserID) != nil {
		return fmt.Errorf("send notification: %w", core.ErrNotFound)
	}

	tokens, err := s.devices.DeviceTokens(ctx, req.RecipientUserID)
	if err != nil {
		return err
	}

	if len(tokens) == 0 {
		return core.NewAppError(nil,
			"Recipient has no registered devices",
			http.StatusBadRequest)
	}

	if s.sender == nil {
		return core.NewAppError(nil,
			"Push notifications are not enabled",
			http.StatusServiceUnavailable)
	}

	if err := s.sender.Send(ctx, tokens, req.Title, req.Body); err != nil {
		return fmt.Errorf("dispatch notification: %w", err)
	}

	return nil
}
