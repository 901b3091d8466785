// AngelaMos | 2026
// dto.go

package notification

type RegisterDeviceRequest struct {
	DeviceToken string `json:"deviceToken" validate:"required,min=1,max=4096"`
}

type SendRequest struct {
	Title           string `json:"title"           validate:"required,min=1,max=200"`
	Body            string `json:"body"            validate:"required,min=1,max=1000"`
	RecipientUserID string `json:"recipientUserId" validate:"required,uuid"`
}
