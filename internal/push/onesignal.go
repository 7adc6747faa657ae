package push

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abyssmaljib/irene-training/internal/domain"
)

const defaultBaseURL = "https://onesignal.com"

// oneSignalRequest is the create-notification payload. Targeting goes
// through OneSignal external ids, which the app registers as the user id.
type oneSignalRequest struct {
	AppID          string              `json:"app_id"`
	IncludeAliases map[string][]string `json:"include_aliases"`
	TargetChannel  string              `json:"target_channel"`
	Headings       map[string]string   `json:"headings"`
	Contents       map[string]string   `json:"contents"`
	BigPicture     string              `json:"big_picture,omitempty"`
	IOSAttachments map[string]string   `json:"ios_attachments,omitempty"`
	Data           map[string]any      `json:"data"`
}

// Receipt is OneSignal's create-notification response, forwarded to the
// caller as-is so nothing beyond the id is lost.
type Receipt struct {
	ID         string          `json:"id"`
	Recipients int             `json:"recipients,omitempty"`
	ExternalID string          `json:"external_id,omitempty"`
	Errors     json.RawMessage `json:"errors,omitempty"`
}

// Sender delivers push notifications. The HTTP layer depends on this
// interface so handler tests can fake delivery.
type Sender interface {
	Send(ctx context.Context, n domain.Notification) (*Receipt, error)
}

// OneSignalClient sends notifications through the OneSignal REST API.
type OneSignalClient struct {
	httpClient *resty.Client
	appID      string
	logger     *zap.Logger
}

func NewOneSignalClient(appID, apiKey string, logger *zap.Logger) *OneSignalClient {
	client := resty.New().
		SetBaseURL(defaultBaseURL).
		SetTimeout(15*time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(1*time.Second).
		SetRetryMaxWaitTime(5*time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Basic "+apiKey)

	return &OneSignalClient{
		httpClient: client,
		appID:      appID,
		logger:     logger,
	}
}

var _ Sender = (*OneSignalClient)(nil)

// SetBaseURL overrides the API host, used by tests.
func (c *OneSignalClient) SetBaseURL(url string) {
	c.httpClient.SetBaseURL(url)
}

// Send pushes the notification to the notification's user. It returns
// OneSignal's response on success.
func (c *OneSignalClient) Send(ctx context.Context, n domain.Notification) (*Receipt, error) {
	if n.UserID == "" {
		return nil, fmt.Errorf("notification has no user_id")
	}
	// webhook payloads occasionally arrive before the row id is known
	notificationID := n.ID
	if notificationID == "" {
		notificationID = uuid.NewString()
	}

	title := n.Title
	if title == "" {
		title = "แจ้งเตือน"
	}

	actionURL := n.ActionURL
	if actionURL == "" {
		actionURL = "irene://notifications/" + notificationID
	}

	notificationType := n.Type
	if notificationType == "" {
		notificationType = "system"
	}

	data := map[string]any{
		"notification_id": notificationID,
		"type":            notificationType,
		"reference_id":    nil,
		"reference_table": nil,
		"action_url":      actionURL,
	}
	if n.ReferenceID != nil {
		data["reference_id"] = *n.ReferenceID
	}
	if n.ReferenceTable != "" {
		data["reference_table"] = n.ReferenceTable
	}

	request := oneSignalRequest{
		AppID:          c.appID,
		IncludeAliases: map[string][]string{"external_id": {n.UserID}},
		TargetChannel:  "push",
		Headings:       map[string]string{"en": title},
		Contents:       map[string]string{"en": n.Body},
		Data:           data,
	}
	if n.ImageURL != "" {
		request.BigPicture = n.ImageURL
		request.IOSAttachments = map[string]string{"thumbnail": n.ImageURL}
	}

	c.logger.Info("sending push notification",
		zap.String("notification_id", notificationID),
		zap.String("user_id", n.UserID),
		zap.String("type", notificationType),
	)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(request).
		Post("/api/v1/notifications")
	if err != nil {
		return nil, fmt.Errorf("failed to call OneSignal API: %w", err)
	}

	// decode the body ourselves: a response served without a JSON content
	// type must not be able to hide an errors payload
	var receipt Receipt
	if len(resp.Body()) > 0 {
		if err := json.Unmarshal(resp.Body(), &receipt); err != nil {
			return nil, fmt.Errorf("failed to decode OneSignal response: %w", err)
		}
	}

	hasErrors := len(receipt.Errors) > 0 && string(receipt.Errors) != "null"
	if resp.StatusCode() != 200 || hasErrors {
		c.logger.Error("OneSignal API returned error",
			zap.Int("status_code", resp.StatusCode()),
			zap.ByteString("errors", receipt.Errors),
		)
		return nil, fmt.Errorf("OneSignal error: status %d", resp.StatusCode())
	}

	return &receipt, nil
}
