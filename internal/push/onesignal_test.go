package push

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/abyssmaljib/irene-training/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*OneSignalClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewOneSignalClient("app-123", "key-456", zap.NewNop())
	client.SetBaseURL(srv.URL)
	return client, srv
}

func TestSendBuildsPayload(t *testing.T) {
	var got oneSignalRequest
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/notifications", r.URL.Path)
		assert.Equal(t, "Basic key-456", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"id": "os-1", "recipients": 1})
	})

	refID := int64(77)
	receipt, err := client.Send(context.Background(), domain.Notification{
		ID:             "n-1",
		UserID:         "user-9",
		Title:          "งานใหม่",
		Body:           "มีงานรอดำเนินการ",
		ImageURL:       "https://example.com/pic.jpg",
		Type:           "task",
		ReferenceID:    &refID,
		ReferenceTable: "A_Tasks",
	})
	require.NoError(t, err)
	require.NotNil(t, receipt)
	assert.Equal(t, "os-1", receipt.ID)
	assert.Equal(t, 1, receipt.Recipients)

	assert.Equal(t, "app-123", got.AppID)
	assert.Equal(t, []string{"user-9"}, got.IncludeAliases["external_id"])
	assert.Equal(t, "push", got.TargetChannel)
	assert.Equal(t, "งานใหม่", got.Headings["en"])
	assert.Equal(t, "https://example.com/pic.jpg", got.BigPicture)
	assert.Equal(t, "https://example.com/pic.jpg", got.IOSAttachments["thumbnail"])
	assert.Equal(t, "n-1", got.Data["notification_id"])
	assert.Equal(t, "task", got.Data["type"])
	assert.Equal(t, float64(77), got.Data["reference_id"])
	assert.Equal(t, "A_Tasks", got.Data["reference_table"])
	assert.Equal(t, "irene://notifications/n-1", got.Data["action_url"])
}

func TestSendDefaults(t *testing.T) {
	var got oneSignalRequest
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"id": "os-2"})
	})

	_, err := client.Send(context.Background(), domain.Notification{
		UserID: "user-9",
		Body:   "ข้อความ",
	})
	require.NoError(t, err)

	assert.Equal(t, "แจ้งเตือน", got.Headings["en"])
	assert.Equal(t, "system", got.Data["type"])
	assert.Nil(t, got.Data["reference_id"])
	// missing record id falls back to a generated one; the deep link follows it
	generatedID, ok := got.Data["notification_id"].(string)
	require.True(t, ok)
	assert.NotEmpty(t, generatedID)
	assert.Equal(t, "irene://notifications/"+generatedID, got.Data["action_url"])
	assert.Empty(t, got.BigPicture)
}

func TestSendMissingUserID(t *testing.T) {
	client := NewOneSignalClient("app", "key", zap.NewNop())
	_, err := client.Send(context.Background(), domain.Notification{Body: "x"})
	assert.Error(t, err)
}

func TestSendOneSignalErrors(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"errors": []string{"no subscribed players"}})
	})

	_, err := client.Send(context.Background(), domain.Notification{UserID: "u", Body: "x"})
	assert.Error(t, err)
}

func TestSendErrorsDetectedWithoutContentType(t *testing.T) {
	// an errors payload served without a JSON content type must still fail
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"errors": []string{"no subscribed players"}})
	})

	_, err := client.Send(context.Background(), domain.Notification{UserID: "u", Body: "x"})
	assert.Error(t, err)
}

func TestSendServerError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "bad app id"})
	})

	_, err := client.Send(context.Background(), domain.Notification{UserID: "u", Body: "x"})
	assert.Error(t, err)
}
