package telegram_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Tamjid17/TGBot/internal/configs"
	"github.com/Tamjid17/TGBot/internal/model"
	"github.com/Tamjid17/TGBot/internal/transport/telegram"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *telegram.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return telegram.NewClient(configs.BotConfig{Token: "test-token", APIBase: srv.URL})
}

func TestGetUpdates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/bottest-token/getUpdates", r.URL.Path)
		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Equal(t, float64(5), payload["offset"])
		w.Write([]byte(`{"ok": true, "result": [
			{"update_id": 5, "message": {"message_id": 1, "chat": {"id": 42}, "text": "2024-05-01"}},
			{"update_id": 6, "message": {"message_id": 2, "chat": {"id": 42}, "photo": [{"file_id": "small", "width": 90, "height": 90}]}}
		]}`))
	})

	updates, err := client.GetUpdates(context.Background(), 5, 30*time.Second)
	require.NoError(t, err)
	require.Len(t, updates, 2)
	require.Equal(t, int64(5), updates[0].UpdateID)
	require.Equal(t, "2024-05-01", updates[0].Message.Text)
	require.Len(t, updates[1].Message.Photo, 1)
}

func TestSendReply_PhotoUsesSendPhoto(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/bottest-token/sendPhoto", r.URL.Path)
		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Equal(t, float64(42), payload["chat_id"])
		require.Equal(t, "file-1", payload["photo"])
		require.Equal(t, "sunset", payload["caption"])
		w.Write([]byte(`{"ok": true, "result": {}}`))
	})

	err := client.SendReply(context.Background(), model.Reply{ChatID: 42, Kind: model.ReplyPhoto, Ref: "file-1", Caption: "sunset"})
	require.NoError(t, err)
}

func TestSendReply_TextUsesSendMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/bottest-token/sendMessage", r.URL.Path)
		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Equal(t, "Image saved!", payload["text"])
		w.Write([]byte(`{"ok": true, "result": {}}`))
	})

	err := client.SendReply(context.Background(), model.Reply{ChatID: 42, Kind: model.ReplyText, Text: "Image saved!"})
	require.NoError(t, err)
}

func TestCall_APIRejectionSurfaces(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok": false, "description": "Unauthorized"}`))
	})

	_, err := client.GetUpdates(context.Background(), 0, 0)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Unauthorized")
}
