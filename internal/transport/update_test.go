package transport_test

import (
	"encoding/json"
	"testing"

	"github.com/Tamjid17/TGBot/internal/transport"
	"github.com/stretchr/testify/require"
)

func TestEventFromUpdate_PhotoMessage(t *testing.T) {
	raw := `{
		"update_id": 10,
		"message": {
			"message_id": 1,
			"chat": {"id": 42},
			"caption": "sunset",
			"photo": [
				{"file_id": "small", "width": 90, "height": 90},
				{"file_id": "big", "width": 1280, "height": 960}
			]
		}
	}`
	var update transport.Update
	require.NoError(t, json.Unmarshal([]byte(raw), &update))
	ev := transport.EventFromUpdate(update)
	require.Equal(t, int64(42), ev.ChatID)
	require.Equal(t, "sunset", ev.Caption)
	require.Len(t, ev.PhotoVariants, 2)
	require.Equal(t, "big", ev.PhotoVariants[1].Ref)
	require.Equal(t, 1280, ev.PhotoVariants[1].Width)
}

func TestEventFromUpdate_TextMessage(t *testing.T) {
	update := transport.Update{
		UpdateID: 11,
		Message:  &transport.Message{Chat: transport.Chat{ID: 42}, Text: "2024-05-10"},
	}
	ev := transport.EventFromUpdate(update)
	require.Equal(t, "2024-05-10", ev.Text)
	require.Empty(t, ev.PhotoVariants)
}

func TestEventFromUpdate_MissingMessage(t *testing.T) {
	ev := transport.EventFromUpdate(transport.Update{UpdateID: 12})
	require.Zero(t, ev.ChatID)
	require.Empty(t, ev.Text)
	require.Empty(t, ev.PhotoVariants)
}
