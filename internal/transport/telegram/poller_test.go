package telegram_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/Tamjid17/TGBot/internal/configs"
	"github.com/Tamjid17/TGBot/internal/model"
	mock_transport "github.com/Tamjid17/TGBot/internal/transport/mocks"
	"github.com/Tamjid17/TGBot/internal/transport/telegram"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

type nopLogProducer struct{}

func (nopLogProducer) NewPhotoLog(level, place, traceid, message string) {}

func TestRun_SkipUpdatesFastForwardsThenAdvancesOffset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockhandler := mock_transport.NewMockEventHandler(ctrl)
	evchan := make(chan model.Event, 1)
	mockhandler.EXPECT().HandleEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev model.Event) []model.Reply {
			evchan <- ev
			return []model.Reply{{ChatID: ev.ChatID, Kind: model.ReplyText, Text: "No image found for this date."}}
		})

	var mu sync.Mutex
	var offsets []int64
	sentchan := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/bottest-token/getUpdates":
			var payload map[string]any
			json.NewDecoder(r.Body).Decode(&payload)
			offset, _ := payload["offset"].(float64)
			mu.Lock()
			offsets = append(offsets, int64(offset))
			call := len(offsets)
			mu.Unlock()
			switch call {
			case 1:
				// Pending backlog: skip_updates must fast-forward past it.
				w.Write([]byte(`{"ok": true, "result": [{"update_id": 10}]}`))
			case 2:
				w.Write([]byte(`{"ok": true, "result": [{"update_id": 11, "message": {"message_id": 1, "chat": {"id": 42}, "text": "2024-05-01"}}]}`))
			default:
				time.Sleep(10 * time.Millisecond)
				w.Write([]byte(`{"ok": true, "result": []}`))
			}
		case "/bottest-token/sendMessage":
			var payload map[string]any
			json.NewDecoder(r.Body).Decode(&payload)
			text, _ := payload["text"].(string)
			select {
			case sentchan <- text:
			default:
			}
			w.Write([]byte(`{"ok": true, "result": {}}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	client := telegram.NewClient(configs.BotConfig{Token: "test-token", APIBase: srv.URL})
	poller := telegram.NewPoller(configs.TransportConfig{Workers: 1, SkipUpdates: true}, client, mockhandler, nopLogProducer{})
	runDone := make(chan error, 1)
	go func() {
		runDone <- poller.Run()
	}()

	var ev model.Event
	select {
	case ev = <-evchan:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for the update to reach the handler")
	}
	var sent string
	select {
	case sent = <-sentchan:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for the reply delivery")
	}
	poller.Close()
	require.NoError(t, <-runDone)

	require.Equal(t, int64(42), ev.ChatID)
	require.Equal(t, "2024-05-01", ev.Text)
	require.Equal(t, "No image found for this date.", sent)

	mu.Lock()
	defer mu.Unlock()
	require.GreaterOrEqual(t, len(offsets), 2)
	require.Equal(t, int64(-1), offsets[0])
	require.Equal(t, int64(11), offsets[1])
	for _, offset := range offsets[2:] {
		require.Equal(t, int64(12), offset)
	}
}

func TestRun_WithoutSkipUpdatesStartsFromZeroOffset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockhandler := mock_transport.NewMockEventHandler(ctrl)

	firstPayload := make(chan map[string]any, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		json.NewDecoder(r.Body).Decode(&payload)
		select {
		case firstPayload <- payload:
		default:
		}
		time.Sleep(10 * time.Millisecond)
		w.Write([]byte(`{"ok": true, "result": []}`))
	}))
	t.Cleanup(srv.Close)

	client := telegram.NewClient(configs.BotConfig{Token: "test-token", APIBase: srv.URL})
	poller := telegram.NewPoller(configs.TransportConfig{Workers: 1, SkipUpdates: false}, client, mockhandler, nopLogProducer{})
	runDone := make(chan error, 1)
	go func() {
		runDone <- poller.Run()
	}()

	var payload map[string]any
	select {
	case payload = <-firstPayload:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for the first poll")
	}
	poller.Close()
	require.NoError(t, <-runDone)

	_, hasOffset := payload["offset"]
	require.False(t, hasOffset)
}
