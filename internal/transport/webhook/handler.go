package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Tamjid17/TGBot/internal/brokers/kafka"
	"github.com/Tamjid17/TGBot/internal/transport"
)

// Handler terminates the push (webhook) transport: one inbound HTTP
// POST per platform update, handled on the request goroutine. The
// platform only needs a 200; replies go out through the Sender, not
// the webhook response body.
type Handler struct {
	handler     transport.EventHandler
	sender      transport.Sender
	logproducer kafka.KafkaProducerService
}

func NewHandler(handler transport.EventHandler, sender transport.Sender, logproducer kafka.KafkaProducerService) *Handler {
	return &Handler{handler: handler, sender: sender, logproducer: logproducer}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const place = "Webhook-ServeHTTP"
	var update transport.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.logproducer.NewPhotoLog(kafka.LogLevelWarn, place, "", fmt.Sprintf("Failed to decode update: %v", err))
		http.Error(w, "bad update payload", http.StatusBadRequest)
		return
	}
	replies := h.handler.HandleEvent(r.Context(), transport.EventFromUpdate(update))
	for _, reply := range replies {
		sendCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := h.sender.SendReply(sendCtx, reply); err != nil {
			h.logproducer.NewPhotoLog(kafka.LogLevelError, place, "", fmt.Sprintf("Failed to deliver reply to chat %d: %v", reply.ChatID, err))
		}
		cancel()
	}
	w.WriteHeader(http.StatusOK)
}
