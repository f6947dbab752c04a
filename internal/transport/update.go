package transport

import (
	"github.com/Tamjid17/TGBot/internal/model"
)

// Update is the chat platform's inbound envelope, shared by the
// polling, webhook and amqp transports.
type Update struct {
	UpdateID int64    `json:"update_id"`
	Message  *Message `json:"message"`
}

type Message struct {
	MessageID int64       `json:"message_id"`
	Chat      Chat        `json:"chat"`
	Text      string      `json:"text"`
	Caption   string      `json:"caption"`
	Photo     []PhotoSize `json:"photo"`
}

type Chat struct {
	ID int64 `json:"id"`
}

type PhotoSize struct {
	FileID string `json:"file_id"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// EventFromUpdate maps a platform update onto the pipeline's Event
// contract. Updates without a message body map to an event that
// classifies as unrecognized.
func EventFromUpdate(update Update) model.Event {
	if update.Message == nil {
		return model.Event{}
	}
	ev := model.Event{
		ChatID:  update.Message.Chat.ID,
		Text:    update.Message.Text,
		Caption: update.Message.Caption,
	}
	for _, size := range update.Message.Photo {
		ev.PhotoVariants = append(ev.PhotoVariants, model.PhotoVariant{
			Ref:    size.FileID,
			Width:  size.Width,
			Height: size.Height,
		})
	}
	return ev
}
