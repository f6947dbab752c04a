package pipeline

import (
	"context"
	"fmt"

	"github.com/Tamjid17/TGBot/internal/brokers/kafka"
	"github.com/Tamjid17/TGBot/internal/configs"
	"github.com/Tamjid17/TGBot/internal/datekey"
	"github.com/Tamjid17/TGBot/internal/erro"
	"github.com/Tamjid17/TGBot/internal/metrics"
	"github.com/Tamjid17/TGBot/internal/model"
	"github.com/Tamjid17/TGBot/internal/service"
	"github.com/google/uuid"
)

const Pipeline_HandleEvent = "Pipeline-HandleEvent"
const Pipeline_SavePhoto = "Pipeline-SavePhoto"
const Pipeline_DateQuery = "Pipeline-DateQuery"

const ReplySaved = "Image saved!"
const ReplyNoResults = "No image found for this date."
const ReplyUnavailable = "Something went wrong. Please try again later."

type PhotoService interface {
	SavePhoto(ctx context.Context, photo *model.PhotoRecord, traceid string) *service.ServiceResponse
	GetPhotosByDate(ctx context.Context, datekey string, traceid string) *service.ServiceResponse
}

type LogProducer interface {
	NewPhotoLog(level, place, traceid, msg string)
}

// Pipeline runs the classify -> store -> reply pass for one inbound
// event. It keeps no state between events; transports may call
// HandleEvent from as many goroutines as they like.
type Pipeline struct {
	photoService PhotoService
	logproducer  LogProducer
	usageHint    bool
	usageText    string
}

func NewPipeline(photoService PhotoService, logproducer LogProducer, cfg configs.BotConfig) *Pipeline {
	return &Pipeline{
		photoService: photoService,
		logproducer:  logproducer,
		usageHint:    cfg.UsageHint,
		usageText:    cfg.UsageHintText,
	}
}

// HandleEvent processes exactly one inbound event and returns the
// replies to deliver. A panic inside one event's handling is contained
// here so a malformed update can never take the process down.
func (p *Pipeline) HandleEvent(ctx context.Context, ev model.Event) (replies []model.Reply) {
	const place = Pipeline_HandleEvent
	traceid := uuid.New().String()
	defer func() {
		if r := recover(); r != nil {
			p.logproducer.NewPhotoLog(kafka.LogLevelError, place, traceid, fmt.Sprintf("Recovered from panic while handling event: %v", r))
			metrics.PhotoBotErrorsTotal.WithLabelValues(erro.ServerErrorType).Inc()
			replies = nil
		}
	}()
	classification := Classify(ev)
	metrics.PhotoBotEventsTotal.WithLabelValues(classification.Kind.String()).Inc()
	switch classification.Kind {
	case KindPhotoUpload:
		replies = p.handlePhotoUpload(ctx, ev.ChatID, classification, traceid)
	case KindDateQuery:
		replies = p.handleDateQuery(ctx, ev.ChatID, classification.Text, traceid)
	case KindUnrecognized:
		if p.usageHint {
			replies = []model.Reply{{ChatID: ev.ChatID, Kind: model.ReplyText, Text: p.usageText}}
		}
	}
	for _, reply := range replies {
		if reply.Kind == model.ReplyPhoto {
			metrics.PhotoBotRepliesTotal.WithLabelValues("photo").Inc()
		} else {
			metrics.PhotoBotRepliesTotal.WithLabelValues("text").Inc()
		}
	}
	return replies
}

func (p *Pipeline) handlePhotoUpload(ctx context.Context, chatid int64, classification Classification, traceid string) []model.Reply {
	const place = Pipeline_SavePhoto
	caption := classification.Caption
	if caption == "" {
		caption = model.NoCaption
	}
	record := &model.PhotoRecord{
		ExternalRef: classification.Ref,
		Caption:     caption,
		DateKey:     datekey.Today(),
	}
	p.logproducer.NewPhotoLog(kafka.LogLevelInfo, place, traceid, fmt.Sprintf("New photo upload for date %s", record.DateKey))
	serviceresp := p.photoService.SavePhoto(ctx, record, traceid)
	if serviceresp.Errors != nil {
		// No retry here: the record was not stored, the caller may resend.
		return []model.Reply{{ChatID: chatid, Kind: model.ReplyText, Text: ReplyUnavailable}}
	}
	return []model.Reply{{ChatID: chatid, Kind: model.ReplyText, Text: ReplySaved}}
}

func (p *Pipeline) handleDateQuery(ctx context.Context, chatid int64, text string, traceid string) []model.Reply {
	const place = Pipeline_DateQuery
	key, err := datekey.Normalize(text)
	if err != nil {
		p.logproducer.NewPhotoLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("Invalid date query: %q", text))
		metrics.PhotoBotErrorsTotal.WithLabelValues(erro.ClientErrorType).Inc()
		return []model.Reply{{ChatID: chatid, Kind: model.ReplyText, Text: erro.InvalidDateFormat}}
	}
	serviceresp := p.photoService.GetPhotosByDate(ctx, key, traceid)
	if serviceresp.Errors != nil {
		return []model.Reply{{ChatID: chatid, Kind: model.ReplyText, Text: ReplyUnavailable}}
	}
	if len(serviceresp.Data.Photos) == 0 {
		return []model.Reply{{ChatID: chatid, Kind: model.ReplyText, Text: ReplyNoResults}}
	}
	replies := make([]model.Reply, 0, len(serviceresp.Data.Photos))
	for _, photo := range serviceresp.Data.Photos {
		replies = append(replies, model.Reply{ChatID: chatid, Kind: model.ReplyPhoto, Ref: photo.ExternalRef, Caption: photo.Caption})
	}
	return replies
}
