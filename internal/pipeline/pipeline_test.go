package pipeline_test

import (
	"context"
	"sync"
	"testing"

	"github.com/Tamjid17/TGBot/internal/configs"
	"github.com/Tamjid17/TGBot/internal/datekey"
	"github.com/Tamjid17/TGBot/internal/erro"
	"github.com/Tamjid17/TGBot/internal/model"
	"github.com/Tamjid17/TGBot/internal/pipeline"
	mock_pipeline "github.com/Tamjid17/TGBot/internal/pipeline/mocks"
	"github.com/Tamjid17/TGBot/internal/service"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func newPipeline(t *testing.T, cfg configs.BotConfig) (*pipeline.Pipeline, *mock_pipeline.MockPhotoService) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockservice := mock_pipeline.NewMockPhotoService(ctrl)
	mocklogproducer := mock_pipeline.NewMockLogProducer(ctrl)
	mocklogproducer.EXPECT().NewPhotoLog(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	return pipeline.NewPipeline(mockservice, mocklogproducer, cfg), mockservice
}

func TestHandleEvent_PhotoUploadSaved(t *testing.T) {
	p, mockservice := newPipeline(t, configs.BotConfig{})
	var saved *model.PhotoRecord
	mockservice.EXPECT().SavePhoto(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, record *model.PhotoRecord, traceid string) *service.ServiceResponse {
			saved = record
			return &service.ServiceResponse{Success: true}
		})
	replies := p.HandleEvent(context.Background(), model.Event{
		ChatID:        42,
		PhotoVariants: []model.PhotoVariant{{Ref: "abc", Width: 1280, Height: 960}},
	})
	require.Len(t, replies, 1)
	require.Equal(t, model.ReplyText, replies[0].Kind)
	require.Equal(t, pipeline.ReplySaved, replies[0].Text)
	require.Equal(t, int64(42), replies[0].ChatID)
	require.NotNil(t, saved)
	require.Equal(t, "abc", saved.ExternalRef)
	require.Equal(t, model.NoCaption, saved.Caption)
	require.Equal(t, datekey.Today(), saved.DateKey)
}

func TestHandleEvent_PhotoUploadKeepsCaption(t *testing.T) {
	p, mockservice := newPipeline(t, configs.BotConfig{})
	var saved *model.PhotoRecord
	mockservice.EXPECT().SavePhoto(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, record *model.PhotoRecord, traceid string) *service.ServiceResponse {
			saved = record
			return &service.ServiceResponse{Success: true}
		})
	p.HandleEvent(context.Background(), model.Event{
		ChatID:        42,
		Caption:       "sunset",
		PhotoVariants: []model.PhotoVariant{{Ref: "abc", Width: 100, Height: 100}},
	})
	require.Equal(t, "sunset", saved.Caption)
}

func TestHandleEvent_PhotoUploadStoreUnavailable(t *testing.T) {
	p, mockservice := newPipeline(t, configs.BotConfig{})
	mockservice.EXPECT().SavePhoto(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&service.ServiceResponse{Success: false, Errors: erro.ServerError(erro.PhotoBotUnavailable)})
	replies := p.HandleEvent(context.Background(), model.Event{
		ChatID:        42,
		PhotoVariants: []model.PhotoVariant{{Ref: "abc", Width: 100, Height: 100}},
	})
	require.Len(t, replies, 1)
	require.Equal(t, pipeline.ReplyUnavailable, replies[0].Text)
}

func TestHandleEvent_DateQueryReturnsAllRecords(t *testing.T) {
	p, mockservice := newPipeline(t, configs.BotConfig{})
	mockservice.EXPECT().GetPhotosByDate(gomock.Any(), "2024-05-10", gomock.Any()).
		Return(&service.ServiceResponse{Success: true, Data: service.Data{Photos: []*model.PhotoRecord{
			{ExternalRef: "abc", Caption: "No caption", DateKey: "2024-05-10"},
			{ExternalRef: "def", Caption: "x", DateKey: "2024-05-10"},
		}}})
	replies := p.HandleEvent(context.Background(), model.Event{ChatID: 42, Text: "2024-05-10"})
	require.Len(t, replies, 2)
	require.Equal(t, model.ReplyPhoto, replies[0].Kind)
	require.Equal(t, "abc", replies[0].Ref)
	require.Equal(t, "No caption", replies[0].Caption)
	require.Equal(t, "def", replies[1].Ref)
}

func TestHandleEvent_DateQueryNoResults(t *testing.T) {
	p, mockservice := newPipeline(t, configs.BotConfig{})
	mockservice.EXPECT().GetPhotosByDate(gomock.Any(), "2024-05-11", gomock.Any()).
		Return(&service.ServiceResponse{Success: true, Data: service.Data{Photos: nil}})
	replies := p.HandleEvent(context.Background(), model.Event{ChatID: 42, Text: "2024-05-11"})
	require.Len(t, replies, 1)
	require.Equal(t, model.ReplyText, replies[0].Kind)
	require.Equal(t, pipeline.ReplyNoResults, replies[0].Text)
}

func TestHandleEvent_DateQueryInvalidFormatSkipsStore(t *testing.T) {
	p, _ := newPipeline(t, configs.BotConfig{})
	replies := p.HandleEvent(context.Background(), model.Event{ChatID: 42, Text: "not-a-date"})
	require.Len(t, replies, 1)
	require.Equal(t, erro.InvalidDateFormat, replies[0].Text)
}

func TestHandleEvent_DateQueryStoreUnavailable(t *testing.T) {
	p, mockservice := newPipeline(t, configs.BotConfig{})
	mockservice.EXPECT().GetPhotosByDate(gomock.Any(), "2024-05-10", gomock.Any()).
		Return(&service.ServiceResponse{Success: false, Errors: erro.ServerError(erro.PhotoBotUnavailable)})
	replies := p.HandleEvent(context.Background(), model.Event{ChatID: 42, Text: "2024-05-10"})
	require.Len(t, replies, 1)
	require.Equal(t, pipeline.ReplyUnavailable, replies[0].Text)
}

func TestHandleEvent_UnrecognizedIsSilentByDefault(t *testing.T) {
	p, _ := newPipeline(t, configs.BotConfig{})
	replies := p.HandleEvent(context.Background(), model.Event{ChatID: 42})
	require.Empty(t, replies)
}

func TestHandleEvent_UnrecognizedUsageHintWhenConfigured(t *testing.T) {
	p, _ := newPipeline(t, configs.BotConfig{UsageHint: true, UsageHintText: "send a photo or a date"})
	replies := p.HandleEvent(context.Background(), model.Event{ChatID: 42})
	require.Len(t, replies, 1)
	require.Equal(t, "send a photo or a date", replies[0].Text)
}

func TestHandleEvent_PanicIsContained(t *testing.T) {
	p, mockservice := newPipeline(t, configs.BotConfig{})
	mockservice.EXPECT().GetPhotosByDate(gomock.Any(), "2024-05-10", gomock.Any()).
		DoAndReturn(func(ctx context.Context, key, traceid string) *service.ServiceResponse {
			panic("boom")
		})
	require.NotPanics(t, func() {
		replies := p.HandleEvent(context.Background(), model.Event{ChatID: 42, Text: "2024-05-10"})
		require.Empty(t, replies)
	})
}

// fakePhotoService is a concurrency-safe in-process stand-in for the
// real use-case layer.
type fakePhotoService struct {
	mu      sync.Mutex
	buckets map[string][]*model.PhotoRecord
}

func (f *fakePhotoService) SavePhoto(ctx context.Context, photo *model.PhotoRecord, traceid string) *service.ServiceResponse {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.buckets[photo.DateKey] = append(f.buckets[photo.DateKey], photo)
	return &service.ServiceResponse{Success: true}
}

func (f *fakePhotoService) GetPhotosByDate(ctx context.Context, key string, traceid string) *service.ServiceResponse {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &service.ServiceResponse{Success: true, Data: service.Data{Photos: f.buckets[key]}}
}

type nopLogProducer struct{}

func (nopLogProducer) NewPhotoLog(level, place, traceid, msg string) {}

func TestHandleEvent_ConcurrentUploadsSameDateLoseNothing(t *testing.T) {
	fake := &fakePhotoService{buckets: make(map[string][]*model.PhotoRecord)}
	p := pipeline.NewPipeline(fake, nopLogProducer{}, configs.BotConfig{})
	const uploads = 16
	var wg sync.WaitGroup
	for i := 0; i < uploads; i++ {
		wg.Add(1)
		ref := string(rune('a' + i))
		go func() {
			defer wg.Done()
			p.HandleEvent(context.Background(), model.Event{
				ChatID:        42,
				PhotoVariants: []model.PhotoVariant{{Ref: ref, Width: 100, Height: 100}},
			})
		}()
	}
	wg.Wait()
	replies := p.HandleEvent(context.Background(), model.Event{ChatID: 42, Text: datekey.Today()})
	require.Len(t, replies, uploads)
	seen := make(map[string]bool)
	for _, reply := range replies {
		require.Equal(t, model.ReplyPhoto, reply.Kind)
		seen[reply.Ref] = true
	}
	require.Len(t, seen, uploads)
}
