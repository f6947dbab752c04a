package service

import (
	"context"
	"log"
	"sync"

	"github.com/Tamjid17/TGBot/internal/erro"
	"github.com/Tamjid17/TGBot/internal/model"
	"github.com/Tamjid17/TGBot/internal/repository"
)

type DBPhotoRepos interface {
	AppendPhoto(ctx context.Context, photo *model.PhotoRecord) *repository.RepositoryResponse
	GetPhotosByDate(ctx context.Context, datekey string) *repository.RepositoryResponse
}

type CachePhotoRepos interface {
	GetBucketCache(ctx context.Context, datekey string) *repository.RepositoryResponse
	AddBucketCache(ctx context.Context, datekey string, photos []*model.PhotoRecord) *repository.RepositoryResponse
	DeleteBucketCache(ctx context.Context, datekey string) *repository.RepositoryResponse
}

type LogProducer interface {
	NewPhotoLog(level, place, traceid, msg string)
}

const UseCase_SavePhoto = "UseCase_SavePhoto"
const UseCase_GetPhotosByDate = "UseCase_GetPhotosByDate"
const RefreshBucketCache = "RefreshBucketCache"

type ServiceResponse struct {
	Success bool
	Data    Data
	Errors  *erro.CustomError
}

type Data struct {
	Photos []*model.PhotoRecord
}

type PhotoServiceImplement struct {
	Photorepo   DBPhotoRepos
	Cache       CachePhotoRepos
	Logproducer LogProducer
	Task_queue  chan func()
	closechan   chan struct{}
	wg          *sync.WaitGroup
}

func NewPhotoServiceImplement(repo DBPhotoRepos, cache CachePhotoRepos, logproducer LogProducer) *PhotoServiceImplement {
	use := &PhotoServiceImplement{
		Photorepo:   repo,
		Cache:       cache,
		Logproducer: logproducer,
		Task_queue:  make(chan func(), 1000),
		closechan:   make(chan struct{}),
		wg:          &sync.WaitGroup{},
	}
	for i := 1; i <= 3; i++ {
		use.wg.Add(1)
		go use.taskWorker(i)
	}
	log.Println("[DEBUG] [Photo-Bot] Successful start task-workers")
	return use
}

func (use *PhotoServiceImplement) Stop() {
	use.StopWorkers()
}
