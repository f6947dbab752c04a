package service

import (
	"context"
	"time"

	"github.com/Tamjid17/TGBot/internal/brokers/kafka"
	"github.com/Tamjid17/TGBot/internal/erro"
	"github.com/Tamjid17/TGBot/internal/metrics"
	"github.com/Tamjid17/TGBot/internal/repository"
)

func (use *PhotoServiceImplement) requestToRepository(response *repository.RepositoryResponse, traceid string) (*repository.RepositoryResponse, *ServiceResponse) {
	if !response.Success && response.Errors != nil {
		switch response.Errors.Type {
		case erro.ServerErrorType:
			use.Logproducer.NewPhotoLog(kafka.LogLevelError, response.Place, traceid, response.Errors.Message)
			return response, &ServiceResponse{Success: false, Errors: erro.ServerError(erro.PhotoBotUnavailable)}

		case erro.ClientErrorType:
			use.Logproducer.NewPhotoLog(kafka.LogLevelWarn, response.Place, traceid, response.Errors.Message)
			return response, &ServiceResponse{Success: false, Errors: response.Errors}
		}
	}
	use.Logproducer.NewPhotoLog(kafka.LogLevelInfo, response.Place, traceid, response.SuccessMessage)
	return response, nil
}

func (use *PhotoServiceImplement) enqueueTask(ctx context.Context, task func(context.Context), timeout time.Duration, place string, traceid string) {
	select {
	case use.Task_queue <- func() {
		taskCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		task(taskCtx)
	}:
		metrics.PhotoBotTaskQueueSize.Set(float64(len(use.Task_queue)))
	case <-ctx.Done():
		use.Logproducer.NewPhotoLog(kafka.LogLevelError, place, traceid, erro.ContextCanceled)
	default:
		use.Logproducer.NewPhotoLog(kafka.LogLevelError, place, traceid, erro.ErrorOverflowTaskQ)
	}
}
