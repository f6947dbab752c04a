package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Tamjid17/TGBot/internal/brokers/kafka"
	"github.com/Tamjid17/TGBot/internal/model"
)

// SavePhoto appends one record to the store. The record is immutable after
// this point; the cache entry for its date key is invalidated so the next
// lookup reads its own write from the database.
func (use *PhotoServiceImplement) SavePhoto(ctx context.Context, photo *model.PhotoRecord, traceid string) *ServiceResponse {
	const place = UseCase_SavePhoto
	if _, errresp := use.requestToRepository(use.Photorepo.AppendPhoto(ctx, photo), traceid); errresp != nil {
		return errresp
	}
	cacheresponse := use.Cache.DeleteBucketCache(ctx, photo.DateKey)
	if !cacheresponse.Success && cacheresponse.Errors != nil {
		use.Logproducer.NewPhotoLog(kafka.LogLevelError, cacheresponse.Place, traceid, cacheresponse.Errors.Message)
	}
	use.Logproducer.NewPhotoLog(kafka.LogLevelInfo, place, traceid, fmt.Sprintf("The photo(ref = %s) has been successfully saved under date %s", photo.ExternalRef, photo.DateKey))
	return &ServiceResponse{Success: true}
}

// GetPhotosByDate returns every record in the date bucket, cache first.
// Cache failures of any sort degrade to the database read.
func (use *PhotoServiceImplement) GetPhotosByDate(ctx context.Context, datekey string, traceid string) *ServiceResponse {
	const place = UseCase_GetPhotosByDate
	cacheresponse := use.Cache.GetBucketCache(ctx, datekey)
	if cacheresponse.Success {
		use.Logproducer.NewPhotoLog(kafka.LogLevelInfo, cacheresponse.Place, traceid, cacheresponse.SuccessMessage)
		return &ServiceResponse{Success: true, Data: Data{Photos: cacheresponse.Data.Photos}}
	}
	if cacheresponse.Errors != nil {
		use.Logproducer.NewPhotoLog(kafka.LogLevelError, cacheresponse.Place, traceid, cacheresponse.Errors.Message)
	}
	bdresponse, errresp := use.requestToRepository(use.Photorepo.GetPhotosByDate(ctx, datekey), traceid)
	if errresp != nil {
		return errresp
	}
	photos := bdresponse.Data.Photos
	if len(photos) > 0 {
		use.enqueueTask(ctx, func(taskCtx context.Context) {
			use.refreshBucketCache(taskCtx, datekey, traceid)
		}, 5*time.Second, place, traceid)
	}
	return &ServiceResponse{Success: true, Data: Data{Photos: photos}}
}

// refreshBucketCache re-reads the bucket at execution time. A snapshot
// taken on the read path may predate an append that already invalidated
// the key; caching it would resurrect the old bucket until its TTL.
func (use *PhotoServiceImplement) refreshBucketCache(ctx context.Context, datekey string, traceid string) {
	const place = RefreshBucketCache
	bdresponse := use.Photorepo.GetPhotosByDate(ctx, datekey)
	if !bdresponse.Success {
		if bdresponse.Errors != nil {
			use.Logproducer.NewPhotoLog(kafka.LogLevelError, bdresponse.Place, traceid, bdresponse.Errors.Message)
		}
		return
	}
	photos := bdresponse.Data.Photos
	if len(photos) == 0 {
		return
	}
	cacheresponse := use.Cache.AddBucketCache(ctx, datekey, photos)
	if !cacheresponse.Success && cacheresponse.Errors != nil {
		use.Logproducer.NewPhotoLog(kafka.LogLevelError, cacheresponse.Place, traceid, cacheresponse.Errors.Message)
		return
	}
	use.Logproducer.NewPhotoLog(kafka.LogLevelInfo, place, traceid, fmt.Sprintf("The date bucket %s has been refreshed in cache (%d records)", datekey, len(photos)))
}
