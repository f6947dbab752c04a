package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Tamjid17/TGBot/internal/erro"
	"github.com/Tamjid17/TGBot/internal/metrics"
	"github.com/Tamjid17/TGBot/internal/model"
	"github.com/Tamjid17/TGBot/internal/repository"
	"github.com/redis/go-redis/v9"
)

// PhotoCache keeps a read-through copy of whole date buckets. The cache
// is never the source of truth: every miss or infrastructure error is
// answered by the database, and appends invalidate the touched key.
type PhotoCache struct {
	cacheclient *CacheObject
}

func NewPhotoCache(red *CacheObject) *PhotoCache {
	return &PhotoCache{cacheclient: red}
}

const KeyBucket = "photos:date:%s"
const bucketTTL = 1 * time.Hour

func (ph *PhotoCache) AddBucketCache(ctx context.Context, datekey string, photos []*model.PhotoRecord) *repository.RepositoryResponse {
	const place = AddBucketCache
	jsondata, err := json.Marshal(photos)
	if err != nil {
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorMarshal, err)), place)
	}
	err = ph.cacheclient.connect.Set(ctx, fmt.Sprintf(KeyBucket, datekey), jsondata, bucketTTL).Err()
	if err != nil {
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorSetPhotos, err)), place)
	}
	return &repository.RepositoryResponse{Success: true, SuccessMessage: "Successful add date bucket in cache", Place: place}
}

func (ph *PhotoCache) GetBucketCache(ctx context.Context, datekey string) *repository.RepositoryResponse {
	const place = GetBucketCache
	result, err := ph.cacheclient.connect.Get(ctx, fmt.Sprintf(KeyBucket, datekey)).Result()
	if err != nil {
		if err == redis.Nil {
			metrics.PhotoBotCacheMissesTotal.WithLabelValues(place).Inc()
			return &repository.RepositoryResponse{Success: false, SuccessMessage: "Date bucket was not found in the cache", Place: place}
		}
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorGetPhotos, err)), place)
	}
	var photoslice []*model.PhotoRecord
	err = json.Unmarshal([]byte(result), &photoslice)
	if err != nil {
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorUnmarshal, err)), place)
	}
	metrics.PhotoBotCacheHitsTotal.WithLabelValues(place).Inc()
	return &repository.RepositoryResponse{Success: true, Data: repository.Data{Photos: photoslice}, SuccessMessage: "Successful get date bucket from cache", Place: place}
}

func (ph *PhotoCache) DeleteBucketCache(ctx context.Context, datekey string) *repository.RepositoryResponse {
	const place = DeleteBucketCache
	_, err := ph.cacheclient.connect.Del(ctx, fmt.Sprintf(KeyBucket, datekey)).Result()
	if err != nil {
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorDelPhotos, err)), place)
	}
	return &repository.RepositoryResponse{Success: true, SuccessMessage: "Successful delete date bucket from cache", Place: place}
}
