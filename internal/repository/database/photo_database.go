package database

import (
	"context"
	"fmt"
	"time"

	"github.com/Tamjid17/TGBot/internal/erro"
	"github.com/Tamjid17/TGBot/internal/metrics"
	"github.com/Tamjid17/TGBot/internal/model"
	"github.com/Tamjid17/TGBot/internal/repository"
)

type PhotoDatabase struct {
	databaseclient *DBObject
}

func NewPhotoDatabase(db *DBObject) *PhotoDatabase {
	return &PhotoDatabase{databaseclient: db}
}

// Rows are append-only: the core never updates or deletes a record, so
// concurrent appends on the same date key can only interleave inserts.
const (
	insertPhotoQuery  = `INSERT INTO photos (date_key, external_ref, caption) VALUES ($1, $2, $3)`
	selectPhotosQuery = `SELECT date_key, external_ref, caption FROM photos WHERE date_key = $1`
)

func DatabaseMetrics(place string, start time.Time) {
	metrics.PhotoBotDBQueriesTotal.WithLabelValues(place).Inc()
	duration := time.Since(start).Seconds()
	metrics.PhotoBotDBQueryDuration.WithLabelValues(place).Observe(duration)
}

func (ph *PhotoDatabase) AppendPhoto(ctx context.Context, photo *model.PhotoRecord) *repository.RepositoryResponse {
	const place = AppendPhoto
	start := time.Now()
	defer DatabaseMetrics(place, start)
	_, err := ph.databaseclient.mapstmt[insertPhotoQuery].ExecContext(ctx, photo.DateKey, photo.ExternalRef, photo.Caption)
	if err != nil {
		metrics.PhotoBotErrorsTotal.WithLabelValues(erro.ServerErrorType).Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqPhotos, err)), place)
	}
	return &repository.RepositoryResponse{Success: true, Place: place, SuccessMessage: "Successful append photo record to database"}
}

func (ph *PhotoDatabase) GetPhotosByDate(ctx context.Context, datekey string) *repository.RepositoryResponse {
	const place = GetPhotosByDate
	start := time.Now()
	defer DatabaseMetrics(place, start)
	photoslice := make([]*model.PhotoRecord, 0)
	rows, err := ph.databaseclient.mapstmt[selectPhotosQuery].QueryContext(ctx, datekey)
	if err != nil {
		metrics.PhotoBotErrorsTotal.WithLabelValues(erro.ServerErrorType).Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqPhotos, err)), place)
	}
	defer rows.Close()
	for rows.Next() {
		var photo model.PhotoRecord
		err := rows.Scan(&photo.DateKey, &photo.ExternalRef, &photo.Caption)
		if err != nil {
			metrics.PhotoBotErrorsTotal.WithLabelValues(erro.ServerErrorType).Inc()
			return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorScan, err)), place)
		}
		photoslice = append(photoslice, &photo)
	}
	if err := rows.Err(); err != nil {
		metrics.PhotoBotErrorsTotal.WithLabelValues(erro.ServerErrorType).Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqPhotos, err)), place)
	}
	// Zero rows is a successful empty bucket, not an error.
	return &repository.RepositoryResponse{Success: true, Data: repository.Data{Photos: photoslice}, Place: place, SuccessMessage: "Successful get photo records from database"}
}
