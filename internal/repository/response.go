package repository

import (
	"github.com/Tamjid17/TGBot/internal/erro"
	"github.com/Tamjid17/TGBot/internal/model"
)

type RepositoryResponse struct {
	Success        bool
	SuccessMessage string
	Place          string
	Data           Data
	Errors         *erro.CustomError
}

type Data struct {
	Photos []*model.PhotoRecord
}

func BadResponse(err *erro.CustomError, place string) *RepositoryResponse {
	return &RepositoryResponse{
		Success: false,
		Errors:  err,
		Place:   place,
	}
}
