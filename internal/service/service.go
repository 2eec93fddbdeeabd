package service

import (
	"reel/internal/config"
	"reel/internal/database"
	"reel/internal/repository"
	"reel/internal/storage"
)

type Service struct {
	Post   PostService
	Media  MediaService
	System SystemService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage, db *database.DB) *Service {
	return &Service{
		Post:   NewPostService(rep.Post),
		Media:  NewMediaService(rep.Project, rep.Media, storage, cfg.MaxUploadSize),
		System: NewSystemService(db, db.Driver, rep.Tables, storage),
	}
}
