package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"reel/internal/logging"
	"reel/internal/models"
	"reel/internal/repository"
	"reel/internal/storage"

	"github.com/gabriel-vasile/mimetype"
)

var (
	ErrUnsupportedMedia = errors.New("unsupported media type")
	ErrFileTooLarge     = errors.New("file exceeds upload limit")
)

type UploadMediaRequest struct {
	ProjectID int64
	FileName  string
	Caption   *string
	File      io.ReadSeeker
	Size      int64
}

type MediaService interface {
	UploadMedia(ctx context.Context, req UploadMediaRequest) (*models.ProjectMedia, error)
	DeleteMedia(ctx context.Context, mediaID int64) error
}

type mediaService struct {
	projectRepo repository.ProjectRepository
	mediaRepo   repository.MediaRepository
	storage     storage.Storage
	maxSize     int64
}

func NewMediaService(projectRepo repository.ProjectRepository, mediaRepo repository.MediaRepository, storage storage.Storage, maxSize int64) MediaService {
	return &mediaService{
		projectRepo: projectRepo,
		mediaRepo:   mediaRepo,
		storage:     storage,
		maxSize:     maxSize,
	}
}

func (s *mediaService) UploadMedia(ctx context.Context, req UploadMediaRequest) (*models.ProjectMedia, error) {
	if s.maxSize > 0 && req.Size > s.maxSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrFileTooLarge, req.Size)
	}

	if _, err := s.projectRepo.GetByID(ctx, req.ProjectID); err != nil {
		return nil, err
	}

	contentType, mediaType, err := DetectMediaType(req.File)
	if err != nil {
		return nil, err
	}

	objectKey, mediaURL, err := s.storage.UploadMedia(ctx, req.ProjectID, req.FileName, contentType, req.File, req.Size)
	if err != nil {
		return nil, err
	}

	media, err := s.mediaRepo.Create(ctx, models.CreateMediaRequest{
		ProjectID: req.ProjectID,
		MediaURL:  mediaURL,
		MediaType: mediaType,
		Caption:   req.Caption,
		ObjectKey: &objectKey,
	})
	if err != nil {
		if delErr := s.storage.DeleteObject(ctx, objectKey); delErr != nil {
			logging.Ctx(ctx).Warn().Err(delErr).Str("object_key", objectKey).Msg("failed to remove orphaned upload")
		}
		return nil, err
	}

	return media, nil
}

// DeleteMedia removes the row, then the stored object if there is one. Object removal is best-effort.
func (s *mediaService) DeleteMedia(ctx context.Context, mediaID int64) error {
	media, err := s.mediaRepo.GetByID(ctx, mediaID)
	if err != nil {
		return err
	}

	if err := s.mediaRepo.Delete(ctx, mediaID); err != nil {
		return err
	}

	if media.ObjectKey != nil && *media.ObjectKey != "" {
		if err := s.storage.DeleteObject(ctx, *media.ObjectKey); err != nil {
			logging.Ctx(ctx).Warn().Err(err).Str("object_key", *media.ObjectKey).Msg("failed to delete stored media object")
		}
	}

	return nil
}

// DetectMediaType sniffs the file header and rewinds the reader.
func DetectMediaType(file io.ReadSeeker) (contentType string, mediaType string, err error) {
	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		return "", "", fmt.Errorf("failed to read upload: %w", err)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", "", fmt.Errorf("failed to rewind upload: %w", err)
	}

	contentType = mtype.String()
	switch {
	case strings.HasPrefix(contentType, "image/"):
		mediaType = models.MediaImage
	case strings.HasPrefix(contentType, "video/"):
		mediaType = models.MediaVideo
	case strings.HasPrefix(contentType, "audio/"):
		mediaType = models.MediaAudio
	case mtype.Is("application/pdf"):
		mediaType = models.MediaDocument
	default:
		return "", "", fmt.Errorf("%w: %s", ErrUnsupportedMedia, contentType)
	}

	return contentType, mediaType, nil
}
