package service

import (
	"context"
	"strings"

	"reel/internal/metrics"
	"reel/internal/models"
	"reel/internal/repository"
)

type PostService interface {
	CreatePost(ctx context.Context, req models.CreatePostRequest) (*models.Post, error)
}

type postService struct {
	postRepo repository.PostRepository
}

func NewPostService(postRepo repository.PostRepository) PostService {
	return &postService{postRepo: postRepo}
}

// CreatePost stores the post and bumps usage of the active trend tags it names.
func (p *postService) CreatePost(ctx context.Context, req models.CreatePostRequest) (*models.Post, error) {
	tags := ParseTags(req.Tags)

	post, err := p.postRepo.Create(ctx, req, tags)
	if err != nil {
		return nil, err
	}

	metrics.PostTagsBumped.Add(float64(len(tags)))
	return post, nil
}

// ParseTags splits a comma separated tag list into trimmed, lowercased, unique names.
func ParseTags(raw *string) []string {
	if raw == nil {
		return nil
	}

	seen := make(map[string]struct{})
	var tags []string
	for _, part := range strings.Split(*raw, ",") {
		tag := strings.ToLower(strings.TrimSpace(part))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}

	return tags
}
