package handlers

import (
	"reflect"
	"strings"

	"reel/internal/config"
	"reel/internal/repository"
	"reel/internal/service"

	"github.com/go-playground/validator/v10"
)

type Handlers struct {
	UserRepo        repository.UserRepository
	ApplicationRepo repository.ApplicationRepository
	FlagRepo        repository.FlagRepository
	AlertRepo       repository.AlertRepository
	PortfolioRepo   repository.PortfolioRepository
	ProjectRepo     repository.ProjectRepository
	CreditRepo      repository.CreditRepository
	MediaRepo       repository.MediaRepository
	PostRepo        repository.PostRepository
	InteractionRepo repository.InteractionRepository
	MessageRepo     repository.MessageRepository
	TrendTagRepo    repository.TrendTagRepository
	KPIRepo         repository.KPIRepository
	InsightRepo     repository.InsightRepository

	PostService   service.PostService
	MediaService  service.MediaService
	SystemService service.SystemService

	Cfg      *config.Config
	Validate *validator.Validate
}

func NewHandlers(repo *repository.Repository, service *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		UserRepo:        repo.User,
		ApplicationRepo: repo.Application,
		FlagRepo:        repo.Flag,
		AlertRepo:       repo.Alert,
		PortfolioRepo:   repo.Portfolio,
		ProjectRepo:     repo.Project,
		CreditRepo:      repo.Credit,
		MediaRepo:       repo.Media,
		PostRepo:        repo.Post,
		InteractionRepo: repo.Interaction,
		MessageRepo:     repo.Message,
		TrendTagRepo:    repo.TrendTag,
		KPIRepo:         repo.KPI,
		InsightRepo:     repo.Insight,
		PostService:     service.Post,
		MediaService:    service.Media,
		SystemService:   service.System,
		Cfg:             config,
		Validate:        NewValidator(),
	}
}

// NewValidator reports field errors under their JSON names.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
