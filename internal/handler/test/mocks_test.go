package test

import (
	"context"

	"reel/internal/models"
	"reel/internal/service"

	"github.com/stretchr/testify/mock"
)

// one returns the first mocked value as *T, tolerating a nil return.
func one[T any](args mock.Arguments) (*T, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func many[T any](args mock.Arguments) ([]T, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	return one[models.User](m.Called(ctx, req))
}

func (m *MockUserRepository) GetByID(ctx context.Context, userID int64) (*models.User, error) {
	return one[models.User](m.Called(ctx, userID))
}

func (m *MockUserRepository) List(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	return many[models.User](m.Called(ctx, filter))
}

func (m *MockUserRepository) ListCreators(ctx context.Context, filter models.CreatorFilter) ([]models.Creator, error) {
	return many[models.Creator](m.Called(ctx, filter))
}

func (m *MockUserRepository) Update(ctx context.Context, userID int64, req models.UpdateUserRequest) (*models.User, error) {
	return one[models.User](m.Called(ctx, userID, req))
}

func (m *MockUserRepository) Deactivate(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) Create(ctx context.Context, req models.CreateApplicationRequest) (*models.Application, error) {
	return one[models.Application](m.Called(ctx, req))
}

func (m *MockApplicationRepository) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	return one[models.Application](m.Called(ctx, id))
}

func (m *MockApplicationRepository) List(ctx context.Context, filter models.ApplicationFilter) ([]models.Application, error) {
	return many[models.Application](m.Called(ctx, filter))
}

func (m *MockApplicationRepository) Update(ctx context.Context, id int64, req models.UpdateApplicationRequest) (*models.Application, error) {
	return one[models.Application](m.Called(ctx, id, req))
}

func (m *MockApplicationRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockFlagRepository struct {
	mock.Mock
}

func (m *MockFlagRepository) Create(ctx context.Context, req models.CreateFlagRequest) (*models.FlaggedActivity, error) {
	return one[models.FlaggedActivity](m.Called(ctx, req))
}

func (m *MockFlagRepository) GetByID(ctx context.Context, id int64) (*models.FlaggedActivity, error) {
	return one[models.FlaggedActivity](m.Called(ctx, id))
}

func (m *MockFlagRepository) List(ctx context.Context, filter models.FlagFilter) ([]models.FlaggedActivity, error) {
	return many[models.FlaggedActivity](m.Called(ctx, filter))
}

func (m *MockFlagRepository) Update(ctx context.Context, id int64, req models.UpdateFlagRequest) (*models.FlaggedActivity, error) {
	return one[models.FlaggedActivity](m.Called(ctx, id, req))
}

func (m *MockFlagRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockAlertRepository struct {
	mock.Mock
}

func (m *MockAlertRepository) Create(ctx context.Context, req models.CreateAlertRequest) (*models.Alert, error) {
	return one[models.Alert](m.Called(ctx, req))
}

func (m *MockAlertRepository) GetByID(ctx context.Context, id int64) (*models.Alert, error) {
	return one[models.Alert](m.Called(ctx, id))
}

func (m *MockAlertRepository) List(ctx context.Context, filter models.AlertFilter) ([]models.Alert, error) {
	return many[models.Alert](m.Called(ctx, filter))
}

func (m *MockAlertRepository) Update(ctx context.Context, id int64, req models.UpdateAlertRequest) (*models.Alert, error) {
	return one[models.Alert](m.Called(ctx, id, req))
}

func (m *MockAlertRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockPortfolioRepository struct {
	mock.Mock
}

func (m *MockPortfolioRepository) Create(ctx context.Context, req models.CreatePortfolioRequest) (*models.Portfolio, error) {
	return one[models.Portfolio](m.Called(ctx, req))
}

func (m *MockPortfolioRepository) GetByID(ctx context.Context, id int64) (*models.Portfolio, error) {
	return one[models.Portfolio](m.Called(ctx, id))
}

func (m *MockPortfolioRepository) List(ctx context.Context, filter models.PortfolioFilter) ([]models.Portfolio, error) {
	return many[models.Portfolio](m.Called(ctx, filter))
}

func (m *MockPortfolioRepository) Update(ctx context.Context, id int64, req models.UpdatePortfolioRequest) (*models.Portfolio, error) {
	return one[models.Portfolio](m.Called(ctx, id, req))
}

func (m *MockPortfolioRepository) Archive(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Create(ctx context.Context, req models.CreateProjectRequest) (*models.Project, error) {
	return one[models.Project](m.Called(ctx, req))
}

func (m *MockProjectRepository) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	return one[models.Project](m.Called(ctx, id))
}

func (m *MockProjectRepository) List(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error) {
	return many[models.Project](m.Called(ctx, filter))
}

func (m *MockProjectRepository) Update(ctx context.Context, id int64, req models.UpdateProjectRequest) (*models.Project, error) {
	return one[models.Project](m.Called(ctx, id, req))
}

func (m *MockProjectRepository) Archive(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockCreditRepository struct {
	mock.Mock
}

func (m *MockCreditRepository) Create(ctx context.Context, req models.CreateCreditRequest) (*models.ProjectCredit, error) {
	return one[models.ProjectCredit](m.Called(ctx, req))
}

func (m *MockCreditRepository) List(ctx context.Context, filter models.CreditFilter) ([]models.ProjectCredit, error) {
	return many[models.ProjectCredit](m.Called(ctx, filter))
}

func (m *MockCreditRepository) Update(ctx context.Context, id int64, req models.UpdateCreditRequest) (*models.ProjectCredit, error) {
	return one[models.ProjectCredit](m.Called(ctx, id, req))
}

func (m *MockCreditRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockMediaRepository struct {
	mock.Mock
}

func (m *MockMediaRepository) Create(ctx context.Context, req models.CreateMediaRequest) (*models.ProjectMedia, error) {
	return one[models.ProjectMedia](m.Called(ctx, req))
}

func (m *MockMediaRepository) GetByID(ctx context.Context, id int64) (*models.ProjectMedia, error) {
	return one[models.ProjectMedia](m.Called(ctx, id))
}

func (m *MockMediaRepository) ListByProject(ctx context.Context, projectID int64) ([]models.ProjectMedia, error) {
	return many[models.ProjectMedia](m.Called(ctx, projectID))
}

func (m *MockMediaRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, req models.CreatePostRequest, tagNames []string) (*models.Post, error) {
	return one[models.Post](m.Called(ctx, req, tagNames))
}

func (m *MockPostRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	return one[models.Post](m.Called(ctx, id))
}

func (m *MockPostRepository) List(ctx context.Context, filter models.PostFilter) ([]models.Post, error) {
	return many[models.Post](m.Called(ctx, filter))
}

func (m *MockPostRepository) Update(ctx context.Context, id int64, req models.UpdatePostRequest) (*models.Post, error) {
	return one[models.Post](m.Called(ctx, id, req))
}

func (m *MockPostRepository) SoftDelete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockInteractionRepository struct {
	mock.Mock
}

func (m *MockInteractionRepository) Create(ctx context.Context, req models.CreateInteractionRequest) (*models.PostInteraction, error) {
	return one[models.PostInteraction](m.Called(ctx, req))
}

func (m *MockInteractionRepository) List(ctx context.Context, filter models.InteractionFilter) ([]models.PostInteraction, error) {
	return many[models.PostInteraction](m.Called(ctx, filter))
}

func (m *MockInteractionRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Create(ctx context.Context, req models.CreateMessageRequest) (*models.Message, error) {
	return one[models.Message](m.Called(ctx, req))
}

func (m *MockMessageRepository) GetByID(ctx context.Context, id int64) (*models.Message, error) {
	return one[models.Message](m.Called(ctx, id))
}

func (m *MockMessageRepository) ListForUser(ctx context.Context, userID int64) ([]models.Message, error) {
	return many[models.Message](m.Called(ctx, userID))
}

func (m *MockMessageRepository) Update(ctx context.Context, id int64, req models.UpdateMessageRequest) (*models.Message, error) {
	return one[models.Message](m.Called(ctx, id, req))
}

func (m *MockMessageRepository) DeleteForUser(ctx context.Context, messageID, userID int64) error {
	return m.Called(ctx, messageID, userID).Error(0)
}

type MockTrendTagRepository struct {
	mock.Mock
}

func (m *MockTrendTagRepository) Create(ctx context.Context, req models.CreateTrendTagRequest) (*models.TrendTag, error) {
	return one[models.TrendTag](m.Called(ctx, req))
}

func (m *MockTrendTagRepository) GetByID(ctx context.Context, id int64) (*models.TrendTag, error) {
	return one[models.TrendTag](m.Called(ctx, id))
}

func (m *MockTrendTagRepository) List(ctx context.Context, filter models.StatusFilter) ([]models.TrendTag, error) {
	return many[models.TrendTag](m.Called(ctx, filter))
}

func (m *MockTrendTagRepository) Trending(ctx context.Context, limit int) ([]models.TrendTag, error) {
	return many[models.TrendTag](m.Called(ctx, limit))
}

func (m *MockTrendTagRepository) Update(ctx context.Context, id int64, req models.UpdateTrendTagRequest) (*models.TrendTag, error) {
	return one[models.TrendTag](m.Called(ctx, id, req))
}

func (m *MockTrendTagRepository) Archive(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockKPIRepository struct {
	mock.Mock
}

func (m *MockKPIRepository) Create(ctx context.Context, req models.CreateKPIRequest) (*models.KPI, error) {
	return one[models.KPI](m.Called(ctx, req))
}

func (m *MockKPIRepository) GetByID(ctx context.Context, id int64) (*models.KPI, error) {
	return one[models.KPI](m.Called(ctx, id))
}

func (m *MockKPIRepository) List(ctx context.Context, filter models.StatusFilter) ([]models.KPI, error) {
	return many[models.KPI](m.Called(ctx, filter))
}

func (m *MockKPIRepository) Update(ctx context.Context, id int64, req models.UpdateKPIRequest) (*models.KPI, error) {
	return one[models.KPI](m.Called(ctx, id, req))
}

func (m *MockKPIRepository) Archive(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockInsightRepository struct {
	mock.Mock
}

func (m *MockInsightRepository) Create(ctx context.Context, req models.CreateInsightRequest) (*models.InsightReport, error) {
	return one[models.InsightReport](m.Called(ctx, req))
}

func (m *MockInsightRepository) GetByID(ctx context.Context, id int64) (*models.InsightReport, error) {
	return one[models.InsightReport](m.Called(ctx, id))
}

func (m *MockInsightRepository) List(ctx context.Context, filter models.InsightFilter) ([]models.InsightReport, error) {
	return many[models.InsightReport](m.Called(ctx, filter))
}

func (m *MockInsightRepository) Update(ctx context.Context, id int64, req models.UpdateInsightRequest) (*models.InsightReport, error) {
	return one[models.InsightReport](m.Called(ctx, id, req))
}

func (m *MockInsightRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) CreatePost(ctx context.Context, req models.CreatePostRequest) (*models.Post, error) {
	return one[models.Post](m.Called(ctx, req))
}

type MockMediaService struct {
	mock.Mock
}

func (m *MockMediaService) UploadMedia(ctx context.Context, req service.UploadMediaRequest) (*models.ProjectMedia, error) {
	return one[models.ProjectMedia](m.Called(ctx, req))
}

func (m *MockMediaService) DeleteMedia(ctx context.Context, mediaID int64) error {
	return m.Called(ctx, mediaID).Error(0)
}

type MockSystemService struct {
	mock.Mock
}

func (m *MockSystemService) Metrics(ctx context.Context) (*models.SystemMetrics, error) {
	return one[models.SystemMetrics](m.Called(ctx))
}

func (m *MockSystemService) Health(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
