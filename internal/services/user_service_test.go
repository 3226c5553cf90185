package services

import (
	"context"
	"errors"
	"testing"

	"cashflow/internal/models"
	"cashflow/internal/repositories"
	"cashflow/internal/repositories/repository_mocks"
	"cashflow/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	userRepo    *repository_mocks.MockUserRepositoryInterface
	cache       *service_mocks.MockAnalyticsCacheInterface
	auditLogger *service_mocks.MockAuditLoggerInterface
	service     UserServiceInterface
	ctx         context.Context
}

func (s *UserServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.userRepo = repository_mocks.NewMockUserRepositoryInterface(s.ctrl)
	s.cache = service_mocks.NewMockAnalyticsCacheInterface(s.ctrl)
	s.auditLogger = service_mocks.NewMockAuditLoggerInterface(s.ctrl)
	s.service = NewUserService(s.userRepo, s.cache, s.auditLogger)
	s.ctx = context.Background()
}

func (s *UserServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestUserServiceSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) TestGetMe() {
	user := &models.User{ID: uuid.New(), Username: "john_doe"}
	s.userRepo.EXPECT().GetByID(user.ID).Return(user, nil)

	got, err := s.service.GetMe(user.ID)
	s.NoError(err)
	s.Equal(user, got)
}

func (s *UserServiceTestSuite) TestGetMe_NotFound() {
	id := uuid.New()
	s.userRepo.EXPECT().GetByID(id).Return(nil, repositories.ErrUserNotFound)

	got, err := s.service.GetMe(id)
	s.ErrorIs(err, ErrUserNotFound)
	s.Nil(got)
}

func (s *UserServiceTestSuite) TestDeleteMe() {
	id := uuid.New()
	s.userRepo.EXPECT().Delete(id).Return(nil)
	s.cache.EXPECT().InvalidateUser(s.ctx, id).Return(nil)
	s.auditLogger.EXPECT().LogUserDeleted(s.ctx, id)

	s.NoError(s.service.DeleteMe(s.ctx, id))
}

func (s *UserServiceTestSuite) TestDeleteMe_CacheFailureIgnored() {
	id := uuid.New()
	s.userRepo.EXPECT().Delete(id).Return(nil)
	s.cache.EXPECT().InvalidateUser(s.ctx, id).Return(errors.New("redis down"))
	s.auditLogger.EXPECT().LogUserDeleted(s.ctx, id)

	s.NoError(s.service.DeleteMe(s.ctx, id))
}

func (s *UserServiceTestSuite) TestDeleteMe_NotFound() {
	id := uuid.New()
	s.userRepo.EXPECT().Delete(id).Return(repositories.ErrUserNotFound)

	s.ErrorIs(s.service.DeleteMe(s.ctx, id), ErrUserNotFound)
}
