package services

import (
	"testing"

	"fintrack/internal/models"
	"fintrack/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// NotificationServiceSuite defines the test suite for NotificationServiceInterface
type NotificationServiceSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	repo       *repository_mocks.MockNotificationRepositoryInterface
	service    NotificationServiceInterface
	testUserID uuid.UUID
}

// SetupTest runs before each test in the suite
func (s *NotificationServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = repository_mocks.NewMockNotificationRepositoryInterface(s.ctrl)
	s.service = NewNotificationService(s.repo)
	s.testUserID = uuid.New()
}

// TearDownTest runs after each test in the suite
func (s *NotificationServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestNotificationServiceSuite runs the test suite
func TestNotificationServiceSuite(t *testing.T) {
	suite.Run(t, new(NotificationServiceSuite))
}

// The default service doubles as the emitter the threshold notifier writes to
func (s *NotificationServiceSuite) TestEmit_PersistsEvent() {
	var emitter NotificationEmitterInterface = s.service

	notification := &models.Notification{UserID: s.testUserID, Type: models.NotificationTypeBudgetWarning}
	s.repo.EXPECT().Create(notification).Return(nil)

	s.NoError(emitter.Emit(notification))
}

func (s *NotificationServiceSuite) TestListNotifications_ClampsLimit() {
	s.repo.EXPECT().GetByUserID(s.testUserID, false, 0, 50).
		Return([]models.Notification{}, int64(0), nil)

	_, _, err := s.service.ListNotifications(s.testUserID, false, 0, 10_000)

	s.NoError(err)
}

func (s *NotificationServiceSuite) TestMarkRead() {
	id := uuid.New()
	s.repo.EXPECT().MarkRead(id, s.testUserID).Return(nil)

	s.NoError(s.service.MarkRead(s.testUserID, id))
}

func (s *NotificationServiceSuite) TestDeleteNotification() {
	id := uuid.New()
	s.repo.EXPECT().Delete(id, s.testUserID).Return(nil)

	s.NoError(s.service.DeleteNotification(s.testUserID, id))
}
