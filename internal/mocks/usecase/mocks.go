// Package usecase provides testify mocks for the usecase interfaces.
package usecase

import (
	"context"
	"testing"

	"agenda/internal/domain/entity"
	"agenda/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockSessionUsecase mocks usecase.SessionUsecase.
type MockSessionUsecase struct {
	mock.Mock
}

func NewMockSessionUsecase(t *testing.T) *MockSessionUsecase {
	m := &MockSessionUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSessionUsecase) Issue(ctx context.Context, userID uuid.UUID) (string, error) {
	args := m.Called(ctx, userID)

	return args.String(0), args.Error(1)
}

func (m *MockSessionUsecase) Resolve(ctx context.Context, token string) (uuid.UUID, error) {
	args := m.Called(ctx, token)

	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockSessionUsecase) Destroy(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockSessionUsecase) CleanupExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

// MockAuthUsecase mocks usecase.AuthUsecase.
type MockAuthUsecase struct {
	mock.Mock
}

func NewMockAuthUsecase(t *testing.T) *MockAuthUsecase {
	m := &MockAuthUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAuthUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)
	output, _ := args.Get(0).(*usecase.AuthOutput)

	return output, args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)
	output, _ := args.Get(0).(*usecase.AuthOutput)

	return output, args.Error(1)
}

func (m *MockAuthUsecase) ExchangeExternalToken(ctx context.Context, input *usecase.ExternalAuthInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)
	output, _ := args.Get(0).(*usecase.AuthOutput)

	return output, args.Error(1)
}

func (m *MockAuthUsecase) Logout(ctx context.Context, sessionToken string) error {
	return m.Called(ctx, sessionToken).Error(0)
}

func (m *MockAuthUsecase) CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

// MockTaskUsecase mocks usecase.TaskUsecase.
type MockTaskUsecase struct {
	mock.Mock
}

func NewMockTaskUsecase(t *testing.T) *MockTaskUsecase {
	m := &MockTaskUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTaskUsecase) List(ctx context.Context, ownerID uuid.UUID) ([]*entity.Task, error) {
	args := m.Called(ctx, ownerID)
	tasks, _ := args.Get(0).([]*entity.Task)

	return tasks, args.Error(1)
}

func (m *MockTaskUsecase) Create(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateTaskInput) (*entity.Task, error) {
	args := m.Called(ctx, ownerID, input)
	task, _ := args.Get(0).(*entity.Task)

	return task, args.Error(1)
}

func (m *MockTaskUsecase) Update(ctx context.Context, ownerID, taskID uuid.UUID, input *usecase.UpdateTaskInput) (*entity.Task, error) {
	args := m.Called(ctx, ownerID, taskID, input)
	task, _ := args.Get(0).(*entity.Task)

	return task, args.Error(1)
}

func (m *MockTaskUsecase) Delete(ctx context.Context, ownerID, taskID uuid.UUID) error {
	return m.Called(ctx, ownerID, taskID).Error(0)
}
