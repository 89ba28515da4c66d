package mocks

import (
	"context"

	"docchat/internal/model"
	"docchat/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockChatService struct {
	mock.Mock
}

func (m *MockChatService) Welcome() service.Message {
	args := m.Called()
	return args.Get(0).(service.Message)
}

func (m *MockChatService) Reply(ctx context.Context, message string) []service.Message {
	args := m.Called(ctx, message)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]service.Message)
}

type MockQueryService struct {
	mock.Mock
}

func (m *MockQueryService) Resolve(ctx context.Context, rawQuery string) model.QueryResult {
	args := m.Called(ctx, rawQuery)
	return args.Get(0).(model.QueryResult)
}

func (m *MockQueryService) Search(ctx context.Context, clientID string, docType model.DocumentType) model.QueryResult {
	args := m.Called(ctx, clientID, docType)
	return args.Get(0).(model.QueryResult)
}

func (m *MockQueryService) Clients(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
