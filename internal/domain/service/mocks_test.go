package service

import (
	"context"
	"housemate-alexa/internal/domain/model"
	"housemate-alexa/internal/ports"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) ListPowerDevices(ctx context.Context) ([]*model.Device, error) {
	args := m.Called(ctx)
	devices, _ := args.Get(0).([]*model.Device)
	return devices, args.Error(1)
}

func (m *MockBackend) TurnOn(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBackend) TurnOff(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockFactory struct {
	mock.Mock
}

func (m *MockFactory) ForToken(token string) ports.BackendPort {
	args := m.Called(token)
	return args.Get(0).(ports.BackendPort)
}

type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) ObserveDirective(version, namespace, name, outcome string, elapsedSeconds float64) {
	m.Called(version, namespace, name, outcome, elapsedSeconds)
}

func newTestRouter(backend *MockBackend, token string) (*Router, *MockFactory) {
	factory := new(MockFactory)
	factory.On("ForToken", token).Return(backend)
	return NewRouter(factory, zap.NewNop().Sugar()), factory
}
