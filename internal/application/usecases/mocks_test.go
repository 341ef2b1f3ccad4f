package usecases

import (
	"context"

	"netup-agent/internal/domain/entities"
	"netup-agent/internal/domain/interfaces"

	"github.com/stretchr/testify/mock"
)

type MockActivatorSelector struct {
	mock.Mock
}

func (m *MockActivatorSelector) Select(ctx context.Context, priority []string) (interfaces.NetworkActivator, error) {
	args := m.Called(ctx, priority)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(interfaces.NetworkActivator), args.Error(1)
}

type MockNetworkActivator struct {
	mock.Mock
}

func (m *MockNetworkActivator) Name() string {
	return m.Called().String(0)
}

func (m *MockNetworkActivator) Available(ctx context.Context) bool {
	return m.Called(ctx).Bool(0)
}

func (m *MockNetworkActivator) BringUpInterface(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockNetworkActivator) BringDownInterface(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockNetworkActivator) BringUpInterfaces(ctx context.Context, names []string) (bool, error) {
	args := m.Called(ctx, names)
	return args.Bool(0), args.Error(1)
}

func (m *MockNetworkActivator) BringUpAllInterfaces(ctx context.Context, state interfaces.NetworkState) (bool, error) {
	args := m.Called(ctx, state)
	return args.Bool(0), args.Error(1)
}

func (m *MockNetworkActivator) WaitForNetwork(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetPendingInterfaces(ctx context.Context, nodeName string) ([]entities.NetworkInterface, error) {
	args := m.Called(ctx, nodeName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.NetworkInterface), args.Error(1)
}

func (m *MockRepository) GetAllNodeInterfaces(ctx context.Context, nodeName string) ([]entities.NetworkInterface, error) {
	args := m.Called(ctx, nodeName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.NetworkInterface), args.Error(1)
}

func (m *MockRepository) UpdateInterfaceStatus(ctx context.Context, interfaceID int, status entities.InterfaceStatus) error {
	return m.Called(ctx, interfaceID, status).Error(0)
}
