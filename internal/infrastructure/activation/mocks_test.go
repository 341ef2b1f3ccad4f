package activation

import (
	"context"
	"time"

	"netup-agent/internal/domain/interfaces"

	"github.com/stretchr/testify/mock"
)

// MockCommandExecutor is a mock CommandExecutor for tests
type MockCommandExecutor struct {
	mock.Mock
}

func (m *MockCommandExecutor) Execute(ctx context.Context, command string, args ...string) (*interfaces.CommandResult, error) {
	argList := []interface{}{ctx, command}
	for _, arg := range args {
		argList = append(argList, arg)
	}
	mockArgs := m.Called(argList...)
	if mockArgs.Get(0) == nil {
		return nil, mockArgs.Error(1)
	}
	return mockArgs.Get(0).(*interfaces.CommandResult), mockArgs.Error(1)
}

func (m *MockCommandExecutor) ExecuteWithTimeout(ctx context.Context, timeout time.Duration, command string, args ...string) (*interfaces.CommandResult, error) {
	argList := []interface{}{ctx, timeout, command}
	for _, arg := range args {
		argList = append(argList, arg)
	}
	mockArgs := m.Called(argList...)
	if mockArgs.Get(0) == nil {
		return nil, mockArgs.Error(1)
	}
	return mockArgs.Get(0).(*interfaces.CommandResult), mockArgs.Error(1)
}

// MockFileSystem is a mock FileSystem for tests
type MockFileSystem struct {
	mock.Mock
}

func (m *MockFileSystem) ReadFile(path string) ([]byte, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockFileSystem) Exists(path string) bool {
	args := m.Called(path)
	return args.Bool(0)
}

func (m *MockFileSystem) ListFiles(path string) ([]string, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// stubBinaryPresent makes name resolve to dir/name during probing
func stubBinaryPresent(fs *MockFileSystem, name, dir string) {
	for _, searchDir := range defaultBinarySearchPath {
		path := searchDir + "/" + name
		if searchDir == dir {
			fs.On("Exists", path).Return(true).Maybe()
			return
		}
		fs.On("Exists", path).Return(false).Maybe()
	}
}

// stubBinaryMissing makes name unresolvable during probing
func stubBinaryMissing(fs *MockFileSystem, name string) {
	for _, searchDir := range defaultBinarySearchPath {
		fs.On("Exists", searchDir+"/"+name).Return(false).Maybe()
	}
}

// stubAllBinariesMissing makes every activator probe fail
func stubAllBinariesMissing(fs *MockFileSystem) {
	for _, name := range []string{"ifup", "ifdown", "netplan", "nmcli", "networkctl", "ifconfig"} {
		stubBinaryMissing(fs, name)
	}
}
