package netstate

import (
	"errors"
	"testing"

	"netup-agent/internal/domain/entities"
	domainerrors "netup-agent/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

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

func interfaceNames(state *FileState) []string {
	var names []string
	for _, iface := range state.Interfaces() {
		names = append(names, iface.Name)
	}
	return names
}

func TestLoadFile(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantNames []string
	}{
		{
			name: "ethernets only",
			content: `network:
  version: 2
  ethernets:
    eth0:
      dhcp4: true
    eth1:
      addresses: [192.0.2.10/24]
`,
			wantNames: []string{"eth0", "eth1"},
		},
		{
			name: "all sections collected and sorted",
			content: `network:
  version: 2
  ethernets:
    eth1: {}
    eth0: {}
  bonds:
    bond0:
      interfaces: [eth0, eth1]
  vlans:
    bond0.100:
      id: 100
      link: bond0
  bridges:
    br0:
      interfaces: [bond0.100]
`,
			wantNames: []string{"bond0", "bond0.100", "br0", "eth0", "eth1"},
		},
		{
			name:      "empty document yields no interfaces",
			content:   "network:\n  version: 2\n",
			wantNames: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := new(MockFileSystem)
			fs.On("ReadFile", "/etc/netup/network-state.yaml").
				Return([]byte(tt.content), nil).Once()

			state, err := LoadFile(fs, "/etc/netup/network-state.yaml")

			assert.NoError(t, err)
			assert.Equal(t, tt.wantNames, interfaceNames(state))
			fs.AssertExpectations(t)
		})
	}
}

func TestLoadFile_ReadError(t *testing.T) {
	fs := new(MockFileSystem)
	fs.On("ReadFile", "/missing.yaml").
		Return(nil, errors.New("open /missing.yaml: no such file or directory")).Once()

	state, err := LoadFile(fs, "/missing.yaml")

	assert.Nil(t, state)
	assert.True(t, domainerrors.IsSystemError(err))
	assert.Contains(t, err.Error(), "/missing.yaml")
}

func TestLoadFile_ParseError(t *testing.T) {
	fs := new(MockFileSystem)
	fs.On("ReadFile", "/broken.yaml").
		Return([]byte("network: [not: a: mapping"), nil).Once()

	state, err := LoadFile(fs, "/broken.yaml")

	assert.Nil(t, state)
	assert.True(t, domainerrors.IsValidationError(err))
}

func TestFromNames(t *testing.T) {
	state := FromNames([]string{"eth0", "bond0"})

	assert.Equal(t, []string{"eth0", "bond0"}, interfaceNames(state))
}

func TestFromEntities(t *testing.T) {
	ifaces := []entities.NetworkInterface{
		{ID: 1, Name: "eth0", Status: entities.StatusPending},
		{ID: 2, Name: "eth1", Status: entities.StatusActivated},
	}

	state := FromEntities(ifaces)

	assert.Equal(t, ifaces, state.Interfaces())
}
