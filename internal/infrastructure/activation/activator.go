package activation

import (
	"context"
	"fmt"
	"path/filepath"

	"netup-agent/internal/domain/errors"
	"netup-agent/internal/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// Registry identifiers for the known activators. Priority lists supplied by
// operators use these strings.
const (
	NameIfUpDown       = "eni"
	NameNetplan        = "netplan"
	NameNetworkManager = "network-manager"
	NameNetworkd       = "networkd"
	NameIfconfig       = "ifconfig"
)

// DefaultPriority is the order activators are probed in when the caller
// does not supply one.
var DefaultPriority = []string{
	NameIfUpDown,
	NameNetplan,
	NameNetworkManager,
	NameNetworkd,
	NameIfconfig,
}

var defaultBinarySearchPath = []string{"/sbin", "/usr/sbin", "/bin", "/usr/bin"}

// findBinary returns the path of name under the given directories, or ""
// when it is not installed. Probing goes through the file system so
// availability checks never spawn a process.
func findBinary(fs interfaces.FileSystem, name string, search []string) string {
	for _, dir := range search {
		path := filepath.Join(dir, name)
		if fs.Exists(path) {
			return path
		}
	}
	return ""
}

// interfaceUpper is the slice of the activator contract the shared composite
// operations dispatch through. Calls go through the outermost activator so a
// variant's override of either method is honored.
type interfaceUpper interface {
	BringUpInterface(ctx context.Context, name string) (bool, error)
	BringUpInterfaces(ctx context.Context, names []string) (bool, error)
}

// composite supplies the default aggregate operations of the activator
// contract. Variants embed it and register themselves as self.
type composite struct {
	name   string
	self   interfaceUpper
	logger *logrus.Logger
}

// Name returns the registry identifier of this activator
func (c *composite) Name() string {
	return c.name
}

// BringUpInterfaces brings up each named interface in order. The first
// failure stops the sequence; later interfaces are not attempted.
func (c *composite) BringUpInterfaces(ctx context.Context, names []string) (bool, error) {
	for _, name := range names {
		ok, err := c.self.BringUpInterface(ctx, name)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// BringUpAllInterfaces brings up every interface declared by the network
// state, delegating to the activator's BringUpInterfaces
func (c *composite) BringUpAllInterfaces(ctx context.Context, state interfaces.NetworkState) (bool, error) {
	ifaces := state.Interfaces()
	names := make([]string, 0, len(ifaces))
	for _, iface := range ifaces {
		names = append(names, iface.Name)
	}
	return c.self.BringUpInterfaces(ctx, names)
}

// WaitForNetwork is unsupported unless a variant overrides it
func (c *composite) WaitForNetwork(ctx context.Context) error {
	return errors.NewSystemError(
		fmt.Sprintf("waiting for network is not supported by the %s activator", c.name), nil)
}
