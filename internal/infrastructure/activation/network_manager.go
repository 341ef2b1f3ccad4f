package activation

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"netup-agent/internal/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// DefaultConnectionDir is where the renderer drops NetworkManager keyfiles
const DefaultConnectionDir = "/etc/NetworkManager/system-connections"

// connection profiles rendered for the agent carry this prefix
const connectionFilePrefix = "netup-"

// NetworkManagerActivator drives interfaces through nmcli. Bringing an
// interface up is a two-step sequence: load its rendered connection file,
// then activate by filename. When the load fails, force a full connection
// reload and retry activation by interface name.
type NetworkManagerActivator struct {
	composite
	bridge   *Bridge
	executor interfaces.CommandExecutor
	fs       interfaces.FileSystem
	connDir  string
}

// NewNetworkManagerActivator creates a new NetworkManagerActivator. An
// empty connDir selects the default system-connections directory.
func NewNetworkManagerActivator(
	bridge *Bridge,
	executor interfaces.CommandExecutor,
	fs interfaces.FileSystem,
	connDir string,
	logger *logrus.Logger,
) *NetworkManagerActivator {
	if connDir == "" {
		connDir = DefaultConnectionDir
	}
	a := &NetworkManagerActivator{
		bridge:   bridge,
		executor: executor,
		fs:       fs,
		connDir:  connDir,
	}
	a.composite = composite{name: NameNetworkManager, self: a, logger: logger}
	return a
}

// Available reports whether NetworkManager can be used on this system
func (a *NetworkManagerActivator) Available(ctx context.Context) bool {
	return findBinary(a.fs, "nmcli", defaultBinarySearchPath) != ""
}

// connFilename returns the rendered connection file for the interface, or
// "" when none exists
func (a *NetworkManagerActivator) connFilename(name string) string {
	path := filepath.Join(a.connDir, connectionFilePrefix+name+".nmconnection")
	if a.fs.Exists(path) {
		return path
	}
	return ""
}

// BringUpInterface brings up a connection using nmcli
func (a *NetworkManagerActivator) BringUpInterface(ctx context.Context, name string) (bool, error) {
	filename := a.connFilename(name)
	if filename == "" {
		a.logger.WithField("interface", name).
			Warn("unable to find an interface config file, unable to bring up interface")
		return false, nil
	}

	loaded, err := a.bridge.RunCommand(ctx, []string{"nmcli", "connection", "load", filename}, true)
	if err != nil {
		return false, err
	}

	var cmd []string
	if loaded {
		cmd = []string{"nmcli", "connection", "up", "filename", filename}
	} else {
		if _, err := a.bridge.RunCommand(ctx, []string{"nmcli", "connection", "reload"}, true); err != nil {
			return false, err
		}
		cmd = []string{"nmcli", "connection", "up", "ifname", name}
	}
	return a.bridge.RunCommand(ctx, cmd, true)
}

// BringDownInterface brings down the interface using nmcli
func (a *NetworkManagerActivator) BringDownInterface(ctx context.Context, name string) (bool, error) {
	return a.bridge.RunCommand(ctx, []string{"nmcli", "device", "disconnect", name}, true)
}

// BringUpInterfaces reloads the NetworkManager service before touching any
// interface, then falls back to the per-interface sequence. A service
// sub-state other than running only produces a warning.
func (a *NetworkManagerActivator) BringUpInterfaces(ctx context.Context, names []string) (bool, error) {
	result, err := a.executor.Execute(ctx,
		"systemctl", "show", "--property=SubState", "NetworkManager.service")
	if err != nil {
		return false, err
	}
	state := strings.TrimRight(result.Stdout, "\n")
	if state != "SubState=running" {
		a.logger.Warn(fmt.Sprintf(
			"expected NetworkManager SubState=running, but detected: %s", state))
	}

	ok, err := a.bridge.RunCommand(ctx,
		[]string{"systemctl", "try-reload-or-restart", "NetworkManager.service"}, true)
	if err != nil || !ok {
		return false, err
	}
	return a.composite.BringUpInterfaces(ctx, names)
}
