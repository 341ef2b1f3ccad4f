package activation

import (
	"context"

	"netup-agent/internal/domain/interfaces"
	"netup-agent/internal/infrastructure/netops"

	"github.com/sirupsen/logrus"
)

// NetworkdActivator drives interfaces on systemd-networkd systems.
// Single-interface operations flip link state directly through iproute2
// rather than reapplying configuration; the whole-system path restarts the
// owning services instead.
type NetworkdActivator struct {
	composite
	bridge   *Bridge
	executor interfaces.CommandExecutor
	fs       interfaces.FileSystem
	iproute2 *netops.Iproute2
}

// NewNetworkdActivator creates a new NetworkdActivator
func NewNetworkdActivator(
	bridge *Bridge,
	executor interfaces.CommandExecutor,
	fs interfaces.FileSystem,
	iproute2 *netops.Iproute2,
	logger *logrus.Logger,
) *NetworkdActivator {
	a := &NetworkdActivator{
		bridge:   bridge,
		executor: executor,
		fs:       fs,
		iproute2: iproute2,
	}
	a.composite = composite{name: NameNetworkd, self: a, logger: logger}
	return a
}

// Available reports whether systemd-networkd can be used on this system
func (a *NetworkdActivator) Available(ctx context.Context) bool {
	return findBinary(a.fs, "networkctl", defaultBinarySearchPath) != ""
}

// BringUpInterface sets the link up through iproute2
func (a *NetworkdActivator) BringUpInterface(ctx context.Context, name string) (bool, error) {
	return a.bridge.RunCallable(func() (*interfaces.CommandResult, error) {
		return a.iproute2.LinkUp(ctx, name)
	}, "ip link set dev "+name+" up", true)
}

// BringDownInterface sets the link down through iproute2
func (a *NetworkdActivator) BringDownInterface(ctx context.Context, name string) (bool, error) {
	return a.bridge.RunCallable(func() (*interfaces.CommandResult, error) {
		return a.iproute2.LinkDown(ctx, name)
	}, "ip link set dev "+name+" down", true)
}

// BringUpAllInterfaces restarts the networkd and resolved services instead
// of touching interfaces individually
func (a *NetworkdActivator) BringUpAllInterfaces(ctx context.Context, state interfaces.NetworkState) (bool, error) {
	cmd := []string{"systemctl", "restart", "systemd-networkd", "systemd-resolved"}
	return a.bridge.RunCommand(ctx, cmd, true)
}

// WaitForNetwork starts the wait-online unit and blocks until it reports
// completion. No deadline is imposed here; the unit carries its own timeout.
func (a *NetworkdActivator) WaitForNetwork(ctx context.Context) error {
	a.logger.WithField("unit", "systemd-networkd-wait-online.service").
		Debug("waiting for network")
	_, err := a.executor.Execute(ctx,
		"systemctl", "start", "systemd-networkd-wait-online.service")
	return err
}
