package activation

import (
	"context"

	"netup-agent/internal/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// netplanApplyCmd reapplies the whole declarative configuration at once;
// netplan has no per-interface activation.
var netplanApplyCmd = []string{"netplan", "apply"}

// NetplanActivator drives interfaces through netplan. Interface names are
// ignored entirely: every up or down request collapses to a single global
// apply. netplan writes progress to stderr on success, so stderr logging is
// kept at debug.
type NetplanActivator struct {
	composite
	bridge         *Bridge
	fs             interfaces.FileSystem
	networkd       *NetworkdActivator
	networkManager *NetworkManagerActivator
}

// NewNetplanActivator creates a new NetplanActivator. The networkd and
// NetworkManager activators are consulted for waiting, since netplan itself
// only renders for one of them.
func NewNetplanActivator(
	bridge *Bridge,
	fs interfaces.FileSystem,
	networkd *NetworkdActivator,
	networkManager *NetworkManagerActivator,
	logger *logrus.Logger,
) *NetplanActivator {
	a := &NetplanActivator{
		bridge:         bridge,
		fs:             fs,
		networkd:       networkd,
		networkManager: networkManager,
	}
	a.composite = composite{name: NameNetplan, self: a, logger: logger}
	return a
}

// Available reports whether netplan can be used on this system
func (a *NetplanActivator) Available(ctx context.Context) bool {
	return findBinary(a.fs, "netplan", defaultBinarySearchPath) != ""
}

func (a *NetplanActivator) applyAll(ctx context.Context) (bool, error) {
	a.logger.Debug("calling 'netplan apply' rather than altering individual interfaces")
	return a.bridge.RunCommand(ctx, netplanApplyCmd, false)
}

// BringUpInterface applies the netplan config; name is ignored
func (a *NetplanActivator) BringUpInterface(ctx context.Context, name string) (bool, error) {
	return a.applyAll(ctx)
}

// BringDownInterface applies the netplan config; name is ignored
func (a *NetplanActivator) BringDownInterface(ctx context.Context, name string) (bool, error) {
	return a.applyAll(ctx)
}

// BringUpInterfaces applies the netplan config once for the whole list
func (a *NetplanActivator) BringUpInterfaces(ctx context.Context, names []string) (bool, error) {
	return a.applyAll(ctx)
}

// BringUpAllInterfaces applies the netplan config. The whole-state path is
// already a global operation, so the per-interface debug line is not logged.
func (a *NetplanActivator) BringUpAllInterfaces(ctx context.Context, state interfaces.NetworkState) (bool, error) {
	return a.bridge.RunCommand(ctx, netplanApplyCmd, false)
}

// WaitForNetwork waits through networkd, which is the only renderer with a
// wait-online unit. Skipped when NetworkManager is the one actually in
// control of the interfaces.
func (a *NetplanActivator) WaitForNetwork(ctx context.Context) error {
	if a.networkManager.Available(ctx) {
		a.logger.Debug("NetworkManager is enabled, skipping networkd wait")
		return nil
	}
	return a.networkd.WaitForNetwork(ctx)
}
