package activation

import (
	"context"

	"netup-agent/internal/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// IfUpDownActivator drives interfaces through the legacy ifupdown scripts.
// The aggregate defaults are kept rather than shelling out to ifup --all,
// which is not supported everywhere (the NetworkManager ifupdown plugin
// wants a specific connection name).
type IfUpDownActivator struct {
	composite
	bridge *Bridge
	fs     interfaces.FileSystem
}

// NewIfUpDownActivator creates a new IfUpDownActivator
func NewIfUpDownActivator(bridge *Bridge, fs interfaces.FileSystem, logger *logrus.Logger) *IfUpDownActivator {
	a := &IfUpDownActivator{
		bridge: bridge,
		fs:     fs,
	}
	a.composite = composite{name: NameIfUpDown, self: a, logger: logger}
	return a
}

// Available reports whether ifupdown can be used on this system
func (a *IfUpDownActivator) Available(ctx context.Context) bool {
	return findBinary(a.fs, "ifup", defaultBinarySearchPath) != "" &&
		findBinary(a.fs, "ifdown", defaultBinarySearchPath) != ""
}

// BringUpInterface brings up the interface using ifup
func (a *IfUpDownActivator) BringUpInterface(ctx context.Context, name string) (bool, error) {
	return a.bridge.RunCommand(ctx, []string{"ifup", name}, true)
}

// BringDownInterface brings down the interface using ifdown
func (a *IfUpDownActivator) BringDownInterface(ctx context.Context, name string) (bool, error) {
	return a.bridge.RunCommand(ctx, []string{"ifdown", name}, true)
}
