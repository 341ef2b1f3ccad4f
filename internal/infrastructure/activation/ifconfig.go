package activation

import (
	"context"

	"netup-agent/internal/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// ifconfig lives in /sbin on the BSD-style systems that still ship it
var ifconfigSearchPath = []string{"/sbin"}

// IfconfigActivator drives interfaces through raw ifconfig calls
type IfconfigActivator struct {
	composite
	bridge *Bridge
	fs     interfaces.FileSystem
}

// NewIfconfigActivator creates a new IfconfigActivator
func NewIfconfigActivator(bridge *Bridge, fs interfaces.FileSystem, logger *logrus.Logger) *IfconfigActivator {
	a := &IfconfigActivator{
		bridge: bridge,
		fs:     fs,
	}
	a.composite = composite{name: NameIfconfig, self: a, logger: logger}
	return a
}

// Available reports whether ifconfig can be used on this system
func (a *IfconfigActivator) Available(ctx context.Context) bool {
	return findBinary(a.fs, "ifconfig", ifconfigSearchPath) != ""
}

// BringUpInterface brings up the interface using ifconfig <name> up
func (a *IfconfigActivator) BringUpInterface(ctx context.Context, name string) (bool, error) {
	return a.bridge.RunCommand(ctx, []string{"ifconfig", name, "up"}, true)
}

// BringDownInterface brings down the interface using ifconfig <name> down
func (a *IfconfigActivator) BringDownInterface(ctx context.Context, name string) (bool, error) {
	return a.bridge.RunCommand(ctx, []string{"ifconfig", name, "down"}, true)
}
