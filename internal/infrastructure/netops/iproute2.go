package netops

import (
	"context"

	"netup-agent/internal/domain/interfaces"
)

// Iproute2 manipulates link state directly through the ip tool, bypassing
// whatever renderer owns the interface configuration.
type Iproute2 struct {
	executor interfaces.CommandExecutor
}

// NewIproute2 creates a new Iproute2
func NewIproute2(executor interfaces.CommandExecutor) *Iproute2 {
	return &Iproute2{executor: executor}
}

// LinkUp sets the link administratively up
func (n *Iproute2) LinkUp(ctx context.Context, deviceName string) (*interfaces.CommandResult, error) {
	return n.executor.Execute(ctx, "ip", "link", "set", "dev", deviceName, "up")
}

// LinkDown sets the link administratively down
func (n *Iproute2) LinkDown(ctx context.Context, deviceName string) (*interfaces.CommandResult, error) {
	return n.executor.Execute(ctx, "ip", "link", "set", "dev", deviceName, "down")
}
