package interfaces

import (
	"context"

	"netup-agent/internal/domain/entities"
)

// NetworkState exposes the set of interfaces the current configuration
// declares. Implementations only need to produce names; everything else
// about an interface is opaque to activation.
type NetworkState interface {
	// Interfaces returns the declared interfaces, in configuration order
	Interfaces() []entities.NetworkInterface
}

// NetworkActivator is the contract every activation backend implements.
// Single-interface operations return (true, nil) on success and (false, nil)
// when the underlying command failed in an expected way; a non-nil error is
// reserved for failures outside normal command execution and is propagated
// unchanged.
type NetworkActivator interface {
	// Name returns the registry identifier of this activator
	Name() string

	// Available reports whether this activator's backend is usable on the
	// current machine. Probing must not alter interface state.
	Available(ctx context.Context) bool

	// BringUpInterface brings up a single interface
	BringUpInterface(ctx context.Context, name string) (bool, error)

	// BringDownInterface brings down a single interface
	BringDownInterface(ctx context.Context, name string) (bool, error)

	// BringUpInterfaces brings up the named interfaces in order, stopping
	// at the first failure
	BringUpInterfaces(ctx context.Context, names []string) (bool, error)

	// BringUpAllInterfaces brings up every interface in the network state
	BringUpAllInterfaces(ctx context.Context, state NetworkState) (bool, error)

	// WaitForNetwork blocks until the backend reports the network online.
	// Backends without a wait mechanism return a SYSTEM error.
	WaitForNetwork(ctx context.Context) error
}

// ActivatorSelector picks the activator to use for a request
type ActivatorSelector interface {
	// Select returns the first available activator from the priority list,
	// or from the default priority when the list is nil
	Select(ctx context.Context, priority []string) (NetworkActivator, error)
}
