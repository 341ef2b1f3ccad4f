package activation

import (
	"context"
	"fmt"
	"time"

	"netup-agent/internal/domain/errors"
	"netup-agent/internal/domain/interfaces"
	"netup-agent/internal/infrastructure/netops"

	"github.com/sirupsen/logrus"
)

// Registry holds the fixed set of activators, keyed by identifier. It is
// built once at startup and read-only afterwards.
type Registry struct {
	activators map[string]interfaces.NetworkActivator
	logger     *logrus.Logger
}

// NewRegistry creates a Registry wired with all known activators sharing
// one execution bridge. connDir selects where the NetworkManager activator
// looks for rendered connection files ("" for the system default); timeout
// bounds individual bridge commands, not service waits.
func NewRegistry(
	executor interfaces.CommandExecutor,
	fs interfaces.FileSystem,
	connDir string,
	timeout time.Duration,
	logger *logrus.Logger,
) *Registry {
	bridge := NewBridge(executor, timeout, logger)

	networkd := NewNetworkdActivator(bridge, executor, fs, netops.NewIproute2(executor), logger)
	networkManager := NewNetworkManagerActivator(bridge, executor, fs, connDir, logger)
	netplan := NewNetplanActivator(bridge, fs, networkd, networkManager, logger)

	return &Registry{
		activators: map[string]interfaces.NetworkActivator{
			NameIfUpDown:       NewIfUpDownActivator(bridge, fs, logger),
			NameNetplan:        netplan,
			NameNetworkManager: networkManager,
			NameNetworkd:       networkd,
			NameIfconfig:       NewIfconfigActivator(bridge, fs, logger),
		},
		logger: logger,
	}
}

// Search returns the first activator in the priority list whose backend is
// available, or nil when none is. Unknown identifiers fail the whole call.
func (r *Registry) Search(ctx context.Context, priority []string) (interfaces.NetworkActivator, error) {
	var unknown []string
	for _, name := range priority {
		if _, ok := r.activators[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		return nil, errors.NewValidationError(
			fmt.Sprintf("unknown activators provided in priority list: %v", unknown), nil)
	}

	for _, name := range priority {
		activator := r.activators[name]
		if activator.Available(ctx) {
			return activator, nil
		}
	}
	return nil, nil
}

// Select resolves the activator to use for a request, applying the default
// priority when the caller supplies none
func (r *Registry) Select(ctx context.Context, priority []string) (interfaces.NetworkActivator, error) {
	if priority == nil {
		priority = DefaultPriority
	}
	selected, err := r.Search(ctx, priority)
	if err != nil {
		return nil, err
	}
	if selected == nil {
		return nil, errors.NewNotFoundError(
			fmt.Sprintf("no available network activators found, searched through list: %v", priority))
	}
	r.logger.WithFields(logrus.Fields{
		"activator": selected.Name(),
		"priority":  priority,
	}).Debug("using selected activator")
	return selected, nil
}
