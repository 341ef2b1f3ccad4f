package interfaces

import (
	"context"

	"netup-agent/internal/domain/entities"
)

// NetworkInterfaceRepository is the store of interfaces assigned to nodes
type NetworkInterfaceRepository interface {
	// GetPendingInterfaces returns the node's interfaces still waiting to
	// be activated
	GetPendingInterfaces(ctx context.Context, nodeName string) ([]entities.NetworkInterface, error)

	// GetAllNodeInterfaces returns every interface attached to the node
	GetAllNodeInterfaces(ctx context.Context, nodeName string) ([]entities.NetworkInterface, error)

	// UpdateInterfaceStatus records the activation state of an interface
	UpdateInterfaceStatus(ctx context.Context, interfaceID int, status entities.InterfaceStatus) error
}
