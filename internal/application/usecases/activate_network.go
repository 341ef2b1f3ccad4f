package usecases

import (
	"context"
	"time"

	domainerrors "netup-agent/internal/domain/errors"
	"netup-agent/internal/domain/interfaces"
	"netup-agent/internal/infrastructure/metrics"

	"github.com/sirupsen/logrus"
)

// ActivateNetworkUseCase selects an activation backend and brings
// interfaces up through it
type ActivateNetworkUseCase struct {
	selector   interfaces.ActivatorSelector
	repository interfaces.NetworkInterfaceRepository // nil when no database is configured
	logger     *logrus.Logger
}

// NewActivateNetworkUseCase creates a new ActivateNetworkUseCase
func NewActivateNetworkUseCase(
	selector interfaces.ActivatorSelector,
	repository interfaces.NetworkInterfaceRepository,
	logger *logrus.Logger,
) *ActivateNetworkUseCase {
	return &ActivateNetworkUseCase{
		selector:   selector,
		repository: repository,
		logger:     logger,
	}
}

// ActivateNetworkInput is the use case input. Exactly one interface source
// is used, in order of precedence: explicit names, then the network state,
// then the repository's pending interfaces for NodeName.
type ActivateNetworkInput struct {
	Priority       []string
	NodeName       string
	InterfaceNames []string
	State          interfaces.NetworkState
	WaitForNetwork bool
}

// ActivateNetworkOutput is the use case output
type ActivateNetworkOutput struct {
	Activator      string
	Success        bool
	ActivatedCount int
	FailedCount    int
}

// Execute runs the activation use case
func (uc *ActivateNetworkUseCase) Execute(ctx context.Context, input ActivateNetworkInput) (*ActivateNetworkOutput, error) {
	activator, err := uc.selector.Select(ctx, input.Priority)
	if err != nil {
		uc.recordSelectionError(err)
		return nil, err
	}
	metrics.SetSelectedActivator(activator.Name())

	output := &ActivateNetworkOutput{Activator: activator.Name()}
	startTime := time.Now()

	switch {
	case len(input.InterfaceNames) > 0:
		ok, err := activator.BringUpInterfaces(ctx, input.InterfaceNames)
		if err != nil {
			return nil, err
		}
		output.Success = ok
		if ok {
			output.ActivatedCount = len(input.InterfaceNames)
		} else {
			output.FailedCount = 1
		}
		metrics.RecordActivation("up", ok)

	case input.State != nil:
		ok, err := activator.BringUpAllInterfaces(ctx, input.State)
		if err != nil {
			return nil, err
		}
		output.Success = ok
		if ok {
			output.ActivatedCount = len(input.State.Interfaces())
		} else {
			output.FailedCount = 1
		}
		metrics.RecordActivation("up", ok)

	case uc.repository != nil:
		if err := uc.activateFromRepository(ctx, activator, input.NodeName, output); err != nil {
			return nil, err
		}

	default:
		return nil, domainerrors.NewValidationError("no interface source configured for activation", nil)
	}

	if output.Success && input.WaitForNetwork {
		if err := activator.WaitForNetwork(ctx); err != nil {
			return nil, err
		}
	}

	metrics.RecordActivationDuration(activator.Name(), "up", time.Since(startTime).Seconds())

	uc.logger.WithFields(logrus.Fields{
		"activator": output.Activator,
		"success":   output.Success,
		"activated": output.ActivatedCount,
		"failed":    output.FailedCount,
	}).Info("network activation completed")

	return output, nil
}

// activateFromRepository brings up the node's pending interfaces one at a
// time, recording each outcome in the database. The first failure stops the
// sequence, matching the aggregate short-circuit policy.
func (uc *ActivateNetworkUseCase) activateFromRepository(
	ctx context.Context,
	activator interfaces.NetworkActivator,
	nodeName string,
	output *ActivateNetworkOutput,
) error {
	pending, err := uc.repository.GetPendingInterfaces(ctx, nodeName)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		output.Success = true
		return nil
	}

	uc.logger.WithFields(logrus.Fields{
		"node_name": nodeName,
		"pending":   len(pending),
	}).Info("activating pending interfaces")

	for _, iface := range pending {
		ok, err := activator.BringUpInterface(ctx, iface.Name)
		if err != nil {
			return err
		}
		metrics.RecordActivation("up", ok)

		if !ok {
			output.FailedCount++
			iface.MarkAsFailed()
			if updateErr := uc.repository.UpdateInterfaceStatus(ctx, iface.ID, iface.Status); updateErr != nil {
				uc.logger.WithError(updateErr).WithField("interface", iface.Name).
					Error("failed to update interface status")
			}
			return nil
		}

		output.ActivatedCount++
		iface.MarkAsActivated()
		if updateErr := uc.repository.UpdateInterfaceStatus(ctx, iface.ID, iface.Status); updateErr != nil {
			uc.logger.WithError(updateErr).WithField("interface", iface.Name).
				Error("failed to update interface status")
		}
	}

	output.Success = true
	return nil
}

func (uc *ActivateNetworkUseCase) recordSelectionError(err error) {
	switch {
	case domainerrors.IsValidationError(err):
		metrics.IncrementError("validation")
	case domainerrors.IsNotFoundError(err):
		metrics.IncrementError("not_found")
	default:
		metrics.IncrementError("system")
	}
}
