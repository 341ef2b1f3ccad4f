package usecases

import (
	"context"
	"time"

	domainerrors "netup-agent/internal/domain/errors"
	"netup-agent/internal/domain/interfaces"
	"netup-agent/internal/infrastructure/metrics"

	"github.com/sirupsen/logrus"
)

// DeactivateNetworkUseCase brings interfaces down through the selected
// backend. Unlike activation there is no aggregate contract operation, so
// every named interface is attempted and failures are collected.
type DeactivateNetworkUseCase struct {
	selector interfaces.ActivatorSelector
	logger   *logrus.Logger
}

// NewDeactivateNetworkUseCase creates a new DeactivateNetworkUseCase
func NewDeactivateNetworkUseCase(selector interfaces.ActivatorSelector, logger *logrus.Logger) *DeactivateNetworkUseCase {
	return &DeactivateNetworkUseCase{
		selector: selector,
		logger:   logger,
	}
}

// DeactivateNetworkInput is the use case input
type DeactivateNetworkInput struct {
	Priority       []string
	InterfaceNames []string
}

// DeactivateNetworkOutput is the use case output
type DeactivateNetworkOutput struct {
	Activator   string
	Success     bool
	FailedNames []string
}

// Execute runs the deactivation use case
func (uc *DeactivateNetworkUseCase) Execute(ctx context.Context, input DeactivateNetworkInput) (*DeactivateNetworkOutput, error) {
	if len(input.InterfaceNames) == 0 {
		return nil, domainerrors.NewValidationError("no interfaces specified for deactivation", nil)
	}

	activator, err := uc.selector.Select(ctx, input.Priority)
	if err != nil {
		return nil, err
	}
	metrics.SetSelectedActivator(activator.Name())

	output := &DeactivateNetworkOutput{Activator: activator.Name()}
	startTime := time.Now()

	for _, name := range input.InterfaceNames {
		ok, err := activator.BringDownInterface(ctx, name)
		if err != nil {
			return nil, err
		}
		metrics.RecordActivation("down", ok)
		if !ok {
			output.FailedNames = append(output.FailedNames, name)
		}
	}
	output.Success = len(output.FailedNames) == 0

	metrics.RecordActivationDuration(activator.Name(), "down", time.Since(startTime).Seconds())

	uc.logger.WithFields(logrus.Fields{
		"activator": output.Activator,
		"success":   output.Success,
		"failed":    output.FailedNames,
	}).Info("network deactivation completed")

	return output, nil
}
