package entities

import (
	"errors"
	"regexp"
)

// NetworkInterface is the domain entity for a network interface. The agent
// treats the configuration behind it as opaque; only the name is needed to
// bring the interface up or down.
type NetworkInterface struct {
	ID               int
	Name             string
	MacAddress       string
	AttachedNodeName string
	Status           InterfaceStatus
}

// InterfaceStatus is the activation state of an interface
type InterfaceStatus int

const (
	StatusPending InterfaceStatus = iota
	StatusActivated
	StatusFailed
)

// InterfaceName is a value object for a validated interface name
type InterfaceName struct {
	value string
}

var (
	ErrInvalidMacAddress    = errors.New("invalid MAC address format")
	ErrInvalidInterfaceName = errors.New("invalid interface name")
	ErrInvalidNodeName      = errors.New("invalid node name")
)

// Linux interface names: up to 15 chars, no slash, no whitespace.
var interfaceNameRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_.:-]{0,14}$`)

var macAddressRegex = regexp.MustCompile(`^([0-9A-Fa-f]{2}[:-]){5}([0-9A-Fa-f]{2})$`)

// Node names follow hostname label rules.
var nodeNameRegex = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?$`)

// NewInterfaceName creates a validated interface name
func NewInterfaceName(name string) (InterfaceName, error) {
	if !interfaceNameRegex.MatchString(name) {
		return InterfaceName{}, ErrInvalidInterfaceName
	}
	return InterfaceName{value: name}, nil
}

// String returns the interface name as a string
func (n InterfaceName) String() string {
	return n.value
}

// Validate checks the invariants of a NetworkInterface
func (ni *NetworkInterface) Validate() error {
	if !interfaceNameRegex.MatchString(ni.Name) {
		return ErrInvalidInterfaceName
	}
	if ni.MacAddress != "" && !macAddressRegex.MatchString(ni.MacAddress) {
		return ErrInvalidMacAddress
	}
	if ni.AttachedNodeName != "" && !nodeNameRegex.MatchString(ni.AttachedNodeName) {
		return ErrInvalidNodeName
	}
	return nil
}

// IsPending reports whether the interface is waiting to be activated
func (ni *NetworkInterface) IsPending() bool {
	return ni.Status == StatusPending
}

// MarkAsActivated marks the interface as successfully brought up
func (ni *NetworkInterface) MarkAsActivated() {
	ni.Status = StatusActivated
}

// MarkAsFailed marks the interface as failed to activate
func (ni *NetworkInterface) MarkAsFailed() {
	ni.Status = StatusFailed
}
