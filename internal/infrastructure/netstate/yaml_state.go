package netstate

import (
	"sort"

	"netup-agent/internal/domain/entities"
	"netup-agent/internal/domain/errors"
	"netup-agent/internal/domain/interfaces"

	"gopkg.in/yaml.v3"
)

// netplanDocument is the subset of a netplan-shaped state file the agent
// cares about: only the interface names, never their configuration.
type netplanDocument struct {
	Network struct {
		Version   int                  `yaml:"version"`
		Ethernets map[string]yaml.Node `yaml:"ethernets"`
		Bonds     map[string]yaml.Node `yaml:"bonds"`
		Bridges   map[string]yaml.Node `yaml:"bridges"`
		Vlans     map[string]yaml.Node `yaml:"vlans"`
	} `yaml:"network"`
}

// FileState is a NetworkState loaded from a YAML state file
type FileState struct {
	interfaces []entities.NetworkInterface
}

var _ interfaces.NetworkState = (*FileState)(nil)

// LoadFile parses the YAML state file at path into a FileState
func LoadFile(fs interfaces.FileSystem, path string) (*FileState, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, errors.NewSystemError("failed to read network state file: "+path, err)
	}

	var doc netplanDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.NewValidationError("failed to parse network state file: "+path, err)
	}

	var names []string
	for _, section := range []map[string]yaml.Node{
		doc.Network.Ethernets,
		doc.Network.Bonds,
		doc.Network.Bridges,
		doc.Network.Vlans,
	} {
		for name := range section {
			names = append(names, name)
		}
	}
	// map iteration order is random; keep the sequence stable
	sort.Strings(names)

	return FromNames(names), nil
}

// FromNames builds a NetworkState from a plain list of interface names
func FromNames(names []string) *FileState {
	ifaces := make([]entities.NetworkInterface, 0, len(names))
	for _, name := range names {
		ifaces = append(ifaces, entities.NetworkInterface{Name: name})
	}
	return &FileState{interfaces: ifaces}
}

// FromEntities builds a NetworkState from repository entities
func FromEntities(ifaces []entities.NetworkInterface) *FileState {
	return &FileState{interfaces: ifaces}
}

// Interfaces returns the declared interfaces
func (s *FileState) Interfaces() []entities.NetworkInterface {
	return s.interfaces
}
