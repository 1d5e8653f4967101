// Package nameservice provides display name resolution for account addresses.
// Known names come from an optional JSON document mapping address to name;
// unknown addresses fall back to a shortened form of the address itself.
package nameservice

import (
	"encoding/json"
	"fmt"
	"os"
)

// NameService maintains a map of accounts for name lookup.
type NameService struct {
	names map[string]string
}

// New constructs a name service. The path is optional; when empty or missing
// the service resolves every address to its shortened form.
func New(path string) (*NameService, error) {
	ns := NameService{
		names: make(map[string]string),
	}

	if path == "" {
		return &ns, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &ns, nil
		}
		return nil, fmt.Errorf("reading names file: %w", err)
	}

	if err := json.Unmarshal(data, &ns.names); err != nil {
		return nil, fmt.Errorf("parsing names file: %w", err)
	}

	return &ns, nil
}

// Lookup returns the name for the specified account address.
func (ns *NameService) Lookup(address string) string {
	name, exists := ns.names[address]
	if !exists {
		return Shorten(address)
	}
	return name
}

// Copy returns a copy of the map of names and accounts.
func (ns *NameService) Copy() map[string]string {
	cpy := make(map[string]string, len(ns.names))
	for address, name := range ns.names {
		cpy[address] = name
	}
	return cpy
}

// Shorten produces the display form of an address, keeping the 0x prefix and
// the leading and trailing characters.
func Shorten(address string) string {
	const chars = 6

	if len(address) <= chars*2+2 {
		return address
	}

	return address[:chars+2] + "..." + address[len(address)-chars:]
}
