package kernel

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// TransportMode is the way a cargo run travels. The wire names are fixed
// for compatibility with existing clients.
type TransportMode int

const (
	// UnknownMode catches uninitialised values.
	UnknownMode TransportMode = iota
	Road
	Sea
	Air
)

func getTransportModeStrings() map[TransportMode]string {
	return map[TransportMode]string{
		Road: "routiere",
		Sea:  "maritime",
		Air:  "aerienne",
	}
}

// ParseTransportMode maps a wire name to a TransportMode.
func ParseTransportMode(s string) (TransportMode, error) {
	for mode, name := range getTransportModeStrings() {
		if name == s {
			return mode, nil
		}
	}
	return UnknownMode, errs.NewValueIsInvalidErrorWithCause(
		"transport mode is invalid",
		fmt.Errorf("%q is not a known transport mode", s),
	)
}

func (m TransportMode) Validate() error {
	if _, ok := getTransportModeStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"transport mode is invalid",
			fmt.Errorf("%d is not a valid transport mode", m),
		)
	}
	return nil
}

func (m TransportMode) String() string {
	if s, ok := getTransportModeStrings()[m]; ok {
		return s
	}
	return "unknown"
}
