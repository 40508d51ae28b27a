package serial

import (
	"fmt"
	"strings"

	"go.bug.st/serial/enumerator"
)

// Product-string tokens of the USB-serial bridges the panel usually
// enumerates as.
var detectTokens = []string{"arduino", "wchusb", "ch340"}

// DetectDevice picks a serial device when none was given on the
// command line: the first port whose USB descriptor looks like the
// panel's bridge, falling back to the first port present.
func DetectDevice() (string, error) {
	ports, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return "", fmt.Errorf("failed to enumerate serial ports: %w", err)
	}
	return pickDevice(ports)
}

func pickDevice(ports []*enumerator.PortDetails) (string, error) {
	if len(ports) == 0 {
		return "", fmt.Errorf("no serial ports available; plug in the panel or pass -device")
	}
	for _, p := range ports {
		product := strings.ToLower(p.Product)
		for _, token := range detectTokens {
			if strings.Contains(product, token) {
				fmt.Printf("Detected panel on %s (%s)\n", p.Name, p.Product)
				return p.Name, nil
			}
		}
	}
	fmt.Printf("Fell back to first serial port: %s\n", ports[0].Name)
	return ports[0].Name, nil
}
