package session

import (
	"fmt"
	"strings"

	"go.bug.st/serial/enumerator"
)

// PortCandidate is one serial port discovered on the host, with a
// human-readable label describing why it was matched.
type PortCandidate struct {
	Device      string
	Description string
}

// ScanPorts enumerates serial ports and ranks them by likelihood of being
// an XYZ da Vinci printer. Match priority:
//
//  1. VID 0x28E7 and a known printer PID -> "XYZ Printer (<desc>)"
//  2. description containing xyz/davinci/da vinci -> description as-is
//  3. VID 0x28E7 with an unrecognized PID -> "XYZ Device (<desc>)"
//  4. if nothing matched at all, every port is returned as-is so the host
//     application can still offer manual selection (degraded discovery).
func ScanPorts() ([]PortCandidate, error) {
	ports, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, fmt.Errorf("session: enumerating serial ports: %w", err)
	}

	var printers, named, devices []PortCandidate
	for _, p := range ports {
		switch {
		case p.IsUSB && strings.EqualFold(p.VID, xyzVID) && xyzPIDs[strings.ToUpper(p.PID)]:
			printers = append(printers, PortCandidate{
				Device:      p.Name,
				Description: fmt.Sprintf("XYZ Printer (%s)", portDesc(p)),
			})
		case matchesKeyword(portDesc(p)):
			named = append(named, PortCandidate{
				Device:      p.Name,
				Description: portDesc(p),
			})
		case p.IsUSB && strings.EqualFold(p.VID, xyzVID):
			devices = append(devices, PortCandidate{
				Device:      p.Name,
				Description: fmt.Sprintf("XYZ Device (%s)", portDesc(p)),
			})
		}
	}

	matches := append(append(printers, named...), devices...)
	if len(matches) > 0 {
		return matches, nil
	}

	// Degraded discovery: no VID/PID or keyword match at all, so hand
	// back every port for manual selection.
	all := make([]PortCandidate, 0, len(ports))
	for _, p := range ports {
		all = append(all, PortCandidate{Device: p.Name, Description: portDesc(p)})
	}
	return all, nil
}

func portDesc(p *enumerator.PortDetails) string {
	if p.Product != "" {
		return p.Product
	}
	return p.Name
}

var keywords = []string{"xyz", "davinci", "da vinci"}

func matchesKeyword(desc string) bool {
	lower := strings.ToLower(desc)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
