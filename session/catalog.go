// Package session implements the XYZ "V3" printer protocol: port discovery,
// framed text command I/O, status parsing, and the chunked binary upload
// handshake used to talk to a connected da Vinci printer over USB serial.
package session

// xyzVID is the USB vendor ID XYZprinting registers its printers under.
const xyzVID = "28E7"

// xyzPIDs are the known product IDs for the miniMaker/Jr/Pro USB CDC
// interfaces.
var xyzPIDs = map[string]bool{
	"0301": true,
	"0100": true,
	"0200": true,
}
