// Package kicad links Molex KK 254 pin headers (NS25-W names) to the KiCad
// symbol and footprint matching their pin count and orientation.
package kicad
