package capacitors

import (
	"fmt"
	"io"
)

// Component is the operator's working copy of one capacitor.
type Component struct {
	SKU          string
	Name         string
	Description  string
	Dimensions   string
	Capacitance  string
	RatedVoltage string
	MountingType string
	PackageType  string
}

// NewComponent returns the prompt defaults for a new capacitor.
func NewComponent() Component {
	return Component{
		SKU:          "GES054",
		Name:         "RAD ",
		Capacitance:  "µF",
		RatedVoltage: "V",
		MountingType: "THT",
		PackageType:  "Ø?x?mm",
	}
}

// Print writes the component for review.
func (c Component) Print(w io.Writer) {
	fmt.Fprintf(w, "\n  SKU:           %s\n", c.SKU)
	fmt.Fprintf(w, "  Name:          %s\n", c.Name)
	fmt.Fprintf(w, "  Description:   %s\n", c.Description)
	fmt.Fprintf(w, "  Capacitance:   %s\n", c.Capacitance)
	fmt.Fprintf(w, "  Rated voltage: %s\n", c.RatedVoltage)
	fmt.Fprintf(w, "  Mounting type: %s\n", c.MountingType)
	fmt.Fprintf(w, "  Package type:  %s\n\n", c.PackageType)
}
