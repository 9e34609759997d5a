package connectors

import "fmt"

// Housing is one connector housing of the fixed import list.
type Housing struct {
	Name        string
	SKU         string
	MPN         string
	Description string
	Contacts    int
	Rows        int
}

// DefaultHousings returns the BLS single row and BLD double row housings
// stocked from GES electronics.
func DefaultHousings() []Housing {
	var housings []Housing
	for c, i := range []int{1, 2, 3, 4, 5, 6, 7, 8, 10, 14, 16} {
		sku := fmt.Sprintf("GES066140%d", 36+c)
		if i == 1 {
			sku = "GES06614525"
		}
		housings = append(housings, Housing{
			Name:        fmt.Sprintf("BLS %02d", i),
			SKU:         sku,
			MPN:         fmt.Sprintf("CG%d", i),
			Description: fmt.Sprintf("Prázdné pouzdro bez kontaktů typ BLS %dPIN", i),
			Contacts:    i,
			Rows:        1,
		})
	}

	housings = append(housings,
		Housing{Name: "BLD 14", SKU: "GES06615682", MPN: "CGD14", Contacts: 14, Rows: 2},
		Housing{Name: "BLD 16", SKU: "GES06615683", MPN: "CGD16", Contacts: 16, Rows: 2},
	)
	return housings
}
