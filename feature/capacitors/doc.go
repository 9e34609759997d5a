// Package capacitors is the interactive import of aluminium electrolytic
// capacitors bought from GES electronics.
//
// # Flow
//
// For each capacitor the operator enters the supplier SKU. A SKU that is
// already linked skips straight to the received quantity. Otherwise the
// operator enters the name and dimensions; names such as "RAD 470/25 RM5" are
// parsed into capacitance, rated voltage, mounting type and description, and
// anything else falls back to manual entry. After review the part and its
// supplier part are created, the parameters of a new part are filled in, and
// the quantity is booked to the configured stock location.
package capacitors
