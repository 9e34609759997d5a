// Package drills refreshes the dimension parameters of carbide drill bits.
//
// Names like `Carbide Drill Bit 1/8" 0.8mm 38mm` are parsed into shank
// diameter, tip diameter and overall length, which are written into the
// parameters the drill category already provides.
package drills
