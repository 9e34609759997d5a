package eshop

// Config holds the settings of the e-shop product import.
type Config struct {
	// Supplier is the exact name of the shop's supplier company.
	Supplier string `mapstructure:"supplier" default:"Prusa Research"`
	// Currency is requested from the shop and stored on the price break.
	Currency string `mapstructure:"currency" default:"CZK"`
	// Ambiguity is the duplicate part name policy: fatal or first.
	Ambiguity string `mapstructure:"ambiguity" default:"fatal"`
}
