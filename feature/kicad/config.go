package kicad

// Config holds the settings of the KiCad link refresh.
type Config struct {
	// CategoryID is the category holding the pin headers.
	CategoryID int `mapstructure:"category_id" default:"20"`
	// CategoryPath must match the path of CategoryID.
	CategoryPath string `mapstructure:"category_path" default:"Electronics/Connectors/Rectangular"`
	// Search selects the parts to refresh.
	Search string `mapstructure:"search" default:"NS25-W"`
}
