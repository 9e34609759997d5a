package drills

// Config holds the settings of the drill bit parameter refresh.
type Config struct {
	// CategoryID is the category holding the drill bits.
	CategoryID int `mapstructure:"category_id" default:"105"`
	// CategoryPath must match the path of CategoryID.
	CategoryPath string `mapstructure:"category_path" default:"CNC/Tools/Drills"`
	// Search selects the parts to refresh.
	Search string `mapstructure:"search" default:"Carbide Drill Bit 1/8"`
}
