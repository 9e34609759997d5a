package capacitors

// Config holds the settings of the interactive capacitor import.
type Config struct {
	// Supplier is the exact name of the supplier company.
	Supplier string `mapstructure:"supplier" default:"GES electronics"`
	// CategoryID is the category new capacitors are created in.
	CategoryID int `mapstructure:"category_id" default:"65"`
	// CategoryPath must match the path of CategoryID.
	CategoryPath string `mapstructure:"category_path" default:"Electronics/Passives/Capacitors/Aluminum Electrolytic"`
	// LocationID is where received stock is placed.
	LocationID int `mapstructure:"location_id" default:"16"`
	// LocationPath must match the path of LocationID.
	LocationPath string `mapstructure:"location_path" default:"Skrin chodba/Capacitors electrolytic GES"`
	// Ambiguity is the duplicate part name policy: fatal or first.
	Ambiguity string `mapstructure:"ambiguity" default:"fatal"`
}
