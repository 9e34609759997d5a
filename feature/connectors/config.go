package connectors

// Config holds the settings of the connector housing import.
type Config struct {
	// Supplier is the exact name of the supplier company.
	Supplier string `mapstructure:"supplier" default:"GES electronics"`
	// Manufacturer is the exact name of the housing manufacturer.
	Manufacturer string `mapstructure:"manufacturer" default:"econ connect"`
	// CategoryID is the category new housings are created in.
	CategoryID int `mapstructure:"category_id" default:"17"`
	// CategoryPath must match the path of CategoryID.
	CategoryPath string `mapstructure:"category_path" default:"Electronics/Connectors/Connector Housings"`
	// Ambiguity is the duplicate part name policy: fatal or first.
	Ambiguity string `mapstructure:"ambiguity" default:"fatal"`
}
