package inventree

// Config holds the connection settings of the InvenTree REST API.
type Config struct {
	// APIHost is the server base URL, e.g. https://inventree.example.com.
	APIHost string `mapstructure:"api_host"`
	// APIToken is sent as "Authorization: Token <token>".
	APIToken string `mapstructure:"api_token"`
	// TokenName identifies the token holder in the User-Agent header.
	TokenName string `mapstructure:"api_token_name"`
	// TimeoutSeconds bounds every request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
