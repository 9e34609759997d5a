// Package config provides configuration management for inventree-sync.
//
// Settings come from environment variables, optionally loaded from a .env
// file. Keys are nested by section and joined with underscores, so
// inventree.api_host is read from INVENTREE_API_HOST.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Inventree: API host, token and token name (required for catalog commands)
//   - Log: logging level and format
//   - Database: optional import journal (sqlite or MySQL)
//   - Storage: optional S3/MinIO archive of product images
//   - Capacitors, Connectors, Drills, Kicad, Eshop: category ids and paths,
//     stock locations, supplier names and the duplicate name policy of each
//     command
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config
