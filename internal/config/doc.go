// Package config manages application configuration for the HireSphere API.
//
// The config package loads and validates configuration from environment
// variables. All configuration is centralized here to provide a single source
// of truth.
//
// # Configuration Loading
//
// Configuration is loaded from environment variables:
//
//	cfg, err := config.Load()
//
// # Configuration Groups
//
// Configuration is organized into logical groups:
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS origins)
//   - DatabaseConfig: SurrealDB connection settings
//   - AuthConfig: bearer-token signing settings
//   - WebhookConfig: identity-provider webhook verification settings
//
// # Validation
//
// Validate() checks all required values and reports every failure at once:
//
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config
