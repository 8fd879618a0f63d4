package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// JwtSecret is the secret key used to sign and verify access tokens.
	JwtSecret string `mapstructure:"jwt_secret" default:"change-me-in-production"`
	// TokenTTLMinutes is the access token lifetime in minutes.
	TokenTTLMinutes int `mapstructure:"token_ttl_minutes" default:"30"`
}
