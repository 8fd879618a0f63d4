// Package server holds configuration for the HTTP server surface.
//
// It defines the listening port and the token-signing settings consumed by the
// auth middleware and the auth feature. The struct is composed into the central
// application configuration by core/config.
package server
