// Package auth implements user accounts and token issuance.
//
// It exposes registration, login, profile and admin role management endpoints.
// Passwords are stored as bcrypt hashes; successful logins receive an HS256
// JWT carrying the subject email and role, which the core auth middleware
// validates on protected routes.
package auth
