// Package config provides configuration loading, merging, and validation
// for the icy process.
//
// Configuration is assembled from environment variables and built-in
// defaults; the first source that sets a field wins. Only ambient settings
// live here. Client and server identities are compile-time constants of the
// app package and cannot be configured.
//
// The main entry point is [GetConfig].
package config
