// Package config loads and merges the api-vault server configuration from
// environment variables, command-line flags, and an optional JSON file.
//
// Sources are merged with mergo; an earlier source wins for any field it
// sets, and documented development defaults fill whatever remains. The
// merged result is validated before use.
package config
