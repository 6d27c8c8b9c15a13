package config

import "time"

// Development fallbacks for the process-wide secrets. They keep a local
// server bootable without any configuration but MUST be overridden in any
// real deployment: every value here is public knowledge by definition.
const (
	// DefaultEncryptionKey protects stored API key values when no key is
	// configured. Known weakness: anyone running the stock build can decrypt
	// data encrypted under it.
	DefaultEncryptionKey = "your32characterencryptionkey12345"

	// DefaultTokenSignKey signs session tokens when no key is configured.
	DefaultTokenSignKey = "your_super_secure_jwt_secret_key_change_in_production"

	// DefaultTokenIssuer is the "iss" claim of issued session tokens.
	DefaultTokenIssuer = "api-vault"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			EncryptionKey: DefaultEncryptionKey,
			TokenSignKey:  DefaultTokenSignKey,
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: 24 * time.Hour,
			HashCost:      10,
		},
		Server: Server{
			HTTPAddress:    ":5000",
			RequestTimeout: 30 * time.Second,
		},
	}
}
