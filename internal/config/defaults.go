package config

import "time"

// Default values applied to every field left empty by env, flags and JSON.
const (
	DefaultMaxUsers              = 1000
	DefaultMaxDirectoriesPerUser = 50
	DefaultMaxStatesPerDirectory = 50

	DefaultSchema       = "fretboard"
	DefaultMaxOpenConns = 10
	DefaultMaxIdleConns = 4

	DefaultHTTPAddress     = "0.0.0.0:8000"
	DefaultAPIPrefix       = "/api"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second

	DefaultClientServerURL      = "http://localhost:8000/api"
	DefaultClientRequestTimeout = 10 * time.Second
	DefaultClientTokenFile      = ".fretboard-token"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Limits: Limits{
			MaxUsers:              DefaultMaxUsers,
			MaxDirectoriesPerUser: DefaultMaxDirectoriesPerUser,
			MaxStatesPerDirectory: DefaultMaxStatesPerDirectory,
		},
		Storage: Storage{
			DB: DB{
				Schema:       DefaultSchema,
				MaxOpenConns: DefaultMaxOpenConns,
				MaxIdleConns: DefaultMaxIdleConns,
			},
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			APIPrefix:       DefaultAPIPrefix,
			CORSOrigins:     []string{"*"},
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Client: Client{
			ServerURL:      DefaultClientServerURL,
			RequestTimeout: DefaultClientRequestTimeout,
			TokenFile:      DefaultClientTokenFile,
		},
	}
}
