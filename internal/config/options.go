package config

import (
	"log/slog"
	"time"
)

// Parameters holds the setup values sent when the instance asks for
// its configuration. All fields are supplied by the embedding
// application; DefaultParameters fills in neutral defaults.
type Parameters struct {
	// DatabaseDirectory is the storage path for the instance's data.
	DatabaseDirectory string

	// UseMessageDatabase enables persistence of messages.
	UseMessageDatabase bool

	// UseSecretChats enables secret chat support.
	UseSecretChats bool

	// APIID and APIHash are the application's identity credentials.
	APIID   int32
	APIHash string

	// SystemLanguageCode is an IETF language tag, e.g. "en".
	SystemLanguageCode string

	// DeviceModel, SystemVersion and ApplicationVersion identify the
	// client to the instance.
	DeviceModel        string
	SystemVersion      string
	ApplicationVersion string

	// EnableStorageOptimizer lets the instance delete old files to
	// reclaim storage.
	EnableStorageOptimizer bool
}

// DefaultParameters returns the parameter set used when the embedding
// application configures nothing. APIID and APIHash have no usable
// default and must be supplied.
func DefaultParameters() Parameters {
	return Parameters{
		DatabaseDirectory:      "tdlib",
		SystemLanguageCode:     "en",
		DeviceModel:            "tdlib-client-go",
		SystemVersion:          "unknown",
		ApplicationVersion:     "1.0",
		EnableStorageOptimizer: true,
	}
}

// Options configures the behavior of a client.
type Options struct {
	// Logger is the slog logger for debug output.
	// If nil, logging is disabled (silent operation).
	Logger *slog.Logger

	// Parameters are the setup values sent during the authorization
	// handshake.
	Parameters Parameters

	// Credentials supplies interactive login values. If nil, the
	// interactive handshake states are skipped with a warning; this is
	// fine for flows that never reach them.
	Credentials CredentialSource

	// RequestTimeout bounds Execute round trips. Zero means no timeout
	// beyond the caller's context.
	RequestTimeout time.Duration
}
