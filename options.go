package tdclient

import (
	"log/slog"
	"time"

	"github.com/wagiedev/tdlib-client-go/internal/config"
)

// Option configures a client using the functional options pattern.
type Option func(*config.Options)

// ===== Basic Configuration =====

// WithLogger sets the logger for debug output.
// If not set, logging is disabled (silent operation).
func WithLogger(logger *slog.Logger) Option {
	return func(o *config.Options) {
		o.Logger = logger
	}
}

// WithCredentials sets the source of interactive login credentials.
// Without one, the interactive handshake states are skipped with a
// warning.
func WithCredentials(source CredentialSource) Option {
	return func(o *config.Options) {
		o.Credentials = source
	}
}

// WithRequestTimeout bounds Execute round trips. Zero (the default)
// means no timeout beyond the caller's context.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(o *config.Options) {
		o.RequestTimeout = timeout
	}
}

// ===== Setup Parameters =====

// WithParameters replaces the whole setup parameter set.
func WithParameters(params Parameters) Option {
	return func(o *config.Options) {
		o.Parameters = params
	}
}

// WithAPICredentials sets the application identity sent during setup.
func WithAPICredentials(apiID int32, apiHash string) Option {
	return func(o *config.Options) {
		o.Parameters.APIID = apiID
		o.Parameters.APIHash = apiHash
	}
}

// WithDatabaseDirectory sets the storage path for the instance's data.
func WithDatabaseDirectory(dir string) Option {
	return func(o *config.Options) {
		o.Parameters.DatabaseDirectory = dir
	}
}

// WithMessageDatabase enables or disables message persistence.
func WithMessageDatabase(enabled bool) Option {
	return func(o *config.Options) {
		o.Parameters.UseMessageDatabase = enabled
	}
}

// WithSecretChats enables or disables secret chat support.
func WithSecretChats(enabled bool) Option {
	return func(o *config.Options) {
		o.Parameters.UseSecretChats = enabled
	}
}

// WithSystemLanguageCode sets the IETF language tag, e.g. "en".
func WithSystemLanguageCode(code string) Option {
	return func(o *config.Options) {
		o.Parameters.SystemLanguageCode = code
	}
}

// WithDeviceModel sets the device model reported to the instance.
func WithDeviceModel(model string) Option {
	return func(o *config.Options) {
		o.Parameters.DeviceModel = model
	}
}

// WithSystemVersion sets the system version reported to the instance.
func WithSystemVersion(version string) Option {
	return func(o *config.Options) {
		o.Parameters.SystemVersion = version
	}
}

// WithApplicationVersion sets the application version reported to the
// instance.
func WithApplicationVersion(version string) Option {
	return func(o *config.Options) {
		o.Parameters.ApplicationVersion = version
	}
}

// WithStorageOptimizer enables or disables the storage optimizer.
func WithStorageOptimizer(enabled bool) Option {
	return func(o *config.Options) {
		o.Parameters.EnableStorageOptimizer = enabled
	}
}
