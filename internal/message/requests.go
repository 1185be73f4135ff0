package message

// Request payloads emitted by the authorization state machine during
// the setup handshake. The transport serializes them; the correlation
// layer only defines their shape.

// SetParameters configures the underlying instance. Sent in response
// to AuthorizationStateWaitParameters.
type SetParameters struct {
	DatabaseDirectory      string
	UseMessageDatabase     bool
	UseSecretChats         bool
	APIID                  int32
	APIHash                string
	SystemLanguageCode     string
	DeviceModel            string
	SystemVersion          string
	ApplicationVersion     string
	EnableStorageOptimizer bool
}

// CheckEncryptionKey checks the database encryption key. Sent in
// response to AuthorizationStateWaitEncryptionKey with an empty key.
type CheckEncryptionKey struct {
	Key []byte
}

// SetPhoneNumber supplies the login phone number. Credential sources
// send it through the facade while handling
// AuthorizationStateWaitPhoneNumber.
type SetPhoneNumber struct {
	PhoneNumber string
}

// CheckCode supplies the one-time authentication code. Sent in
// response to AuthorizationStateWaitCode.
type CheckCode struct {
	Code string
}

// CheckPassword supplies the two-step verification password. Sent in
// response to AuthorizationStateWaitPassword.
type CheckPassword struct {
	Password string
}
