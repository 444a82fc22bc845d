package errors

import (
	"fmt"
)

// StorageParse creates a recoverable persisted-value parse error
func StorageParse(key string, err error) *HearthError {
	return Wrap(err, ErrCodeStorageParse, fmt.Sprintf("stored value for %q is not valid JSON", key)).
		WithDetail("key", key)
}

// CredentialMissing creates an error for a chat send attempted without a stored credential
func CredentialMissing() *HearthError {
	return New(ErrCodeCredentialMissing, "no API credential configured for the assistant")
}

// Transport creates an error for a failed external HTTP call
func Transport(endpoint string, err error) *HearthError {
	return Wrap(err, ErrCodeTransport, fmt.Sprintf("request to %s failed", endpoint)).
		WithDetail("endpoint", endpoint)
}

// TransportStatus creates an error for a non-2xx response
func TransportStatus(endpoint string, status int) *HearthError {
	return New(ErrCodeTransport, fmt.Sprintf("request to %s returned status %d", endpoint, status)).
		WithDetail("endpoint", endpoint).
		WithDetail("status", status)
}

// SpeechUnsupported creates an error for a platform without speech recognition
func SpeechUnsupported() *HearthError {
	return New(ErrCodeSpeechUnsupported, "speech recognition is not available on this platform")
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *HearthError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}
