package errs

// ErrorKind identifies a kind of internal error.
// fully support for errors.Is and errors.As.
type ErrorKind string

const (
	// NotFound is returned when the catalog or the chain has no such item.
	NotFound = ErrorKind("Not Found")

	// InvalidArgument is returned when the caller passed an unusable value (e.g. a non-positive creature id).
	InvalidArgument = ErrorKind("Invalid Argument")

	// Unsupported is returned for networks, providers or modules this build can't serve.
	Unsupported = ErrorKind("Unsupported")

	// Timeout is returned when a caller-supplied deadline expires.
	Timeout = ErrorKind("Timeout")

	// SomethingWentWrong is returned for unexpected local failures.
	SomethingWentWrong = ErrorKind("Something Went Wrong")

	// Network is returned when the catalog API can't be reached or answers with an unexpected status.
	Network = ErrorKind("Network Error")

	// MalformedResponse is returned when a catalog response lacks an expected field.
	MalformedResponse = ErrorKind("Malformed Response")

	// ChainRead is returned when a contract read fails at the RPC/node level.
	ChainRead = ErrorKind("Chain Read Error")

	// Encoding is returned when a creature can't be converted to the contract struct. Nothing is submitted.
	Encoding = ErrorKind("Encoding Error")

	// Submission is returned when a state-changing call is rejected before inclusion
	// (user rejection, insufficient funds, contract-side validation).
	Submission = ErrorKind("Submission Error")

	// Confirmation is returned when block inclusion could not be observed.
	// The transaction outcome is unknown, not failed.
	Confirmation = ErrorKind("Confirmation Error")

	// OwnershipMismatch is returned when a claimed token is not owned by the claiming wallet.
	OwnershipMismatch = ErrorKind("Ownership Mismatch")

	// Disconnected is returned when a wallet connection is used after Disconnect.
	Disconnected = ErrorKind("Wallet Disconnected")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}
