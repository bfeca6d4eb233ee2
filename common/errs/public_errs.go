package errs

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/errors/withstack"
)

// PublicError carries a message that is safe to show to API and CLI users.
// Handlers render Message() verbatim, so wallet and contract rejections reach the user unchanged.
type PublicError struct {
	err     error
	message string
	code    string
}

func (p PublicError) Error() string {
	return p.err.Error()
}

func (p PublicError) Message() string {
	return p.message
}

// Code is an optional machine readable identifier, e.g. "submission_error".
func (p PublicError) Code() string {
	return p.code
}

func (p PublicError) Unwrap() error {
	return p.err
}

func NewPublicError(message string) error {
	return withstack.WithStackDepth(&PublicError{err: errors.New(message), message: message}, 1)
}

func NewPublicErrorWithCode(message string, code string) error {
	return withstack.WithStackDepth(&PublicError{err: errors.New(message), message: message, code: code}, 1)
}

// WithPublicMessage marks err as public. The message is "prefix: err" or err alone when prefix is empty.
func WithPublicMessage(err error, prefix string) error {
	return WithPublicMessageCode(err, prefix, "")
}

func WithPublicMessageCode(err error, prefix string, code string) error {
	if err == nil {
		return nil
	}
	message := err.Error()
	if prefix != "" {
		message = fmt.Sprintf("%s: %s", prefix, message)
	}
	return withstack.WithStackDepth(&PublicError{err: err, message: message, code: code}, 1)
}

// KindOf returns the first known ErrorKind marked on err, or empty string.
func KindOf(err error) ErrorKind {
	for _, kind := range []ErrorKind{
		NotFound, InvalidArgument, Unsupported, Timeout,
		Network, MalformedResponse, ChainRead,
		Encoding, Submission, Confirmation, OwnershipMismatch, Disconnected,
		SomethingWentWrong,
	} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return ""
}
