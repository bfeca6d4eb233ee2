package errs

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	cause := errors.New("execution reverted: already claimed")

	assert.Equal(t, Submission, KindOf(errors.Mark(errors.Wrap(cause, "claimPokemon"), Submission)))
	assert.Equal(t, NotFound, KindOf(errors.Wrapf(NotFound, "pokemon #%d", 99999)))
	assert.Equal(t, ErrorKind(""), KindOf(cause))
	assert.Equal(t, ErrorKind(""), KindOf(nil))
}

func TestWithPublicMessage(t *testing.T) {
	cause := errors.Mark(errors.New("user rejected transaction"), Submission)

	err := WithPublicMessageCode(cause, "claim failed", "submission_error")

	var pErr *PublicError
	if assert.True(t, errors.As(err, &pErr)) {
		assert.Equal(t, "claim failed: user rejected transaction", pErr.Message())
		assert.Equal(t, "submission_error", pErr.Code())
	}
	assert.True(t, errors.Is(err, Submission))
	assert.Nil(t, WithPublicMessage(nil, "ignored"))
}
