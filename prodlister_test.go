package prodlister_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	prodlister "github.com/Plug0007/prod-lister"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := prodlister.Errorf(prodlister.EINVALID, "selector %q required", "price")

	assert.Equal(t, prodlister.EINVALID, prodlister.ErrorCode(err))
	assert.Equal(t, "selector \"price\" required", prodlister.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, prodlister.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, prodlister.EINTERNAL, prodlister.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, prodlister.ErrorMessage(nil))
}
