// FILE: internal/pkg/apperror/apperror_test.go
package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("bad input")))
	assert.Equal(t, KindInvalidState, KindOf(InvalidState("wrong state")))
	assert.Equal(t, KindAuthorization, KindOf(Authorization("no access")))
	assert.Equal(t, KindNotFound, KindOf(NotFound("missing")))
	assert.Equal(t, KindCoupon, KindOf(Coupon("expired")))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestKindOfWrapped(t *testing.T) {
	err := fmt.Errorf("saving subscription: %w", InvalidState("already settled"))
	assert.Equal(t, KindInvalidState, KindOf(err))
	assert.True(t, IsKind(err, KindInvalidState))
	assert.False(t, IsKind(err, KindNotFound))
}

func TestMessageFormatting(t *testing.T) {
	err := NotFound("plan %q not found", "Starter")
	assert.EqualError(t, err, `plan "Starter" not found`)
}
