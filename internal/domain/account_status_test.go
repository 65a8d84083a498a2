package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccountStatusFromCode(t *testing.T) {
	assert.Equal(t, AccountStatusActive, AccountStatusFromCode(1))
	assert.Equal(t, AccountStatusDisabled, AccountStatusFromCode(2))
	assert.Equal(t, AccountStatusUnsettled, AccountStatusFromCode(3))
	assert.Equal(t, AccountStatusClosed, AccountStatusFromCode(101))
	assert.Equal(t, AccountStatusUnknown, AccountStatusFromCode(42))
}

func TestAccountStatusBlocked(t *testing.T) {
	assert.True(t, AccountStatusDisabled.Blocked())
	assert.True(t, AccountStatusUnsettled.Blocked())
	assert.False(t, AccountStatusActive.Blocked())
	assert.False(t, AccountStatusClosed.Blocked())
	assert.False(t, AccountStatusUnknown.Blocked())
}
