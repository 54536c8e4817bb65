package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestActivationTokenValidity(t *testing.T) {
	fresh := &ActivationToken{CreatedAt: time.Now().Add(-time.Hour)}
	assert.True(t, fresh.IsValid())

	almost := &ActivationToken{CreatedAt: time.Now().Add(-23*time.Hour - 59*time.Minute)}
	assert.True(t, almost.IsValid())

	expired := &ActivationToken{CreatedAt: time.Now().Add(-25 * time.Hour)}
	assert.False(t, expired.IsValid())
}
