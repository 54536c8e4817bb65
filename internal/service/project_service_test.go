package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func f(v float64) *float64 { return &v }

func TestCanBeCanceled(t *testing.T) {
	// 没有任何捐款时总能取消
	assert.True(t, CanBeCanceled(nil, 1000))

	assert.True(t, CanBeCanceled(f(0), 1000))
	assert.True(t, CanBeCanceled(f(249.99), 1000))

	// 达到 25% 即锁定
	assert.False(t, CanBeCanceled(f(250), 1000))
	assert.False(t, CanBeCanceled(f(999), 1000))
	assert.False(t, CanBeCanceled(f(2000), 1000))
}
