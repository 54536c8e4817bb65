package pkg

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCheckMobilePhone(t *testing.T) {
	valid := []string{"01012345678", "01112345678", "01212345678", "01512345678"}
	for _, v := range valid {
		assert.Empty(t, CheckMobilePhone(v), v)
	}

	invalid := []string{
		"01312345678",   // 013 不在号段内
		"0101234567",    // 10 位
		"010123456789",  // 12 位
		"+201012345678", // 旧版 +201 前缀已废弃
		"abc",
		"",
	}
	for _, v := range invalid {
		assert.NotEmpty(t, CheckMobilePhone(v), v)
	}
}

func TestCheckMobilePhoneTrimsSpaces(t *testing.T) {
	assert.Empty(t, CheckMobilePhone("  01012345678  "))
}

func TestCheckTitleBounds(t *testing.T) {
	assert.NotEmpty(t, CheckTitle("abcd"))
	assert.Empty(t, CheckTitle("abcde"))
	assert.Empty(t, CheckTitle(strings.Repeat("a", 250)))
	assert.NotEmpty(t, CheckTitle(strings.Repeat("a", 251)))
}

func TestCheckDetailsBounds(t *testing.T) {
	assert.NotEmpty(t, CheckDetails(strings.Repeat("a", 19)))
	assert.Empty(t, CheckDetails(strings.Repeat("a", 20)))
	assert.Empty(t, CheckDetails(strings.Repeat("a", 2500)))
	assert.NotEmpty(t, CheckDetails(strings.Repeat("a", 2501)))
}

func TestCheckDonationAmountBoundary(t *testing.T) {
	assert.NotEmpty(t, CheckDonationAmount(0))
	assert.NotEmpty(t, CheckDonationAmount(-5))
	assert.NotEmpty(t, CheckDonationAmount(0.99))
	assert.Empty(t, CheckDonationAmount(1.00))
	assert.Empty(t, CheckDonationAmount(100))
}

func TestCheckRateBounds(t *testing.T) {
	assert.Empty(t, CheckRate(0))
	assert.Empty(t, CheckRate(5))
	assert.Empty(t, CheckRate(3.7))
	assert.NotEmpty(t, CheckRate(-0.1))
	assert.NotEmpty(t, CheckRate(5.1))
}

func TestCheckTarget(t *testing.T) {
	assert.NotEmpty(t, CheckTarget(0))
	assert.NotEmpty(t, CheckTarget(-1))
	assert.Empty(t, CheckTarget(0.01))
}

func TestCheckProjectTimes(t *testing.T) {
	now := time.Now()

	// 创建：开始时间不能在过去
	assert.NotEmpty(t, CheckProjectTimes(now.Add(-time.Hour), now.Add(time.Hour), true))
	// 更新：允许开始时间已过，只要求先后顺序
	assert.Empty(t, CheckProjectTimes(now.Add(-time.Hour), now.Add(time.Hour), false))

	// 先后顺序颠倒
	assert.NotEmpty(t, CheckProjectTimes(now.Add(2*time.Hour), now.Add(time.Hour), true))
	// 相等也不行
	eq := now.Add(time.Hour)
	assert.NotEmpty(t, CheckProjectTimes(eq, eq, false))

	assert.Empty(t, CheckProjectTimes(now.Add(time.Hour), now.Add(2*time.Hour), true))
}

func TestRunChecksCollectsAllErrors(t *testing.T) {
	errs := RunChecks(
		FieldCheck{Field: "title", Check: func() string { return CheckTitle("ab") }},
		FieldCheck{Field: "details", Check: func() string { return CheckDetails("short") }},
		FieldCheck{Field: "total_target", Check: func() string { return CheckTarget(100) }},
	)

	assert.True(t, errs.Has())
	assert.Len(t, errs, 2)
	assert.Equal(t, "title", errs[0].Field)
	assert.Equal(t, "details", errs[1].Field)
	assert.Contains(t, errs.Error(), "title")
}

func TestPasswordConfirm(t *testing.T) {
	assert.Empty(t, CheckPasswordConfirm("secret123", "secret123"))
	assert.NotEmpty(t, CheckPasswordConfirm("secret123", "secret124"))
}
