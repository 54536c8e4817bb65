package pkg

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// 统一采用 11 位、010/011/012/015 开头的规则，+201 前缀的旧版本不再支持
var mobilePhonePattern = regexp.MustCompile(`^01[0125]\d{8}$`)

// FieldError 单个字段的校验失败
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors 一次校验收集到的全部字段错误，不在第一个错误处中断
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return strings.Join(parts, "; ")
}

func (e FieldErrors) Has() bool { return len(e) > 0 }

func (e *FieldErrors) Add(field, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}

// FieldCheck 具名校验器：纯函数，返回 nil 或错误消息
type FieldCheck struct {
	Field string
	Check func() string
}

// RunChecks 按顺序执行全部校验器并收集错误
func RunChecks(checks ...FieldCheck) FieldErrors {
	var errs FieldErrors
	for _, c := range checks {
		if msg := c.Check(); msg != "" {
			errs.Add(c.Field, msg)
		}
	}
	return errs
}

func CheckMobilePhone(value string) string {
	if !mobilePhonePattern.MatchString(strings.TrimSpace(value)) {
		return "invalid phone number, must be 11 digits starting with 010, 011, 012 or 015"
	}
	return ""
}

func CheckRequired(value string) string {
	if strings.TrimSpace(value) == "" {
		return "this field is required"
	}
	return ""
}

func CheckTitle(value string) string {
	if len(value) < 5 {
		return "title must be at least 5 characters long"
	}
	if len(value) > 250 {
		return "title must be at most 250 characters long"
	}
	return ""
}

func CheckDetails(value string) string {
	if len(value) < 20 {
		return "details must be at least 20 characters long"
	}
	if len(value) > 2500 {
		return "details must be at most 2500 characters long"
	}
	return ""
}

func CheckTarget(value float64) string {
	if value <= 0 {
		return "total target must be greater than zero"
	}
	return ""
}

func CheckDonationAmount(value float64) string {
	if value < 1 {
		return "donation amount must be at least 1"
	}
	return ""
}

func CheckRate(value float64) string {
	if value < 0 {
		return "rate cannot be less than 0"
	}
	if value > 5 {
		return "rate cannot be more than 5.0"
	}
	return ""
}

func CheckCommentBody(value string) string {
	if len(value) == 0 {
		return "comment cannot be empty"
	}
	return ""
}

func CheckPasswordConfirm(password, confirm string) string {
	if password != confirm {
		return "passwords don't match"
	}
	return ""
}

// CheckProjectTimes 创建时校验：开始必须早于结束，且开始不能在过去（精确到时间戳）。
// 更新时只校验先后顺序，不再追溯开始时间是否已过。
func CheckProjectTimes(start, end time.Time, creating bool) string {
	if !start.Before(end) {
		return "end time must be after start time"
	}
	if creating && start.Before(time.Now()) {
		return "start time cannot be in the past"
	}
	return ""
}
