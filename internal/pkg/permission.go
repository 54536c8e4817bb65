package pkg

import "errors"

var ErrPermissionDenied = errors.New("permission denied")

// Capability 接口能力要求
type Capability int

const (
	AllowAny Capability = iota
	Authenticated
	OwnerOrAdmin
	AdminOnly
)

// Actor 发起请求的身份，userID=0 表示匿名
type Actor struct {
	UserID  uint64
	IsStaff bool
}

func (a Actor) Authenticated() bool { return a.UserID != 0 }

// Allowed 能力判定；ownerID 仅在 OwnerOrAdmin 下参与判断
func (a Actor) Allowed(cap Capability, ownerID uint64) bool {
	switch cap {
	case AllowAny:
		return true
	case Authenticated:
		return a.Authenticated()
	case OwnerOrAdmin:
		return a.Authenticated() && (a.IsStaff || a.UserID == ownerID)
	case AdminOnly:
		return a.Authenticated() && a.IsStaff
	}
	return false
}

// Require 判定失败时返回 ErrPermissionDenied，任何写操作之前调用
func (a Actor) Require(cap Capability, ownerID uint64) error {
	if !a.Allowed(cap, ownerID) {
		return ErrPermissionDenied
	}
	return nil
}
