package platform

import (
	"errors"
	"io/fs"
	"syscall"
)

// Class is the category of a filesystem failure.
type Class int

const (
	ClassOther Class = iota
	ClassPermission
	ClassExhausted
)

func (c Class) String() string {
	switch c {
	case ClassPermission:
		return "permission denied"
	case ClassExhausted:
		return "storage exhausted"
	default:
		return "filesystem error"
	}
}

// Classify inspects err (and anything it wraps) and returns its category.
func Classify(err error) Class {
	switch {
	case err == nil:
		return ClassOther
	case IsPermission(err):
		return ClassPermission
	case IsExhausted(err):
		return ClassExhausted
	default:
		return ClassOther
	}
}

// IsPermission reports whether err is a permission failure (EACCES, EPERM,
// or a read-only filesystem).
func IsPermission(err error) bool {
	return errors.Is(err, fs.ErrPermission) || errors.Is(err, syscall.EROFS)
}

// IsExhausted reports whether err means the disk or the inode/quota budget
// is used up.
func IsExhausted(err error) bool {
	return errors.Is(err, syscall.ENOSPC) || errors.Is(err, syscall.EDQUOT)
}
