package domain

import (
	"errors"
	"fmt"
)

type ResolutionErrorKind string

const (
	ResolutionNotFound    ResolutionErrorKind = "not_found"
	ResolutionNetwork     ResolutionErrorKind = "network"
	ResolutionAuthExpired ResolutionErrorKind = "auth_expired"
)

type ResolutionError struct {
	Kind ResolutionErrorKind
	Err  error
}

func NewResolutionError(kind ResolutionErrorKind, err error) *ResolutionError {
	return &ResolutionError{Kind: kind, Err: err}
}

func (e *ResolutionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("resolution %s", e.Kind)
	}
	return fmt.Sprintf("resolution %s: %v", e.Kind, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

func (e *ResolutionError) Is(target error) bool {
	var t *ResolutionError
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

// ResolutionKindOf はエラーからResolutionErrorKindを取り出す。該当しない場合はNetwork扱い
func ResolutionKindOf(err error) ResolutionErrorKind {
	var re *ResolutionError
	if errors.As(err, &re) {
		return re.Kind
	}
	return ResolutionNetwork
}
