package domain

import (
	"errors"

	"github.com/dustin/go-humanize"
)

// UnknownSize はサイズが事前に分からないことを表す
const UnknownSize int64 = 0

type Size struct {
	value int64
}

var ErrInvalidSize = errors.New("size must be non-negative")

func NewSize(value int64) (Size, error) {
	if value < 0 {
		return Size{}, ErrInvalidSize
	}

	return Size{value: value}, nil
}

func (s Size) Int64() int64 {
	return s.value
}

func (s Size) IsKnown() bool {
	return s.value != UnknownSize
}

// Exceeds はサイズが上限をバイト単位で厳密に超えているかを返す
func (s Size) Exceeds(limit Size) bool {
	return s.value > limit.value
}

func (s Size) String() string {
	if !s.IsKnown() {
		return "Unknown"
	}
	return humanize.IBytes(uint64(s.value))
}
