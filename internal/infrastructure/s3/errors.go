package s3

import (
	"errors"
	"fmt"
)

type StorageOperation string

const (
	OperationPut    StorageOperation = "put"
	OperationHead   StorageOperation = "head"
	OperationBucket StorageOperation = "bucket"
)

// StorageError はどの操作で失敗したかを保持する
type StorageError struct {
	Operation StorageOperation
	Err       error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s error: %v", e.Operation, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func (e *StorageError) Is(target error) bool {
	var t *StorageError
	if errors.As(target, &t) {
		return e.Operation == t.Operation
	}
	return false
}

func NewStorageError(operation StorageOperation, err error) *StorageError {
	return &StorageError{
		Operation: operation,
		Err:       err,
	}
}
