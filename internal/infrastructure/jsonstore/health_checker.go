package jsonstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// HealthChecker は保存先ディレクトリが使用可能かを確認する
type HealthChecker struct {
	store *Store
}

func NewHealthChecker(store *Store) *HealthChecker {
	return &HealthChecker{store: store}
}

func (h *HealthChecker) Name() string {
	return "store"
}

func (h *HealthChecker) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dir := filepath.Dir(h.store.Path())
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("store dir is unavailable: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("store dir is not a directory: %s", dir)
	}
	return nil
}
