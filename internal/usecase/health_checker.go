//go:generate mockgen -source=$GOFILE -destination=../../tests/usecase/mock_health_checker.go -package=usecase
package usecase

import (
	"context"
	"fmt"
	"os"
)

// HealthChecker は /readyz で確認する依存先1つ分
type HealthChecker interface {
	Name() string
	Check(ctx context.Context) error
}

// TempDirChecker はダウンロード先の一時ディレクトリに書き込めるかを確認する
type TempDirChecker struct {
	dir string
}

func NewTempDirChecker(dir string) *TempDirChecker {
	return &TempDirChecker{dir: dir}
}

func (c *TempDirChecker) Name() string {
	return "temp_dir"
}

func (c *TempDirChecker) Check(_ context.Context) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create temp dir %s: %w", c.dir, err)
	}
	f, err := os.CreateTemp(c.dir, ".readyz_*")
	if err != nil {
		return fmt.Errorf("temp dir %s is not writable: %w", c.dir, err)
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(name)
}
