package s3

import (
	"errors"
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/na2na-p/terabridge/internal/domain"
)

var ErrInvalidArchiveKey = errors.New("invalid archive key")

var unsafeKeyChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// ArchiveKey はアーカイブ先のオブジェクトキーを生成する
// 形式: {prefix}/{caller_id}/{size}-{filename}
// 例: archive/42/1048576-clip.mp4
func ArchiveKey(prefix string, caller domain.CallerID, filename string, size int64) (string, error) {
	if caller == 0 {
		return "", fmt.Errorf("%w: caller is empty", ErrInvalidArchiveKey)
	}
	if size < 0 {
		return "", fmt.Errorf("%w: negative size", ErrInvalidArchiveKey)
	}

	name := unsafeKeyChars.ReplaceAllString(strings.TrimSpace(filename), "_")
	name = strings.Trim(name, "._")
	if name == "" {
		name = "file"
	}

	prefix = strings.Trim(prefix, "/")
	key := fmt.Sprintf("%d/%d-%s", int64(caller), size, name)
	if prefix == "" {
		return key, nil
	}
	return path.Join(prefix, key), nil
}
