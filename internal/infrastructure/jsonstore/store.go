package jsonstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/newmo-oss/ctxtime"
)

// DefaultPath は既定の保存先
const DefaultPath = "bot_database.json"

const backupTimeLayout = "20060102_150405"

// document はファイルに保存されるJSONの形
type document struct {
	Users       []int64                `json:"users"`
	Tokens      map[string]tokenRecord `json:"tokens"`
	SpamTracker map[string]string      `json:"spam_tracker"`
}

type tokenRecord struct {
	Token   string `json:"token"`
	Expires string `json:"expires"`
}

func emptyDocument() document {
	return document{
		Users:       []int64{},
		Tokens:      map[string]tokenRecord{},
		SpamTracker: map[string]string{},
	}
}

// Store は利用者、アクセストークン、スロットルマークを1つのJSONファイルで管理する。
// すべての操作は1つのミューテックスで直列化され、更新のたびにファイル全体を書き直す
type Store struct {
	mu    sync.Mutex
	path  string
	doc   document
	users map[int64]struct{}
}

func New(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{
		path:  path,
		doc:   emptyDocument(),
		users: map[int64]struct{}{},
	}
}

func (s *Store) Path() string {
	return s.path
}

// Load は起動時に1回だけ呼ぶ。ファイルがなければ空の状態で作成し、
// 読み取れなければバックアップを残して初期化する
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		slog.Info("store file not found, creating a new one", "path", s.path)
		s.reset(emptyDocument())
		s.saveLocked()
		return nil
	case err != nil:
		return fmt.Errorf("failed to read store file: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		backup := s.path + ".backup_" + ctxtime.Now(ctx).Format(backupTimeLayout)
		slog.Error("store file is corrupted, reinitializing", "path", s.path, "backup", backup, "error", err)
		if werr := os.WriteFile(backup, data, 0o600); werr != nil {
			slog.Error("failed to back up corrupted store file", "backup", backup, "error", werr)
		}
		s.reset(emptyDocument())
		s.saveLocked()
		return nil
	}

	s.reset(doc)
	slog.Info("store loaded",
		"path", s.path,
		"users", len(s.doc.Users),
		"tokens", len(s.doc.Tokens),
	)
	return nil
}

func (s *Store) reset(doc document) {
	if doc.Tokens == nil {
		doc.Tokens = map[string]tokenRecord{}
	}
	if doc.SpamTracker == nil {
		doc.SpamTracker = map[string]string{}
	}
	users := make(map[int64]struct{}, len(doc.Users))
	deduped := make([]int64, 0, len(doc.Users))
	for _, id := range doc.Users {
		if _, ok := users[id]; ok {
			continue
		}
		users[id] = struct{}{}
		deduped = append(deduped, id)
	}
	doc.Users = deduped
	s.doc = doc
	s.users = users
}

// saveLocked は一時ファイルに書いてからリネームする。失敗はログに残して吸収する
func (s *Store) saveLocked() {
	if err := s.writeLocked(); err != nil {
		slog.Error("failed to save store", "path", s.path, "error", err)
	}
}

func (s *Store) writeLocked() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create store dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
}

func (s *Store) addUserLocked(id int64) bool {
	if _, ok := s.users[id]; ok {
		return false
	}
	s.users[id] = struct{}{}
	s.doc.Users = append(s.doc.Users, id)
	return true
}

func (s *Store) userIDsLocked() []int64 {
	return slices.Clone(s.doc.Users)
}

const timestampLayout = time.RFC3339Nano

// naiveTimestampLayout はタイムゾーンを持たない ISO 8601 形式。UTC として解釈する
const naiveTimestampLayout = "2006-01-02T15:04:05.999999999"

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func parseTimestamp(v string) (time.Time, bool) {
	if v == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(timestampLayout, v); err == nil {
		return t.UTC(), true
	}
	if t, err := time.ParseInLocation(naiveTimestampLayout, v, time.UTC); err == nil {
		return t, true
	}
	return time.Time{}, false
}
