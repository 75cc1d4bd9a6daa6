package jsonstore_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/na2na-p/terabridge/internal/domain"
	"github.com/na2na-p/terabridge/internal/infrastructure/jsonstore"
	"github.com/newmo-oss/ctxtime/ctxtimetest"
	"github.com/newmo-oss/testid"
)

func loadStore(t *testing.T, path string) *jsonstore.Store {
	t.Helper()
	store := jsonstore.New(path)
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	return store
}

func TestStore_Load(t *testing.T) {
	tests := []struct {
		name       string
		content    *string
		wantUsers  []domain.CallerID
		wantBackup bool
	}{
		{
			name:      "正常系: ファイルがない場合、空の状態で作成される",
			wantUsers: []domain.CallerID{},
		},
		{
			name:      "正常系: 既存のファイルを読み込み、重複は取り除かれる",
			content:   ptr(`{"users":[5,6,5],"tokens":{},"spam_tracker":{}}`),
			wantUsers: []domain.CallerID{5, 6},
		},
		{
			name:      "正常系: 一部のキーが欠けていても読み込める",
			content:   ptr(`{"users":[7]}`),
			wantUsers: []domain.CallerID{7},
		},
		{
			name:       "異常系: 壊れたファイルはバックアップされ、空の状態で初期化される",
			content:    ptr(`{"users": [1, 2`),
			wantUsers:  []domain.CallerID{},
			wantBackup: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixed := time.Date(2024, 5, 1, 12, 30, 45, 0, time.UTC)
			ctx := testid.WithValue(context.Background(), uuid.NewString())
			ctxtimetest.SetFixedNow(t, ctx, fixed)

			dir := t.TempDir()
			path := filepath.Join(dir, "bot_database.json")
			if tt.content != nil {
				if err := os.WriteFile(path, []byte(*tt.content), 0o600); err != nil {
					t.Fatal(err)
				}
			}

			store := jsonstore.New(path)
			if err := store.Load(ctx); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			got, err := jsonstore.NewCallerRepository(store).List(ctx)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.wantUsers, got); diff != "" {
				t.Errorf("users mismatch (-want +got):\n%s", diff)
			}

			if _, err := os.Stat(path); err != nil {
				t.Errorf("store file must exist after load: %v", err)
			}

			backup := path + ".backup_20240501_123045"
			data, err := os.ReadFile(backup)
			if tt.wantBackup {
				if err != nil {
					t.Fatalf("backup must exist: %v", err)
				}
				if string(data) != *tt.content {
					t.Errorf("backup content mismatch: %q", data)
				}
				var doc map[string]any
				raw, _ := os.ReadFile(path)
				if err := json.Unmarshal(raw, &doc); err != nil {
					t.Errorf("reinitialized file must be valid json: %v", err)
				}
			} else if !errors.Is(err, os.ErrNotExist) {
				t.Errorf("backup must not exist, got err=%v", err)
			}
		})
	}
}

func TestCallerRepository_Register(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	store := loadStore(t, path)
	repo := jsonstore.NewCallerRepository(store)
	ctx := context.Background()

	added, err := repo.Register(ctx, 10)
	if err != nil || !added {
		t.Fatalf("first register: added=%v err=%v", added, err)
	}
	added, err = repo.Register(ctx, 10)
	if err != nil || added {
		t.Fatalf("second register must be a no-op: added=%v err=%v", added, err)
	}
	if _, err := repo.Register(ctx, 11); err != nil {
		t.Fatal(err)
	}

	reloaded, err := jsonstore.NewCallerRepository(loadStore(t, path)).List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]domain.CallerID{10, 11}, reloaded); diff != "" {
		t.Errorf("users mismatch after reload (-want +got):\n%s", diff)
	}
}

func TestAccessTokenRepository(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("正常系: 保存したトークンは再読み込み後も取得できる", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "db.json")
		repo := jsonstore.NewAccessTokenRepository(loadStore(t, path))

		token, _ := domain.NewAccessToken("abc", 42, now.Add(24*time.Hour))
		if err := repo.Save(ctx, token); err != nil {
			t.Fatal(err)
		}

		got, err := jsonstore.NewAccessTokenRepository(loadStore(t, path)).FindByCaller(ctx, 42)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Value() != "abc" || !got.ExpiresAt().Equal(token.ExpiresAt()) {
			t.Errorf("token mismatch: %s %s", got.Value(), got.ExpiresAt())
		}
	})

	t.Run("正常系: 存在しない場合はErrNotFound", func(t *testing.T) {
		repo := jsonstore.NewAccessTokenRepository(loadStore(t, filepath.Join(t.TempDir(), "db.json")))
		if _, err := repo.FindByCaller(ctx, 1); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("want ErrNotFound, got %v", err)
		}
	})

	t.Run("正常系: 期限が読み取れないレコードは存在しない扱い", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "db.json")
		content := `{"users":[],"tokens":{"42":{"token":"abc","expires":"not-a-time"}},"spam_tracker":{}}`
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
		repo := jsonstore.NewAccessTokenRepository(loadStore(t, path))
		if _, err := repo.FindByCaller(ctx, 42); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("want ErrNotFound, got %v", err)
		}
	})

	t.Run("正常系: タイムゾーンなしの時刻はUTCとして読み込む", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "db.json")
		content := `{"users":[],"tokens":{"42":{"token":"abc","expires":"2024-05-02T12:00:00.123456"}},"spam_tracker":{}}`
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
		got, err := jsonstore.NewAccessTokenRepository(loadStore(t, path)).FindByCaller(ctx, 42)
		if err != nil {
			t.Fatal(err)
		}
		want := time.Date(2024, 5, 2, 12, 0, 0, 123456000, time.UTC)
		if !got.ExpiresAt().Equal(want) {
			t.Errorf("expiry mismatch: want %s, got %s", want, got.ExpiresAt())
		}
	})

	t.Run("正常系: IssueIfAbsentは有効なトークンを再利用し、期限切れなら新しく発行する", func(t *testing.T) {
		repo := jsonstore.NewAccessTokenRepository(loadStore(t, filepath.Join(t.TempDir(), "db.json")))
		issued := 0
		issue := func(value string, expiresAt time.Time) func() (*domain.AccessToken, error) {
			return func() (*domain.AccessToken, error) {
				issued++
				return domain.NewAccessToken(value, 42, expiresAt)
			}
		}

		first, isNew, err := repo.IssueIfAbsent(ctx, 42, now, issue("first", now.Add(time.Hour)))
		if err != nil || !isNew || first.Value() != "first" {
			t.Fatalf("first issue: %v %v %v", first, isNew, err)
		}
		again, isNew, err := repo.IssueIfAbsent(ctx, 42, now.Add(30*time.Minute), issue("second", now.Add(2*time.Hour)))
		if err != nil || isNew || again.Value() != "first" {
			t.Fatalf("live token must be reused: %v %v %v", again, isNew, err)
		}
		renewed, isNew, err := repo.IssueIfAbsent(ctx, 42, now.Add(time.Hour), issue("third", now.Add(25*time.Hour)))
		if err != nil || !isNew || renewed.Value() != "third" {
			t.Fatalf("expired token must be replaced: %v %v %v", renewed, isNew, err)
		}
		if issued != 2 {
			t.Errorf("issue calls mismatch: want 2, got %d", issued)
		}
	})
}

func TestThrottleRepository_Acquire(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	cooldown := 60 * time.Second
	ctx := context.Background()

	t.Run("正常系: クールダウン中は残り時間付きで拒否し、記録は更新しない", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "db.json")
		repo := jsonstore.NewThrottleRepository(loadStore(t, path))

		first, err := repo.Acquire(ctx, 42, now, cooldown)
		if err != nil || !first.Accepted {
			t.Fatalf("first acquire: %+v %v", first, err)
		}
		second, err := repo.Acquire(ctx, 42, now.Add(20*time.Second), cooldown)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(domain.ThrottleDecision{Wait: 40 * time.Second}, second); diff != "" {
			t.Errorf("decision mismatch (-want +got):\n%s", diff)
		}
		third, err := repo.Acquire(ctx, 42, now.Add(60*time.Second), cooldown)
		if err != nil || !third.Accepted {
			t.Fatalf("acquire after cooldown: %+v %v", third, err)
		}

		mark, err := jsonstore.NewThrottleRepository(loadStore(t, path)).FindByCaller(ctx, 42)
		if err != nil {
			t.Fatal(err)
		}
		if !mark.LastAcceptedAt().Equal(now.Add(60 * time.Second)) {
			t.Errorf("mark mismatch: %s", mark.LastAcceptedAt())
		}
	})

	t.Run("正常系: 同一利用者の同時要求は1件だけ受理される", func(t *testing.T) {
		repo := jsonstore.NewThrottleRepository(loadStore(t, filepath.Join(t.TempDir(), "db.json")))

		const workers = 32
		var (
			wg       sync.WaitGroup
			mu       sync.Mutex
			accepted int
		)
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				d, err := repo.Acquire(ctx, 42, now, cooldown)
				if err != nil {
					t.Error(err)
					return
				}
				if d.Accepted {
					mu.Lock()
					accepted++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		if accepted != 1 {
			t.Errorf("accepted mismatch: want 1, got %d", accepted)
		}
	})
}

func TestStore_ConcurrentWritesKeepFileValid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	store := loadStore(t, path)
	callers := jsonstore.NewCallerRepository(store)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = callers.Register(ctx, domain.CallerID(i+1))
		}()
	}
	wg.Wait()

	got, err := jsonstore.NewCallerRepository(loadStore(t, path)).List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 50 {
		t.Errorf("users mismatch: want 50, got %d", len(got))
	}
}

func TestHealthChecker_Check(t *testing.T) {
	store := jsonstore.New(filepath.Join(t.TempDir(), "db.json"))
	checker := jsonstore.NewHealthChecker(store)
	if checker.Name() != "store" {
		t.Errorf("name mismatch: %s", checker.Name())
	}
	if err := checker.Check(context.Background()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	missing := jsonstore.NewHealthChecker(jsonstore.New(filepath.Join(t.TempDir(), "nope", "db.json")))
	if err := missing.Check(context.Background()); err == nil {
		t.Error("want error for missing dir")
	}
}

func ptr[T any](v T) *T {
	return &v
}
