package redis_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/go-cmp/cmp"
	"github.com/na2na-p/terabridge/internal/domain"
	"github.com/na2na-p/terabridge/internal/infrastructure/redis"
	"github.com/na2na-p/terabridge/internal/usecase"
)

const digest = "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"

func TestResolutionCache_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock redismock.ClientMock)
		want      domain.TransferDescriptor
		wantErr   error
	}{
		{
			name: "正常系: キャッシュヒット時はTransferDescriptorが返る",
			setupMock: func(mock redismock.ClientMock) {
				mock.ExpectGet(redis.ResolutionKey(digest)).SetVal(`{"direct_url":"https://d.example.com/a","filename":"a.mp4","size":10}`)
			},
			want: domain.TransferDescriptor{DirectURL: "https://d.example.com/a", Filename: "a.mp4", DeclaredSizeBytes: 10},
		},
		{
			name: "異常系: キャッシュミス時はusecase.ErrCacheMissが返る",
			setupMock: func(mock redismock.ClientMock) {
				mock.ExpectGet(redis.ResolutionKey(digest)).RedisNil()
			},
			wantErr: usecase.ErrCacheMiss,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := redismock.NewClientMock()
			tt.setupMock(mock)

			got, err := redis.NewResolutionCache(redis.NewClient(db)).Get(context.Background(), digest)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Get() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Get() unexpected error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Get() mismatch (-want +got):\n%s", diff)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("mock expectations not met: %v", err)
			}
		})
	}
}

func TestResolutionCache_Set(t *testing.T) {
	tests := []struct {
		name    string
		ttl     time.Duration
		wantTTL time.Duration
	}{
		{name: "正常系: 指定したTTLで保存される", ttl: time.Minute, wantTTL: time.Minute},
		{name: "正常系: TTLが0の場合、既定TTLで保存される", ttl: 0, wantTTL: redis.DefaultResolutionTTL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := redismock.NewClientMock()
			mock.ExpectSet(redis.ResolutionKey(digest), []byte(`{"direct_url":"https://d.example.com/a","filename":"a.mp4","size":10}`), tt.wantTTL).SetVal("OK")

			desc := domain.NewTransferDescriptor("https://d.example.com/a", "a.mp4", 10)
			if err := redis.NewResolutionCache(redis.NewClient(db)).Set(context.Background(), digest, desc, tt.ttl); err != nil {
				t.Fatalf("Set() unexpected error = %v", err)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("mock expectations not met: %v", err)
			}
		})
	}
}

func TestResolutionCache_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock redismock.ClientMock)
		wantErr   bool
	}{
		{
			name: "正常系: プレフィックス付きのキーが削除される",
			setupMock: func(mock redismock.ClientMock) {
				mock.ExpectDel(redis.ResolutionKey(digest)).SetVal(1)
			},
		},
		{
			name: "正常系: 存在しないキーの削除はエラーにならない",
			setupMock: func(mock redismock.ClientMock) {
				mock.ExpectDel(redis.ResolutionKey(digest)).SetVal(0)
			},
		},
		{
			name: "異常系: 削除に失敗した場合、エラーが返る",
			setupMock: func(mock redismock.ClientMock) {
				mock.ExpectDel(redis.ResolutionKey(digest)).SetErr(errors.New("readonly"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := redismock.NewClientMock()
			tt.setupMock(mock)

			err := redis.NewResolutionCache(redis.NewClient(db)).Delete(context.Background(), digest)
			if (err != nil) != tt.wantErr {
				t.Errorf("Delete() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("mock expectations not met: %v", err)
			}
		})
	}
}
