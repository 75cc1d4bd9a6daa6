package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/na2na-p/terabridge/internal/domain"
	"github.com/na2na-p/terabridge/internal/usecase"
	mock_domain "github.com/na2na-p/terabridge/tests/domain"
	mock_usecase "github.com/na2na-p/terabridge/tests/usecase"
	"github.com/newmo-oss/ctxtime/ctxtimetest"
	"github.com/newmo-oss/testid"
	"go.uber.org/mock/gomock"
)

func TestTokenUseCase_Issue(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	validity := 24 * time.Hour

	tests := []struct {
		name          string
		setup         func(repo *mock_domain.MockAccessTokenRepository)
		wantIssuedNew bool
		wantRemaining time.Duration
		wantValue     string
		wantErr       bool
	}{
		{
			name: "正常系: 有効なトークンがない場合、新規発行される",
			setup: func(repo *mock_domain.MockAccessTokenRepository) {
				repo.EXPECT().IssueIfAbsent(gomock.Any(), memberID, now, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ domain.CallerID, _ time.Time, issue func() (*domain.AccessToken, error)) (*domain.AccessToken, bool, error) {
						token, err := issue()
						return token, true, err
					})
			},
			wantIssuedNew: true,
			wantRemaining: validity,
		},
		{
			name: "正常系: 有効なトークンがある場合、残り時間付きでそのまま返る",
			setup: func(repo *mock_domain.MockAccessTokenRepository) {
				existing, _ := domain.NewAccessToken("existing", memberID, now.Add(3*time.Hour))
				repo.EXPECT().IssueIfAbsent(gomock.Any(), memberID, now, gomock.Any()).Return(existing, false, nil)
			},
			wantRemaining: 3 * time.Hour,
			wantValue:     "existing",
		},
		{
			name: "異常系: リポジトリがエラーを返した場合、エラーが返る",
			setup: func(repo *mock_domain.MockAccessTokenRepository) {
				repo.EXPECT().IssueIfAbsent(gomock.Any(), memberID, now, gomock.Any()).Return(nil, false, errors.New("disk full"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			ctx := testid.WithValue(context.Background(), uuid.NewString())
			ctxtimetest.SetFixedNow(t, ctx, now)

			repo := mock_domain.NewMockAccessTokenRepository(ctrl)
			tt.setup(repo)

			uc := usecase.NewTokenUseCase(nil, nil, repo, validity)
			got, err := uc.Issue(ctx, memberID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error mismatch: wantErr %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr {
				return
			}
			if got.IssuedNew != tt.wantIssuedNew {
				t.Errorf("IssuedNew mismatch: want %v, got %v", tt.wantIssuedNew, got.IssuedNew)
			}
			if got.Remaining != tt.wantRemaining {
				t.Errorf("Remaining mismatch: want %s, got %s", tt.wantRemaining, got.Remaining)
			}
			if tt.wantValue != "" && got.Token.Value() != tt.wantValue {
				t.Errorf("value mismatch: want %s, got %s", tt.wantValue, got.Token.Value())
			}
			if tt.wantIssuedNew {
				if _, err := uuid.Parse(got.Token.Value()); err != nil {
					t.Errorf("new token must be a uuid: %v", err)
				}
				if !got.Token.ExpiresAt().Equal(now.Add(validity)) {
					t.Errorf("expiry mismatch: got %s", got.Token.ExpiresAt())
				}
			}
		})
	}
}

func TestTokenUseCase_Execute(t *testing.T) {
	ctrl := gomock.NewController(t)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	ctx := testid.WithValue(context.Background(), uuid.NewString())
	ctxtimetest.SetFixedNow(t, ctx, now)

	messenger := mock_usecase.NewMockMessenger(ctrl)
	repo := mock_domain.NewMockAccessTokenRepository(ctrl)
	membership := mock_usecase.NewMockAdmissionCheck(ctrl)
	membership.EXPECT().Name().Return("membership").AnyTimes()
	membership.EXPECT().Bypassable().Return(true).AnyTimes()
	membership.EXPECT().Check(gomock.Any(), gomock.Any()).Return(nil, nil)

	chain := usecase.NewAdmissionChain(domain.NewPrivilegedSet(nil), map[usecase.Capability][]usecase.AdmissionCheck{
		usecase.CapabilityIssueToken: {membership},
	}, nil, nil)

	existing, _ := domain.NewAccessToken("existing-token", memberID, now.Add(2*time.Hour))
	repo.EXPECT().IssueIfAbsent(gomock.Any(), memberID, now, gomock.Any()).Return(existing, false, nil)
	messenger.EXPECT().AnswerCallback(gomock.Any(), "cb-1", "", false).Return(nil)
	messenger.EXPECT().SendText(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg usecase.OutgoingMessage) (usecase.MessageRef, error) {
		if !strings.Contains(msg.Text, "existing-token") || !strings.Contains(msg.Text, "2 hours") {
			t.Errorf("unexpected text: %q", msg.Text)
		}
		return usecase.MessageRef{ChatID: msg.ChatID, MessageID: 3}, nil
	})

	uc := usecase.NewTokenUseCase(chain, messenger, repo, 24*time.Hour)
	err := uc.Execute(ctx, usecase.TokenRequest{
		Caller:     domain.Caller{ID: memberID},
		ChatID:     memberID.ChatID(),
		CallbackID: "cb-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
