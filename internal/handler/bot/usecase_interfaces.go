//go:generate mockgen -source=$GOFILE -destination=../../../tests/handler/bot/mock_usecase_interfaces.go -package=bot
package bot

import (
	"context"

	"github.com/na2na-p/terabridge/internal/domain"
	"github.com/na2na-p/terabridge/internal/usecase"
)

type LinkUseCaseInterface interface {
	Execute(ctx context.Context, req usecase.LinkRequest) (domain.TransferResult, error)
}

type TokenUseCaseInterface interface {
	Execute(ctx context.Context, req usecase.TokenRequest) error
}

type BroadcastUseCaseInterface interface {
	Execute(ctx context.Context, req usecase.BroadcastRequest) (usecase.BroadcastReport, error)
}

type WelcomeUseCaseInterface interface {
	Start(ctx context.Context, req usecase.WelcomeRequest) error
	Help(ctx context.Context, req usecase.WelcomeRequest) error
	ShowStart(ctx context.Context, req usecase.WelcomeRequest) error
	ShowHelp(ctx context.Context, req usecase.WelcomeRequest) error
}
