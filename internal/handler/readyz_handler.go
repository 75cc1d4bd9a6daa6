//go:generate mockgen -source=$GOFILE -destination=../../tests/handler/mock_readyz_handler.go -package=handler
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/na2na-p/terabridge/internal/usecase"
)

type ReadinessUseCaseInterface interface {
	ExecuteDetails(ctx context.Context) ([]usecase.HealthCheckResult, error)
}

type ReadyzHandler struct {
	uc ReadinessUseCaseInterface
}

func NewReadyzHandler(uc ReadinessUseCaseInterface) *ReadyzHandler {
	return &ReadyzHandler{
		uc: uc,
	}
}

type readinessDetail struct {
	Name    string `json:"name"`
	Healthy bool   `json:"healthy"`
	Error   string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status  string            `json:"status"`
	Details []readinessDetail `json:"details"`
}

// Handle はストアと外部依存の疎通結果を返す。1つでも失敗していれば503
func (h *ReadyzHandler) Handle(c echo.Context) error {
	ctx := c.Request().Context()

	results, err := h.uc.ExecuteDetails(ctx)
	if err != nil {
		slog.Warn("readiness check failed", "error", err)
		return c.JSON(http.StatusServiceUnavailable, readinessResponse{
			Status:  "not ready",
			Details: toReadinessDetails(results),
		})
	}

	return c.JSON(http.StatusOK, readinessResponse{
		Status:  "ready",
		Details: toReadinessDetails(results),
	})
}

func toReadinessDetails(results []usecase.HealthCheckResult) []readinessDetail {
	details := make([]readinessDetail, 0, len(results))
	for _, r := range results {
		d := readinessDetail{Name: r.Name, Healthy: r.Healthy}
		if r.Error != nil {
			d.Error = r.Error.Error()
		}
		details = append(details, d)
	}
	return details
}
