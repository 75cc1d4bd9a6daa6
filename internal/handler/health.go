package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newmo-oss/ctxtime"
)

// UpdateMode はTelegramの更新の受け取り方
type UpdateMode string

const (
	UpdateModePolling UpdateMode = "polling"
	UpdateModeWebhook UpdateMode = "webhook"
)

type healthResponse struct {
	Status        string     `json:"status"`
	UpdateMode    UpdateMode `json:"update_mode"`
	UptimeSeconds int64      `json:"uptime_seconds"`
}

// NewHealthHandler はプロセスが応答できることだけを返す。依存先の確認は /readyz が行う
func NewHealthHandler(mode UpdateMode, startedAt time.Time) echo.HandlerFunc {
	return func(c echo.Context) error {
		uptime := ctxtime.Now(c.Request().Context()).Sub(startedAt)
		return c.JSON(http.StatusOK, healthResponse{
			Status:        "healthy",
			UpdateMode:    mode,
			UptimeSeconds: int64(uptime / time.Second),
		})
	}
}
