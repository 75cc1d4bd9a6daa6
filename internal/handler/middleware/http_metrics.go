package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HTTPObserver はHTTPリクエストの件数と処理時間を記録する
type HTTPObserver interface {
	ObserveHTTP(method, path string, status int, elapsed time.Duration)
}

// HTTPMetrics はルートのパターン単位でリクエストを記録する。未登録のパスは "unmatched" にまとめる
func HTTPMetrics(observer HTTPObserver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			observer.ObserveHTTP(c.Request().Method, path, responseStatus(c, err), time.Since(start))
			return err
		}
	}
}

// responseStatus はエラーハンドラーが書き込む前のステータスをエラーから推定する
func responseStatus(c echo.Context, err error) int {
	if err == nil {
		return c.Response().Status
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}
	return http.StatusInternalServerError
}
