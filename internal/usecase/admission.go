//go:generate mockgen -source=$GOFILE -destination=../../tests/usecase/mock_admission.go -package=usecase
package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/na2na-p/terabridge/internal/domain"
)

// Capability はアドミッション判定の対象となる操作
type Capability string

const (
	CapabilityStart      Capability = "start"
	CapabilityHelp       Capability = "help"
	CapabilityIssueToken Capability = "issue_token"
	CapabilityDownload   Capability = "download"
	CapabilityBroadcast  Capability = "broadcast"
)

type DenialReason string

const (
	DenialNotAuthorized      DenialReason = "not_authorized"
	DenialMembershipRequired DenialReason = "membership_required"
	DenialTokenRequired      DenialReason = "token_required"
	DenialTokenExpired       DenialReason = "token_expired"
	DenialRateLimited        DenialReason = "rate_limited"
	DenialCheckFailed        DenialReason = "check_failed"
)

// Denial は拒否理由とその付帯情報
type Denial struct {
	Reason DenialReason
	// Wait は RateLimited の残り待ち時間、または MembershipRequired でトランスポートに待たされた時間
	Wait time.Duration
	// ExpiredFor は TokenExpired のときの失効からの経過時間
	ExpiredFor time.Duration
	// Notified は判定処理自身が既に呼び出し元へ通知済みであることを示す
	Notified bool
	Err      error
}

type Decision struct {
	Denial *Denial
}

func Admitted() Decision {
	return Decision{}
}

func Denied(d *Denial) Decision {
	return Decision{Denial: d}
}

func (d Decision) IsAdmitted() bool {
	return d.Denial == nil
}

type AdmissionRequest struct {
	Caller     domain.Caller
	ChatID     domain.ChatID
	Capability Capability
	// CallbackID はインラインボタン経由の場合に設定される
	CallbackID string
}

// AdmissionCheck はアドミッションチェーンの1段
type AdmissionCheck interface {
	Name() string
	// Bypassable が true のチェックは特権ユーザーに対して実行されない
	Bypassable() bool
	// Check は通過なら nil, nil を返す
	Check(ctx context.Context, req AdmissionRequest) (*Denial, error)
}

// AdmissionChain はケイパビリティごとに登録されたチェックを順に評価し、最初の拒否で打ち切る。
// 通過した利用者は callers に登録される
type AdmissionChain struct {
	privileged domain.PrivilegedSet
	checks     map[Capability][]AdmissionCheck
	callers    domain.CallerRepository
	metrics    Metrics
}

// NewAdmissionChain は callers が nil の場合、利用者の登録を行わない
func NewAdmissionChain(privileged domain.PrivilegedSet, checks map[Capability][]AdmissionCheck, callers domain.CallerRepository, metrics Metrics) *AdmissionChain {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &AdmissionChain{
		privileged: privileged,
		checks:     checks,
		callers:    callers,
		metrics:    metrics,
	}
}

// DefaultAdmissionChecks はケイパビリティとチェックの標準の対応表を組み立てる
func DefaultAdmissionChecks(authorization, membership, token, throttle AdmissionCheck) map[Capability][]AdmissionCheck {
	return map[Capability][]AdmissionCheck{
		CapabilityStart:      {membership},
		CapabilityHelp:       {membership},
		CapabilityIssueToken: {membership},
		CapabilityDownload:   {membership, token, throttle},
		CapabilityBroadcast:  {authorization},
	}
}

func (c *AdmissionChain) Admit(ctx context.Context, req AdmissionRequest) Decision {
	decision := c.admit(ctx, req)
	outcome := "admitted"
	if !decision.IsAdmitted() {
		outcome = string(decision.Denial.Reason)
	} else {
		c.register(ctx, req.Caller.ID)
	}
	c.metrics.AdmissionDecided(req.Capability, outcome)
	return decision
}

// register は通過した利用者を配信対象として記録する。失敗しても判定結果は変えない
func (c *AdmissionChain) register(ctx context.Context, id domain.CallerID) {
	if c.callers == nil {
		return
	}
	added, err := c.callers.Register(ctx, id)
	if err != nil {
		slog.Warn("failed to register caller", "caller_id", id.Int64(), "error", err)
		return
	}
	if added {
		slog.Info("caller registered", "caller_id", id.Int64())
	}
}

func (c *AdmissionChain) admit(ctx context.Context, req AdmissionRequest) Decision {
	privileged := c.privileged.Contains(req.Caller.ID)

	for _, check := range c.checks[req.Capability] {
		if privileged && check.Bypassable() {
			continue
		}
		denial, err := check.Check(ctx, req)
		if err != nil {
			slog.Error("admission check failed",
				"check", check.Name(),
				"capability", string(req.Capability),
				"caller_id", req.Caller.ID.Int64(),
				"error", err,
			)
			return Denied(&Denial{Reason: DenialCheckFailed, Err: err})
		}
		if denial != nil {
			return Denied(denial)
		}
	}
	return Admitted()
}
