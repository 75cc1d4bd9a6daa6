package domain

type FailureKind string

const (
	FailureTooLarge        FailureKind = "too_large"
	FailureNetworkError    FailureKind = "network_error"
	FailureUploadError     FailureKind = "upload_error"
	FailureUnexpectedError FailureKind = "unexpected_error"
)

// TransferResult は転送パイプラインの終端結果。永続化されない
type TransferResult struct {
	success        bool
	finalSizeBytes int64
	kind           FailureKind
	message        string
}

func TransferSucceeded(finalSizeBytes int64) TransferResult {
	return TransferResult{success: true, finalSizeBytes: finalSizeBytes}
}

func TransferFailed(kind FailureKind, message string) TransferResult {
	return TransferResult{kind: kind, message: message}
}

func (r TransferResult) IsSuccess() bool {
	return r.success
}

func (r TransferResult) FinalSizeBytes() int64 {
	return r.finalSizeBytes
}

func (r TransferResult) Kind() FailureKind {
	return r.kind
}

func (r TransferResult) Message() string {
	return r.message
}

// Outcome はメトリクスのラベルに使う結果名を返す
func (r TransferResult) Outcome() string {
	if r.success {
		return "success"
	}
	return string(r.kind)
}
