package usecase

// Metrics はユースケースが記録する計測値の出力先
type Metrics interface {
	AdmissionDecided(capability Capability, outcome string)
	ResolutionFinished(outcome string)
	TransferFinished(outcome string, bytes int64)
	BroadcastDelivered(outcome string)
}

type NopMetrics struct{}

func (NopMetrics) AdmissionDecided(Capability, string) {}
func (NopMetrics) ResolutionFinished(string)           {}
func (NopMetrics) TransferFinished(string, int64)      {}
func (NopMetrics) BroadcastDelivered(string)           {}
