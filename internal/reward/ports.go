package reward

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Recorder . Recorder
type Recorder interface {
	RewardEvaluated(outcome string)
}

type nopRecorder struct{}

func (nopRecorder) RewardEvaluated(string) {}
