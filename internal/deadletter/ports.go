package deadletter

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Recorder . Recorder
type Recorder interface {
	DeadLetterRecorded(chain string)
}

type nopRecorder struct{}

func (nopRecorder) DeadLetterRecorded(string) {}
