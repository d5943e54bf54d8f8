package ledger

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Recorder observes committed entries.
//
//counterfeiter:generate -o fake -fake-name Recorder . Recorder
type Recorder interface {
	EntryCommitted(entryType string, amount int64)
}

type nopRecorder struct{}

func (nopRecorder) EntryCommitted(string, int64) {}
