package driver

// Stage names one step of the per-file pipeline.
type Stage string

const (
	// StageParse is lexing and parsing.
	StageParse Stage = "parse"
	// StageCheck is rule evaluation.
	StageCheck Stage = "check"
	// StageFix is fix application.
	StageFix Stage = "fix"
	// StageWrite is writing a rewritten file back to disk.
	StageWrite Stage = "write"
)

// Status reports where a file stands in its current stage.
type Status string

const (
	// StatusQueued indicates the file is waiting to start.
	StatusQueued Status = "queued"
	// StatusWorking indicates the file is currently being processed.
	StatusWorking Status = "working"
	// StatusDone indicates the file finished cleanly.
	StatusDone Status = "done"
	// StatusError indicates the file failed.
	StatusError Status = "error"
)

// Event is one progress notification. File is empty for run-wide events.
type Event struct {
	File   string
	Stage  Stage
	Status Status
}

// EventSink receives progress events. Implementations must be safe for
// concurrent use; worker goroutines emit directly.
type EventSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

// NopSink discards events.
type NopSink struct{}

func (NopSink) OnEvent(Event) {}

func emit(sink EventSink, evt Event) {
	if sink != nil {
		sink.OnEvent(evt)
	}
}
