package driver

// Stage marks a phase of the per-file extraction pipeline.
type Stage uint8

const (
	StageTokenize Stage = iota + 1
	StageParse
	StageDocs
	StageRender
)

func (s Stage) String() string {
	switch s {
	case StageTokenize:
		return "tokenize"
	case StageParse:
		return "parse"
	case StageDocs:
		return "docs"
	case StageRender:
		return "render"
	}
	return "unknown"
}

// Status is the state of a stage for one file.
type Status uint8

const (
	StatusStart Status = iota + 1
	StatusDone
	StatusError
	StatusCached
)

func (s Status) String() string {
	switch s {
	case StatusStart:
		return "start"
	case StatusDone:
		return "done"
	case StatusError:
		return "error"
	case StatusCached:
		return "cached"
	}
	return "unknown"
}

// Event is one progress notification. File is empty for batch-level events.
type Event struct {
	File   string
	Stage  Stage
	Status Status
}

// Sink receives progress events. Implementations must tolerate concurrent
// Publish calls from worker goroutines.
type Sink interface {
	Publish(Event)
}

// NopSink drops events.
type NopSink struct{}

func (NopSink) Publish(Event) {}

// ChannelSink forwards events into a channel, dropping when it is full so
// slow consumers never stall extraction workers.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) Publish(ev Event) {
	select {
	case s.Ch <- ev:
	default:
	}
}
