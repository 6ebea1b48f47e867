package session

// EventKind identifies something that happened during a step.
type EventKind int

const (
	EventWordAccepted EventKind = iota
	EventWordRejected
	EventBonusWord
	EventScrambled
	EventGameOver
	EventRestarted
)

func (k EventKind) String() string {
	switch k {
	case EventWordAccepted:
		return "word-accepted"
	case EventWordRejected:
		return "word-rejected"
	case EventBonusWord:
		return "bonus-word"
	case EventScrambled:
		return "scrambled"
	case EventGameOver:
		return "game-over"
	case EventRestarted:
		return "restarted"
	default:
		return "unknown"
	}
}

// Event is emitted by Step for the platform to log or react to.
// Fields not relevant to the kind are zero.
type Event struct {
	Kind    EventKind
	Frame   uint64
	Word    string
	Score   int  // Points earned by this word
	Total   int  // Score after the event; final score for GameOver and Restarted
	Bonus   bool // The word was the bonus word
	Crystal bool // A crystal tile was created
	Fire    bool // A fire tile was created
}
