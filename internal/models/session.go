package models

type SessionState int

const (
	StateIdle SessionState = iota
	StateSelected
	StateRecommending
)

func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSelected:
		return "selected"
	case StateRecommending:
		return "recommending"
	default:
		return "unknown"
	}
}

// Session is one chat's interaction cycle.
type Session struct {
	ChatID   int64
	Language Language
	// LabelLanguage is the language the genre labels were displayed in.
	// It differs from Language when genre labels are not localized.
	LabelLanguage Language
	GenreLabel    string
	State         SessionState
	// PendingAudio is the transient narration file waiting for cleanup.
	PendingAudio string
}

func NewSession(chatID int64) Session {
	return Session{ChatID: chatID, State: StateIdle}
}

func (s Session) HasLanguage() bool {
	return s.Language.Valid()
}
