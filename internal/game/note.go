package game

import "fmt"

// NoteLevel classifies a notification.
type NoteLevel string

const (
	NoteInfo    NoteLevel = "info"
	NoteSuccess NoteLevel = "success"
	NoteWarning NoteLevel = "warning"
)

// Note is a human-readable, non-blocking notification emitted alongside a
// transition. Notes are not part of state and carry no contract beyond
// being observed by the presentation layer.
type Note struct {
	Level   NoteLevel
	Message string
}

func infof(format string, args ...any) Note {
	return Note{Level: NoteInfo, Message: fmt.Sprintf(format, args...)}
}

func successf(format string, args ...any) Note {
	return Note{Level: NoteSuccess, Message: fmt.Sprintf(format, args...)}
}

func warnf(format string, args ...any) Note {
	return Note{Level: NoteWarning, Message: fmt.Sprintf(format, args...)}
}
