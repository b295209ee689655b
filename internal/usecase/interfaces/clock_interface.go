package interfaces

import "time"

// IClock supplies "today" for date stamps.
type IClock interface {
	Now() time.Time
}
