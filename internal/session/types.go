package session

import (
	"time"

	"ecoshop-assistant/internal/router"
)

// Entry is a single utterance recorded in a session's history.
type Entry struct {
	Message   string
	Timestamp time.Time
}

// Session is the rolling conversational memory for one user. Advisory
// state only: history grows for as long as the session entry lives in
// the store.
type Session struct {
	UserID             string
	LastIntent         router.Intent
	LastCategory       string
	History            []Entry
	ProductPreferences []string
	LastUpdated        time.Time
}
