package session

// HistoryCursor navigates a tab's command history with up/down recall.
// Position -1 means "not navigating" (live input line).
type HistoryCursor struct {
	pos int
}

// NewHistoryCursor starts on the live input line.
func NewHistoryCursor() *HistoryCursor { return &HistoryCursor{pos: -1} }

// Up moves toward older entries and returns the recalled command. ok is
// false when history is empty.
func (c *HistoryCursor) Up(history []string) (string, bool) {
	if len(history) == 0 {
		return "", false
	}
	if c.pos == -1 {
		c.pos = len(history) - 1
	} else if c.pos > 0 {
		c.pos--
	}
	return history[c.pos], true
}

// Down moves toward newer entries. Walking past the newest entry returns an
// empty string (back to the live input line) with ok true; ok is false when
// not navigating.
func (c *HistoryCursor) Down(history []string) (string, bool) {
	if c.pos == -1 {
		return "", false
	}
	c.pos++
	if c.pos >= len(history) {
		c.pos = -1
		return "", true
	}
	return history[c.pos], true
}

// Reset returns to the live input line (called on submit or edit).
func (c *HistoryCursor) Reset() { c.pos = -1 }
