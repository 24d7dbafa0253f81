package lineedit

// HistoryNavigator walks a fixed history snapshot from inside one read-line session.
//
// history is newest-first. index runs over [0, len(history)]: len(history) is
// the live draft, len(history)-1 is the newest entry and 0 is the oldest, so
// index i shows history[len(history)-1-i]. The first step away from the live
// draft stores the buffer in savedLine, and stepping back onto the live
// position restores it.
type HistoryNavigator struct {
	history   []string
	index     int
	savedLine *string
}

// NewHistoryNavigator positions a navigator on the live draft of the given
// newest-first history. The slice is not copied and must not change while
// the navigator is in use.
func NewHistoryNavigator(history []string) *HistoryNavigator {
	return &HistoryNavigator{
		history: history,
		index:   len(history),
	}
}

// Index returns the navigation index; Index() == Len() means the live draft.
func (n *HistoryNavigator) Index() int {
	return n.index
}

// Len returns the number of history entries.
func (n *HistoryNavigator) Len() int {
	return len(n.history)
}

// AtLive reports whether the navigator is on the live draft.
func (n *HistoryNavigator) AtLive() bool {
	return n.index == len(n.history)
}

// Prev loads the next older entry into buf. It is a no-op on the oldest entry.
func (n *HistoryNavigator) Prev(buf *EditBuffer) {
	if n.index == 0 {
		return
	}
	if n.AtLive() {
		draft := buf.Text()
		n.savedLine = &draft
	}
	n.index--
	buf.SetText(n.entry(n.index))
}

// Next loads the next newer entry into buf, or the saved draft once the live
// position is reached. It is a no-op on the live draft.
func (n *HistoryNavigator) Next(buf *EditBuffer) {
	if n.AtLive() {
		return
	}
	n.index++
	if n.AtLive() {
		draft := ""
		if n.savedLine != nil {
			draft = *n.savedLine
		}
		n.savedLine = nil
		buf.SetText(draft)
		return
	}
	buf.SetText(n.entry(n.index))
}

func (n *HistoryNavigator) entry(index int) string {
	return n.history[len(n.history)-1-index]
}
