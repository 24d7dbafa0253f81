package lineedit

// killRingCapacity is the number of killed spans retained.
const killRingCapacity = 10

// KillRing is a bounded stack of killed text, most recent first.
// Pushing onto a full ring drops the oldest entry.
type KillRing struct {
	entries []string
}

// Push records a killed span. Empty spans are ignored.
func (k *KillRing) Push(text string) {
	if text == "" {
		return
	}
	k.entries = append([]string{text}, k.entries...)
	if len(k.entries) > killRingCapacity {
		k.entries = k.entries[:killRingCapacity]
	}
}

// Front returns the most recent kill, or "" when the ring is empty.
func (k *KillRing) Front() string {
	if len(k.entries) == 0 {
		return ""
	}
	return k.entries[0]
}

// Len returns the number of entries held.
func (k *KillRing) Len() int {
	return len(k.entries)
}

// Entries returns a copy of the ring, most recent first.
func (k *KillRing) Entries() []string {
	return append([]string{}, k.entries...)
}
