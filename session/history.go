package session

// HistorySize is the maximum number of entries a History keeps.
const HistorySize = 20

// Entry is one successful evaluation.
type Entry struct {
	Expression string
	Value      float64
}

// History is a list of at most HistorySize entries, most recent first. The
// zero value is an empty history.
type History struct {
	entries []Entry
}

// Add puts e at the front of the history, dropping the oldest entry if the
// history is full.
func (h *History) Add(e Entry) {
	if len(h.entries) < HistorySize {
		h.entries = append(h.entries, Entry{})
	}
	copy(h.entries[1:], h.entries)
	h.entries[0] = e
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// At returns the entry at index i, 0 being the most recent.
func (h *History) At(i int) (Entry, bool) {
	if i < 0 || i >= len(h.entries) {
		return Entry{}, false
	}
	return h.entries[i], true
}

// Entries returns a copy of the entries, most recent first.
func (h *History) Entries() []Entry {
	return append([]Entry(nil), h.entries...)
}

// Clear removes all entries.
func (h *History) Clear() {
	h.entries = h.entries[:0]
}

// Memory is a single-value memory register. The zero value holds 0.
type Memory struct {
	value float64
}

// Store replaces the register's value.
func (m *Memory) Store(v float64) {
	m.value = v
}

// Recall returns the register's value.
func (m *Memory) Recall() float64 {
	return m.value
}

// Clear sets the register to 0.
func (m *Memory) Clear() {
	m.value = 0
}

// Add adds v to the register.
func (m *Memory) Add(v float64) {
	m.value += v
}

// Sub subtracts v from the register.
func (m *Memory) Sub(v float64) {
	m.value -= v
}
