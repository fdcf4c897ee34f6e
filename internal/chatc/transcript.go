package chatc

// Transcript is the append-only message log a view renders.
// The only entry that can be removed is the loading entry.
type Transcript struct {
	entries []Message
}

// Append adds msg to the end of the log
func (t *Transcript) Append(msg Message) {
	t.entries = append(t.entries, msg)
}

// Remove deletes the entry with the given ID.
// Returns false if no such entry exists.
func (t *Transcript) Remove(id string) bool {
	for i, entry := range t.entries {
		if entry.ID == id {
			t.entries = append(t.entries[:i], t.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Find returns the entry with the given ID
func (t *Transcript) Find(id string) (Message, bool) {
	for _, entry := range t.entries {
		if entry.ID == id {
			return entry, true
		}
	}
	return Message{}, false
}

// Entries returns a copy of the log in display order
func (t *Transcript) Entries() []Message {
	out := make([]Message, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of entries, including the loading entry
func (t *Transcript) Len() int {
	return len(t.entries)
}

// Count returns the number of regular entries from sender
func (t *Transcript) Count(sender Sender) int {
	n := 0
	for _, entry := range t.entries {
		if entry.Sender == sender && !entry.IsLoading() {
			n++
		}
	}
	return n
}

// Last returns the last entry, if any
func (t *Transcript) Last() (Message, bool) {
	if len(t.entries) == 0 {
		return Message{}, false
	}
	return t.entries[len(t.entries)-1], true
}
