package engine

// LogCapacity is how many battle log entries a match retains.
const LogCapacity = 5

// battleLog is a fixed-size ring keeping the most recent entries.
type battleLog struct {
	entries [LogCapacity]string
	start   int
	n       int
}

func (l *battleLog) add(msg string) {
	if l.n < LogCapacity {
		l.entries[(l.start+l.n)%LogCapacity] = msg
		l.n++
		return
	}
	l.entries[l.start] = msg
	l.start = (l.start + 1) % LogCapacity
}

// lines returns the retained entries, oldest first.
func (l *battleLog) lines() []string {
	out := make([]string, l.n)
	for i := 0; i < l.n; i++ {
		out[i] = l.entries[(l.start+i)%LogCapacity]
	}
	return out
}
