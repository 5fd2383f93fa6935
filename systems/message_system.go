package systems

// MessageLog keeps the most recent build log lines for the viewer
type MessageLog struct {
	Messages    []string
	MaxMessages int
}

// NewMessageLog creates a message log holding at most limit lines
func NewMessageLog(limit int) *MessageLog {
	return &MessageLog{MaxMessages: limit}
}

// Add appends a line, dropping the oldest once the log is full
func (ml *MessageLog) Add(message string) {
	ml.Messages = append(ml.Messages, message)
	if len(ml.Messages) > ml.MaxMessages {
		ml.Messages = ml.Messages[len(ml.Messages)-ml.MaxMessages:]
	}
}

// RecentMessages returns up to n lines, newest first
func (ml *MessageLog) RecentMessages(n int) []string {
	n = min(n, len(ml.Messages))
	result := make([]string, n)
	for i := 0; i < n; i++ {
		result[i] = ml.Messages[len(ml.Messages)-1-i]
	}
	return result
}

// Clear removes every line
func (ml *MessageLog) Clear() {
	ml.Messages = ml.Messages[:0]
}
