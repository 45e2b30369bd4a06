package domain

import "strings"

const defaultMessage = "Это начало"

func DefaultMessages() []string {
	return []string{defaultMessage}
}

// NormalizeMessages drops blank entries and falls back to the default pool when nothing is left.
func NormalizeMessages(messages []string) []string {
	result := make([]string, 0, len(messages))
	for _, message := range messages {
		if strings.TrimSpace(message) == "" {
			continue
		}
		result = append(result, message)
	}

	if len(result) == 0 {
		return DefaultMessages()
	}

	return result
}
