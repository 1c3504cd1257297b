package helps

import "strings"

// Inject returns every topic relevant to query, framed as one context
// block, or "" when nothing matches. A topic matches when its name or any
// word of its content occurs in the lower-cased query.
func Inject(query string) string {
	if query == "" {
		return ""
	}
	query = strings.ToLower(query)

	var relevant []string
	for _, topic := range Topics {
		if matches(topic, query) {
			relevant = append(relevant, topic.Content)
		}
	}
	if len(relevant) == 0 {
		return ""
	}
	return "## Hermes Context\n\n" + strings.Join(relevant, "\n\n") + "\n---"
}

func matches(topic Topic, query string) bool {
	if strings.Contains(query, topic.Name) {
		return true
	}
	for _, word := range strings.Fields(strings.ToLower(topic.Content)) {
		if strings.Contains(query, word) {
			return true
		}
	}
	return false
}

// Help looks up topic, defaulting to the syntax reference.
func Help(topic string) string {
	if topic == "" {
		topic = "syntax reference"
	}
	return Inject(topic)
}
