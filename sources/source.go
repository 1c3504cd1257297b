package sources

import (
	"os"
	"strings"
)

// Source is a named piece of Hermes text.
type Source struct {
	Name    string
	Content string
	Lines   []string
}

func NewSource(name string, content string) *Source {
	return &Source{
		Name:    name,
		Content: content,
		Lines:   strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n"),
	}
}

func ReadFile(path string) (*Source, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewSource(path, string(content)), nil
}

// Line returns the 1-based line n, or false when out of range.
func (s *Source) Line(n int) (string, bool) {
	if s == nil || n < 1 || n > len(s.Lines) {
		return "", false
	}
	return s.Lines[n-1], true
}
