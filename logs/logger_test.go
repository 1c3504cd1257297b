package logs

import (
	"bytes"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestHandler(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		logger Logger,
	) {
		logger.Info("test", "hello", "world!")
	})
}

func TestLevel(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		logger.Info("hidden")
		logger.Warn("shown", "file", "a.herm")
		if strings.Contains(buf.String(), "hidden") {
			t.Fatalf("got %s", buf.String())
		}
		if !strings.Contains(buf.String(), "file=a.herm") {
			t.Fatalf("got %s", buf.String())
		}
	})
}

func TestJournalKey(t *testing.T) {
	tests := map[string]string{
		"logs.span": "LOGS_SPAN",
		"file":      "FILE",
		"Tokens2":   "TOKENS2",
		"é":         "_",
	}
	for key, want := range tests {
		if got := toJournalKey(key); got != want {
			t.Fatalf("got %s, want %s", got, want)
		}
	}
}
