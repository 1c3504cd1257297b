package logs

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	"github.com/Pilan-AI/hermes-lang/cmds"
	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

var level = new(slog.LevelVar)

func init() {
	// translation output goes to stdout, keep stderr quiet by default
	level.Set(slog.LevelWarn)

	cmds.Define("-log-debug", cmds.Func(func() {
		level.Set(slog.LevelDebug)
	}).Desc("set log level to debug"))
	cmds.Define("-log-info", cmds.Func(func() {
		level.Set(slog.LevelInfo)
	}).Desc("set log level to info"))
	cmds.Define("-log-warn", cmds.Func(func() {
		level.Set(slog.LevelWarn)
	}).Desc("set log level to warn"))
	cmds.Define("-log-error", cmds.Func(func() {
		level.Set(slog.LevelError)
	}).Desc("set log level to error"))
}

type Logger = *slog.Logger

// Writer receives text records, unless running as a systemd service.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}

// Level is the minimum level of records written by Logger.
type Level slog.Leveler

func (Module) Level() Level {
	return level
}

func (Module) Logger(
	writer Writer,
	minLevel Level,
) Logger {
	var handlers []slog.Handler

	// journald already records stderr of services
	var text slog.Handler
	if !underSystemdService() {
		text = slog.NewTextHandler(writer, &slog.HandlerOptions{
			Level: minLevel,
		})
		handlers = append(handlers, text)
	}

	journal, err := newJournalHandler()
	if err != nil {
		if text != nil && text.Enabled(context.Background(), slog.LevelDebug) {
			record := slog.NewRecord(time.Now(), slog.LevelDebug, "systemd journal not available", 0)
			record.Add("error", err)
			_ = text.Handle(context.Background(), record)
		}
	} else {
		handlers = append(handlers, journal)
	}

	return slog.New(&Handler{
		Handler: slogmulti.Fanout(handlers...),
	})
}

func newJournalHandler() (slog.Handler, error) {
	return slogjournal.NewHandler(&slogjournal.Options{
		ReplaceGroup: toJournalKey,
		ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
			attr.Key = toJournalKey(attr.Key)
			return attr
		},
	})
}

// journal field names allow only upper case letters, digits and underscores
func toJournalKey(key string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		}
		return '_'
	}, key)
}

func underSystemdService() bool {
	content, err := os.ReadFile("/proc/self/cgroup")
	if err != nil {
		return false
	}
	// hierarchy-ID:controllers:path
	parts := strings.SplitN(strings.TrimSpace(string(content)), ":", 3)
	if len(parts) < 3 {
		return false
	}
	return strings.HasSuffix(path.Dir(parts[2]), ".service")
}
