package cmds

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.WriteUsage(os.Stdout)
}

// WriteUsage lists commands first and flags (names starting with '-')
// second, each sorted by name. Aliases are shown with their command.
// Hidden commands are omitted.
func (p *Executor) WriteUsage(w io.Writer) {
	var commands, flags []string
	seen := make(map[*Command]bool)
	names := make([]string, 0, len(p.commands))
	for name := range p.commands {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		command := p.commands[name]
		if command != nil && command.Hidden {
			continue
		}
		if command != nil && slices.Contains(command.Aliases, name) {
			continue
		}
		if command != nil && seen[command] {
			continue
		}
		seen[command] = true
		if strings.HasPrefix(name, "-") {
			flags = append(flags, name)
		} else {
			commands = append(commands, name)
		}
	}

	if len(commands) > 0 {
		fmt.Fprintf(w, "commands:\n")
		for _, name := range commands {
			writeCommand(w, name, p.commands[name], 1)
		}
	}
	if len(flags) > 0 {
		fmt.Fprintf(w, "flags:\n")
		for _, name := range flags {
			writeCommand(w, name, p.commands[name], 1)
		}
	}
}

func writeCommand(w io.Writer, name string, command *Command, depth int) {
	indent := strings.Repeat("  ", depth)
	if command == nil {
		fmt.Fprintf(w, "%s%s\n", indent, name)
		return
	}

	label := name
	if len(command.Aliases) > 0 {
		label += ", " + strings.Join(command.Aliases, ", ")
	}
	if command.Func.IsValid() {
		for i, max := 0, command.Func.Type().NumIn(); i < max; i++ {
			t := command.Func.Type().In(i)
			if t.Kind() == reflect.Pointer {
				label += " [" + t.Elem().Kind().String() + "]"
			} else {
				label += " <" + t.Kind().String() + ">"
			}
		}
	}
	if command.Description != "" {
		fmt.Fprintf(w, "%s%-28s %s\n", indent, label, command.Description)
	} else {
		fmt.Fprintf(w, "%s%s\n", indent, label)
	}

	subNames := make([]string, 0, len(command.Subs))
	for subName := range command.Subs {
		subNames = append(subNames, subName)
	}
	slices.Sort(subNames)
	for _, subName := range subNames {
		writeCommand(w, subName, command.Subs[subName], depth+1)
	}
}
