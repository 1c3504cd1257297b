package cmds

import (
	"fmt"
	"reflect"
)

// Command is an action, a set of sub commands, or both. Hidden commands
// work but are left out of the usage text.
type Command struct {
	Func        reflect.Value
	Subs        map[string]*Command
	Description string
	Aliases     []string
	Hidden      bool
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

func (c *Command) Hide() *Command {
	c.Hidden = true
	return c
}

// Func wraps fn, which takes its arguments from the following words and
// returns nothing or an error. Pointer parameters are optional.
func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)
	if fnValue.Kind() != reflect.Func {
		panic(fmt.Errorf("command must be a function, got %T", fn))
	}

	fnType := fnValue.Type()
	switch {
	case fnType.NumOut() > 1:
		panic(fmt.Errorf("command %s must return nothing or an error", fnType))
	case fnType.NumOut() == 1 && fnType.Out(0) != errorType:
		panic(fmt.Errorf("command %s must return nothing or an error", fnType))
	case fnType.IsVariadic():
		panic(fmt.Errorf("command %s must not be variadic", fnType))
	}

	return &Command{
		Func: fnValue,
	}
}

func Sub(subs map[string]*Command) *Command {
	return &Command{
		Subs: subs,
	}
}
