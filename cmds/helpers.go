package cmds

import "strings"

// Var defines a flag taking one argument. "name." resets it to zero.
func Var[T any](name string, desc ...string) *T {
	var value T

	// set
	Define(name, Func(func(v T) {
		value = v
	}).Desc(strings.Join(desc, " ")))

	// set zero
	var zero T
	Define(name+".", Func(func() {
		value = zero
	}).Hide())

	return &value
}

// Switch defines a boolean flag. "!name" turns it off again.
func Switch(name string, desc ...string) *bool {
	var value bool

	// set true
	Define(name, Func(func() {
		value = true
	}).Desc(strings.Join(desc, " ")))

	// set false
	Define("!"+name, Func(func() {
		value = false
	}).Hide())

	return &value
}

// Collect defines a repeatable command whose arguments accumulate in order.
func Collect[T any](name string, desc ...string) *[]T {
	var value []T
	// append
	Define(name, Func(func(v T) {
		value = append(value, v)
	}).Desc(strings.Join(desc, " ")))
	return &value
}
