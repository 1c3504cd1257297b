package configs

import "reflect"

// Configurable is a setting that can be loaded from a config file. ConfigKey
// is the top level field name in the file.
type Configurable interface {
	ConfigKey() string
}

var configurableType = reflect.TypeFor[Configurable]()

// IsConfigurable reports whether values of t are settings.
func IsConfigurable(t reflect.Type) bool {
	return t.Implements(configurableType)
}
