package debugs

import (
	"fmt"
	"math/big"
	"reflect"

	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

// TypeKey holds the Go type name of a converted struct.
const TypeKey = "__type__"

// ToValue converts Go values to starlark. Structs become dicts of their
// exported fields plus TypeKey, named non-struct types with a String method
// become strings, funcs become builtins.
func ToValue(v any) (starlark.Value, error) {
	switch v := v.(type) {
	case nil:
		return starlark.None, nil
	case starlark.Value:
		return v, nil
	case []byte:
		return starlark.Bytes(v), nil
	case *big.Int:
		if v == nil {
			return starlark.None, nil
		}
		return starlark.MakeBigInt(v), nil
	}

	value := reflect.ValueOf(v)
	if stringer, ok := v.(fmt.Stringer); ok &&
		value.Kind() != reflect.Struct &&
		value.Kind() != reflect.Pointer {
		return starlark.String(stringer.String()), nil
	}

	switch value.Kind() {

	case reflect.Bool:
		return starlark.Bool(value.Bool()), nil

	case reflect.String:
		return starlark.String(value.String()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return starlark.MakeInt64(value.Int()), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return starlark.MakeUint64(value.Uint()), nil

	case reflect.Float32, reflect.Float64:
		return starlark.Float(value.Float()), nil

	case reflect.Slice, reflect.Array:
		elems := make([]starlark.Value, value.Len())
		for i := range elems {
			elem, err := ToValue(value.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			elems[i] = elem
		}
		return starlark.NewList(elems), nil

	case reflect.Map:
		d := starlark.NewDict(value.Len())
		iter := value.MapRange()
		for iter.Next() {
			key, err := ToValue(iter.Key().Interface())
			if err != nil {
				return nil, err
			}
			elem, err := ToValue(iter.Value().Interface())
			if err != nil {
				return nil, err
			}
			if err := d.SetKey(key, elem); err != nil {
				return nil, err
			}
		}
		return d, nil

	case reflect.Struct:
		typ := value.Type()
		d := starlark.NewDict(value.NumField() + 1)
		if err := d.SetKey(starlark.String(TypeKey), starlark.String(typ.Name())); err != nil {
			return nil, err
		}
		for i := range value.NumField() {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}
			elem, err := ToValue(value.Field(i).Interface())
			if err != nil {
				return nil, err
			}
			if err := d.SetKey(starlark.String(field.Name), elem); err != nil {
				return nil, err
			}
		}
		return d, nil

	case reflect.Pointer, reflect.Interface:
		if value.IsNil() {
			return starlark.None, nil
		}
		return ToValue(value.Elem().Interface())

	case reflect.Func:
		return starlarkutil.MakeFunc("", value.Interface()), nil

	}

	return nil, fmt.Errorf("unsupported type for starlark: %T", v)
}
