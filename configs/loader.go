package configs

import (
	"fmt"
	"iter"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Loader reads CUE files lazily on first use. Earlier files take precedence
// in AssignFirst.
type Loader struct {
	paths    []string
	getRoots func() ([]rootInfo, error)
}

func NewLoader(filePaths []string, schemaSrc string) Loader {
	return Loader{
		paths: filePaths,

		getRoots: sync.OnceValues(func() (ret []rootInfo, err error) {

			// schema and files must share one runtime to be unified
			ctx := cuecontext.New()

			var schema cue.Value
			if schemaSrc != "" {
				schema = ctx.CompileString("close({" + schemaSrc + "})")
				if err := schema.Err(); err != nil {
					return nil, err
				}
			}

			for _, filePath := range filePaths {
				content, err := os.ReadFile(filePath)
				if err != nil {
					return nil, fmt.Errorf("read config %s: %w", filePath, err)
				}

				value := ctx.CompileBytes(
					content,
					cue.Filename(filePath),
				)
				if err = value.Err(); err != nil {
					return nil, err
				}

				if schema.Exists() {
					if err := schema.Unify(value).Validate(); err != nil {
						return nil, fmt.Errorf("validate config %s: %w", filePath, err)
					}
				}

				ret = append(ret, rootInfo{
					value: value,
					path:  filePath,
				})
			}

			return
		}),
	}
}

// Paths returns the files this loader reads.
func (l Loader) Paths() []string {
	return l.paths
}

// Err loads and validates every file, returning the first failure.
func (l Loader) Err() error {
	if l.getRoots == nil {
		return nil
	}
	_, err := l.getRoots()
	return err
}

type rootInfo struct {
	value cue.Value
	path  string
}

// IterCueValues yields the value at path of each file defining it, in file
// order.
func (l Loader) IterCueValues(path string) iter.Seq2[*cue.Value, error] {
	return func(yield func(*cue.Value, error) bool) {
		if l.getRoots == nil {
			return
		}
		roots, err := l.getRoots()
		if err != nil {
			yield(nil, err)
			return
		}

		cuePath := cue.ParsePath(path)
		for _, info := range roots {
			value := info.value.LookupPath(cuePath)
			if err := value.Err(); err == nil {
				if !yield(&value, nil) {
					break
				}
			}
		}
	}
}

// AssignFirst decodes the value at path of the first file defining it.
func (l Loader) AssignFirst(path string, target any) error {
	for value, err := range l.IterCueValues(path) {
		if err != nil {
			return err
		}
		return value.Decode(target)
	}
	return ErrValueNotFound
}
