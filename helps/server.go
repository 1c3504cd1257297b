package helps

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
)

type Request struct {
	Method string          `json:"method"`
	Params json.RawMessage `json:"params"`
}

// Response carries either Content or Error. An empty Content is still
// encoded.
type Response struct {
	Content *string `json:"content,omitempty"`
	Error   string  `json:"error,omitempty"`
}

func content(s string) Response {
	return Response{
		Content: &s,
	}
}

func errorResponse(format string, args ...any) Response {
	return Response{
		Error: fmt.Sprintf(format, args...),
	}
}

// Handle answers one method call.
func Handle(method string, params map[string]any) Response {
	var handle func(string) string
	var key string
	switch method {
	case MethodInject:
		handle, key = Inject, "query"
	case MethodHelp:
		handle, key = Help, "topic"
	default:
		return errorResponse("Unknown tool: %s", method)
	}

	var arg string
	if v, ok := params[key]; ok && v != nil {
		s, ok := v.(string)
		if !ok {
			return errorResponse("Internal error: %s must be a string", key)
		}
		arg = s
	}
	return content(handle(arg))
}

func handleLine(line []byte) Response {
	var req Request
	if err := json.Unmarshal(line, &req); err != nil {
		return errorResponse("Invalid JSON: %v", err)
	}
	params := map[string]any{}
	if len(req.Params) > 0 && string(req.Params) != "null" {
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return errorResponse("Internal error: params must be an object")
		}
	}
	return Handle(req.Method, params)
}

const maxLineSize = 1 << 20

// Serve reads one JSON request per line from r and writes one JSON
// response per line to w, until r is exhausted or ctx is done.
func Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := encoder.Encode(handleLine(scanner.Bytes())); err != nil {
			return err
		}
		if f, ok := w.(interface{ Flush() error }); ok {
			if err := f.Flush(); err != nil {
				return err
			}
		}
	}
	return scanner.Err()
}
