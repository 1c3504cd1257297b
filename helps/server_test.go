package helps

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/Pilan-AI/hermes-lang/hermconfigs"
	"github.com/Pilan-AI/hermes-lang/logs"
	"github.com/Pilan-AI/hermes-lang/modes"
	"github.com/reusee/dscope"
)

func TestInject(t *testing.T) {
	if got := Inject(""); got != "" {
		t.Fatalf("got %q", got)
	}
	if got := Inject("zzz"); got != "" {
		t.Fatalf("got %q", got)
	}

	got := Inject("What is the SANGAM skin")
	if !strings.HasPrefix(got, "## Hermes Context\n\n## Sangam Skin\n") {
		t.Fatalf("got %q", got)
	}
	if !strings.HasSuffix(got, "\n---") {
		t.Fatalf("got %q", got)
	}

	// content words also match
	got = Inject("how to compile")
	if !strings.Contains(got, "## Transpiler Usage") || !strings.Contains(got, "## Hermes Syntax Reference") {
		t.Fatalf("got %q", got)
	}
	if strings.Contains(got, "## Sangam Skin") {
		t.Fatalf("got %q", got)
	}
}

func TestHelp(t *testing.T) {
	if got, want := Help(""), Inject("syntax reference"); got != want || got == "" {
		t.Fatalf("got %q", got)
	}
	if got := Help("transpiler"); !strings.Contains(got, "## Transpiler Usage") {
		t.Fatalf("got %q", got)
	}
}

func TestTools(t *testing.T) {
	tools := Tools()
	if len(tools) != 2 {
		t.Fatalf("got %d", len(tools))
	}
	for _, method := range []string{MethodInject, MethodHelp} {
		tool, ok := tools[method]
		if !ok || tool.Name == "" || tool.InputSchema["type"] != "object" {
			t.Fatalf("got %+v", tool)
		}
	}
}

func serve(t *testing.T, input string) []map[string]any {
	var sb strings.Builder
	if err := Serve(context.Background(), strings.NewReader(input), &sb); err != nil {
		t.Fatal(err)
	}
	var ret []map[string]any
	for line := range strings.Lines(sb.String()) {
		var m map[string]any
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("got %q", line)
		}
		ret = append(ret, m)
	}
	return ret
}

func TestServe(t *testing.T) {
	responses := serve(t, strings.Join([]string{
		`{"method": "hermes_inject", "params": {"query": "sangam"}}`,
		`{"method": "hermes_inject", "params": {}}`,
		`{"method": "hermes_help"}`,
		`{"method": "nope", "params": {}}`,
		`{not json`,
		`{"method": "hermes_help", "params": {"topic": 42}}`,
		`{"method": "hermes_help", "params": [1]}`,
	}, "\n"))
	if len(responses) != 7 {
		t.Fatalf("got %d", len(responses))
	}

	if c, _ := responses[0]["content"].(string); !strings.Contains(c, "Sangam Skin") {
		t.Fatalf("got %v", responses[0])
	}
	if c, ok := responses[1]["content"].(string); !ok || c != "" {
		t.Fatalf("got %v", responses[1])
	}
	if c, _ := responses[2]["content"].(string); c != Help("") {
		t.Fatalf("got %v", responses[2])
	}
	if responses[3]["error"] != "Unknown tool: nope" {
		t.Fatalf("got %v", responses[3])
	}
	if e, _ := responses[4]["error"].(string); !strings.HasPrefix(e, "Invalid JSON: ") {
		t.Fatalf("got %v", responses[4])
	}
	for _, response := range responses[5:] {
		if e, _ := response["error"].(string); !strings.HasPrefix(e, "Internal error: ") {
			t.Fatalf("got %v", response)
		}
	}
}

func TestServeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var sb strings.Builder
	err := Serve(ctx, strings.NewReader(`{"method": "hermes_help"}`+"\n"), &sb)
	if err != context.Canceled || sb.Len() != 0 {
		t.Fatalf("got %v %q", err, sb.String())
	}
}

func TestServeTCP(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() hermconfigs.ConfigPaths {
			return nil
		},
		func() logs.Writer {
			return io.Discard
		},
	).Call(func(
		serveTCP ServeTCP,
	) {
		// reserve a free port
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			t.Fatal(err)
		}
		addr := ln.Addr().String()
		ln.Close()

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			done <- serveTCP(ctx, addr)
		}()

		var conn net.Conn
		for range 100 {
			conn, err = net.Dial("tcp", addr)
			if err == nil {
				break
			}
			time.Sleep(10 * time.Millisecond)
		}
		if err != nil {
			t.Fatal(err)
		}
		defer conn.Close()

		reader := bufio.NewReader(conn)
		for _, req := range []string{
			`{"method": "hermes_help", "params": {"topic": "transpiler"}}`,
			`{"method": "x"}`,
		} {
			if _, err := io.WriteString(conn, req+"\n"); err != nil {
				t.Fatal(err)
			}
			line, err := reader.ReadString('\n')
			if err != nil {
				t.Fatal(err)
			}
			var response Response
			if err := json.Unmarshal([]byte(line), &response); err != nil {
				t.Fatal(err)
			}
			if response.Content == nil && response.Error == "" {
				t.Fatalf("got %q", line)
			}
		}

		cancel()
		select {
		case err := <-done:
			if err != nil {
				t.Fatal(err)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("not stopped")
		}
	})
}
