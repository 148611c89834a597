// SPDX-License-Identifier: MPL-2.0

package runner

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/toolshed-cli/toolshed/pkg/toolfile"
)

func tool(script string) *toolfile.Tool {
	return &toolfile.Tool{
		Name:        "test-tool",
		InputSchema: map[string]any{"type": "object"},
		Run:         toolfile.RunSpec{Script: script},
	}
}

func TestInvoke_CapturesStdout(t *testing.T) {
	out, err := New().Invoke(context.Background(), tool(`echo "hello"`), nil)
	if err != nil {
		t.Fatalf("Invoke() returned error: %v", err)
	}
	if out != "hello\n" {
		t.Errorf("output = %q, want %q", out, "hello\n")
	}
}

func TestInvoke_ScalarArgsAsEnv(t *testing.T) {
	args := map[string]any{
		"who":   "world",
		"count": float64(3), // JSON numbers decode as float64
		"loud":  true,
	}

	out, err := New().Invoke(context.Background(),
		tool(`echo "$TOOLSHED_ARG_WHO $TOOLSHED_ARG_COUNT $TOOLSHED_ARG_LOUD"`), args)
	if err != nil {
		t.Fatalf("Invoke() returned error: %v", err)
	}
	if out != "world 3 true\n" {
		t.Errorf("output = %q", out)
	}
}

func TestInvoke_ArgsJSONAvailable(t *testing.T) {
	out, err := New().Invoke(context.Background(), tool(`echo "$TOOLSHED_ARGS"`),
		map[string]any{"key": "value"})
	if err != nil {
		t.Fatalf("Invoke() returned error: %v", err)
	}
	if strings.TrimSpace(out) != `{"key":"value"}` {
		t.Errorf("output = %q", out)
	}
}

func TestInvoke_DescriptorEnv(t *testing.T) {
	tl := tool(`echo "$GREETING"`)
	tl.Run.Env = map[string]string{"GREETING": "from descriptor"}

	out, err := New().Invoke(context.Background(), tl, nil)
	if err != nil {
		t.Fatalf("Invoke() returned error: %v", err)
	}
	if out != "from descriptor\n" {
		t.Errorf("output = %q", out)
	}
}

func TestInvoke_NonZeroExit(t *testing.T) {
	out, err := New().Invoke(context.Background(), tool(`echo partial; echo oops >&2; exit 3`), nil)
	if err == nil {
		t.Fatal("Invoke() should fail on non-zero exit")
	}
	if !strings.Contains(err.Error(), "status 3") {
		t.Errorf("error should carry the exit status, got: %v", err)
	}
	if !strings.Contains(err.Error(), "oops") {
		t.Errorf("error should carry stderr, got: %v", err)
	}
	if out != "partial\n" {
		t.Errorf("stdout before failure should be returned, got %q", out)
	}
}

func TestInvoke_ParseError(t *testing.T) {
	_, err := New().Invoke(context.Background(), tool(`if then fi (`), nil)
	if err == nil {
		t.Fatal("Invoke() should fail for an unparseable script")
	}
}

func TestInvoke_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := New().Invoke(ctx, tool(`sleep 10`), nil)
	if err == nil {
		t.Fatal("Invoke() should fail when the context is canceled")
	}
	if time.Since(start) > 5*time.Second {
		t.Error("cancellation did not stop the script promptly")
	}
}

func TestEnvName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"who", "WHO"},
		{"dry-run", "DRY_RUN"},
		{"max.depth", "MAX_DEPTH"},
		{"camelCase", "CAMELCASE"},
	}
	for _, tt := range tests {
		if got := envName(tt.in); got != tt.want {
			t.Errorf("envName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
