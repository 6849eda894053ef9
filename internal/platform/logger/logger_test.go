package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	kit "wordlebot/internal/platform/testkit"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"trace", "trace"},
		{"debug", "debug"},
		{"INFO", "info"},
		{"warn", "warn"},
		{"warning", "warn"},
		{"error", "error"},
		{"fatal", "fatal"},
		{"panic", "panic"},
		{"", "debug"},
		{"  loud  ", "debug"},
	}
	for _, c := range cases {
		if got := strings.ToLower(parseLevel(c.in).String()); got != c.want {
			t.Fatalf("parseLevel(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestInitAndChildren(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{
		Level:        "info",
		Format:       "console",
		Service:      "wordlebot-test",
		Writer:       &buf,
		WithCaller:   true,
		SampleEvery:  2,
		StaticFields: map[string]string{"build": "test"},
	})

	rv := Get().Sample(&zerolog.BasicSampler{N: 1})
	(&rv).Info().Msg("root-msg")

	nv := Named("gateway").Sample(&zerolog.BasicSampler{N: 1})
	(&nv).Info().Msg("named-msg")

	ctx := WithRun(WithMessage(context.Background(), "m-42", "wordle"), "run-7")
	cv := C(ctx).Sample(&zerolog.BasicSampler{N: 1})
	(&cv).Info().Msg("ctx-msg")

	out := buf.String()
	for _, want := range []string{"root-msg", "named-msg", "ctx-msg", "gateway", "m-42", "message_id=", "channel=", "run-7", "build=", "wordlebot-test"} {
		kit.MustContain(t, out, want)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "WARN")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_SERVICE", "bot")
	t.Setenv("LOG_CALLER", "yes")
	t.Setenv("LOG_SAMPLE_EVERY", "3")

	opt := FromEnv()
	if opt.Level != "warn" || opt.Format != "json" || opt.Service != "bot" {
		t.Fatalf("FromEnv = %+v", opt)
	}
	if !opt.WithCaller || opt.SampleEvery != 3 {
		t.Fatalf("FromEnv caller/sample = %+v", opt)
	}
}

func TestWithRunEmptyIsNoop(t *testing.T) {
	ctx := context.Background()
	if WithRun(ctx, "") != ctx {
		t.Fatalf("WithRun with empty id should return ctx unchanged")
	}
}
