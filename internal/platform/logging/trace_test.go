package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const validTraceparent = "00-ab42124a3c573678d4d8b21ba52df3bf-d21f7bc17caa5aba-01"

func TestParseTraceparent(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		ok      bool
		sampled bool
	}{
		{"valid sampled", validTraceparent, true, true},
		{"valid not sampled", "00-ab42124a3c573678d4d8b21ba52df3bf-d21f7bc17caa5aba-00", true, false},
		{"empty", "", false, false},
		{"short trace id", "00-ab42-d21f7bc17caa5aba-01", false, false},
		{"legacy cloud trace header", "105445aa7843bc8bf206b120001000/1;o=1", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc, ok := parseTraceparent(tt.header)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if !ok {
				return
			}
			if tc.traceID != "ab42124a3c573678d4d8b21ba52df3bf" || tc.spanID != "d21f7bc17caa5aba" {
				t.Fatalf("unexpected ids: %+v", tc)
			}
			if tc.sampled != tt.sampled {
				t.Fatalf("expected sampled=%v, got %v", tt.sampled, tc.sampled)
			}
		})
	}
}

func TestLoggerForRequestPlainTraceFields(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)

	logger, correlationID := loggerForRequest(zap.New(core), validTraceparent, "", "req-1")
	logger.Info("hello")

	if correlationID != "ab42124a3c573678d4d8b21ba52df3bf" {
		t.Fatalf("expected trace ID as correlation ID, got %q", correlationID)
	}
	fields := recorded.All()[0].ContextMap()
	if fields["traceId"] != "ab42124a3c573678d4d8b21ba52df3bf" {
		t.Fatalf("missing traceId: %+v", fields)
	}
	if fields["spanId"] != "d21f7bc17caa5aba" {
		t.Fatalf("missing spanId: %+v", fields)
	}
	if fields["requestId"] != "req-1" {
		t.Fatalf("missing requestId: %+v", fields)
	}
}

func TestLoggerForRequestCloudTraceFields(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)

	logger, _ := loggerForRequest(zap.New(core), validTraceparent, "demo-project", "")
	logger.Info("hello")

	fields := recorded.All()[0].ContextMap()
	want := "projects/demo-project/traces/ab42124a3c573678d4d8b21ba52df3bf"
	if fields["logging.googleapis.com/trace"] != want {
		t.Fatalf("expected %s, got %+v", want, fields)
	}
	if fields["logging.googleapis.com/trace_sampled"] != true {
		t.Fatalf("expected sampled flag, got %+v", fields)
	}
}

func TestLoggerForRequestWithoutTrace(t *testing.T) {
	core, _ := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	logger, correlationID := loggerForRequest(base, "", "", "")
	if logger != base {
		t.Fatal("expected base logger when there is nothing to attach")
	}
	if correlationID != "" {
		t.Fatalf("expected empty correlation ID, got %q", correlationID)
	}

	_, correlationID = loggerForRequest(base, "garbage", "", "req-9")
	if correlationID != "req-9" {
		t.Fatalf("expected request ID fallback, got %q", correlationID)
	}

	if l, _ := loggerForRequest(nil, "", "", ""); l == nil {
		t.Fatal("expected nop logger for nil base")
	}
}
