package logging

import (
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const (
	sampledHeader   = "00-3d23d071b5bfd6579171efce907685cb-08f067aa0ba902b7-01"
	unsampledHeader = "00-3d23d071b5bfd6579171efce907685cb-08f067aa0ba902b7-00"
	wantResource    = "projects/test-project/traces/3d23d071b5bfd6579171efce907685cb"
)

func TestParseTraceparent(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		ok      bool
		sampled bool
	}{
		{"sampled", sampledHeader, true, true},
		{"unsampled", unsampledHeader, true, false},
		{"empty", "", false, false},
		{"legacy cloud trace format", "105445aa7843bc8bf206b12000100000/1;o=1", false, false},
		{"short trace id", "00-3d23d071-08f067aa0ba902b7-01", false, false},
		{"non hex", "00-zz23d071b5bfd6579171efce907685cb-08f067aa0ba902b7-01", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tp, ok := parseTraceparent(tt.header)
			if ok != tt.ok {
				t.Fatalf("parseTraceparent(%q) ok = %v, want %v", tt.header, ok, tt.ok)
			}
			if !ok {
				return
			}
			if tp.traceID != "3d23d071b5bfd6579171efce907685cb" || tp.spanID != "08f067aa0ba902b7" {
				t.Fatalf("unexpected ids: %+v", tp)
			}
			if tp.sampled != tt.sampled {
				t.Fatalf("expected sampled=%v, got %v", tt.sampled, tp.sampled)
			}
		})
	}
}

func TestTraceFields(t *testing.T) {
	fields := traceFields(sampledHeader, "test-project")
	if len(fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(fields))
	}
	if fields[0].Key != "logging.googleapis.com/trace" || fields[0].String != wantResource {
		t.Fatalf("unexpected trace field: %+v", fields[0])
	}
	if fields[1].Key != "logging.googleapis.com/spanId" || fields[1].String != "08f067aa0ba902b7" {
		t.Fatalf("unexpected span field: %+v", fields[1])
	}
	if fields[2].Key != "logging.googleapis.com/trace_sampled" || fields[2].Type != zapcore.BoolType || fields[2].Integer != 1 {
		t.Fatalf("unexpected sampled field: %+v", fields[2])
	}

	if fields := traceFields(unsampledHeader, "test-project"); fields[2].Integer != 0 {
		t.Fatalf("expected unsampled trace field, got %+v", fields[2])
	}
}

func TestTraceFieldsInvalid(t *testing.T) {
	if fields := traceFields("invalid", "test-project"); fields != nil {
		t.Fatalf("expected nil fields for invalid header, got %v", fields)
	}
	if fields := traceFields(sampledHeader, ""); fields != nil {
		t.Fatalf("expected nil fields without project, got %v", fields)
	}
}

func TestTraceResource(t *testing.T) {
	if got := traceResource(sampledHeader, "test-project"); got != wantResource {
		t.Fatalf("expected %s, got %s", wantResource, got)
	}
	if got := traceResource(sampledHeader, ""); got != "" {
		t.Fatalf("expected empty resource without project, got %s", got)
	}
	if got := traceResource("garbage", "test-project"); got != "" {
		t.Fatalf("expected empty resource for invalid header, got %s", got)
	}
}

func TestLoggerWithTrace(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	loggerWithTrace(base, sampledHeader, "test-project", "req-123").Info("hello")

	entries := recorded.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	fields := fieldMap(entries[0])
	if f, ok := fields["requestId"]; !ok || f.String != "req-123" {
		t.Fatalf("requestId field missing: %+v", fields)
	}
	if f, ok := fields["logging.googleapis.com/trace"]; !ok || f.String != wantResource {
		t.Fatalf("trace field mismatch: %+v", fields)
	}
}

func TestLoggerWithTraceNoFieldsReturnsBase(t *testing.T) {
	base := zap.NewNop()
	if got := loggerWithTrace(base, "", "", ""); got != base {
		t.Fatal("expected base logger when no fields apply")
	}
	if got := loggerWithTrace(nil, "", "", ""); got == nil {
		t.Fatal("expected non-nil logger for nil base")
	}
}

func TestResolveProjectIDPriority(t *testing.T) {
	projectIDOnce = sync.Once{}
	cachedProjectID = ""
	t.Cleanup(func() {
		projectIDOnce = sync.Once{}
		cachedProjectID = ""
	})
	t.Setenv("GOOGLE_CLOUD_PROJECT", "")
	t.Setenv("GCP_PROJECT", "gcp-project")
	t.Setenv("PROJECT_ID", "fallback-project")

	if got := resolveProjectID(); got != "gcp-project" {
		t.Fatalf("expected gcp-project, got %s", got)
	}
}
