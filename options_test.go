package abicodec

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewDefaults(t *testing.T) {
	c := New()

	t.Run("utf-8 validation enabled by default", func(t *testing.T) {
		if !c.strictUTF8 {
			t.Error("Expected strictUTF8 to be true by default")
		}
	})

	t.Run("logger is never nil", func(t *testing.T) {
		if c.logger == nil {
			t.Error("Expected a no-op logger by default")
		}
	})
}

func TestWithUTF8Validation(t *testing.T) {
	t.Run("disables validation", func(t *testing.T) {
		c := New(WithUTF8Validation(false))
		if c.strictUTF8 {
			t.Error("Expected strictUTF8 to be false")
		}
	})

	t.Run("last option wins", func(t *testing.T) {
		c := New(WithUTF8Validation(false), WithUTF8Validation(true))
		if !c.strictUTF8 {
			t.Error("Expected strictUTF8 to be true")
		}
	})
}

func TestWithLogger(t *testing.T) {
	t.Run("nil keeps the default", func(t *testing.T) {
		c := New(WithLogger(nil))
		if c.logger == nil {
			t.Error("Expected nil logger to be ignored")
		}
	})

	t.Run("rejected decode is logged at debug", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		c := New(WithLogger(zap.New(core)))

		_, err := c.DecodeParameters([]ParamType{BytesType{}}, words(0x20, 1000))
		if !errors.Is(err, ErrBufferOverrun) {
			t.Fatalf("Expected ErrBufferOverrun, got %v", err)
		}

		entries := logs.FilterMessage("abi decode rejected").All()
		if len(entries) != 1 {
			t.Fatalf("Expected 1 log entry, got %d", len(entries))
		}
		entry := entries[0]
		if entry.Level != zapcore.DebugLevel {
			t.Errorf("Expected debug level, got %s", entry.Level)
		}
		fields := entry.ContextMap()
		if fields["len"] != int64(64) {
			t.Errorf("Expected len 64, got %v", fields["len"])
		}
		if _, ok := fields["error"]; !ok {
			t.Error("Expected error field")
		}
	})

	t.Run("rejected encode is logged", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		c := New(WithLogger(zap.New(core)))

		if _, err := c.EncodeParam(UIntType{Bits: 8}, 256); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("Expected ErrOutOfRange, got %v", err)
		}
		if logs.FilterMessage("abi encode rejected").Len() != 1 {
			t.Errorf("Expected 1 log entry, got %d", logs.Len())
		}
	})

	t.Run("success is not logged", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		c := New(WithLogger(zap.New(core)))

		if _, err := c.EncodeParam(BoolType{}, true); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if logs.Len() != 0 {
			t.Errorf("Expected no log entries, got %d", logs.Len())
		}
	})

	t.Run("info level suppresses rejections", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		c := New(WithLogger(zap.New(core)))

		_, _ = c.DecodeParameters([]ParamType{UIntType{Bits: 256}}, nil)
		if logs.Len() != 0 {
			t.Errorf("Expected no log entries, got %d", logs.Len())
		}
	})
}

func TestWithCodec(t *testing.T) {
	lenient := New(WithUTF8Validation(false))

	m := NewMethod("f", nil, nil, WithCodec(lenient))
	if m.codec != lenient {
		t.Error("Expected method to use the given codec")
	}

	m = NewMethod("f", nil, nil, WithCodec(nil))
	if m.codec != defaultCodec {
		t.Error("Expected nil codec to keep the default")
	}
}
