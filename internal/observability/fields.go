package observability

import (
	"time"

	"go.uber.org/zap"
)

// String constructs a string field.
func String(key, val string) zap.Field { return zap.String(key, val) }

// Int constructs an int field.
func Int(key string, val int) zap.Field { return zap.Int(key, val) }

// Duration constructs a duration field.
func Duration(key string, val time.Duration) zap.Field { return zap.Duration(key, val) }

// Error constructs an "error" field.
func Error(err error) zap.Field { return zap.Error(err) }
