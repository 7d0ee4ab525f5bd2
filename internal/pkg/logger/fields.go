package logger

import (
	"time"

	"go.uber.org/zap"
)

// Field type alias for better abstraction
type Field = zap.Field

// String constructs a field that carries a string value
func String(key, val string) Field {
	return zap.String(key, val)
}

// Err constructs a field that carries an error
func Err(err error) Field {
	return zap.Error(err)
}

// ErrorField constructs a field that carries an error (alias for Err)
func ErrorField(err error) Field {
	return zap.Error(err)
}

// Int constructs a field that carries an int value
func Int(key string, val int) Field {
	return zap.Int(key, val)
}

// Int64 constructs a field that carries an int64 value
func Int64(key string, val int64) Field {
	return zap.Int64(key, val)
}

// Float64 constructs a field that carries a float64 value
func Float64(key string, val float64) Field {
	return zap.Float64(key, val)
}

// Bool constructs a field that carries a boolean value
func Bool(key string, val bool) Field {
	return zap.Bool(key, val)
}

// Any constructs a field that carries an arbitrary value
func Any(key string, val interface{}) Field {
	return zap.Any(key, val)
}

// Duration constructs a field that carries a time.Duration value
func Duration(key string, val time.Duration) Field {
	return zap.Duration(key, val)
}

// Time constructs a field that carries a time.Time value
func Time(key string, val time.Time) Field {
	return zap.Time(key, val)
}
