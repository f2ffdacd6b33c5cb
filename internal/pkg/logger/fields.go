package logger

import (
	"time"
)

// Field carries one structured logging key/value pair. Client code builds
// fields through the constructors below instead of importing logrus.
type Field struct {
	Key   string
	Value interface{}
}

// String constructs a field that carries a string value
func String(key, val string) Field {
	return Field{Key: key, Value: val}
}

// Err constructs a field that carries an error
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}

// Int constructs a field that carries an int value
func Int(key string, val int) Field {
	return Field{Key: key, Value: val}
}

// Int64 constructs a field that carries an int64 value
func Int64(key string, val int64) Field {
	return Field{Key: key, Value: val}
}

// Bool constructs a field that carries a boolean value
func Bool(key string, val bool) Field {
	return Field{Key: key, Value: val}
}

// Any constructs a field that carries an arbitrary value
func Any(key string, val interface{}) Field {
	return Field{Key: key, Value: val}
}

// Duration constructs a field that carries a time.Duration value
func Duration(key string, val time.Duration) Field {
	return Field{Key: key, Value: val.String()}
}
