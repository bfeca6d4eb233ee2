// Package slogx holds attribute constructors shared by every package that logs.
package slogx

import (
	"fmt"
	"log/slog"
	"math/big"
	"time"
)

// ErrorKey is the attribute key of logged errors.
const ErrorKey = "error"

func Any(key string, value any) slog.Attr {
	return slog.Any(key, value)
}

func Group(key string, args ...any) slog.Attr {
	return slog.Group(key, args...)
}

// Error returns an attribute for err, or an empty attribute (dropped by handlers) when err is nil.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any(ErrorKey, err)
}

func String(key, value string) slog.Attr {
	return slog.String(key, value)
}

// Stringer calls value.String(). A nil value yields "<nil>".
func Stringer(key string, value fmt.Stringer) slog.Attr {
	if value == nil {
		return slog.String(key, "<nil>")
	}
	return slog.String(key, value.String())
}

// BigInt logs a token id or amount in base 10.
func BigInt(key string, value *big.Int) slog.Attr {
	if value == nil {
		return slog.String(key, "<nil>")
	}
	return slog.String(key, value.String())
}

func Int64(key string, value int64) slog.Attr {
	return slog.Int64(key, value)
}

func Int(key string, value int) slog.Attr {
	return slog.Int(key, value)
}

func Uint64(key string, v uint64) slog.Attr {
	return slog.Uint64(key, v)
}

func Bool(key string, v bool) slog.Attr {
	return slog.Bool(key, v)
}

func Duration(key string, v time.Duration) slog.Attr {
	return slog.Duration(key, v)
}
