// Package envx reads configuration values from environment variables.
package envx

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/anacrolix/oneormany/internal/errorsx"
)

// Int retrieve a integer flag from the environment, checks each key in order
// first to parse successfully is returned.
func Int[T constraints.Integer](fallback T, keys ...string) T {
	return envval(fallback, func(s string) (T, error) {
		decoded, err := strconv.ParseInt(s, 10, 64)
		return T(decoded), errorsx.Wrapf(err, "integer '%s' is invalid", s)
	}, keys...)
}

// Boolean retrieve a boolean flag from the environment, checks each key in order
// first to parse successfully is returned.
func Boolean(fallback bool, keys ...string) bool {
	return envval(fallback, func(s string) (bool, error) {
		decoded, err := strconv.ParseBool(s)
		return decoded, errorsx.Wrapf(err, "boolean '%s' is invalid", s)
	}, keys...)
}

// String retrieve a string value from the environment, checks each key in order
// first string found is returned.
func String(fallback string, keys ...string) string {
	return envval(fallback, func(s string) (string, error) {
		// we'll never receive an empty string because envval skips empty strings.
		return s, nil
	}, keys...)
}

// OneOf is String restricted to the allowed values. Anything else is logged and skipped.
func OneOf(fallback string, allowed []string, keys ...string) string {
	return envval(fallback, func(s string) (string, error) {
		for _, a := range allowed {
			if strings.EqualFold(a, s) {
				return a, nil
			}
		}
		return "", errorsx.Errorf("'%s' is not one of %q", s, allowed)
	}, keys...)
}

func envval[T any](fallback T, parse func(string) (T, error), keys ...string) T {
	for _, k := range keys {
		s := strings.TrimSpace(os.Getenv(k))
		if s == "" {
			continue
		}

		decoded, err := parse(s)
		if err != nil {
			errorsx.Log(errorsx.Wrapf(err, "%s stored an invalid value", k))
			continue
		}

		return decoded
	}

	return fallback
}
