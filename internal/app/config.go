package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// envLoader supplies flag defaults from the environment. Values that fail to
// parse are collected so startup can refuse them instead of running with the
// fallback.
type envLoader struct {
	errs []error
}

func (e *envLoader) String(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}

	return fallback
}

func (e *envLoader) Int(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("env %s: %q is not an integer", key, v))
		return fallback
	}

	return n
}

func (e *envLoader) Duration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("env %s: %q is not a duration", key, v))
		return fallback
	}

	return d
}

func (e *envLoader) Err() error {
	return errors.Join(e.errs...)
}
