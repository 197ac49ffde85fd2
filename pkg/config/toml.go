package config

import (
	"time"

	"github.com/pkg/errors"
)

type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	res, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}

	*d = Duration{res}
	return nil
}

// StringSlice is a toml extension that lets you to specify either a string
// value (a slice with just one element) or a string slice.
type StringSlice []string

func (s *StringSlice) UnmarshalTOML(value interface{}) error {
	switch v := value.(type) {
	case string:
		*s = []string{v}
		return nil
	case []interface{}:
		slice := make([]string, 0, len(v))
		for _, item := range v {
			str, ok := item.(string)
			if !ok {
				return errors.Errorf("unexpected %T in string slice", item)
			}
			slice = append(slice, str)
		}
		*s = slice
		return nil
	default:
		return errors.New("failed to decode string (slice) field")
	}
}
