package config

import "fmt"

// MissingKeyError is returned when a required key is absent from the config.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("key %q not in config file", e.Key)
}

// PathInvalidError is returned when a configured input path is not a file.
type PathInvalidError struct {
	Key  string
	Path string
}

func (e *PathInvalidError) Error() string {
	return fmt.Sprintf("%s is not a valid path (%s)", e.Path, e.Key)
}

// JSONDecodeError wraps a failure to decode the config file.
type JSONDecodeError struct {
	Path string
	Err  error
}

func (e *JSONDecodeError) Error() string {
	return fmt.Sprintf("could not decode JSON file %q: %v", e.Path, e.Err)
}

func (e *JSONDecodeError) Unwrap() error {
	return e.Err
}

// InvalidValueError is returned when a key holds a value of the wrong type.
type InvalidValueError struct {
	Key    string
	Reason string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("key %q: %s", e.Key, e.Reason)
}
