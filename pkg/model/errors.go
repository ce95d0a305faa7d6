package model

import "fmt"

// FormatError reports a malformed "HH:MM" time
type FormatError struct {
	Input  string
	Reason string
}

func (err *FormatError) Error() string {
	return fmt.Sprintf("invalid time %q: %v", err.Input, err.Reason)
}

// ConfigError reports a scheduling configuration that cannot be run at all
type ConfigError struct {
	Field  string
	Reason string
}

func (err *ConfigError) Error() string {
	return fmt.Sprintf("invalid scheduling configuration: %v %v", err.Field, err.Reason)
}

// DataIntegrityError reports a team that references a professor missing from the roster
type DataIntegrityError struct {
	Team      uint64
	Professor string
}

func (err *DataIntegrityError) Error() string {
	return fmt.Sprintf("team %d references unknown professor \"%v\"", err.Team, err.Professor)
}
