package lookup

import (
	"errors"
	"fmt"
)

//ConfigError represents an invalid lookup definition
type ConfigError struct {
	Message string
}

//Error returns the error message
func (e *ConfigError) Error() string {
	return e.Message
}

//NewConfigError creates a config error
func NewConfigError(format string, args ...interface{}) *ConfigError {
	return &ConfigError{Message: fmt.Sprintf(format, args...)}
}

//IsConfigError returns true if err is a lookup definition error
func IsConfigError(err error) bool {
	var configError *ConfigError
	return errors.As(err, &configError)
}
