package singleton

import (
	"errors"
	"strings"
)

var ErrEmptyValue = errors.New("singleton: value must not be empty")

// Instance is the process-wide shared value.
type Instance struct {
	value string
}

// Value returns the payload supplied by the call that constructed the instance.
func (i *Instance) Value() string {
	return i.value
}

var instance Lazy[Instance]

// GetInstance returns the shared Instance. value is only used if this call
// performs the construction; every later call gets the original instance back
// and its value is ignored.
func GetInstance(value string) (*Instance, error) {
	return instance.Get(func() (*Instance, error) {
		return newInstance(value)
	})
}

// Initialized reports whether GetInstance has already constructed the instance.
func Initialized() bool {
	return instance.Loaded()
}

func newInstance(value string) (*Instance, error) {
	if strings.TrimSpace(value) == "" {
		return nil, ErrEmptyValue
	}
	return &Instance{value: value}, nil
}
