package instantsearch

import (
	"errors"
	"fmt"
)

// ErrMissingContainer reports a widget configured without a container.
// Widget factories wrap it into a ConfigurationError carrying their usage
// synopsis.
var ErrMissingContainer = errors.New("instantsearch: container option is required")

// ConfigurationError reports a missing or invalid required option at widget
// construction time. It always carries the widget's usage synopsis so the
// message alone is enough to fix the call site. No partial widget is ever
// returned alongside one.
type ConfigurationError struct {
	Widget string
	Reason string
	Usage  string
}

// NewConfigurationError builds a configuration error for a widget.
func NewConfigurationError(widget, reason, usage string) *ConfigurationError {
	return &ConfigurationError{Widget: widget, Reason: reason, Usage: usage}
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("instantsearch: %s: %s\n\nUsage:\n%s", e.Widget, e.Reason, e.Usage)
}

// ContainerNotFoundError reports a container selector that matched no
// element in the document.
type ContainerNotFoundError struct {
	Selector string
}

func (e *ContainerNotFoundError) Error() string {
	return fmt.Sprintf("instantsearch: container not found for selector %q", e.Selector)
}

// UnsupportedContainerError reports a container element kind a widget cannot
// mount into. Hint names the lower-level integration point to use instead.
type UnsupportedContainerError struct {
	Tag  string
	Hint string
}

func (e *UnsupportedContainerError) Error() string {
	msg := fmt.Sprintf("instantsearch: unsupported container element <%s>", e.Tag)
	if e.Hint != "" {
		msg += ": " + e.Hint
	}
	return msg
}

// IsConfigurationError checks if err is a ConfigurationError.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

// IsContainerNotFound checks if err is a ContainerNotFoundError.
func IsContainerNotFound(err error) bool {
	var ce *ContainerNotFoundError
	return errors.As(err, &ce)
}

// IsUnsupportedContainer checks if err is an UnsupportedContainerError.
func IsUnsupportedContainer(err error) bool {
	var ce *UnsupportedContainerError
	return errors.As(err, &ce)
}
