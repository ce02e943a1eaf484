package itemdialog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"ticks/internal/core/model"
)

const (
	MinTimeoutSeconds = 1
	MaxTimeoutSeconds = 24 * 60 * 60
)

var (
	ErrEmptyName      = errors.New("name is required")
	ErrInvalidTimeout = errors.New("timeout must be a whole number of seconds")
)

// Fields holds the raw text of the dialog entries.
type Fields struct {
	Name    string
	Type    string
	Action  string
	Timeout string
}

// FieldsOf pre-fills the dialog from item.
func FieldsOf(item model.Item) Fields {
	return Fields{
		Name:    item.Name(),
		Type:    item.Type(),
		Action:  item.Action(),
		Timeout: strconv.Itoa(clampSeconds(item.TimeoutSeconds())),
	}
}

// Apply builds the edited copy of original. Timeout is clamped into
// [MinTimeoutSeconds, MaxTimeoutSeconds].
func (fields Fields) Apply(original model.Item) (model.Item, error) {
	name := strings.TrimSpace(fields.Name)
	if name == "" {
		return original, ErrEmptyName
	}
	seconds, err := strconv.Atoi(strings.TrimSpace(fields.Timeout))
	if err != nil {
		return original, fmt.Errorf("%w: %q", ErrInvalidTimeout, fields.Timeout)
	}

	return original.
		WithName(name).
		WithType(strings.TrimSpace(fields.Type)).
		WithAction(strings.TrimSpace(fields.Action)).
		WithTimeout(time.Duration(clampSeconds(seconds)) * time.Second), nil
}

func clampSeconds(seconds int) int {
	return min(max(seconds, MinTimeoutSeconds), MaxTimeoutSeconds)
}
