package converter

import (
	"fmt"

	"github.com/jsvensson/themeswap/internal/vscode"
)

// FieldError attributes a color parse failure to the source key and the
// target slot it was being mapped to.
type FieldError struct {
	Slot  string
	Field vscode.Field
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s (for %s): %v", e.Field.Name(), e.Slot, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// RuleError attributes a failure to one entry of tokenColors.
type RuleError struct {
	Index int
	Name  string
	Err   error
}

func (e *RuleError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("tokenColors[%d] (%s): %v", e.Index, e.Name, e.Err)
	}
	return fmt.Sprintf("tokenColors[%d]: %v", e.Index, e.Err)
}

func (e *RuleError) Unwrap() error {
	return e.Err
}
