package forms

import (
	"fmt"
	"strings"
)

// Checkbox is a boolean form field. Bound as *Checkbox, a nil value means
// the key was not submitted at all, which browsers do for unticked boxes.
type Checkbox bool

// UnmarshalParam implements binding.BindUnmarshaler.
func (c *Checkbox) UnmarshalParam(param string) error {
	switch strings.ToLower(strings.TrimSpace(param)) {
	case "y", "yes", "on", "true", "1":
		*c = true
	case "", "n", "no", "off", "false", "0":
		*c = false
	default:
		return fmt.Errorf("invalid checkbox value %q", param)
	}
	return nil
}

// Checked reports whether the box was submitted and ticked.
func (c *Checkbox) Checked() bool {
	return c != nil && bool(*c)
}
