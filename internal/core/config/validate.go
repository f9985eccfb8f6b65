package config

import (
	"fmt"
	"strings"

	"github.com/hay-kot/criterio"
)

// Validate checks structural configuration constraints.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("console.sender", c.Console.Sender, validHandle),
	)
}

// validHandle ensures a sender handle is usable as a bare chat handle.
func validHandle(handle string) error {
	if strings.TrimSpace(handle) == "" {
		return fmt.Errorf("handle is required")
	}
	if strings.HasPrefix(handle, "@") {
		return fmt.Errorf("handle must not include the leading @")
	}
	if strings.ContainsAny(handle, " \t|") {
		return fmt.Errorf("handle must not contain whitespace or |")
	}
	return nil
}
