package power

import (
	"fmt"
	"os/exec"
)

// Halt puts the board into its low-power halt state. Only a physical
// reset resumes; it returns an error only if the halt could not be
// entered at all.
func Halt() error {
	if err := exec.Command("sudo", "poweroff").Run(); err != nil {
		return fmt.Errorf("failed to enter low-power halt: %w", err)
	}
	return nil
}
