package conda

import (
	"bytes"
	"fmt"
	"log"
	"os/exec"
	"strings"
)

// RunCommand executes an argv slice and logs its stdout and stderr.
// Output is always logged, even on failure, so external tool diagnostics
// end up in the run log.
func RunCommand(args []string) error {
	log.Printf("CMD: %s", strings.Join(args, " "))
	cmd := exec.Command(args[0], args[1:]...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	if s := strings.TrimSpace(stdout.String()); s != "" {
		log.Print(s)
	}
	if s := strings.TrimSpace(stderr.String()); s != "" {
		log.Printf("WARNING: %s", s)
	}
	if err != nil {
		return fmt.Errorf("%s failed: %w", args[0], err)
	}
	return nil
}
