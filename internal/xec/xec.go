package xec

import "os/exec"

// ExitError is returned from Wait or Run
// when the command exits with a non-zero exit code.
type ExitError = exec.ExitError
