/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package ghcli

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"
)

// Runner executes a gh invocation and returns its stdout. A non-nil stdin is
// fed to the process, which gh reads when an argument is "-".
type Runner interface {
	Run(ctx context.Context, stdin []byte, args ...string) ([]byte, error)
}

// RunError is a failed gh invocation. Stderr carries whatever gh printed,
// which is where GitHub's actual error message ends up.
type RunError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *RunError) Error() string {
	var sb strings.Builder
	sb.WriteString("gh ")
	sb.WriteString(strings.Join(e.Args, " "))
	sb.WriteString(": ")
	sb.WriteString(e.Err.Error())
	if s := strings.TrimSpace(e.Stderr); s != "" {
		sb.WriteString(": ")
		sb.WriteString(s)
	}
	return sb.String()
}

func (e *RunError) Unwrap() error { return e.Err }

type execRunner struct {
	binary string
}

// NewRunner returns a Runner that executes the gh binary from PATH.
func NewRunner() Runner { return execRunner{binary: "gh"} }

// NewRunnerForBinary returns a Runner that executes the given gh binary.
// An empty path means "gh" from PATH.
func NewRunnerForBinary(binary string) Runner {
	if binary == "" {
		binary = "gh"
	}
	return execRunner{binary: binary}
}

func (r execRunner) Run(ctx context.Context, stdin []byte, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, r.binary, args...)
	// On cancellation the context kills gh; WaitDelay then bounds how long
	// we wait for anything gh spawned that is still holding the pipes.
	cmd.WaitDelay = 5 * time.Second
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}

	out, err := cmd.Output()
	if err != nil {
		runErr := &RunError{Args: args, Err: err}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			runErr.Stderr = string(exitErr.Stderr)
		}
		return nil, runErr
	}
	return out, nil
}
