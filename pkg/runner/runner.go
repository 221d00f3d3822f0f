// Package runner executes confirmed catalog entries.
package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/jaspreet-dot-casa/sysup/pkg/catalog"
	"github.com/jaspreet-dot-casa/sysup/pkg/sysinfo"
)

// Runner spawns one process per confirmed entry using the configured shell.
type Runner struct {
	// Shell is the interpreter the script is passed to (e.g. "sh").
	Shell string

	// LogDir receives one log file per run.
	LogDir string

	// System is the probed host descriptor, exported to scripts through
	// the environment so they can branch on the package manager.
	System *sysinfo.System

	// Output receives the combined stdout/stderr of each run. Defaults to
	// os.Stdout.
	Output io.Writer

	logger *log.Logger
}

// New creates a runner for the given shell, log directory and system.
func New(shell, logDir string, sys *sysinfo.System) *Runner {
	return &Runner{
		Shell:  shell,
		LogDir: logDir,
		System: sys,
		Output: os.Stdout,
		logger: log.NewWithOptions(os.Stderr, log.Options{Prefix: "runner"}),
	}
}

// Result describes a completed run.
type Result struct {
	// RunID uniquely identifies the run and its log file.
	RunID string

	// ExitCode is the script's exit status; 0 on success.
	ExitCode int
}

// Run materializes the entry's embedded script and executes it. The
// script's combined output is streamed to r.Output and duplicated to a
// per-run log file. A non-zero exit status is reported in the Result, not
// as an error; errors are reserved for failures to start the run at all.
func (r *Runner) Run(ctx context.Context, entry catalog.Entry) (*Result, error) {
	source, err := entry.Source()
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()

	if err := os.MkdirAll(r.LogDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory %s: %w", r.LogDir, err)
	}
	logPath := filepath.Join(r.LogDir, runID+".log")
	logFile, err := os.Create(logPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create run log %s: %w", logPath, err)
	}
	defer logFile.Close()

	scriptPath, cleanup, err := r.materialize(entry, source)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	out := r.Output
	if out == nil {
		out = os.Stdout
	}
	sink := io.MultiWriter(out, logFile)

	cmd := exec.CommandContext(ctx, r.Shell, scriptPath)
	cmd.Stdout = sink
	cmd.Stderr = sink
	cmd.Env = r.environment()

	r.logger.Info("running", "entry", entry.Name, "run_id", runID, "log", logPath)

	result := &Result{RunID: runID}
	if err := cmd.Run(); err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			return nil, fmt.Errorf("failed to run %s: %w", entry.Name, err)
		}
		result.ExitCode = exitErr.ExitCode()
		r.logger.Warn("finished with failure", "entry", entry.Name, "exit_code", result.ExitCode)
		return result, nil
	}

	r.logger.Info("finished", "entry", entry.Name)
	return result, nil
}

// materialize writes the embedded script to a temp file so the shell can
// execute it, returning the path and a cleanup func.
func (r *Runner) materialize(entry catalog.Entry, source []byte) (string, func(), error) {
	tmp, err := os.CreateTemp("", "sysup-*.sh")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temp script for %s: %w", entry.Name, err)
	}

	if _, err := tmp.Write(source); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", nil, fmt.Errorf("failed to write temp script for %s: %w", entry.Name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", nil, fmt.Errorf("failed to write temp script for %s: %w", entry.Name, err)
	}

	return tmp.Name(), func() { os.Remove(tmp.Name()) }, nil
}

// environment extends the process environment with the probed system
// identity, which manager-dependent scripts branch on.
func (r *Runner) environment() []string {
	env := os.Environ()
	env = append(env, "SYSUP_DISTRO="+r.System.ID)
	if r.System.PackageManager != nil {
		env = append(env, "SYSUP_PKG_MANAGER="+r.System.PackageManager.Name())
	}
	return env
}
