// Package errors provides sentinel errors and custom error types for the downstack application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrNoStartBranch indicates that no start branch could be determined
	ErrNoStartBranch = errors.New("no start branch")

	// ErrNotOnBranch indicates that HEAD is not on a branch
	ErrNotOnBranch = errors.New("not on a branch")

	// ErrBranchNotFound indicates that a branch does not exist
	ErrBranchNotFound = errors.New("branch not found")

	// ErrHistoryUnreadable indicates that a branch's history log could not be read
	ErrHistoryUnreadable = errors.New("history unreadable")

	// ErrCycleDetected indicates that the lineage walk encountered a cycle
	ErrCycleDetected = errors.New("cycle detected")
)

// ConfigurationError represents a fatal error in how the command was invoked:
// no start branch was supplied and none could be determined from the repository.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "no start branch supplied and none could be determined"
}

// Is returns true if the target error is ErrNoStartBranch
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrNoStartBranch
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) *ConfigurationError {
	return &ConfigurationError{Message: message}
}

// BranchNotFoundError represents an error when a branch is not found
type BranchNotFoundError struct {
	BranchName string
}

func (e *BranchNotFoundError) Error() string {
	return fmt.Sprintf("branch %s does not exist", e.BranchName)
}

// Is returns true if the target error is ErrBranchNotFound
func (e *BranchNotFoundError) Is(target error) bool {
	return target == ErrBranchNotFound
}

// NewBranchNotFoundError creates a new BranchNotFoundError
func NewBranchNotFoundError(branchName string) *BranchNotFoundError {
	return &BranchNotFoundError{BranchName: branchName}
}

// HistoryReadError represents a failure to read a branch's creation history.
// Callers recover from it locally by treating the branch as unresolved.
type HistoryReadError struct {
	BranchName string
	Err        error
}

func (e *HistoryReadError) Error() string {
	return fmt.Sprintf("failed to read history of branch %s: %v", e.BranchName, e.Err)
}

func (e *HistoryReadError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrHistoryUnreadable
func (e *HistoryReadError) Is(target error) bool {
	return target == ErrHistoryUnreadable
}

// NewHistoryReadError creates a new HistoryReadError
func NewHistoryReadError(branchName string, err error) *HistoryReadError {
	return &HistoryReadError{BranchName: branchName, Err: err}
}

// CycleDetectedError represents a cycle encountered while walking the
// children map. The parent map is acyclic by construction, so this only
// fires on a corrupted or externally mutated repository.
type CycleDetectedError struct {
	BranchName string
	Path       []string
}

func (e *CycleDetectedError) Error() string {
	if len(e.Path) > 0 {
		return fmt.Sprintf("cycle detected at branch %s (walk: %s)", e.BranchName, strings.Join(e.Path, " -> "))
	}
	return fmt.Sprintf("cycle detected at branch %s", e.BranchName)
}

// Is returns true if the target error is ErrCycleDetected
func (e *CycleDetectedError) Is(target error) bool {
	return target == ErrCycleDetected
}

// NewCycleDetectedError creates a new CycleDetectedError
func NewCycleDetectedError(branchName string, path []string) *CycleDetectedError {
	return &CycleDetectedError{BranchName: branchName, Path: path}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
