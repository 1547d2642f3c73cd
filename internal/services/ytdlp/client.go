// Package ytdlp drives the yt-dlp command line tool.
package ytdlp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/denisAlshanov/ytscribe/internal/utils"
)

const defaultPath = "yt-dlp"

// LineFunc receives each non-empty output line; stream is "stdout" or "stderr".
type LineFunc func(stream, line string)

type execFunc func(ctx context.Context, name string, args []string, onLine LineFunc) (stdout []byte, stderr []byte, err error)

type Client struct {
	// Path to the yt-dlp executable. Empty means a PATH lookup of "yt-dlp".
	Path string

	// ExtraArgs are placed before per-call args.
	ExtraArgs []string

	execFn execFunc
}

func New(path string) *Client {
	return &Client{Path: path}
}

func (c *Client) path() string {
	if strings.TrimSpace(c.Path) == "" {
		return defaultPath
	}
	return c.Path
}

// Available reports whether the executable can be found.
func (c *Client) Available() error {
	if _, err := exec.LookPath(c.path()); err != nil {
		return fmt.Errorf("%s not found: %w", c.path(), err)
	}
	return nil
}

// Version returns the trimmed output of `yt-dlp --version`.
func (c *Client) Version(ctx context.Context) (string, error) {
	stdout, _, err := c.run(ctx, []string{"--version"}, nil)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(stdout)), nil
}

func (c *Client) run(ctx context.Context, args []string, onLine LineFunc) ([]byte, []byte, error) {
	fullArgs := make([]string, 0, len(c.ExtraArgs)+len(args))
	fullArgs = append(fullArgs, c.ExtraArgs...)
	fullArgs = append(fullArgs, args...)

	run := c.execFn
	if run == nil {
		run = execCommand
	}

	utils.LogDebug(ctx, "Executing yt-dlp", utils.Fields{"cmd": c.path(), "args": fullArgs})
	stdout, stderr, err := run(ctx, c.path(), fullArgs, onLine)
	if err != nil {
		return stdout, stderr, newExecError(c.path(), fullArgs, stdout, stderr, err)
	}
	return stdout, stderr, nil
}

func execCommand(ctx context.Context, name string, args []string, onLine LineFunc) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &lineWriter{stream: "stdout", onLine: onLine, buffer: &outBuf}
	cmd.Stderr = &lineWriter{stream: "stderr", onLine: onLine, buffer: &errBuf}

	err := cmd.Run()
	return outBuf.Bytes(), errBuf.Bytes(), err
}

// lineWriter buffers output and hands complete lines to onLine. yt-dlp rewrites
// progress with \r, so both \r and \n end a line.
type lineWriter struct {
	stream  string
	onLine  LineFunc
	buffer  *bytes.Buffer
	pending []byte
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.buffer.Write(p)
	if w.onLine == nil {
		return len(p), nil
	}

	w.pending = append(w.pending, p...)
	for {
		idx := bytes.IndexAny(w.pending, "\r\n")
		if idx < 0 {
			break
		}
		line := strings.TrimSpace(string(w.pending[:idx]))
		w.pending = w.pending[idx+1:]
		if line != "" {
			w.onLine(w.stream, line)
		}
	}
	return len(p), nil
}

type ExecError struct {
	Cmd      string
	Args     []string
	ExitCode int
	Stdout   string
	Stderr   string
	Cause    error
}

func newExecError(cmd string, args []string, stdout, stderr []byte, cause error) *ExecError {
	e := &ExecError{
		Cmd:    cmd,
		Args:   args,
		Stdout: string(stdout),
		Stderr: string(stderr),
		Cause:  cause,
	}
	var exitErr *exec.ExitError
	if errors.As(cause, &exitErr) {
		e.ExitCode = exitErr.ExitCode()
	}
	return e
}

// Error reports yt-dlp's own last error line when there is one.
func (e *ExecError) Error() string {
	if msg := lastErrorLine(e.Stderr); msg != "" {
		return msg
	}
	if e.ExitCode != 0 {
		return fmt.Sprintf("ytdlp: %s exited with code %d", e.Cmd, e.ExitCode)
	}
	return fmt.Sprintf("ytdlp: %s failed: %v", e.Cmd, e.Cause)
}

func (e *ExecError) Unwrap() error { return e.Cause }

func lastErrorLine(stderr string) string {
	lines := strings.Split(strings.ReplaceAll(stderr, "\r", "\n"), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if strings.HasPrefix(line, "ERROR:") {
			return line
		}
	}
	return ""
}
