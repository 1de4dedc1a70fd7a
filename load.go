// SPDX-License-Identifier: EPL-2.0

package waveseek

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/ik5/waveseek/internal/logging"
)

// Load replaces the session's project with the container read from r. The
// project is unchanged when reading or decoding fails.
func (s *Session) Load(r io.Reader) error {
	buf, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading project: %w", err)
	}

	return s.Project.Load(buf)
}

// LoadFile loads a .wask project from disk.
func (s *Session) LoadFile(path string) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := s.Project.Load(buf); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}

	logging.Logger().Debug("loaded project",
		"path", path, "bytes", len(buf), "waveforms", s.Project.Len())

	return nil
}

// SaveFile writes the project to path, replacing any existing file.
func (s *Session) SaveFile(path string) error {
	var buf bytes.Buffer
	if _, err := s.Project.WriteTo(&buf); err != nil {
		return fmt.Errorf("encoding project: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%w", err)
	}

	logging.Logger().Debug("saved project", "path", path, "bytes", buf.Len())

	return nil
}

// LoadURL fetches a project over HTTP and loads it. A nil client uses
// http.DefaultClient. Decoding errors are returned unwrapped so callers can
// inspect the *riff.FormatError directly.
func (s *Session) LoadURL(ctx context.Context, client *http.Client, url string) error {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s", ErrHTTPStatus, resp.Status)
	}

	buf, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading %s: %w", url, err)
	}

	logging.Logger().Debug("fetched project", "url", url, "bytes", len(buf))

	return s.Project.Load(buf)
}
