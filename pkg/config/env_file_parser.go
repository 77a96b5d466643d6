// Package config provides parsers for the server's configuration file
// formats, plugged into the ff flag parser.
package config

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// EnvFileParser is an ff parser for .env-style config files. Lines are
// NAME=value pairs; blank lines and #-comments are skipped. Names are
// normalized the same way ff treats environment variables: an optional
// PREFIX_ is stripped and the remainder is lowercased with underscores
// mapped to dashes, so AWS_ARN_READ_TIMEOUT=5s sets the read-timeout
// flag.
func EnvFileParser(prefix string) func(r io.Reader, set func(name, value string) error) error {
	return func(r io.Reader, set func(name, value string) error) error {
		s := bufio.NewScanner(r)
		for s.Scan() {
			line := strings.TrimSpace(s.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}

			name, value, ok := strings.Cut(line, "=")
			if !ok {
				return errors.Errorf("malformed line %q: expected NAME=value", line)
			}
			value = strings.TrimSpace(value)

			// strip trailing comments
			if i := strings.Index(value, " #"); i >= 0 {
				value = strings.TrimSpace(value[:i])
			}

			name = strings.TrimSpace(name)
			if prefix != "" {
				name = strings.TrimPrefix(name, prefix+"_")
			}
			name = strings.ToLower(name)
			name = strings.ReplaceAll(name, "_", "-")

			if err := set(name, value); err != nil {
				return err
			}
		}
		return s.Err()
	}
}
