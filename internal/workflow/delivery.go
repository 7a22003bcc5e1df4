// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package workflow

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Delivery hands a finished bundle to its destination: an HTTP response,
// a file on disk, or a test sink. Implementations must consume the reader
// fully before returning.
type Delivery interface {
	Deliver(filename string, r io.Reader) error
}

// DirDelivery writes bundles into a directory, used by CLI tooling and
// local development. Filenames are sanitized to their base name so a
// hostile Content-Disposition cannot escape the directory.
type DirDelivery struct {
	Dir string
}

// Deliver implements Delivery.
func (d *DirDelivery) Deliver(filename string, r io.Reader) error {
	name := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		return fmt.Errorf("deliver: unusable filename %q", filename)
	}

	f, err := os.Create(filepath.Join(d.Dir, name))
	if err != nil {
		return fmt.Errorf("deliver %s: %w", name, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return fmt.Errorf("deliver %s: %w", name, err)
	}
	return f.Close()
}
