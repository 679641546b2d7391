package render

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/JonMunkholm/TireFlyer/internal/core"
	"github.com/a-h/templ"
)

// WriteFile renders c and replaces path with the result. The page is
// rendered fully into memory first and moved into place with a rename, so
// a failed build leaves any previous page untouched and never writes a
// partial one. Returns the number of bytes written.
func WriteFile(ctx context.Context, path string, c templ.Component) (int, error) {
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return 0, fmt.Errorf("%w: render: %w", core.ErrOutput, err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return 0, fmt.Errorf("%w: create temp file: %w", core.ErrOutput, err)
	}
	tmpName := tmp.Name()

	// Removing after a successful rename fails harmlessly with ErrNotExist.
	defer os.Remove(tmpName)

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return 0, fmt.Errorf("%w: write %s: %w", core.ErrOutput, tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return 0, fmt.Errorf("%w: sync %s: %w", core.ErrOutput, tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("%w: close %s: %w", core.ErrOutput, tmpName, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return 0, fmt.Errorf("%w: chmod %s: %w", core.ErrOutput, tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return 0, fmt.Errorf("%w: rename to %s: %w", core.ErrOutput, path, err)
	}

	return buf.Len(), nil
}
