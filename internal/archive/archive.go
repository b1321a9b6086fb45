// Package archive lays out saved NAVPS reports on disk.
package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/navps-cli/internal/navps"
)

// Supported output formats.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// Path returns <dir>/<YYYY>/<MM>-<Month>/mf-navps-report-<YYYY-MM-DD>.<format>.
func Path(dir string, date time.Time, format string) string {
	return filepath.Join(
		dir,
		date.Format("2006"),
		date.Format("01-January"),
		fmt.Sprintf("mf-navps-report-%s.%s", date.Format("2006-01-02"), format),
	)
}

// Save writes the report under dir and returns the file path.
func Save(dir string, rep *navps.Report, format string) (string, error) {
	if format == "" {
		format = FormatCSV
	}
	if format != FormatCSV && format != FormatXLSX {
		return "", eris.Errorf("archive: unsupported format %q", format)
	}

	path := Path(dir, rep.Date, format)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", eris.Wrap(err, "archive: create directory")
	}

	f, err := os.Create(path)
	if err != nil {
		return "", eris.Wrap(err, "archive: create file")
	}

	switch format {
	case FormatXLSX:
		err = rep.WriteXLSX(f)
	default:
		err = rep.WriteCSV(f)
	}
	if err != nil {
		_ = f.Close()
		return "", eris.Wrapf(err, "archive: write %s", path)
	}
	if err := f.Close(); err != nil {
		return "", eris.Wrap(err, "archive: close file")
	}
	return path, nil
}
