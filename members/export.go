package members

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// WriteCSV writes members as CSV: a header row with the column names, then
// one row per member. Consents are written as 1 or 0.
func WriteCSV(w io.Writer, list []Member) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns[:]); err != nil {
		return err
	}
	for _, m := range list {
		if err := cw.Write(m.record()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportCSV writes the whole register as CSV, most recent registration first.
func (s *Store) ExportCSV(ctx context.Context, w io.Writer) error {
	list, err := s.List(ctx)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	tracer().Infof("exporting %d members", len(list))
	return WriteCSV(w, list)
}

// ExportFilename is the file name offered for an export taken at t.
func ExportFilename(t time.Time) string {
	return "members_" + t.UTC().Format("2006-01-02") + ".csv"
}

// BackupFilename is the file name of a backup taken at t.
func BackupFilename(t time.Time) string {
	return "members_backup_" + t.UTC().Format("20060102T150405Z") + ".csv"
}

// Backup exports the register into a new file in dir and returns its path.
func (s *Store) Backup(ctx context.Context, dir string) (string, error) {
	var buf bytes.Buffer
	if err := s.ExportCSV(ctx, &buf); err != nil {
		return "", err
	}
	path := filepath.Join(dir, BackupFilename(s.now()))
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return "", fmt.Errorf("backup: %w", err)
	}
	tracer().Infof("member register backed up to %s", path)
	return path, nil
}
