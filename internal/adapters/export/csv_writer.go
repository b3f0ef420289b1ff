package export

import (
	"encoding/csv"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"eventlineup/internal/clock"
	"eventlineup/internal/domain"

	"golang.org/x/crypto/blake2b"
)

const timestampLayout = "2006-01-02_15-04-05"

type csvWriter struct {
	dir     string
	baseURL string
	clock   clock.Clock
}

// NewCSVWriter returns an ExportWriter that writes <dataset>_<timestamp>.csv files into dir
// and reports them under baseURL.
func NewCSVWriter(dir, baseURL string, clk clock.Clock) domain.ExportWriter {
	return &csvWriter{dir: dir, baseURL: baseURL, clock: clk}
}

// Write stores ds as CSV. A dataset without rows produces an empty file with no header.
func (w *csvWriter) Write(ds domain.Dataset) (domain.ExportArtifact, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return domain.ExportArtifact{}, fmt.Errorf("create export dir: %w", err)
	}

	name := fmt.Sprintf("%s_%s.csv", ds.Name, w.clock.Now().Format(timestampLayout))
	path := filepath.Join(w.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return domain.ExportArtifact{}, fmt.Errorf("create export file: %w", err)
	}

	hash, err := blake2b.New256(nil)
	if err != nil {
		_ = f.Close()
		return domain.ExportArtifact{}, err
	}
	if err := encode(io.MultiWriter(f, hash), ds); err != nil {
		_ = f.Close()
		return domain.ExportArtifact{}, fmt.Errorf("write export file: %w", err)
	}
	if err := f.Close(); err != nil {
		return domain.ExportArtifact{}, fmt.Errorf("close export file: %w", err)
	}

	return domain.ExportArtifact{
		Path:     path,
		URL:      strings.TrimRight(w.baseURL, "/") + "/" + name,
		Checksum: hex.EncodeToString(hash.Sum(nil)),
		Rows:     len(ds.Rows),
	}, nil
}

func encode(out io.Writer, ds domain.Dataset) error {
	if len(ds.Rows) == 0 {
		return nil
	}
	for i, row := range ds.Rows {
		if len(row) != len(ds.Columns) {
			return fmt.Errorf("row %d has %d cells, want %d", i, len(row), len(ds.Columns))
		}
	}
	cw := csv.NewWriter(out)
	if err := cw.Write(ds.Columns); err != nil {
		return err
	}
	return cw.WriteAll(ds.Rows)
}
