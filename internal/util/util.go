// Package util holds small encoding and formatting helpers shared by use cases.
package util

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// NamedFile is one entry of a zip archive.
type NamedFile struct {
	Name string
	Data []byte
}

// EncodeCSV writes a header line and rows as RFC 4180 CSV. Fields holding
// commas, quotes or line breaks are quoted with inner quotes doubled.
func EncodeCSV(header []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(header); err != nil {
		return nil, errors.Wrap(err, "failed to write csv header")
	}
	if err := writer.WriteAll(rows); err != nil {
		return nil, errors.Wrap(err, "failed to write csv rows")
	}

	return buf.Bytes(), nil
}

// ZipFiles bundles files into an in-memory zip archive, in the given order.
func ZipFiles(files []NamedFile) ([]byte, error) {
	var buf bytes.Buffer
	archive := zip.NewWriter(&buf)

	for _, file := range files {
		entry, err := archive.CreateHeader(&zip.FileHeader{
			Name:     file.Name,
			Method:   zip.Deflate,
			Modified: time.Now().UTC(),
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to add %s to archive", file.Name)
		}
		if _, err := entry.Write(file.Data); err != nil {
			return nil, errors.Wrapf(err, "failed to write %s to archive", file.Name)
		}
	}

	if err := archive.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to finalize archive")
	}

	return buf.Bytes(), nil
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
