package specs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const recordExt = ".json"

// LoadDir reads every <source>/<name>.json document under dir. Sources and
// files are visited in lexical order; other files and deeper directories are
// ignored. Well-formed records are always returned. Malformed ones are
// collected into the returned error (an errors.Join of *MalformedRecordError
// values) so the caller can decide whether they are fatal. I/O failures abort
// the load.
func LoadDir(ctx context.Context, dir string) ([]RawRecord, error) {
	sources, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dataset dir: %w", err)
	}
	sort.Slice(sources, func(i, j int) bool { return sources[i].Name() < sources[j].Name() })

	var records []RawRecord
	var malformed []error
	for _, source := range sources {
		if !source.IsDir() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		sourceDir := filepath.Join(dir, source.Name())
		files, err := os.ReadDir(sourceDir)
		if err != nil {
			return nil, fmt.Errorf("read source %s: %w", source.Name(), err)
		}
		sort.Slice(files, func(i, j int) bool { return files[i].Name() < files[j].Name() })
		for _, file := range files {
			name := file.Name()
			if file.IsDir() || !strings.HasSuffix(name, recordExt) {
				continue
			}
			path := filepath.Join(sourceDir, name)
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("read record %s: %w", path, err)
			}
			record, err := Parse(RecordID(source.Name(), name), data)
			if err != nil {
				var mre *MalformedRecordError
				if errors.As(err, &mre) {
					mre.Path = path
				}
				malformed = append(malformed, err)
				continue
			}
			records = append(records, record)
		}
	}
	return records, errors.Join(malformed...)
}

// RecordID builds the id of a record from its source directory and file name.
func RecordID(source, fileName string) string {
	return source + "//" + strings.TrimSuffix(fileName, recordExt)
}

// Malformed extracts the malformed-record errors from an error returned by
// LoadDir. It returns nil when err carries none.
func Malformed(err error) []*MalformedRecordError {
	if err == nil {
		return nil
	}
	var out []*MalformedRecordError
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, inner := range joined.Unwrap() {
			out = append(out, Malformed(inner)...)
		}
		return out
	}
	var mre *MalformedRecordError
	if errors.As(err, &mre) {
		out = append(out, mre)
	}
	return out
}
