package file

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"vocabdrill/internal/domain"
)

// fieldSeparator splits the two sides of a pair on one line
const fieldSeparator = ";"

// encodingFixes maps known mis-decoded byte sequences back to plain text.
// "â€™" is a UTF-8 right single quote read as Windows-1252.
var encodingFixes = strings.NewReplacer("â€™", "'")

// MalformedInputError reports a line that does not split into exactly two fields
type MalformedInputError struct {
	Path   string
	Line   int
	Fields []string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("%s: error on line %d: expected 2 fields, got %d (%q)",
		e.Path, e.Line, len(e.Fields), e.Fields)
}

// Is makes errors.Is(err, domain.ErrMalformedInput) match
func (e *MalformedInputError) Is(target error) bool {
	return target == domain.ErrMalformedInput
}

// normalizeField trims a field and repairs encoding artifacts
func normalizeField(field string) string {
	return encodingFixes.Replace(strings.TrimSpace(field))
}

// ParsePairs decodes pair lines from r. path is only used in error messages.
func ParsePairs(r io.Reader, path string) ([]domain.WordPair, error) {
	var pairs []domain.WordPair

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		fields := strings.Split(scanner.Text(), fieldSeparator)
		for i := range fields {
			fields[i] = normalizeField(fields[i])
		}
		if len(fields) != 2 {
			return nil, &MalformedInputError{Path: path, Line: line, Fields: fields}
		}
		pairs = append(pairs, domain.NewWordPair(fields[0], fields[1]))
		line++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return pairs, nil
}

// ReadPairs loads a pair file. A missing file yields no pairs and no error.
func ReadPairs(path string) ([]domain.WordPair, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return ParsePairs(f, path)
}

// EncodePairs writes one "a;b" line per pair
func EncodePairs(w io.Writer, pairs []domain.WordPair) error {
	bw := bufio.NewWriter(w)
	for _, p := range pairs {
		if _, err := bw.WriteString(p.String() + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WritePairs replaces the file at path with pairs. The content goes to a
// temporary file in the same directory first and is renamed into place, so
// an interrupted write never leaves a partial file behind.
func WritePairs(path string, pairs []domain.WordPair) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := EncodePairs(tmp, pairs); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("failed to set mode on %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	return nil
}
