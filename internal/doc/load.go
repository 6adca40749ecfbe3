package doc

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
)

// Load reads the file at path into a Document, one row per line with
// trailing '\n' and '\r' bytes stripped. Empty lines are valid rows.
// UTF-16 files are transcoded up front so the rest of the viewer only
// ever sees UTF-8.
func Load(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}

	content, err = normalizeContent(content)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	d := &Document{}
	r := bufio.NewReader(bytes.NewReader(content))
	for {
		line, err := r.ReadBytes('\n')
		if len(line) > 0 {
			d.Append(trimLineEnding(line))
		}
		if err != nil {
			break
		}
	}
	return d, nil
}

func trimLineEnding(line []byte) []byte {
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return line
}
