package eventlog

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// maxLineBytes bounds a single record; command lines can get long.
const maxLineBytes = 1 << 20

// Read loads every parseable event from the log at path, in file order.
// Lines that fail to decode — corrupt, truncated, over-long, or still being
// written by a concurrent agent — are skipped, never a fatal error. A
// missing file surfaces as an error wrapping fs.ErrNotExist so callers can
// report it and proceed with an empty log.
func Read(path string) ([]Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("eventlog: open %s: %w", path, err)
	}
	defer f.Close()

	var events []Event
	r := bufio.NewReaderSize(f, maxLineBytes)
	for {
		line, err := r.ReadSlice('\n')

		if errors.Is(err, bufio.ErrBufferFull) {
			// Line exceeds the record bound: discard up to its newline and
			// skip it like any other malformed record.
			for errors.Is(err, bufio.ErrBufferFull) {
				_, err = r.ReadSlice('\n')
			}
			line = nil
		}

		if e, ok := decodeLine(line); ok {
			events = append(events, e)
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return events, nil
			}
			return events, fmt.Errorf("eventlog: read %s: %w", path, err)
		}
	}
}

// decodeLine parses one log line, tolerating a missing trailing newline
// (a record whose newline has not landed yet decodes only if complete).
func decodeLine(line []byte) (Event, bool) {
	line = bytes.TrimSuffix(line, []byte{'\n'})
	if len(line) == 0 {
		return Event{}, false
	}
	var e Event
	if json.Unmarshal(line, &e) != nil {
		return Event{}, false
	}
	return e, true
}
