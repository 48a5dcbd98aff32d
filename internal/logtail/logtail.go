package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ConfirmedMessage is the log message recorded for an accepted value.
const ConfirmedMessage = "confirmed"

// Entry is one decoded confirmed-value record.
type Entry struct {
	Time    string `json:"ts"`
	Message string `json:"msg"`
	Style   string `json:"style"`
	Value   string `json:"value"`
}

// ReadMatching returns at most maxLines from the end of the file at path,
// counting only lines for which keep returns true. A nil keep keeps all.
func ReadMatching(path string, maxLines int, keep func(string) bool) ([]string, error) {
	if maxLines <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	ring := make([]string, maxLines)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count := 0
	idx := 0
	for scanner.Scan() {
		line := scanner.Text()
		if keep != nil && !keep(line) {
			continue
		}
		ring[idx] = line
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Confirmed returns the last n confirmed values recorded in the log at
// path, oldest first.
func Confirmed(path string, n int) ([]Entry, error) {
	marker := fmt.Sprintf(`"msg":%q`, ConfirmedMessage)
	lines, err := ReadMatching(path, n, func(line string) bool {
		return strings.Contains(line, marker)
	})
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		var e Entry
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			continue
		}
		if e.Message != ConfirmedMessage {
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}
