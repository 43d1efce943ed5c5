package adapter

import (
	"bufio"
	"strings"
)

// doneSentinel terminates any SSE stream.
const doneSentinel = "[DONE]"

// sseDataLines walks an SSE transcript and yields the payload of every
// `data:` line up to the [DONE] sentinel. Event-name lines, comments, and
// blank separators are ignored. The callback returns false to stop early.
func sseDataLines(sse string, fn func(data string) bool) {
	scanner := bufio.NewScanner(strings.NewReader(sse))
	// SSE data lines can carry whole JSON response chunks; allow up to 1 MiB.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if data == "" {
			continue
		}
		if data == doneSentinel {
			return
		}
		if !fn(data) {
			return
		}
	}
}
