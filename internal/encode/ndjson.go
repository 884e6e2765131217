package encode

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/treadway/healthgen/internal/synth"
)

// VisitsNDJSON serializes visits as newline-delimited JSON: one compact
// object per line, exactly one newline between lines, no trailing newline.
func VisitsNDJSON(visits []synth.Visit) ([]byte, error) {
	var buf bytes.Buffer
	for i, v := range visits {
		line, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("marshaling visit %d: %w", i, err)
		}
		if bytes.ContainsRune(line, '\n') {
			return nil, fmt.Errorf("visit %d serializes with an embedded newline", i)
		}
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.Write(line)
	}
	return buf.Bytes(), nil
}
