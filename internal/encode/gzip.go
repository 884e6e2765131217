package encode

import (
	"bytes"
	"fmt"

	"github.com/klauspost/pgzip"
)

// Gzip compresses an artifact payload with parallel gzip. Used for the
// text artifacts (CSV, NDJSON) when compressed uploads are requested;
// Parquet is already compressed internally.
func Gzip(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := pgzip.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("compressing payload: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("closing gzip writer: %w", err)
	}
	return buf.Bytes(), nil
}
