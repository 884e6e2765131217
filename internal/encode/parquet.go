package encode

import (
	"bytes"
	"fmt"

	"github.com/parquet-go/parquet-go"
	"github.com/treadway/healthgen/internal/synth"
)

// ClaimsParquet serializes claims to a Snappy-compressed Parquet file in
// memory. The schema is the fixed 8-column layout declared on synth.Claim,
// never inferred from the data.
func ClaimsParquet(claims []synth.Claim) ([]byte, error) {
	var buf bytes.Buffer
	w := parquet.NewGenericWriter[synth.Claim](&buf, parquet.Compression(&parquet.Snappy))

	if len(claims) > 0 {
		if _, err := w.Write(claims); err != nil {
			return nil, fmt.Errorf("writing claim rows: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("closing Parquet writer: %w", err)
	}
	return buf.Bytes(), nil
}

// ReadClaimsParquet decodes a Parquet payload produced by ClaimsParquet.
// Used by tests to verify the schema round-trips.
func ReadClaimsParquet(data []byte) ([]synth.Claim, error) {
	claims, err := parquet.Read[synth.Claim](bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("reading Parquet payload: %w", err)
	}
	return claims, nil
}
