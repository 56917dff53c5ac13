package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// ErrChecksum is returned when a stored payload's checksum does not match
// its body. Callers treat this the same as corrupt JSON.
var ErrChecksum = errors.New("save: checksum mismatch")

// envelope wraps a persisted save body with an xxhash64 digest so that
// partial writes and external tampering are detected before the body is
// ever parsed.
type envelope struct {
	Checksum string          `json:"checksum"`
	Body     json.RawMessage `json:"body"`
}

func checksum(body []byte) string {
	return strconv.FormatUint(xxhash.Sum64(body), 16)
}

// seal wraps a marshaled save body in a checksummed envelope.
func seal(body []byte) ([]byte, error) {
	data, err := json.Marshal(envelope{
		Checksum: checksum(body),
		Body:     body,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to seal save payload: %w", err)
	}
	return data, nil
}

// unseal verifies and unwraps a checksummed envelope, returning the body.
func unseal(raw []byte) ([]byte, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("failed to parse save envelope: %w", err)
	}
	if env.Checksum != checksum(env.Body) {
		return nil, ErrChecksum
	}
	return env.Body, nil
}
