package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Codec is the wire format used by the HTTP bridge.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	ContentType() string
}

// ErrTrailing is returned when a body carries more than one JSON value.
var ErrTrailing = errors.New("json trailing content")

type jsonStrict struct{ numbers bool }

// JSONStrict rejects unknown fields and trailing content.
var JSONStrict Codec = jsonStrict{}

// JSONParams is JSONStrict with numbers kept as json.Number, so integer
// parameters reach handlers without float rounding.
var JSONParams Codec = jsonStrict{numbers: true}

func (jsonStrict) Marshal(v any) ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func (c jsonStrict) Unmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if c.numbers {
		dec.UseNumber()
	}
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("json decode: %w", err)
	}
	// must be EOF
	var extra any
	if err := dec.Decode(&extra); err != io.EOF {
		return ErrTrailing
	}
	return nil
}

func (jsonStrict) ContentType() string { return "application/json" }
