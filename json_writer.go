package inventory

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// recordWriter builds a flat JSON object with a fixed field order, so that
// records are written as "type" first, then the shared fields, then the
// category fields. Its zero value is ready to use.
type recordWriter struct {
	buf bytes.Buffer
	err error
}

// Field appends a key-value pair, the value is marshaled with json.Marshal.
func (w *recordWriter) Field(key string, value any) *recordWriter {
	if w.err != nil {
		return w
	}
	valBytes, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("failed to marshal field %q: %w", key, err)
		return w
	}
	keyBytes, _ := json.Marshal(key)
	if w.buf.Len() > 0 {
		w.buf.WriteByte(',')
	}
	w.buf.Write(keyBytes)
	w.buf.WriteByte(':')
	w.buf.Write(valBytes)
	return w
}

// MarshalJSON wraps the fields in braces and returns the object.
func (w *recordWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	final := make([]byte, 0, w.buf.Len()+2)
	final = append(final, '{')
	final = append(final, w.buf.Bytes()...)
	final = append(final, '}')
	return final, nil
}
