package entity

import (
	"bytes"
	"encoding/json"
)

// Text is a loosely typed request scalar. Clients send the same field as a
// string, a number or occasionally a list, so anything non-null is kept as
// its textual form and Set reports whether the key carried a value.
type Text struct {
	Value string
	Set   bool
}

func NewText(v string) Text {
	return Text{Value: v, Set: true}
}

func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*t = Text{}
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*t = NewText(s)
		return nil
	}

	*t = NewText(string(b))
	return nil
}

func (t Text) MarshalJSON() ([]byte, error) {
	if !t.Set {
		return []byte("null"), nil
	}
	return json.Marshal(t.Value)
}

// Or returns the value, or def when the field was absent.
func (t Text) Or(def string) string {
	if !t.Set {
		return def
	}
	return t.Value
}
