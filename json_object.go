package pescados

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// orderedObject builds a JSON object whose members keep the order they were added in.
// The first error is kept and returned by MarshalJSON.
type orderedObject struct {
	members [][]byte
	err     error
}

// add appends the member key with v marshaled as its value.
func (o *orderedObject) add(key string, v any) {
	if o.err != nil {
		return
	}
	value, err := json.Marshal(v)
	if err != nil {
		o.err = fmt.Errorf("cannot marshal %q: %w", key, err)
		return
	}
	name, _ := json.Marshal(key)
	o.members = append(o.members, append(append(name, ':'), value...))
}

// addNonEmpty appends the member key only when s is not empty.
func (o *orderedObject) addNonEmpty(key, s string) {
	if s != "" {
		o.add(key, s)
	}
}

// merge appends every member of the JSON object v marshals to.
func (o *orderedObject) merge(v any) {
	if o.err != nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		o.err = fmt.Errorf("cannot marshal merged object: %w", err)
		return
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) < 2 || raw[0] != '{' || raw[len(raw)-1] != '}' {
		o.err = fmt.Errorf("cannot merge %s: not a JSON object", raw)
		return
	}
	if inner := bytes.TrimSpace(raw[1 : len(raw)-1]); len(inner) > 0 {
		o.members = append(o.members, inner)
	}
}

func (o *orderedObject) MarshalJSON() ([]byte, error) {
	if o.err != nil {
		return nil, o.err
	}
	var b bytes.Buffer
	b.WriteByte('{')
	b.Write(bytes.Join(o.members, []byte{','}))
	b.WriteByte('}')
	return b.Bytes(), nil
}
