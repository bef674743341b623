package emit

import (
	"bytes"
	"encoding/json"
)

// section is the JSON wire shape of one Section: {"mode": "...", "pairs": {...}}.
type section struct {
	Mode  string   `json:"mode"`
	Pairs pairList `json:"pairs"`
}

// pairList marshals as a JSON object that preserves insertion order, which
// encoding/json's native map support cannot do.
type pairList []Pair

func (p pairList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, pair := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(pair.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(pair.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON renders the sink's accumulated sections as a JSON array of
// {"mode": "...", "pairs": {...}} objects, in insertion order.
func (s *Sink) MarshalJSON() ([]byte, error) {
	out := make([]section, len(s.sections))
	for i, sec := range s.sections {
		out[i] = section{Mode: sec.Mode.String(), Pairs: pairList(sec.Pairs)}
	}
	return json.Marshal(out)
}
