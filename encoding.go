package hifi

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Duration, Epoch, TimeScale and Unit encode as the strings their String
// methods produce, in text, JSON and YAML alike.

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(data []byte) error {
	return unmarshalJSONString(data, d.UnmarshalText)
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return d.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	return unmarshalYAMLString(value, d.UnmarshalText)
}

// MarshalText implements encoding.TextMarshaler.
func (e Epoch) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Epoch) UnmarshalText(text []byte) error {
	v, err := ParseEpoch(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// MarshalJSON implements json.Marshaler.
func (e Epoch) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *Epoch) UnmarshalJSON(data []byte) error {
	return unmarshalJSONString(data, e.UnmarshalText)
}

// MarshalYAML implements yaml.Marshaler.
func (e Epoch) MarshalYAML() (any, error) {
	return e.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *Epoch) UnmarshalYAML(value *yaml.Node) error {
	return unmarshalYAMLString(value, e.UnmarshalText)
}

// MarshalText implements encoding.TextMarshaler.
func (ts TimeScale) MarshalText() ([]byte, error) {
	return []byte(ts.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (ts *TimeScale) UnmarshalText(text []byte) error {
	v, err := ParseTimeScale(string(text))
	if err != nil {
		return err
	}
	*ts = v
	return nil
}

// MarshalJSON implements json.Marshaler.
func (ts TimeScale) MarshalJSON() ([]byte, error) {
	return json.Marshal(ts.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (ts *TimeScale) UnmarshalJSON(data []byte) error {
	return unmarshalJSONString(data, ts.UnmarshalText)
}

// MarshalYAML implements yaml.Marshaler.
func (ts TimeScale) MarshalYAML() (any, error) {
	return ts.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (ts *TimeScale) UnmarshalYAML(value *yaml.Node) error {
	return unmarshalYAMLString(value, ts.UnmarshalText)
}

// MarshalText implements encoding.TextMarshaler.
func (u Unit) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *Unit) UnmarshalText(text []byte) error {
	v, err := ParseUnit(string(text))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// MarshalJSON implements json.Marshaler.
func (u Unit) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (u *Unit) UnmarshalJSON(data []byte) error {
	return unmarshalJSONString(data, u.UnmarshalText)
}

// MarshalYAML implements yaml.Marshaler.
func (u Unit) MarshalYAML() (any, error) {
	return u.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (u *Unit) UnmarshalYAML(value *yaml.Node) error {
	return unmarshalYAMLString(value, u.UnmarshalText)
}

func unmarshalJSONString(data []byte, parse func([]byte) error) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("hifi: expect a JSON string: %w", err)
	}
	return parse([]byte(s))
}

func unmarshalYAMLString(value *yaml.Node, parse func([]byte) error) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return parse([]byte(s))
}
