/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apis

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Field is one public attribute of an error view.
type Field struct {
	Key   string
	Value any
}

// ErrorView is the ordered, serializable set of public attributes of an
// error.
//
// This is *not* the concrete error type used internally: it is the shape
// that we are comfortable exposing over the wire. Fields appear in the order
// of the producing error's Publics list, and MarshalJSON preserves that
// order in the emitted object.
type ErrorView struct {
	Fields []Field
}

// Get returns the value stored under key.
func (v ErrorView) Get(key string) (any, bool) {
	for _, f := range v.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Keys returns the attribute names in order.
func (v ErrorView) Keys() []string {
	out := make([]string, len(v.Fields))
	for i, f := range v.Fields {
		out[i] = f.Key
	}
	return out
}

// Map returns the attributes as a map. Order is lost; use it only where the
// consumer cannot represent ordered objects (e.g. structpb).
func (v ErrorView) Map() map[string]any {
	out := make(map[string]any, len(v.Fields))
	for _, f := range v.Fields {
		out[f.Key] = f.Value
	}
	return out
}

// MarshalJSON encodes the view as a JSON object whose members follow the
// order of Fields.
func (v ErrorView) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range v.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, fmt.Errorf("apis: encode field %q: %w", f.Key, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
