// Package jsonkeys rewrites JSON object keys to a target naming convention,
// recursing through nested objects and arrays; values are carried as raw
// fragments and never re-encoded.
package jsonkeys

import (
	"fmt"

	"github.com/francoispqt/gojay"
	"github.com/viant/textcase"
)

// Rewriter rewrites JSON object keys with a naming convention converter
type Rewriter struct {
	convention textcase.Convention
}

// New creates a key rewriter for the supplied convention
func New(convention textcase.Convention) *Rewriter {
	return &Rewriter{convention: convention}
}

// Rewrite converts every object key in the supplied JSON document, a scalar
// document passes through unchanged. A key rejected by the convention
// converter aborts with its InvalidInputError.
func (r *Rewriter) Rewrite(data []byte) ([]byte, error) {
	switch firstToken(data) {
	case '{':
		node := &objectNode{rewriter: r, size: len(data)}
		if err := gojay.UnmarshalJSONObject(data, node); err != nil {
			return nil, err
		}
		return gojay.MarshalJSONObject(node)
	case '[':
		node := &arrayNode{rewriter: r, size: len(data)}
		if err := gojay.UnmarshalJSONArray(data, node); err != nil {
			return nil, err
		}
		return gojay.MarshalJSONArray(node)
	}
	return data, nil
}

func firstToken(data []byte) byte {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return b
	}
	return 0
}

type member struct {
	key   string
	value gojay.EmbeddedJSON
}

type objectNode struct {
	rewriter *Rewriter
	size     int
	members  []member
}

func (o *objectNode) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	var raw gojay.EmbeddedJSON
	if err := dec.EmbeddedJSON(&raw); err != nil {
		return err
	}
	//on a truncated document the decoder hands back the remaining buffer,
	//a fragment as large as its enclosing document can never be a value
	if len(raw) >= o.size {
		return fmt.Errorf("malformed input: unterminated value for key %q", key)
	}
	converted, err := o.rewriter.convention.Convert(key)
	if err != nil {
		return err
	}
	value, err := o.rewriter.Rewrite(raw)
	if err != nil {
		return err
	}
	o.members = append(o.members, member{key: converted, value: value})
	return nil
}

func (o *objectNode) NKeys() int {
	return 0
}

func (o *objectNode) MarshalJSONObject(enc *gojay.Encoder) {
	for i := range o.members {
		enc.AddEmbeddedJSONKey(o.members[i].key, &o.members[i].value)
	}
}

func (o *objectNode) IsNil() bool {
	return o == nil
}

type arrayNode struct {
	rewriter *Rewriter
	size     int
	items    []gojay.EmbeddedJSON
}

func (a *arrayNode) UnmarshalJSONArray(dec *gojay.Decoder) error {
	var raw gojay.EmbeddedJSON
	if err := dec.AddEmbeddedJSON(&raw); err != nil {
		return err
	}
	if len(raw) >= a.size {
		return fmt.Errorf("malformed input: unterminated array element")
	}
	item, err := a.rewriter.Rewrite(raw)
	if err != nil {
		return err
	}
	a.items = append(a.items, item)
	return nil
}

func (a *arrayNode) MarshalJSONArray(enc *gojay.Encoder) {
	for i := range a.items {
		enc.AddEmbeddedJSON(&a.items[i])
	}
}

func (a *arrayNode) IsNil() bool {
	return a == nil
}
