// Package gomap maps between TON and Go values.
//
// Go values travel through the JSON projection of the node tree, so the
// usual encoding/json struct tags apply. A typed object's class and instance
// count are visible as the members "_className" and "_instanceId".
package gomap

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/signadot/ton-format/ton/encode"
	"github.com/signadot/ton-format/ton/ir"
	"github.com/signadot/ton-format/ton/parse"
)

type fromOpts struct {
	parseOpts []parse.ParseOption
	strict    bool
}

type FromOption func(*fromOpts)

// LoadParseOptions passes opts to the parser.
func LoadParseOptions(opts ...parse.ParseOption) FromOption {
	return func(o *fromOpts) { o.parseOpts = append(o.parseOpts, opts...) }
}

// LoadStrict rejects members with no matching struct field.
func LoadStrict(v bool) FromOption { return func(o *fromOpts) { o.strict = v } }

// IRFromer is implemented by values which decode themselves from a node.
type IRFromer interface {
	FromIR(*ir.Node) error
}

// IRToer is implemented by values which encode themselves as a node.
type IRToer interface {
	ToIR() (*ir.Node, error)
}

// Load parses d and stores the result in the value pointed to by p.
func Load(d []byte, p any, opts ...FromOption) error {
	do := &fromOpts{}
	for _, f := range opts {
		f(do)
	}
	doc, err := parse.Parse(d, do.parseOpts...)
	if err != nil {
		return err
	}
	return fromIR(doc.Root, p, do)
}

// FromIR stores node in the value pointed to by p.
func FromIR(node *ir.Node, p any, opts ...FromOption) error {
	do := &fromOpts{}
	for _, f := range opts {
		f(do)
	}
	return fromIR(node, p, do)
}

func fromIR(node *ir.Node, p any, do *fromOpts) error {
	if x, ok := p.(IRFromer); ok {
		return x.FromIR(node)
	}
	d, err := node.MarshalJSON()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoad, err)
	}
	dec := json.NewDecoder(bytes.NewReader(d))
	if do.strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(p); err != nil {
		return fmt.Errorf("%w: %w", ErrLoad, err)
	}
	return nil
}

// ToIR returns the node for v.
func ToIR(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case *ir.Node:
		return x, nil
	case IRToer:
		return x.ToIR()
	}
	d, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDump, err)
	}
	doc, err := parse.Parse(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDump, err)
	}
	return doc.Root, nil
}

// Dump returns the TON text of v, rendered with opts.
func Dump(v any, opts ...encode.EncodeOption) ([]byte, error) {
	node, err := ToIR(v)
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.EncodeNode(node, buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
