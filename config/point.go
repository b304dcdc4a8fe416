package config

import (
	"fmt"
	"strconv"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/roadnet/geo"
)

// Point is a coordinate written as a two-element sequence: [x, y] in YAML,
// a two-element array in MessagePack.
type Point geo.Coord

// MarshalYAML renders p as [x, y].
func (p Point) MarshalYAML() (any, error) {
	return &yaml.Node{
		Kind:  yaml.SequenceNode,
		Style: yaml.FlowStyle,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(p.X)},
			{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(p.Y)},
		},
	}, nil
}

// UnmarshalYAML accepts exactly [x, y].
func (p *Point) UnmarshalYAML(value *yaml.Node) error {
	var xy []int
	if err := value.Decode(&xy); err != nil {
		return err
	}
	if len(xy) != 2 {
		return fmt.Errorf("line %d: point needs [x, y], got %d values", value.Line, len(xy))
	}
	p.X, p.Y = xy[0], xy[1]

	return nil
}

// EncodeMsgpack writes p as a two-element array.
func (p Point) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(2); err != nil {
		return err
	}
	if err := enc.EncodeInt(int64(p.X)); err != nil {
		return err
	}

	return enc.EncodeInt(int64(p.Y))
}

// DecodeMsgpack accepts exactly a two-element array.
func (p *Point) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n != 2 {
		return fmt.Errorf("point needs [x, y], got %d values", n)
	}
	if p.X, err = dec.DecodeInt(); err != nil {
		return err
	}
	p.Y, err = dec.DecodeInt()

	return err
}
