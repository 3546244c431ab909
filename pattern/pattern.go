// Package pattern parses the human-readable oriented-node pattern
// strings used to query a gbwt.Index ("12+,7-,104+") into the []gbwt.Node
// slice the search algorithms consume.
package pattern

import (
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/pkg/errors"

	"github.com/forestrie/go-gbwt"
)

// expr is the participle grammar for a comma-separated run of oriented
// node ids, each followed by a mandatory orientation marker.
type expr struct {
	Nodes []*orientedNode `@@ ("," @@)*`
}

type orientedNode struct {
	ID          int64  `@Int`
	Orientation string `@("+" | "-")`
}

var parser = participle.MustBuild[expr]()

// Parse reads a pattern string such as "12+,7-,104+" into the oriented
// node sequence Find/Prefix/Extend expect. An empty string parses to an
// empty (not nil-error) pattern, matching the "empty pattern"
// search case.
func Parse(s string) ([]gbwt.Node, error) {
	if s == "" {
		return nil, nil
	}
	tree, err := parser.ParseString("", s)
	if err != nil {
		return nil, errors.Wrapf(err, "pattern: parsing %q", s)
	}
	result := make([]gbwt.Node, 0, len(tree.Nodes))
	for _, n := range tree.Nodes {
		if n.ID < 0 {
			return nil, errors.Errorf("pattern: negative node id %d", n.ID)
		}
		result = append(result, gbwt.EncodeNode(uint64(n.ID), n.Orientation == "-"))
	}
	return result, nil
}

// Format renders a node sequence back into pattern-string form, the
// inverse of Parse.
func Format(nodes []gbwt.Node) string {
	var buf []byte
	for i, n := range nodes {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendUint(buf, n.ID(), 10)
		if n.IsReverse() {
			buf = append(buf, '-')
		} else {
			buf = append(buf, '+')
		}
	}
	return string(buf)
}
