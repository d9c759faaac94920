// Copyright 2024 Upbound Inc
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parse

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-yaml/ast"

	"github.com/meshlint/meshlint/internal/model"
)

// posOf returns the source position of an AST node, or a zero Position if
// the node (or its token) is nil.
func posOf(file string, n ast.Node) model.Position {
	if n == nil {
		return model.Position{File: file}
	}
	tok := n.GetToken()
	if tok == nil || tok.Position == nil {
		return model.Position{File: file}
	}
	return model.Position{File: file, Line: tok.Position.Line, Column: tok.Position.Column}
}

// asMapping type-asserts n as a mapping node. A lone key/value pair
// (*ast.MappingValueNode) is wrapped into a one-entry mapping node.
func asMapping(n ast.Node) (*ast.MappingNode, bool) {
	switch v := n.(type) {
	case *ast.MappingNode:
		return v, true
	case *ast.MappingValueNode:
		m := &ast.MappingNode{Values: []*ast.MappingValueNode{v}}
		return m, true
	default:
		return nil, false
	}
}

// asSequence type-asserts n as a sequence node.
func asSequence(n ast.Node) (*ast.SequenceNode, bool) {
	s, ok := n.(*ast.SequenceNode)
	return s, ok
}

// field looks up a top-level key in a mapping node and returns its value
// node.
func field(m *ast.MappingNode, key string) (ast.Node, bool) {
	if m == nil {
		return nil, false
	}
	for _, v := range m.Values {
		if scalarString(v.Key) == key {
			return v.Value, true
		}
	}
	return nil, false
}

// scalarString renders a scalar node as a plain Go string. Non-scalar nodes
// return "".
func scalarString(n ast.Node) string {
	switch v := n.(type) {
	case *ast.StringNode:
		return v.Value
	case *ast.IntegerNode:
		return fmt.Sprint(v.Value)
	case *ast.FloatNode:
		return strconv.FormatFloat(v.Value, 'f', -1, 64)
	case *ast.BoolNode:
		return strconv.FormatBool(v.Value)
	case *ast.LiteralNode:
		if v.Value != nil {
			return v.Value.Value
		}
		return ""
	case nil:
		return ""
	default:
		return ""
	}
}

// stringField returns the string value and position of a top-level scalar
// key, if present.
func stringField(file string, m *ast.MappingNode, key string) (string, model.Position, bool) {
	n, ok := field(m, key)
	if !ok {
		return "", model.Position{File: file}, false
	}
	return scalarString(n), posOf(file, n), true
}

// boolField returns the bool value of a top-level key, defaulting to def
// if absent or not a bool scalar.
func boolField(m *ast.MappingNode, key string, def bool) bool {
	n, ok := field(m, key)
	if !ok {
		return def
	}
	b, ok := n.(*ast.BoolNode)
	if !ok {
		return def
	}
	return b.Value
}

// intField returns the integer value of a top-level key.
func intField(m *ast.MappingNode, key string) (int64, bool) {
	n, ok := field(m, key)
	if !ok {
		return 0, false
	}
	switch v := n.(type) {
	case *ast.IntegerNode:
		switch iv := v.Value.(type) {
		case int64:
			return iv, true
		case uint64:
			return int64(iv), true
		case int:
			return int64(iv), true
		}
	}
	i, err := strconv.ParseInt(scalarString(n), 10, 64)
	if err != nil {
		return 0, false
	}
	return i, true
}
