package domain

import (
	"encoding/json"
	"strings"
)

// TableType identifies which table of the record map a record lives in.
type TableType string

const (
	// TableBlock is the block table.
	TableBlock TableType = "block"

	// TableCollection is the collection (database definition) table.
	TableCollection TableType = "collection"

	// TableWorkspace marks the workspace root. It only ever appears as a
	// parent table and terminates ancestor walks.
	TableWorkspace TableType = "space"
)

// String returns the string representation.
func (t TableType) String() string {
	return string(t)
}

// RichText is the raw title encoding: a sequence of [text, annotations?]
// segments. Only the text element is meaningful for display.
type RichText [][]any

// PlainText joins the text element of every segment.
// Returns false when the rich text is absent.
func (t RichText) PlainText() (string, bool) {
	if t == nil {
		return "", false
	}

	var b strings.Builder
	for _, segment := range t {
		if len(segment) == 0 {
			continue
		}
		if s, ok := segment[0].(string); ok {
			b.WriteString(s)
		}
	}
	return b.String(), true
}

// BlockProperties holds the block properties used for display.
type BlockProperties struct {
	Title RichText `json:"title,omitempty"`
}

// BlockFormat holds the block format fields used for display.
type BlockFormat struct {
	PageIcon string `json:"page_icon,omitempty"`
}

// BlockNode is a raw block as returned by the backend.
type BlockNode struct {
	ID           string           `json:"id"`
	ParentID     string           `json:"parent_id"`
	ParentTable  TableType        `json:"parent_table"`
	Type         BlockType        `json:"type"`
	Properties   *BlockProperties `json:"properties,omitempty"`
	Format       *BlockFormat     `json:"format,omitempty"`
	CollectionID string           `json:"collection_id,omitempty"`
}

// CollectionNode is a raw collection (database definition).
type CollectionNode struct {
	ID          string    `json:"id"`
	ParentID    string    `json:"parent_id"`
	ParentTable TableType `json:"parent_table"`
	Name        RichText  `json:"name,omitempty"`
	Icon        string    `json:"icon,omitempty"`
}

// RecordMap is the read-only record graph that accompanies a search response.
// Entries whose value was withheld by the backend are dropped on decode.
type RecordMap struct {
	Block      map[string]BlockNode
	Collection map[string]CollectionNode
}

// recordEntry is the wire envelope around every record map value.
type recordEntry[T any] struct {
	Role  string `json:"role,omitempty"`
	Value *T     `json:"value"`
}

type recordMapWire struct {
	Block      map[string]recordEntry[BlockNode]      `json:"block,omitempty"`
	Collection map[string]recordEntry[CollectionNode] `json:"collection,omitempty"`
}

// UnmarshalJSON decodes the enveloped wire form.
func (m *RecordMap) UnmarshalJSON(data []byte) error {
	var wire recordMapWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	m.Block = make(map[string]BlockNode, len(wire.Block))
	for id, entry := range wire.Block {
		if entry.Value != nil {
			m.Block[id] = *entry.Value
		}
	}

	m.Collection = make(map[string]CollectionNode, len(wire.Collection))
	for id, entry := range wire.Collection {
		if entry.Value != nil {
			m.Collection[id] = *entry.Value
		}
	}
	return nil
}

// MarshalJSON encodes the record map in the enveloped wire form.
func (m RecordMap) MarshalJSON() ([]byte, error) {
	wire := recordMapWire{
		Block:      make(map[string]recordEntry[BlockNode], len(m.Block)),
		Collection: make(map[string]recordEntry[CollectionNode], len(m.Collection)),
	}
	for id, node := range m.Block {
		wire.Block[id] = recordEntry[BlockNode]{Value: &node}
	}
	for id, node := range m.Collection {
		wire.Collection[id] = recordEntry[CollectionNode]{Value: &node}
	}
	return json.Marshal(wire)
}

// LookupBlock returns the block with the given id.
func (m *RecordMap) LookupBlock(id string) (BlockNode, bool) {
	if m == nil || m.Block == nil {
		return BlockNode{}, false
	}
	node, ok := m.Block[id]
	return node, ok
}

// LookupCollection returns the collection with the given id.
func (m *RecordMap) LookupCollection(id string) (CollectionNode, bool) {
	if m == nil || m.Collection == nil {
		return CollectionNode{}, false
	}
	node, ok := m.Collection[id]
	return node, ok
}
