package domain

// RecordKind discriminates the record variants.
type RecordKind string

const (
	// RecordKindBlock is a plain block.
	RecordKindBlock RecordKind = "block"

	// RecordKindCollectionView is a collection-view block, optionally
	// paired with the collection it displays.
	RecordKindCollectionView RecordKind = "collection_view"

	// RecordKindCollection is a collection (database definition).
	RecordKindCollection RecordKind = "collection"
)

// Parent links a record to the record that contains it.
type Parent struct {
	ID          string    `json:"id" yaml:"id"`
	TableType   TableType `json:"table_type" yaml:"table_type"`
	IsWorkspace bool      `json:"is_workspace" yaml:"is_workspace"`
}

func newParent(id string, table TableType) Parent {
	return Parent{
		ID:          id,
		TableType:   table,
		IsWorkspace: table == TableWorkspace,
	}
}

// Record gives uniform access to a resolved block or collection.
// The variants are *BlockRecord and *CollectionRecord.
type Record interface {
	// ID returns the record id.
	ID() string

	// Kind returns the record variant.
	Kind() RecordKind

	// TableType returns the table the record was read from.
	TableType() TableType

	// Title returns the display title. The boolean is false when the
	// record carries no title at all.
	Title() (string, bool)

	// Icon returns the raw icon value: an emoji, an absolute URL or a
	// root-relative path. The boolean is false when no icon is set.
	Icon() (string, bool)

	// CanBeDir reports whether the record may appear in a breadcrumb.
	CanBeDir() bool

	// Parent returns the containing record link.
	Parent() Parent
}

// Ensure the variants implement Record.
var (
	_ Record = (*BlockRecord)(nil)
	_ Record = (*CollectionRecord)(nil)
)

// CollectionRecord wraps a collection node.
type CollectionRecord struct {
	node   CollectionNode
	parent Parent
}

// NewCollectionRecord wraps a collection node.
func NewCollectionRecord(node CollectionNode) *CollectionRecord {
	return &CollectionRecord{
		node:   node,
		parent: newParent(node.ParentID, node.ParentTable),
	}
}

// ID returns the collection id.
func (r *CollectionRecord) ID() string { return r.node.ID }

// Kind returns RecordKindCollection.
func (r *CollectionRecord) Kind() RecordKind { return RecordKindCollection }

// TableType returns TableCollection.
func (r *CollectionRecord) TableType() TableType { return TableCollection }

// Title joins the collection name.
func (r *CollectionRecord) Title() (string, bool) {
	return r.node.Name.PlainText()
}

// Icon returns the collection icon.
func (r *CollectionRecord) Icon() (string, bool) {
	return r.node.Icon, r.node.Icon != ""
}

// CanBeDir is always false: the collection-view block hosting the
// collection provides the breadcrumb entry instead.
func (r *CollectionRecord) CanBeDir() bool { return false }

// Parent returns the containing record link.
func (r *CollectionRecord) Parent() Parent { return r.parent }

// Node returns the wrapped collection node.
func (r *CollectionRecord) Node() CollectionNode { return r.node }

// BlockRecord wraps a block node. For collection-view blocks it also carries
// the collection the view displays, when the block references one.
type BlockRecord struct {
	node       BlockNode
	collection *CollectionRecord
	parent     Parent
	canBeDir   bool
}

// NewBlockRecord wraps a block node. collection is only kept for
// collection-view blocks.
func NewBlockRecord(node BlockNode, collection *CollectionRecord) *BlockRecord {
	r := &BlockRecord{
		node:     node,
		parent:   newParent(node.ParentID, node.ParentTable),
		canBeDir: node.Type.CanBeDir(),
	}
	if node.Type.IsCollectionView() {
		r.collection = collection
	}
	return r
}

// ID returns the block id.
func (r *BlockRecord) ID() string { return r.node.ID }

// Kind returns RecordKindCollectionView for collection-view blocks and
// RecordKindBlock otherwise.
func (r *BlockRecord) Kind() RecordKind {
	if r.IsCollectionView() {
		return RecordKindCollectionView
	}
	return RecordKindBlock
}

// TableType returns TableBlock.
func (r *BlockRecord) TableType() TableType { return TableBlock }

// IsCollectionView reports whether this is the block/collection composite.
func (r *BlockRecord) IsCollectionView() bool {
	return r.node.Type.IsCollectionView()
}

// KnownType reports whether the block type is recognised.
func (r *BlockRecord) KnownType() bool {
	return r.node.Type.IsKnown()
}

// Collection returns the paired collection, or nil.
func (r *BlockRecord) Collection() *CollectionRecord {
	return r.collection
}

// Title returns the block's own title, falling back to the paired
// collection's name only when the block has none.
func (r *BlockRecord) Title() (string, bool) {
	if title, ok := r.ownTitle(); ok {
		return title, true
	}
	if r.collection != nil {
		return r.collection.Title()
	}
	return "", false
}

// Icon returns the block's own page icon, falling back to the paired
// collection's icon only when the block has none.
func (r *BlockRecord) Icon() (string, bool) {
	if icon, ok := r.ownIcon(); ok {
		return icon, true
	}
	if r.collection != nil {
		return r.collection.Icon()
	}
	return "", false
}

func (r *BlockRecord) ownTitle() (string, bool) {
	if r.node.Properties == nil {
		return "", false
	}
	return r.node.Properties.Title.PlainText()
}

func (r *BlockRecord) ownIcon() (string, bool) {
	if r.node.Format == nil || r.node.Format.PageIcon == "" {
		return "", false
	}
	return r.node.Format.PageIcon, true
}

// CanBeDir reports whether the block may appear in a breadcrumb.
func (r *BlockRecord) CanBeDir() bool { return r.canBeDir }

// Parent returns the containing record link.
func (r *BlockRecord) Parent() Parent { return r.parent }

// Node returns the wrapped block node.
func (r *BlockRecord) Node() BlockNode { return r.node }

// RecordRef is a serialisable snapshot of a record, carried by result items
// and breadcrumb entries.
type RecordRef struct {
	ID           string     `json:"id" yaml:"id"`
	Kind         RecordKind `json:"kind" yaml:"kind"`
	BlockType    BlockType  `json:"block_type,omitempty" yaml:"block_type,omitempty"`
	CollectionID string     `json:"collection_id,omitempty" yaml:"collection_id,omitempty"`
	Parent       Parent     `json:"parent" yaml:"parent"`
}

// RefOf snapshots a record.
func RefOf(r Record) RecordRef {
	ref := RecordRef{
		ID:     r.ID(),
		Kind:   r.Kind(),
		Parent: r.Parent(),
	}
	if b, ok := r.(*BlockRecord); ok {
		ref.BlockType = b.node.Type
		if b.collection != nil {
			ref.CollectionID = b.collection.ID()
		}
	}
	return ref
}
