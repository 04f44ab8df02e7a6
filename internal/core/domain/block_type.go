package domain

// BlockType is the kind of a block node.
type BlockType string

// Known block types. The backend adds new types over time, so values outside
// this set are tolerated and treated as non-navigable.
const (
	BlockPage                  BlockType = "page"
	BlockCollectionViewPage    BlockType = "collection_view_page"
	BlockCollectionView        BlockType = "collection_view"
	BlockText                  BlockType = "text"
	BlockHeader                BlockType = "header"
	BlockSubHeader             BlockType = "sub_header"
	BlockSubSubHeader          BlockType = "sub_sub_header"
	BlockToDo                  BlockType = "to_do"
	BlockBulletedList          BlockType = "bulleted_list"
	BlockNumberedList          BlockType = "numbered_list"
	BlockToggle                BlockType = "toggle"
	BlockQuote                 BlockType = "quote"
	BlockCallout               BlockType = "callout"
	BlockCode                  BlockType = "code"
	BlockEquation              BlockType = "equation"
	BlockDivider               BlockType = "divider"
	BlockImage                 BlockType = "image"
	BlockVideo                 BlockType = "video"
	BlockAudio                 BlockType = "audio"
	BlockFile                  BlockType = "file"
	BlockPDF                   BlockType = "pdf"
	BlockBookmark              BlockType = "bookmark"
	BlockEmbed                 BlockType = "embed"
	BlockTableOfContents       BlockType = "table_of_contents"
	BlockBreadcrumb            BlockType = "breadcrumb"
	BlockColumnList            BlockType = "column_list"
	BlockColumn                BlockType = "column"
	BlockTable                 BlockType = "table"
	BlockTableRow              BlockType = "table_row"
	BlockAlias                 BlockType = "alias"
	BlockTransclusionContainer BlockType = "transclusion_container"
	BlockTransclusionReference BlockType = "transclusion_reference"
	BlockButton                BlockType = "button"
	BlockExternalObject        BlockType = "external_object_instance"
)

// navigable maps every known block type to whether it can appear in a
// breadcrumb.
var navigable = map[BlockType]bool{
	BlockPage:                  true,
	BlockCollectionViewPage:    true,
	BlockCollectionView:        true,
	BlockText:                  false,
	BlockHeader:                false,
	BlockSubHeader:             false,
	BlockSubSubHeader:          false,
	BlockToDo:                  false,
	BlockBulletedList:          false,
	BlockNumberedList:          false,
	BlockToggle:                false,
	BlockQuote:                 false,
	BlockCallout:               false,
	BlockCode:                  false,
	BlockEquation:              false,
	BlockDivider:               false,
	BlockImage:                 false,
	BlockVideo:                 false,
	BlockAudio:                 false,
	BlockFile:                  false,
	BlockPDF:                   false,
	BlockBookmark:              false,
	BlockEmbed:                 false,
	BlockTableOfContents:       false,
	BlockBreadcrumb:            false,
	BlockColumnList:            false,
	BlockColumn:                false,
	BlockTable:                 false,
	BlockTableRow:              false,
	BlockAlias:                 false,
	BlockTransclusionContainer: false,
	BlockTransclusionReference: false,
	BlockButton:                false,
	BlockExternalObject:        false,
}

// IsKnown returns true if the block type is recognised.
func (t BlockType) IsKnown() bool {
	_, ok := navigable[t]
	return ok
}

// CanBeDir returns true if blocks of this type can appear in a breadcrumb.
// Unknown types return false.
func (t BlockType) CanBeDir() bool {
	return navigable[t]
}

// IsCollectionView returns true for block types that display a collection.
func (t BlockType) IsCollectionView() bool {
	return t == BlockCollectionViewPage || t == BlockCollectionView
}

// String returns the string representation.
func (t BlockType) String() string {
	return string(t)
}
