package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/quickfind/internal/core/domain"
)

func dirTitles(dirs []domain.Dir) []string {
	titles := make([]string, len(dirs))
	for i, d := range dirs {
		titles[i] = d.Title
	}
	return titles
}

func TestResolveDirs_RootFirst(t *testing.T) {
	rm := newRecordMap([]domain.BlockNode{
		block("root", domain.BlockPage, "space", domain.TableWorkspace, "Root"),
		block("mid", domain.BlockPage, "root", domain.TableBlock, "Middle"),
		block("col", domain.BlockColumn, "mid", domain.TableBlock),
		block("leaf", domain.BlockPage, "col", domain.TableBlock, "Leaf"),
	})

	dirs := ResolveDirs("leaf", domain.TableBlock, rm)

	// the column is not directory-eligible
	assert.Equal(t, []string{"Root", "Middle", "Leaf"}, dirTitles(dirs))
	assert.Equal(t, "root", dirs[0].Record.ID)
	assert.Equal(t, domain.TableBlock, dirs[0].TableType)
}

func TestResolveDirs_UntitledFallback(t *testing.T) {
	rm := newRecordMap([]domain.BlockNode{
		block("root", domain.BlockPage, "space", domain.TableWorkspace),
		block("empty", domain.BlockPage, "root", domain.TableBlock, ""),
	})

	dirs := ResolveDirs("empty", domain.TableBlock, rm)

	assert.Equal(t, []string{TextNoTitle, TextNoTitle}, dirTitles(dirs))
}

func TestResolveDirs_ThroughCollection(t *testing.T) {
	cv := block("cv", domain.BlockCollectionViewPage, "space", domain.TableWorkspace)
	cv.CollectionID = "c1"
	rm := newRecordMap(
		[]domain.BlockNode{
			cv,
			block("row", domain.BlockPage, "c1", domain.TableCollection, "Row"),
		},
		domain.CollectionNode{ID: "c1", ParentID: "cv", ParentTable: domain.TableBlock, Name: richText("Tasks")},
	)

	dirs := ResolveDirs("row", domain.TableBlock, rm)

	// the collection itself is skipped, its view supplies the crumb
	assert.Equal(t, []string{"Tasks", "Row"}, dirTitles(dirs))
	assert.Equal(t, domain.RecordKindCollectionView, dirs[0].Record.Kind)
	assert.Equal(t, "c1", dirs[0].Record.CollectionID)
}

func TestResolveDirs_DanglingParent(t *testing.T) {
	buf := captureLog(t)
	rm := newRecordMap([]domain.BlockNode{
		block("mid", domain.BlockPage, "missing", domain.TableBlock, "Middle"),
		block("leaf", domain.BlockPage, "mid", domain.TableBlock, "Leaf"),
	})

	var dirs []domain.Dir
	require.NotPanics(t, func() {
		dirs = ResolveDirs("leaf", domain.TableBlock, rm)
	})

	assert.Equal(t, []string{"Middle", "Leaf"}, dirTitles(dirs))
	assert.Contains(t, buf.String(), "[ERROR]")
	assert.Contains(t, buf.String(), "id=missing")
}

func TestResolveDirs_MissingStart(t *testing.T) {
	dirs := ResolveDirs("missing", domain.TableBlock, newRecordMap(nil))

	assert.Empty(t, dirs)
}

func TestResolveDirs_UnsupportedParentTable(t *testing.T) {
	rm := newRecordMap([]domain.BlockNode{
		block("leaf", domain.BlockPage, "team-1", domain.TableType("team"), "Leaf"),
	})

	dirs := ResolveDirs("leaf", domain.TableBlock, rm)

	assert.Equal(t, []string{"Leaf"}, dirTitles(dirs))
}

func TestResolveDirs_EmptyIDIsRoot(t *testing.T) {
	buf := captureLog(t)
	rm := newRecordMap([]domain.BlockNode{
		block("leaf", domain.BlockPage, "", "", "Leaf"),
	})

	dirs := ResolveDirs("leaf", domain.TableBlock, rm)

	assert.Equal(t, []string{"Leaf"}, dirTitles(dirs))
	assert.NotContains(t, buf.String(), "[ERROR]")
}

func TestResolveDirs_Cycle(t *testing.T) {
	buf := captureLog(t)
	rm := newRecordMap([]domain.BlockNode{
		block("a", domain.BlockPage, "b", domain.TableBlock, "A"),
		block("b", domain.BlockPage, "a", domain.TableBlock, "B"),
	})

	var dirs []domain.Dir
	require.NotPanics(t, func() {
		dirs = ResolveDirs("a", domain.TableBlock, rm)
	})

	assert.Equal(t, []string{"B", "A"}, dirTitles(dirs))
	assert.Contains(t, buf.String(), "parent walk stopped")
}

func TestResolveDirs_SelfParent(t *testing.T) {
	rm := newRecordMap([]domain.BlockNode{
		block("a", domain.BlockPage, "a", domain.TableBlock, "A"),
	})

	dirs := ResolveDirs("a", domain.TableBlock, rm)

	assert.Equal(t, []string{"A"}, dirTitles(dirs))
}

func TestResolveDirs_DepthBound(t *testing.T) {
	blocks := []domain.BlockNode{block("n0", domain.BlockPage, "space", domain.TableWorkspace, "n0")}
	for i := 1; i < MaxDirDepth+10; i++ {
		blocks = append(blocks, block(
			fmt.Sprintf("n%d", i), domain.BlockPage, fmt.Sprintf("n%d", i-1), domain.TableBlock, fmt.Sprintf("n%d", i),
		))
	}
	rm := newRecordMap(blocks)

	dirs := ResolveDirs(fmt.Sprintf("n%d", MaxDirDepth+9), domain.TableBlock, rm)

	assert.Len(t, dirs, MaxDirDepth)
	assert.Equal(t, fmt.Sprintf("n%d", MaxDirDepth+9), dirs[len(dirs)-1].Title)
}
