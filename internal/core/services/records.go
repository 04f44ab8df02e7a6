package services

import (
	"fmt"

	"github.com/custodia-labs/quickfind/internal/core/domain"
	"github.com/custodia-labs/quickfind/internal/logger"
)

// CreateRecord builds the record variant for id in the given table.
//
// Workspace and unknown tables fail with domain.ErrRecordType. A missing
// block or collection fails with domain.ErrRecordNotFound, as does a
// collection-view block whose collection_id points outside the map.
// Unknown block types are logged and resolved as non-navigable blocks.
func CreateRecord(id string, tableType domain.TableType, recordMap *domain.RecordMap) (domain.Record, error) {
	ctx := domain.RecordContext{ID: id, TableType: tableType}

	switch tableType {
	case domain.TableWorkspace:
		return nil, domain.NewRecordTypeError("can't handle a workspace", ctx)

	case domain.TableCollection:
		collection, ok := recordMap.LookupCollection(id)
		if !ok {
			return nil, domain.NewRecordNotFoundError(
				fmt.Sprintf("collection (id:%s) is not found in recordMap.collection", id), ctx)
		}
		return domain.NewCollectionRecord(collection), nil

	case domain.TableBlock:
		return createBlockRecord(id, recordMap, ctx)

	default:
		return nil, domain.NewRecordTypeError(fmt.Sprintf("unknown table type: %s", tableType), ctx)
	}
}

func createBlockRecord(id string, recordMap *domain.RecordMap, ctx domain.RecordContext) (*domain.BlockRecord, error) {
	block, ok := recordMap.LookupBlock(id)
	if !ok {
		return nil, domain.NewRecordNotFoundError(
			fmt.Sprintf("block (id:%s) is not found in recordMap.block", id), ctx)
	}
	ctx.BlockType = block.Type

	if !block.Type.IsKnown() {
		logger.WarnWith("unknown block type", logger.Fields(ctx.Fields()))
	}

	if !block.Type.IsCollectionView() || block.CollectionID == "" {
		return domain.NewBlockRecord(block, nil), nil
	}

	collection, ok := recordMap.LookupCollection(block.CollectionID)
	if !ok {
		return nil, domain.NewRecordNotFoundError(
			fmt.Sprintf("block.collection_id exists, but collection_id:%s is not found in recordMap.collection",
				block.CollectionID),
			domain.RecordContext{
				ID:           block.CollectionID,
				TableType:    domain.TableCollection,
				ReferencedBy: id,
			})
	}
	return domain.NewBlockRecord(block, domain.NewCollectionRecord(collection)), nil
}

// CreateBlock builds the record for a block id and guarantees it is a
// block-family record.
func CreateBlock(id string, recordMap *domain.RecordMap) (*domain.BlockRecord, error) {
	record, err := CreateRecord(id, domain.TableBlock, recordMap)
	if err != nil {
		return nil, err
	}

	block, ok := record.(*domain.BlockRecord)
	if !ok {
		return nil, &domain.RecordError{
			Kind:    domain.RecordErrorInvariant,
			Message: "not a block",
			Context: domain.RecordContext{ID: id, TableType: domain.TableBlock},
		}
	}
	return block, nil
}
