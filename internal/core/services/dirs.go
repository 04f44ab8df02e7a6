package services

import (
	"fmt"

	"github.com/custodia-labs/quickfind/internal/core/domain"
	"github.com/custodia-labs/quickfind/internal/logger"
)

// TextNoTitle is shown for records without a title.
const TextNoTitle = "Untitled"

// MaxDirDepth bounds ancestor walks on malformed record maps.
const MaxDirDepth = 64

// ResolveDirs walks parent links from the given record up to the workspace
// root and returns the breadcrumb root-first. Only directory-eligible
// records produce entries.
//
// A record that cannot be built, a revisited record or a walk deeper than
// MaxDirDepth ends the walk: the failure is logged and the entries
// collected so far are returned.
func ResolveDirs(id string, tableType domain.TableType, recordMap *domain.RecordMap) []domain.Dir {
	dirs := make([]domain.Dir, 0, 4)
	visited := make(map[string]struct{})

	for depth := 0; id != ""; depth++ {
		key := string(tableType) + ":" + id
		if _, seen := visited[key]; seen || depth >= MaxDirDepth {
			err := &domain.RecordError{
				Kind:    domain.RecordErrorCycle,
				Message: fmt.Sprintf("parent walk stopped at %s after %d steps", key, depth),
				Context: domain.RecordContext{ID: id, TableType: tableType},
			}
			logger.ErrorWith(err, logger.Fields(err.Context.Fields()))
			break
		}
		visited[key] = struct{}{}

		record, err := CreateRecord(id, tableType, recordMap)
		if err != nil {
			logRecordError(err, id, tableType)
			break
		}

		if record.CanBeDir() {
			title, ok := record.Title()
			if !ok || title == "" {
				title = TextNoTitle
			}
			dirs = append(dirs, domain.Dir{
				Title:     title,
				Record:    domain.RefOf(record),
				TableType: tableType,
			})
		}

		parent := record.Parent()
		if parent.IsWorkspace {
			break
		}
		id, tableType = parent.ID, parent.TableType
	}

	reverseDirs(dirs)
	return dirs
}

func reverseDirs(dirs []domain.Dir) {
	for i, j := 0, len(dirs)-1; i < j; i, j = i+1, j-1 {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	}
}

// logRecordError logs a resolution failure with its context.
func logRecordError(err error, id string, tableType domain.TableType) {
	fields := logger.Fields{"id": id, "table_type": tableType}
	if recErr, ok := err.(*domain.RecordError); ok {
		fields = logger.Fields(recErr.Context.Fields())
		fields["kind"] = recErr.Kind
	}
	logger.ErrorWith(err, fields)
}
