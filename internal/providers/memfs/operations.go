package memfs

import (
	"context"

	"github.com/memfsd/memfsd/internal/types"
	"github.com/memfsd/memfsd/internal/vfs"
)

// TransferOps handles entry manipulation: move, copy, info, stats.
type TransferOps struct {
	*Ops
}

// GetTools returns entry manipulation tool definitions.
func (t *TransferOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "memfs.move",
			Name:        "Move Entry",
			Description: "Move or rename a file or directory subtree",
			Parameters: []types.Parameter{
				{Name: "source", Type: "string", Description: "Source path", Required: true},
				{Name: "destination", Type: "string", Description: "Destination path", Required: true},
			},
			Returns: "boolean",
		},
		{
			ID:          "memfs.copy",
			Name:        "Copy Entry",
			Description: "Copy a file or directory subtree",
			Parameters: []types.Parameter{
				{Name: "source", Type: "string", Description: "Source path", Required: true},
				{Name: "destination", Type: "string", Description: "Destination path", Required: true},
			},
			Returns: "boolean",
		},
		{
			ID:          "memfs.info",
			Name:        "Entry Info",
			Description: "Report type, size, timestamps and child count for an entry",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Entry path", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "memfs.stats",
			Name:        "Namespace Statistics",
			Description: "Report entry counts and cumulative file size",
			Returns:     "object",
		},
	}
}

// Move moves or renames an entry.
func (t *TransferOps) Move(_ context.Context, params map[string]interface{}) (*types.Result, error) {
	source, ok := stringParam(params, "source")
	if !ok {
		return Failure("source parameter required")
	}
	destination, ok := stringParam(params, "destination")
	if !ok {
		return Failure("destination parameter required")
	}

	if err := t.NS.Move(source, destination); err != nil {
		return failErr(err)
	}
	return Success(map[string]interface{}{"moved": true, "source": source, "destination": destination})
}

// Copy copies an entry.
func (t *TransferOps) Copy(_ context.Context, params map[string]interface{}) (*types.Result, error) {
	source, ok := stringParam(params, "source")
	if !ok {
		return Failure("source parameter required")
	}
	destination, ok := stringParam(params, "destination")
	if !ok {
		return Failure("destination parameter required")
	}

	if err := t.NS.Copy(source, destination); err != nil {
		return failErr(err)
	}
	return Success(map[string]interface{}{"copied": true, "source": source, "destination": destination})
}

// Info reports detail for a single entry.
func (t *TransferOps) Info(_ context.Context, params map[string]interface{}) (*types.Result, error) {
	path, ok := stringParam(params, "path")
	if !ok {
		return Failure("path parameter required")
	}

	info, err := t.NS.Info(path)
	if err != nil {
		return failErr(err)
	}

	data := map[string]interface{}{
		"path":     info.Path,
		"type":     info.Kind.String(),
		"size":     info.Size,
		"created":  info.Created.Format(vfs.DateLayout),
		"modified": info.Modified.Format(vfs.DateLayout),
	}
	if info.Kind == vfs.KindDirectory {
		data["children"] = info.Children
	}
	return Success(data)
}

// Stats reports namespace-wide counters.
func (t *TransferOps) Stats(_ context.Context, _ map[string]interface{}) (*types.Result, error) {
	s := t.NS.Stats()
	return Success(map[string]interface{}{
		"entries":     s.Entries,
		"files":       s.Files,
		"directories": s.Directories,
		"total_bytes": s.TotalBytes,
	})
}
