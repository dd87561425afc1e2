package memfs

import (
	"context"

	"github.com/memfsd/memfsd/internal/types"
	"github.com/memfsd/memfsd/internal/vfs"
)

// BasicOps handles file operations and their batch variants.
type BasicOps struct {
	*Ops
}

// GetTools returns basic file operation tool definitions.
func (b *BasicOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "memfs.create",
			Name:        "Create File",
			Description: "Create a new empty file, materializing missing parent directories",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File path", Required: true},
			},
			Returns: "boolean",
		},
		{
			ID:          "memfs.create_batch",
			Name:        "Create Files",
			Description: "Create multiple empty files concurrently",
			Parameters: []types.Parameter{
				{Name: "paths", Type: "array", Description: "File paths", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "memfs.write",
			Name:        "Write File",
			Description: "Write content to a file, creating it when absent",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File path", Required: true},
				{Name: "content", Type: "string", Description: "Content to write", Required: true},
			},
			Returns: "boolean",
		},
		{
			ID:          "memfs.write_batch",
			Name:        "Write Files",
			Description: "Write multiple files concurrently",
			Parameters: []types.Parameter{
				{Name: "items", Type: "array", Description: "Array of {path, content}", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "memfs.read",
			Name:        "Read File",
			Description: "Read file content",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File path", Required: true},
			},
			Returns: "string",
		},
		{
			ID:          "memfs.delete",
			Name:        "Delete Entry",
			Description: "Delete a file or empty directory",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Entry path", Required: true},
			},
			Returns: "boolean",
		},
		{
			ID:          "memfs.delete_batch",
			Name:        "Delete Files",
			Description: "Delete multiple files concurrently",
			Parameters: []types.Parameter{
				{Name: "paths", Type: "array", Description: "File paths", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "memfs.exists",
			Name:        "Check Existence",
			Description: "Check whether a path names a file or directory",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Entry path", Required: true},
			},
			Returns: "boolean",
		},
	}
}

// Create creates a new empty file.
func (b *BasicOps) Create(_ context.Context, params map[string]interface{}) (*types.Result, error) {
	path, ok := stringParam(params, "path")
	if !ok {
		return Failure("path parameter required")
	}

	if err := b.NS.Create(path); err != nil {
		return failErr(err)
	}
	return Success(map[string]interface{}{"created": true, "path": path})
}

// CreateBatch creates multiple files concurrently.
func (b *BasicOps) CreateBatch(_ context.Context, params map[string]interface{}) (*types.Result, error) {
	paths, ok := stringsParam(params, "paths")
	if !ok {
		return Failure("paths parameter required")
	}

	results := b.NS.CreateBatch(paths)
	b.recordUnits(results)
	return Success(batchData(results))
}

// Write writes content to a file, creating it when absent.
func (b *BasicOps) Write(_ context.Context, params map[string]interface{}) (*types.Result, error) {
	path, ok := stringParam(params, "path")
	if !ok {
		return Failure("path parameter required")
	}
	content, ok := params["content"].(string)
	if !ok {
		return Failure("content parameter required")
	}

	if err := b.NS.Write(path, []byte(content)); err != nil {
		return failErr(err)
	}
	return Success(map[string]interface{}{"written": true, "path": path, "size": len(content)})
}

// WriteBatch writes multiple files concurrently.
func (b *BasicOps) WriteBatch(_ context.Context, params map[string]interface{}) (*types.Result, error) {
	raw, ok := params["items"].([]interface{})
	if !ok {
		return Failure("items parameter required")
	}

	items := make([]vfs.WriteItem, 0, len(raw))
	for _, r := range raw {
		m, ok := r.(map[string]interface{})
		if !ok {
			return Failure("items must be objects with path and content")
		}
		path, ok := m["path"].(string)
		if !ok || path == "" {
			return Failure("items must be objects with path and content")
		}
		content, _ := m["content"].(string)
		items = append(items, vfs.WriteItem{Path: path, Content: []byte(content)})
	}

	results := b.NS.WriteBatch(items)
	b.recordUnits(results)
	return Success(batchData(results))
}

// Read reads file content.
func (b *BasicOps) Read(_ context.Context, params map[string]interface{}) (*types.Result, error) {
	path, ok := stringParam(params, "path")
	if !ok {
		return Failure("path parameter required")
	}

	content, err := b.NS.Read(path)
	if err != nil {
		return failErr(err)
	}
	return Success(map[string]interface{}{
		"path":    path,
		"content": string(content),
		"size":    len(content),
	})
}

// Delete deletes a file or empty directory.
func (b *BasicOps) Delete(_ context.Context, params map[string]interface{}) (*types.Result, error) {
	path, ok := stringParam(params, "path")
	if !ok {
		return Failure("path parameter required")
	}

	if err := b.NS.Delete(path); err != nil {
		return failErr(err)
	}
	return Success(map[string]interface{}{"deleted": true, "path": path})
}

// DeleteBatch deletes multiple files concurrently.
func (b *BasicOps) DeleteBatch(_ context.Context, params map[string]interface{}) (*types.Result, error) {
	paths, ok := stringsParam(params, "paths")
	if !ok {
		return Failure("paths parameter required")
	}

	results := b.NS.DeleteBatch(paths)
	b.recordUnits(results)
	return Success(batchData(results))
}

// Exists checks whether a path names a file or directory.
func (b *BasicOps) Exists(_ context.Context, params map[string]interface{}) (*types.Result, error) {
	path, ok := stringParam(params, "path")
	if !ok {
		return Failure("path parameter required")
	}

	kind, exists := b.NS.Stat(path)
	data := map[string]interface{}{"path": path, "exists": exists}
	if exists {
		data["type"] = kind.String()
	}
	return Success(data)
}

func (b *BasicOps) recordUnits(results []vfs.BatchResult) {
	for _, r := range results {
		if r.Err != nil {
			b.Metrics.RecordBatchUnit("error")
		} else {
			b.Metrics.RecordBatchUnit("ok")
		}
	}
}
