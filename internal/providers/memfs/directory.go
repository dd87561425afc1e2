package memfs

import (
	"context"

	"github.com/memfsd/memfsd/internal/types"
	"github.com/memfsd/memfsd/internal/vfs"
)

// DirectoryOps handles directory operations and the working-directory
// cursor.
type DirectoryOps struct {
	*Ops
}

// GetTools returns directory operation tool definitions.
func (d *DirectoryOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "memfs.mkdir",
			Name:        "Create Directory",
			Description: "Create a directory, materializing missing ancestors",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Directory path", Required: true},
			},
			Returns: "boolean",
		},
		{
			ID:          "memfs.rmdir",
			Name:        "Remove Directory",
			Description: "Remove a directory; recursive mode removes its contents",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Directory path", Required: true},
				{Name: "recursive", Type: "boolean", Description: "Remove contents too", Required: false},
			},
			Returns: "boolean",
		},
		{
			ID:          "memfs.list",
			Name:        "List Directory",
			Description: "List direct children of a directory",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Directory path (defaults to cwd)", Required: false},
				{Name: "detailed", Type: "boolean", Description: "Include sizes and timestamps", Required: false},
			},
			Returns: "array",
		},
		{
			ID:          "memfs.cd",
			Name:        "Change Directory",
			Description: "Move the working-directory cursor",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Target directory", Required: true},
			},
			Returns: "string",
		},
		{
			ID:          "memfs.pwd",
			Name:        "Working Directory",
			Description: "Report the working-directory cursor",
			Returns:     "string",
		},
	}
}

// Mkdir creates a directory.
func (d *DirectoryOps) Mkdir(_ context.Context, params map[string]interface{}) (*types.Result, error) {
	path, ok := stringParam(params, "path")
	if !ok {
		return Failure("path parameter required")
	}

	if err := d.NS.Mkdir(path); err != nil {
		return failErr(err)
	}
	return Success(map[string]interface{}{"created": true, "path": path})
}

// Rmdir removes a directory, recursively when requested.
func (d *DirectoryOps) Rmdir(_ context.Context, params map[string]interface{}) (*types.Result, error) {
	path, ok := stringParam(params, "path")
	if !ok {
		return Failure("path parameter required")
	}

	if err := d.NS.Remove(path, boolParam(params, "recursive")); err != nil {
		return failErr(err)
	}
	return Success(map[string]interface{}{"deleted": true, "path": path})
}

// List lists direct children of a directory. Without the detailed flag,
// entries are bare names with a trailing slash marking directories.
func (d *DirectoryOps) List(_ context.Context, params map[string]interface{}) (*types.Result, error) {
	path, ok := stringParam(params, "path")
	if !ok {
		path = "."
	}

	children, err := d.NS.List(path)
	if err != nil {
		return failErr(err)
	}

	if !boolParam(params, "detailed") {
		names := make([]string, 0, len(children))
		for _, c := range children {
			name := c.Name
			if c.Entry.Kind == vfs.KindDirectory {
				name += "/"
			}
			names = append(names, name)
		}
		return Success(map[string]interface{}{"path": path, "entries": names, "count": len(names)})
	}

	entries := make([]map[string]interface{}, 0, len(children))
	for _, c := range children {
		entries = append(entries, entryData(c.Name, c.Entry))
	}
	return Success(map[string]interface{}{"path": path, "entries": entries, "count": len(entries)})
}

// Chdir moves the working-directory cursor.
func (d *DirectoryOps) Chdir(_ context.Context, params map[string]interface{}) (*types.Result, error) {
	path, ok := stringParam(params, "path")
	if !ok {
		return Failure("path parameter required")
	}

	if err := d.NS.Chdir(path); err != nil {
		return failErr(err)
	}
	return Success(map[string]interface{}{"cwd": d.NS.Cwd()})
}

// Cwd reports the working-directory cursor.
func (d *DirectoryOps) Cwd(_ context.Context, _ map[string]interface{}) (*types.Result, error) {
	return Success(map[string]interface{}{"cwd": d.NS.Cwd()})
}
