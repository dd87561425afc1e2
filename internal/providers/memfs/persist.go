package memfs

import (
	"context"
	"path/filepath"

	"github.com/memfsd/memfsd/internal/types"
	"go.uber.org/zap"
)

// PersistOps handles namespace snapshot save and load.
type PersistOps struct {
	*Ops
}

// GetTools returns persistence tool definitions.
func (p *PersistOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "memfs.save",
			Name:        "Save Snapshot",
			Description: "Serialize the whole namespace to a snapshot file",
			Parameters: []types.Parameter{
				{Name: "filename", Type: "string", Description: "Snapshot filename", Required: true},
			},
			Returns: "boolean",
		},
		{
			ID:          "memfs.load",
			Name:        "Load Snapshot",
			Description: "Replace the namespace with a snapshot file's contents",
			Parameters: []types.Parameter{
				{Name: "filename", Type: "string", Description: "Snapshot filename", Required: true},
			},
			Returns: "boolean",
		},
	}
}

// Save serializes the namespace to disk.
func (p *PersistOps) Save(_ context.Context, params map[string]interface{}) (*types.Result, error) {
	filename, ok := stringParam(params, "filename")
	if !ok {
		return Failure("filename parameter required")
	}

	target := p.resolveSnapshot(filename)
	if err := p.NS.Save(target); err != nil {
		return failErr(err)
	}
	p.Log.Info("namespace saved", zap.String("file", target))
	return Success(map[string]interface{}{"saved": true, "file": target})
}

// Load replaces the namespace with a snapshot. Full overwrite, not a
// merge.
func (p *PersistOps) Load(_ context.Context, params map[string]interface{}) (*types.Result, error) {
	filename, ok := stringParam(params, "filename")
	if !ok {
		return Failure("filename parameter required")
	}

	target := p.resolveSnapshot(filename)
	if err := p.NS.Load(target); err != nil {
		return failErr(err)
	}
	stats := p.NS.Stats()
	p.Log.Info("namespace loaded",
		zap.String("file", target),
		zap.Int("entries", stats.Entries),
	)
	return Success(map[string]interface{}{"loaded": true, "file": target, "entries": stats.Entries})
}

// resolveSnapshot anchors relative filenames in the configured snapshot
// directory; absolute paths pass through.
func (p *PersistOps) resolveSnapshot(filename string) string {
	if filepath.IsAbs(filename) || p.SnapshotDir == "" {
		return filename
	}
	return filepath.Join(p.SnapshotDir, filename)
}
