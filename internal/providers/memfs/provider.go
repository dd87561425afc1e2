package memfs

import (
	"context"
	"fmt"
	"time"

	"github.com/memfsd/memfsd/internal/infrastructure/monitoring"
	"github.com/memfsd/memfsd/internal/logging"
	"github.com/memfsd/memfsd/internal/types"
	"github.com/memfsd/memfsd/internal/vfs"
)

// Ops carries the shared collaborators of every tool module.
type Ops struct {
	NS      *vfs.Namespace
	Log     *logging.Logger
	Metrics *monitoring.Metrics

	// SnapshotDir anchors relative snapshot filenames.
	SnapshotDir string
}

// Provider exposes the namespace as a tool-based service.
type Provider struct {
	ops       *Ops
	basic     *BasicOps
	directory *DirectoryOps
	transfer  *TransferOps
	search    *SearchOps
	persist   *PersistOps
}

// NewProvider creates the memfs provider. Metrics may be nil.
func NewProvider(ns *vfs.Namespace, log *logging.Logger, metrics *monitoring.Metrics, snapshotDir string) *Provider {
	if log == nil {
		log = logging.NewNop()
	}
	ops := &Ops{NS: ns, Log: log, Metrics: metrics, SnapshotDir: snapshotDir}
	return &Provider{
		ops:       ops,
		basic:     &BasicOps{ops},
		directory: &DirectoryOps{ops},
		transfer:  &TransferOps{ops},
		search:    &SearchOps{ops},
		persist:   &PersistOps{ops},
	}
}

// Definition returns the service definition with all tool descriptors.
func (p *Provider) Definition() types.Service {
	var tools []types.Tool
	tools = append(tools, p.basic.GetTools()...)
	tools = append(tools, p.directory.GetTools()...)
	tools = append(tools, p.transfer.GetTools()...)
	tools = append(tools, p.search.GetTools()...)
	tools = append(tools, p.persist.GetTools()...)

	return types.Service{
		ID:          "memfs",
		Name:        "Memory File System",
		Description: "In-memory hierarchical namespace with Unix-like path semantics",
		Category:    types.CategoryFilesystem,
		Capabilities: []string{
			"create", "read", "write", "delete",
			"move", "copy", "search", "batch", "persistence",
		},
		Tools: tools,
	}
}

// Execute dispatches a tool invocation into the namespace.
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}) (*types.Result, error) {
	start := time.Now()

	result, err := p.dispatch(ctx, toolID, params)

	status := "ok"
	if err != nil || result == nil || !result.Success {
		status = "error"
	}
	p.ops.Metrics.RecordOp(toolID, status, time.Since(start))

	stats := p.ops.NS.Stats()
	p.ops.Metrics.SetNamespaceSize(stats.Entries, stats.TotalBytes)

	return result, err
}

func (p *Provider) dispatch(ctx context.Context, toolID string, params map[string]interface{}) (*types.Result, error) {
	switch toolID {
	case "memfs.create":
		return p.basic.Create(ctx, params)
	case "memfs.create_batch":
		return p.basic.CreateBatch(ctx, params)
	case "memfs.write":
		return p.basic.Write(ctx, params)
	case "memfs.write_batch":
		return p.basic.WriteBatch(ctx, params)
	case "memfs.read":
		return p.basic.Read(ctx, params)
	case "memfs.delete":
		return p.basic.Delete(ctx, params)
	case "memfs.delete_batch":
		return p.basic.DeleteBatch(ctx, params)
	case "memfs.exists":
		return p.basic.Exists(ctx, params)
	case "memfs.mkdir":
		return p.directory.Mkdir(ctx, params)
	case "memfs.rmdir":
		return p.directory.Rmdir(ctx, params)
	case "memfs.list":
		return p.directory.List(ctx, params)
	case "memfs.cd":
		return p.directory.Chdir(ctx, params)
	case "memfs.pwd":
		return p.directory.Cwd(ctx, params)
	case "memfs.move":
		return p.transfer.Move(ctx, params)
	case "memfs.copy":
		return p.transfer.Copy(ctx, params)
	case "memfs.info":
		return p.transfer.Info(ctx, params)
	case "memfs.stats":
		return p.transfer.Stats(ctx, params)
	case "memfs.search":
		return p.search.Search(ctx, params)
	case "memfs.search_glob":
		return p.search.SearchGlob(ctx, params)
	case "memfs.save":
		return p.persist.Save(ctx, params)
	case "memfs.load":
		return p.persist.Load(ctx, params)
	default:
		return Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}
