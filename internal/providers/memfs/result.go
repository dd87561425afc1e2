package memfs

import (
	"github.com/memfsd/memfsd/internal/types"
	"github.com/memfsd/memfsd/internal/vfs"
)

// Success wraps data in a successful result.
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure wraps a message in a failed result.
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

// failErr maps a namespace error to a failed result, carrying the typed
// error text so the caller can render it.
func failErr(err error) (*types.Result, error) {
	return Failure(err.Error())
}

func stringParam(params map[string]interface{}, key string) (string, bool) {
	v, ok := params[key].(string)
	return v, ok && v != ""
}

func boolParam(params map[string]interface{}, key string) bool {
	v, _ := params[key].(bool)
	return v
}

// stringsParam accepts both []string and the []interface{} shape JSON
// decoding produces.
func stringsParam(params map[string]interface{}, key string) ([]string, bool) {
	switch v := params[key].(type) {
	case []string:
		return v, true
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}

func entryData(name string, e vfs.Entry) map[string]interface{} {
	return map[string]interface{}{
		"name":     name,
		"type":     e.Kind.String(),
		"size":     e.Size,
		"created":  e.Created.Format(vfs.DateLayout),
		"modified": e.Modified.Format(vfs.DateLayout),
	}
}

// batchData builds the aggregate report of a batch: per-item outcomes in
// input order plus the subset of failed paths with their reasons.
func batchData(results []vfs.BatchResult) map[string]interface{} {
	items := make([]map[string]interface{}, 0, len(results))
	failed := make(map[string]string)
	succeeded := 0
	for _, r := range results {
		item := map[string]interface{}{"path": r.Path, "ok": r.Err == nil}
		if r.Err != nil {
			item["error"] = r.Err.Error()
			failed[r.Path] = r.Err.Error()
		} else {
			succeeded++
		}
		items = append(items, item)
	}
	return map[string]interface{}{
		"results":   items,
		"succeeded": succeeded,
		"failed":    failed,
	}
}
