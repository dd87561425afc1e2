package memfs

import (
	"context"

	"github.com/memfsd/memfsd/internal/types"
	"github.com/memfsd/memfsd/internal/vfs"
)

// SearchOps handles pattern search over stored paths.
type SearchOps struct {
	*Ops
}

// GetTools returns search tool definitions.
func (s *SearchOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "memfs.search",
			Name:        "Search",
			Description: "Find entries whose name contains a substring",
			Parameters: []types.Parameter{
				{Name: "pattern", Type: "string", Description: "Substring to match against entry names", Required: true},
			},
			Returns: "array",
		},
		{
			ID:          "memfs.search_glob",
			Name:        "Glob Search",
			Description: "Find entries whose path matches a glob pattern (supports **)",
			Parameters: []types.Parameter{
				{Name: "pattern", Type: "string", Description: "Absolute glob pattern", Required: true},
			},
			Returns: "array",
		},
	}
}

// Search finds entries whose final path segment contains the pattern.
func (s *SearchOps) Search(_ context.Context, params map[string]interface{}) (*types.Result, error) {
	pattern, ok := stringParam(params, "pattern")
	if !ok {
		return Failure("pattern parameter required")
	}

	return Success(matchData(pattern, s.NS.Search(pattern)))
}

// SearchGlob finds entries whose full path matches a doublestar pattern.
func (s *SearchOps) SearchGlob(_ context.Context, params map[string]interface{}) (*types.Result, error) {
	pattern, ok := stringParam(params, "pattern")
	if !ok {
		return Failure("pattern parameter required")
	}

	matches, err := s.NS.SearchGlob(pattern)
	if err != nil {
		return failErr(err)
	}
	return Success(matchData(pattern, matches))
}

func matchData(pattern string, matches []vfs.SearchMatch) map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(matches))
	for _, m := range matches {
		out = append(out, map[string]interface{}{"path": m.Path, "type": m.Kind.String()})
	}
	return map[string]interface{}{
		"pattern": pattern,
		"matches": out,
		"count":   len(out),
	}
}
