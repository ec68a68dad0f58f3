package api

import (
	"context"
	"encoding/json"

	"financetracker/internal/repository"
)

// ExportData snapshots all six collections into one document. The caller
// (file download, backup CLI) serializes it; the gateway hands over the
// structured form.
func (g *Gateway) ExportData(ctx context.Context) Response {
	g.pause()
	return g.respond(g.repo.ExportAll(ctx), "Data exported successfully")
}

// ImportData merges a previously exported document. Each present collection
// overwrites the stored one wholesale; absent collections stay untouched.
// There is no atomicity across collections.
func (g *Gateway) ImportData(ctx context.Context, doc repository.ExportDocument) Response {
	g.pause()

	if err := g.repo.Import(ctx, doc); err != nil {
		return g.failOp("import data", err)
	}
	return g.respond(nil, "Data imported successfully")
}

// ImportJSON parses a raw export document and merges it. A malformed
// document is reported through the envelope and leaves all collections
// unmodified, since nothing was merged yet.
func (g *Gateway) ImportJSON(ctx context.Context, raw []byte) Response {
	g.pause()

	var doc repository.ExportDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return g.failOp("import data", err)
	}

	if err := g.repo.Import(ctx, doc); err != nil {
		return g.failOp("import data", err)
	}
	return g.respond(nil, "Data imported successfully")
}
