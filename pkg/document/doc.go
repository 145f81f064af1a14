// Package document defines the serialized form of a computed mosaic layout.
//
// A [Layout] is what the CLI writes to layout.json, what the HTTP API
// returns, what the cache stores and what MongoDB persists. It is a plain
// data structure with JSON and BSON tags and no behaviour beyond
// conversion and validation:
//
//	res, _ := builder.Prepare()
//	doc := document.FromResult(res, document.Meta{Name: "gallery", Viewport: 375})
//	data, _ := document.Marshal(doc)
//
// Renderers in pkg/render consume documents rather than live layout
// results, so a stored layout can be re-rendered without recomputing it.
package document
