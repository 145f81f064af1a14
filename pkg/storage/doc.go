// Package storage persists layout documents under generated identifiers.
//
// [Memory] backs tests and single-process servers; [Mongo] stores documents
// in a MongoDB collection using the bson tags of [document.Layout]. Both
// return coded NOT_FOUND errors for unknown identifiers so the HTTP layer
// can map them to 404.
package storage
