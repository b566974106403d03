// Package schemas embeds the JSON Schemas for the service's request and response documents.
package schemas

import "embed"

// Files holds every *.schema.json file in this directory.
//
//go:embed *.schema.json
var Files embed.FS
