package dedupe

// Package dedupe provides shared singleflight groups used to deduplicate
// concurrent catalog reads. Only one database query runs for a given key
// while other callers wait for its result.

import "golang.org/x/sync/singleflight"

// CatalogGroup deduplicates catalog loads. The full listing uses the key
// "catalog"; team summaries use "summary:<team key>".
var CatalogGroup singleflight.Group
