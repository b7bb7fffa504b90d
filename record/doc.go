// Package record provides helpers for maps.
//
// The generic helpers (Keys, Pick, MapRecord, ...) work on any map type. The
// tree helpers (Path, SetPath, Clone, Compact, DeepMerge*, Flatten,
// Unflatten) work on decoded JSON-like documents made of map[string]any and
// []any values; other values are treated as leaves.
package record
