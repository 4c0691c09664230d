// Copyright 2025 - 2026, the Veya Reader contributors
// SPDX-License-Identifier: AGPL-3.0-only

package core

import (
	"github.com/tidwall/gjson"
)

// BlockMeta is a typed view over a block's opaque styling metadata.
//
// Every accessor treats a wrong-typed value exactly like an absent one, so
// the three-tier fallback in ResolveStyle (block metadata -> presentation
// config -> engine default) holds for each attribute independently.
type BlockMeta struct {
	raw []byte
}

// MetaOf wraps the metadata of a block for querying.
func MetaOf(block RawBlock) BlockMeta {
	return BlockMeta{raw: block.Metadata}
}

// Str returns the string value for key, reporting whether it was present
// and actually a string.
func (m BlockMeta) Str(key string) (string, bool) {
	res := gjson.GetBytes(m.raw, key)
	if res.Type != gjson.String {
		return "", false
	}

	return res.Str, true
}

// StrOr returns the string value for key, or def when absent or wrong-typed.
func (m BlockMeta) StrOr(key, def string) string {
	if v, ok := m.Str(key); ok {
		return v
	}

	return def
}

// Num returns the numeric value for key, reporting whether it was present
// and actually a number.
func (m BlockMeta) Num(key string) (float64, bool) {
	res := gjson.GetBytes(m.raw, key)
	if res.Type != gjson.Number {
		return 0, false
	}

	return res.Num, true
}

// NumOr returns the numeric value for key, or def when absent or wrong-typed.
func (m BlockMeta) NumOr(key string, def float64) float64 {
	if v, ok := m.Num(key); ok {
		return v
	}

	return def
}

// Bool returns the boolean value for key, reporting whether it was present
// and actually a boolean.
func (m BlockMeta) Bool(key string) (bool, bool) {
	res := gjson.GetBytes(m.raw, key)
	if !res.IsBool() {
		return false, false
	}

	return res.Bool(), true
}

// Colors returns the string entries of an array value for key.
//
// Non-string entries are skipped, so a gradient array polluted with nulls or
// numbers degrades to its usable color stops instead of failing.
func (m BlockMeta) Colors(key string) []string {
	return strSliceOf(gjson.GetBytes(m.raw, key))
}

// Has reports whether key is present at all, regardless of type.
func (m BlockMeta) Has(key string) bool {
	return gjson.GetBytes(m.raw, key).Exists()
}
