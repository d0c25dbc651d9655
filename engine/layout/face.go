package layout

// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © Norbert Pillmayer <norbert@pillmayer.com>

import (
	"encoding/binary"
	"sort"

	"github.com/boxesandglue/textshape/ot"
	"github.com/npillmayer/leshape/core/font"
)

// faceTables lists every sfnt table the shaping engine may consume. The
// capability is queried for each; absent ones are simply left out of the
// assembled face.
var faceTables = []ot.Tag{
	ot.TagCmap, ot.TagHead, ot.TagHhea, ot.TagHmtx, ot.TagMaxp,
	ot.TagOS2, ot.TagPost, ot.TagName,
	ot.TagGlyf, ot.TagLoca, ot.TagCFF,
	ot.TagGDEF, ot.TagGSUB, ot.TagGPOS,
	ot.MakeTag('k', 'e', 'r', 'n'),
	ot.TagFvar, ot.TagAvar, ot.TagHvar,
}

// buildFaceData assembles an in-memory sfnt binary from the tables the
// font-access capability serves through the table-reference callback. The
// shaping engine then parses this binary like a regular font file, while
// the table payloads remain the capability's verbatim bytes.
//
// Returns nil if the capability serves no tables at all.
func buildFaceData(funcs *fontFuncs, fa font.Access) []byte {
	type tableEntry struct {
		tag  ot.Tag
		data []byte
	}
	var entries []tableEntry
	version := uint32(0x00010000) // TrueType outlines
	for _, tag := range faceTables {
		if data := funcs.refTable(fa, tag); len(data) > 0 {
			entries = append(entries, tableEntry{tag, data})
			if tag == ot.TagCFF {
				version = 0x4F54544F // 'OTTO', CFF outlines
			}
		}
	}
	if len(entries) == 0 {
		return nil
	}
	// sfnt requires the table directory sorted by tag
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].tag < entries[j].tag
	})
	n := len(entries)
	entrySelector := 0
	for 1<<(entrySelector+1) <= n {
		entrySelector++
	}
	searchRange := 16 * (1 << entrySelector)
	rangeShift := 16*n - searchRange

	size := 12 + 16*n
	offsets := make([]int, n)
	for i, e := range entries {
		offsets[i] = size
		size += (len(e.data) + 3) &^ 3 // tables start 4-byte aligned
	}
	blob := make([]byte, size)
	binary.BigEndian.PutUint32(blob[0:], version)
	binary.BigEndian.PutUint16(blob[4:], uint16(n))
	binary.BigEndian.PutUint16(blob[6:], uint16(searchRange))
	binary.BigEndian.PutUint16(blob[8:], uint16(entrySelector))
	binary.BigEndian.PutUint16(blob[10:], uint16(rangeShift))
	for i, e := range entries {
		rec := 12 + 16*i
		binary.BigEndian.PutUint32(blob[rec:], uint32(e.tag))
		// checksum stays zero; the shaping engine does not verify it
		binary.BigEndian.PutUint32(blob[rec+8:], uint32(offsets[i]))
		binary.BigEndian.PutUint32(blob[rec+12:], uint32(len(e.data)))
		copy(blob[offsets[i]:], e.data)
	}
	return blob
}
