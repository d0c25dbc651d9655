package layout

// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © Norbert Pillmayer <norbert@pillmayer.com>

import (
	"sort"
	"unicode"
	"unicode/utf16"

	"github.com/boxesandglue/textshape/ot"
	"github.com/npillmayer/leshape/core"
)

// LayoutChars shapes a run of characters and stores the result in the
// session, replacing any previous run. The shaped glyphs are then read
// out with GlyphCount, Glyphs, CharIndices and GlyphPositions.
//
// chars is UTF-16 encoded text. The character range [offset, offset+count)
// is the run to shape; characters before and after it, up to max, are fed
// to the shaping engine as context only and produce no output glyphs.
// max bounds the context and must not exceed len(chars).
//
// penX and penY are the starting pen position; glyph positions are
// reported absolute, in the caller's y-down coordinate space.
//
// Returns the number of glyphs in the shaped run.
func (e *Engine) LayoutChars(chars []uint16, offset, count, max int, rightToLeft bool,
	penX, penY float32) (int, error) {
	//
	if err := e.ready(); err != nil {
		return 0, err
	}
	if e.err != nil {
		return 0, e.err
	}
	if len(chars) == 0 || offset < 0 || count < 0 || max < 0 ||
		offset >= max || offset+count > max || max > len(chars) {
		e.err = core.Error(core.EINVALID,
			"layout run out of bounds: offset=%d count=%d max=%d len=%d",
			offset, count, max, len(chars))
		return 0, e.err
	}
	e.penX, e.penY = penX, penY
	e.run = e.run[:0]

	cps, srcIdx := decodeUTF16(chars[:max])

	buf := e.buf
	buf.Reset()
	if rightToLeft {
		buf.Direction = ot.DirectionRTL
	} else {
		buf.Direction = ot.DirectionLTR
	}
	buf.Script = e.script
	// TODO hand e.lang to the buffer once the shaping engine selects
	// language-specific lookups
	var flags ot.BufferFlags
	if offset == 0 {
		flags |= ot.BufferFlagBOT
	}
	if offset+count == max {
		flags |= ot.BufferFlagEOT
	}
	buf.Flags = flags
	buf.AddCodepoints(cps)

	// Character-to-glyph mapping goes through the font callbacks; the
	// shaping engine keeps pre-set glyph IDs and only maps what is still
	// unset. A pre-set .notdef (glyph 0) is indistinguishable from unset
	// and would get remapped through the assembled face's cmap, so zero
	// results are recorded and re-asserted after shaping.
	notdef := make(map[ot.Codepoint]bool)
	for i := range buf.Info {
		gid, _ := e.funcs.glyph(e.access, rune(buf.Info[i].Codepoint), 0)
		if gid == 0 {
			notdef[buf.Info[i].Codepoint] = true
		}
		buf.Info[i].GlyphID = gid
	}

	e.shaper.Shape(buf, e.features)

	e.collectRun(buf, srcIdx, offset, count, max, notdef)
	tracer().Debugf("layout of %d characters produced %d glyphs", count, len(e.run))
	return len(e.run), nil
}

// Reset discards the shaped run and re-arms the session for the next
// LayoutChars call. A pending sticky error is not cleared.
func (e *Engine) Reset() {
	if e == nil {
		return
	}
	if e.buf != nil {
		e.buf.Reset()
	}
	e.run = e.run[:0]
	e.penX, e.penY = 0, 0
}

// decodeUTF16 decodes UTF-16 code units into code-points for the shaping
// buffer, remembering for each code-point the index of its first code
// unit. Unpaired surrogates decode to U+FFFD, consuming one unit.
func decodeUTF16(units []uint16) (cps []ot.Codepoint, srcIdx []int) {
	cps = make([]ot.Codepoint, 0, len(units))
	srcIdx = make([]int, 0, len(units))
	for i := 0; i < len(units); i++ {
		r := rune(units[i])
		if utf16.IsSurrogate(r) {
			if i+1 < len(units) {
				if c := utf16.DecodeRune(r, rune(units[i+1])); c != unicode.ReplacementChar {
					cps = append(cps, ot.Codepoint(c))
					srcIdx = append(srcIdx, i)
					i++
					continue
				}
			}
			r = unicode.ReplacementChar
		}
		cps = append(cps, ot.Codepoint(r))
		srcIdx = append(srcIdx, i)
	}
	return cps, srcIdx
}

// collectRun materializes the shaping engine's output as the session's
// glyph run. Glyphs whose cluster lies entirely outside
// [offset, offset+count) originate from context characters and are
// dropped. Cluster merging can make a cluster straddle the run's leading
// boundary (a run-initial mark merged into a context base); such clusters
// are kept, with the character index clamped to the run's start, so the
// run character never vanishes from the output. Metrics convert to
// fixed-point caller scale here, with the capability's advance as the
// base and the engine contributing only the positioning delta on top.
func (e *Engine) collectRun(buf *ot.Buffer, srcIdx []int, offset, count, max int,
	notdef map[ot.Codepoint]bool) {
	//
	ends := clusterEnds(buf, len(srcIdx))
	for i := range buf.Info {
		info := &buf.Info[i]
		c := info.Cluster
		if c < 0 || c >= len(srcIdx) {
			continue
		}
		src := srcIdx[c]
		srcEnd := max
		if end := ends[c]; end < len(srcIdx) {
			srcEnd = srcIdx[end]
		}
		if src >= offset+count || srcEnd <= offset {
			continue
		}
		if src < offset {
			src = offset
		}
		gid := info.GlyphID
		if notdef[info.Codepoint] {
			// the capability reported .notdef for this character; its
			// mapping is authoritative over the assembled face's cmap
			gid = 0
		}
		pos := buf.Pos[i]
		base := e.baseAdvance(info.GlyphID)
		e.run = append(e.run, glyphRecord{
			glyph:    uint32(gid),
			cluster:  int32(src),
			xAdvance: e.funcs.hAdvance(e.access, gid) + e.emScaleX(int32(pos.XAdvance)-base),
			yAdvance: e.emScaleY(int32(pos.YAdvance)),
			xOffset:  e.emScaleX(int32(pos.XOffset)),
			yOffset:  e.emScaleY(int32(pos.YOffset)),
		})
	}
}

// clusterEnds maps every cluster value occurring in the buffer to its
// exclusive end in fed code-point order. Merging removes cluster values,
// so a cluster's extent runs to the next value still present, or to n
// for the last one.
func clusterEnds(buf *ot.Buffer, n int) map[int]int {
	starts := make([]int, 0, len(buf.Info))
	seen := make(map[int]bool, len(buf.Info))
	for i := range buf.Info {
		if c := buf.Info[i].Cluster; !seen[c] {
			seen[c] = true
			starts = append(starts, c)
		}
	}
	sort.Ints(starts)
	ends := make(map[int]int, len(starts))
	for i, c := range starts {
		if i+1 < len(starts) {
			ends[c] = starts[i+1]
		} else {
			ends[c] = n
		}
	}
	return ends
}
