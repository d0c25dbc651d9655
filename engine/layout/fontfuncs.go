package layout

// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © Norbert Pillmayer <norbert@pillmayer.com>

import (
	"sync/atomic"

	"github.com/boxesandglue/textshape/ot"
	"github.com/npillmayer/leshape/core/fix8"
	"github.com/npillmayer/leshape/core/font"
)

// fontFuncs is the immutable callback table sessions bind to their
// shaping-engine font handle. Each callback delegates to a borrowed
// font.Access capability; the table itself holds no state and is shared
// by every session in the process.
type fontFuncs struct {
	glyph        func(fa font.Access, ch rune, vs rune) (font.GlyphID, bool)
	hAdvance     func(fa font.Access, gid font.GlyphID) fix8.Position
	contourPoint func(fa font.Access, gid font.GlyphID, pointIndex int) (x, y fix8.Position, ok bool)
	refTable     func(fa font.Access, tag ot.Tag) []byte
}

var sharedFontFuncs atomic.Pointer[fontFuncs]

// fontCallbacks returns the process-wide callback table, building it on
// first use. Two goroutines may race to build it; the loser's candidate
// is discarded and never published, so all callers see the same table.
func fontCallbacks() *fontFuncs {
	if f := sharedFontFuncs.Load(); f != nil {
		return f
	}
	f := &fontFuncs{
		glyph:        accessGlyph,
		hAdvance:     accessHAdvance,
		contourPoint: accessContourPoint,
		refTable:     accessTable,
	}
	if !sharedFontFuncs.CompareAndSwap(nil, f) {
		return sharedFontFuncs.Load()
	}
	return f
}

// accessGlyph maps a code-point to a glyph ID. The variation selector is
// accepted but not forwarded, since font.Access has no variation-aware
// lookup.
//
// A missed mapping comes back as glyph 0 (.notdef) with ok still true.
// Legacy callers depend on character lookups never reporting failure, so
// the unmapped case deliberately stays indistinguishable from a mapped
// .notdef here.
func accessGlyph(fa font.Access, ch rune, vs rune) (font.GlyphID, bool) {
	return fa.MapCharToGlyph(ch), true
}

// accessHAdvance reports a glyph's horizontal advance at the capability's
// point size, as a fixed-point value.
func accessHAdvance(fa font.Access, gid font.GlyphID) fix8.Position {
	return fix8.FromFloat32(fa.GlyphAdvance(gid).X)
}

// accessContourPoint fetches a single outline point, used for hinted
// attachment positioning. ok=false is a miss for this one query only and
// never taints the session.
func accessContourPoint(fa font.Access, gid font.GlyphID, pointIndex int) (x, y fix8.Position, ok bool) {
	p, ok := fa.GlyphPoint(gid, pointIndex)
	if !ok {
		return 0, 0, false
	}
	return fix8.FromFloat32(p.X), fix8.FromFloat32(p.Y), true
}

// accessTable serves a raw sfnt table; nil means the font has none.
func accessTable(fa font.Access, tag ot.Tag) []byte {
	data := fa.Table(font.TableTag(tag))
	if len(data) == 0 {
		return nil
	}
	return data
}
