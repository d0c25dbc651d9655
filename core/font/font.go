/*
Package font declares the font-access capability consumed by the layout
engine.

The capability is the caller's view of a font: it answers glyph mapping,
metric and raw-table queries, but hides how the font was loaded or parsed.
The layout engine borrows an Access for the lifetime of one session and
never mutates it; the caller must guarantee it outlives the session.

All coordinate values returned by an Access are in caller units ("pixels"),
i.e. already scaled to the device resolution the caller works in. The
engine session converts them to the shaping engine's fixed-point format
(see package core/fix8).

----------------------------------------------------------------------

BSD License

Copyright (c) 2017-21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package font

import "fmt"

// GlyphID is a glyph index within a font.
type GlyphID = uint16

// Point is a cartesian coordinate pair in caller units.
type Point struct {
	X, Y float32
}

// TableTag identifies an sfnt font table by its 4-byte tag.
type TableTag uint32

// MakeTableTag creates a TableTag from 4 characters, e.g.
// MakeTableTag('c', 'm', 'a', 'p').
func MakeTableTag(a, b, c, d byte) TableTag {
	return TableTag(uint32(a)<<24 | uint32(b)<<16 | uint32(c)<<8 | uint32(d))
}

// Stringer implementation.
func (t TableTag) String() string {
	return fmt.Sprintf("%c%c%c%c", byte(t>>24), byte(t>>16), byte(t>>8), byte(t))
}

// Access is the font-access capability: a set of synchronous, side-effect
// free queries against one font at one size.
//
// An Access is borrowed, not owned, by an engine session. Implementations
// need not be safe for concurrent use; the engine queries them from a
// single goroutine only.
type Access interface {
	// MapCharToGlyph returns the glyph index for a Unicode code-point.
	// Unmapped code-points yield glyph 0 (.notdef).
	MapCharToGlyph(ch rune) GlyphID

	// GlyphAdvance returns the advance vector for a glyph, in caller units.
	GlyphAdvance(gid GlyphID) Point

	// GlyphPoint returns the position of an outline contour point of a
	// glyph, in caller units. ok is false if the glyph has no such point.
	GlyphPoint(gid GlyphID, pointIndex int) (p Point, ok bool)

	// Table returns the raw bytes of an sfnt font table, or a nil/empty
	// slice if the font does not carry the table. The returned slice is
	// read-only and remains valid for the lifetime of the Access.
	Table(tag TableTag) []byte

	// XPixelsPerEm and YPixelsPerEm return the nominal pixels-per-em the
	// font has been set up for.
	XPixelsPerEm() float32
	YPixelsPerEm() float32

	// ScaleFactorX and ScaleFactorY return additional device scale factors
	// applied on top of the pixels-per-em.
	ScaleFactorX() float32
	ScaleFactorY() float32
}
