package layout

// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © Norbert Pillmayer <norbert@pillmayer.com>

import (
	"github.com/npillmayer/leshape/core"
)

// GlyphCount returns the number of glyphs in the shaped run, 0 if no run
// has been laid out or the session is unusable.
func (e *Engine) GlyphCount() int {
	if e == nil || e.closed {
		return 0
	}
	return len(e.run)
}

// Glyphs copies the run's glyph IDs into out, OR-ing extraBits into every
// entry. out must hold at least GlyphCount() entries.
func (e *Engine) Glyphs(out []uint32, extraBits uint32) error {
	if err := e.ready(); err != nil {
		return err
	}
	if e.err != nil {
		return e.err
	}
	if len(out) < len(e.run) {
		e.err = core.Error(core.EINVALID,
			"glyph output array too small: %d < %d", len(out), len(e.run))
		return e.err
	}
	for i, g := range e.run {
		out[i] = g.glyph | extraBits
	}
	return nil
}

// CharIndices copies, per glyph, the UTF-16 index of the character the
// glyph derives from, shifted by indexBase. Indices are relative to the
// chars array given to LayoutChars, not to the run's offset. out must
// hold at least GlyphCount() entries.
//
// With ligatures enabled a character index may be missing (the ligature
// glyph carries its first character's index); in right-to-left runs the
// indices are non-increasing.
func (e *Engine) CharIndices(out []int32, indexBase int32) error {
	if err := e.ready(); err != nil {
		return err
	}
	if e.err != nil {
		return e.err
	}
	if len(out) < len(e.run) {
		e.err = core.Error(core.EINVALID,
			"char index output array too small: %d < %d", len(out), len(e.run))
		return e.err
	}
	for i, g := range e.run {
		out[i] = g.cluster + indexBase
	}
	return nil
}

// GlyphPositions copies the run's absolute glyph positions into out as
// (x, y) pairs, starting at the pen position given to LayoutChars.
// A trailing extra pair holds the pen position after the run, so out
// must hold at least 2*(GlyphCount()+1) entries.
func (e *Engine) GlyphPositions(out []float32) error {
	if err := e.ready(); err != nil {
		return err
	}
	if e.err != nil {
		return e.err
	}
	if len(out) < 2*(len(e.run)+1) {
		e.err = core.Error(core.EINVALID,
			"position output array too small: %d < %d", len(out), 2*(len(e.run)+1))
		return e.err
	}
	x, y := e.penX, e.penY
	i := 0
	for _, g := range e.run {
		out[2*i] = x + g.xOffset.Float32()
		out[2*i+1] = y + g.yOffset.Float32()
		x += g.xAdvance.Float32()
		y += g.yAdvance.Float32()
		i++
	}
	out[2*i] = x
	out[2*i+1] = y
	return nil
}

// GlyphPosition returns the absolute position of the glyph at index i,
// or, for i == GlyphCount(), the pen position after the run. The cost is
// linear in i.
func (e *Engine) GlyphPosition(i int) (x, y float32, err error) {
	if err := e.ready(); err != nil {
		return 0, 0, err
	}
	if e.err != nil {
		return 0, 0, e.err
	}
	if i < 0 || i > len(e.run) {
		e.err = core.Error(core.EINVALID,
			"glyph index out of bounds: %d not in [0, %d]", i, len(e.run))
		return 0, 0, e.err
	}
	x, y = e.penX, e.penY
	for j := 0; j < i; j++ {
		x += e.run[j].xAdvance.Float32()
		y += e.run[j].yAdvance.Float32()
	}
	if i < len(e.run) {
		x += e.run[i].xOffset.Float32()
		y += e.run[i].yOffset.Float32()
	}
	return x, y, nil
}
