/*
Package layout adapts a legacy character-layout API to a capability-based
text-shaping engine.

Callers hand in a font-access capability (see core/font), a script, a
language and typographic flags, and get back a layout engine session. The
session feeds UTF-16 character runs to the external shaping engine and
exposes the shaped result through the legacy extraction calls: parallel
arrays of glyph IDs, source character indices and absolute pen positions.

Shape analysis itself — substitution, reordering, contextual forms,
kerning — is entirely the shaping engine's business; this package only
owns the boundary: callback bridging, buffer lifecycle, and conversion of
the engine's fixed-point metrics into caller-space floating coordinates.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layout

import (
	"github.com/boxesandglue/textshape/ot"
	"github.com/npillmayer/leshape/core"
	"github.com/npillmayer/leshape/core/fix8"
	"github.com/npillmayer/leshape/core/font"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/language"
)

// tracer traces with key 'leshape.layout'.
func tracer() tracing.Trace {
	return tracing.Select("leshape.layout")
}

// Typographic flags, to be OR-ed into the typoFlags argument of New.
const (
	TypoFlagKern = 0x1 // enable pair kerning
	TypoFlagLiga = 0x2 // enable standard + contextual ligatures
)

// Engine is one layout-engine session: it owns a shaping buffer and a
// shaping-engine font handle for its whole lifetime, and borrows the
// font-access capability it was constructed over.
//
// An Engine is not safe for concurrent use. Errors are sticky: once an
// operation has failed, every subsequent operation is a no-op returning
// the pending error, until ClearError is called.
type Engine struct {
	access font.Access // borrowed; must outlive the session
	funcs  *fontFuncs  // process-wide callback table

	otf    *ot.Font
	face   *ot.Face
	shaper *ot.Shaper
	buf    *ot.Buffer
	hmtx   *ot.Hmtx // engine's base advances, for isolating positioning deltas

	upem           int32
	xScale, yScale fix8.Position // y is negative: caller space is y-down
	xPpem, yPpem   float32       // recorded hinting hints; the shaping engine has no ppem consumer yet

	script    ot.Tag
	lang      language.Tag
	typoFlags int
	features  []ot.Feature

	penX, penY float32
	run        []glyphRecord

	err    error
	closed bool
}

// glyphRecord is one shaped glyph in engine output order, with metrics
// already converted to fixed-point caller scale.
type glyphRecord struct {
	glyph    uint32
	cluster  int32 // UTF-16 index into the caller's character array
	xAdvance fix8.Position
	yAdvance fix8.Position
	xOffset  fix8.Position
	yOffset  fix8.Position
}

// New creates a layout engine session over a font-access capability.
//
// script and lang describe the text runs this session will shape; lang is
// recorded but not yet handed to the shaping engine.
// typoFlags is an OR of TypoFlagKern and TypoFlagLiga.
//
// The capability is borrowed, not owned: it must stay alive until Close.
func New(access font.Access, script language.Script, lang language.Tag, typoFlags int) (*Engine, error) {
	if access == nil {
		return nil, core.Error(core.EINVALID, "layout engine needs a font access capability")
	}
	e := &Engine{
		access:    access,
		funcs:     fontCallbacks(),
		buf:       ot.NewBuffer(),
		script:    scriptTag(script),
		lang:      lang,
		typoFlags: typoFlags,
		features:  featureList(typoFlags),
	}
	data := buildFaceData(e.funcs, access)
	if len(data) == 0 {
		return nil, core.Error(core.EALLOC, "font access capability serves no sfnt tables")
	}
	otf, err := ot.ParseFont(data, 0)
	if err != nil {
		return nil, core.WrapError(err, core.EALLOC, "cannot create shaping-engine face")
	}
	face, err := ot.NewFace(otf)
	if err != nil {
		return nil, core.WrapError(err, core.EALLOC, "cannot create shaping-engine face")
	}
	shaper, err := ot.NewShaperFromFace(face)
	if err != nil {
		return nil, core.WrapError(err, core.EALLOC, "cannot create shaping-engine font")
	}
	e.otf, e.face, e.shaper = otf, face, shaper
	if otf.HasTable(ot.TagHmtx) && otf.HasTable(ot.TagHhea) {
		e.hmtx, _ = ot.ParseHmtxFromFont(otf)
	}
	e.upem = int32(face.Upem())
	e.xScale = fix8.FromFloat32(access.XPixelsPerEm() * access.ScaleFactorX())
	e.yScale = -fix8.FromFloat32(access.YPixelsPerEm() * access.ScaleFactorY())
	e.xPpem = access.XPixelsPerEm()
	e.yPpem = access.YPixelsPerEm()
	tracer().Debugf("layout engine session created, upem=%d, scale=(%s, %s)",
		e.upem, e.xScale, e.yScale)
	return e, nil
}

// NewDefault creates a session with kerning and ligatures enabled.
func NewDefault(access font.Access, script language.Script, lang language.Tag) (*Engine, error) {
	return New(access, script, lang, TypoFlagKern|TypoFlagLiga)
}

// Close releases the session's shaping buffer and font handle. It is
// idempotent and safe to call on a nil session.
func (e *Engine) Close() {
	if e == nil {
		return
	}
	e.buf = nil
	e.shaper = nil
	e.face = nil
	e.otf = nil
	e.hmtx = nil
	e.run = nil
	e.closed = true
}

// Err returns the pending sticky error, if any.
func (e *Engine) Err() error {
	if e == nil {
		return nil
	}
	return e.err
}

// ClearError discards a pending sticky error, making the session usable
// again.
func (e *Engine) ClearError() {
	if e == nil {
		return
	}
	e.err = nil
}

// ready guards every operation against unusable sessions: nil handles
// (failed construction) and closed sessions.
func (e *Engine) ready() error {
	if e == nil || e.closed || e.shaper == nil || e.buf == nil {
		return core.Error(core.EALLOC, "layout engine session is not usable")
	}
	return nil
}

// emScaleX brings a horizontal font-unit value into fixed-point caller
// scale.
func (e *Engine) emScaleX(v int32) fix8.Position {
	return fix8.MulDiv(v, e.xScale, e.upem)
}

// emScaleY is the vertical counterpart of emScaleX; the negative y-scale
// flips the shaping engine's y-up convention to the caller's y-down.
func (e *Engine) emScaleY(v int32) fix8.Position {
	return fix8.MulDiv(v, e.yScale, e.upem)
}

// baseAdvance returns the advance the shaping engine started from for a
// glyph, in font units. Subtracting it from the engine's output isolates
// the positioning adjustments (kerning etc.) from the base metrics, which
// the font-access capability is authoritative for.
func (e *Engine) baseAdvance(gid font.GlyphID) int32 {
	if e.hmtx != nil {
		return int32(e.hmtx.GetAdvanceWidth(gid))
	}
	return e.upem / 2
}
