package layout

// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © Norbert Pillmayer <norbert@pillmayer.com>

import (
	"github.com/boxesandglue/textshape/ot"
	"golang.org/x/text/language"
)

// scriptTag converts a BCP-47 script to the shaping engine's ISO 15924
// tag representation (uppercase-first, e.g. 'Arab', 'Latn').
//
// Undetermined and inherited scripts come back as 0, which tells the
// shaping engine to detect the script from the text itself.
func scriptTag(s language.Script) ot.Tag {
	str := s.String()
	if len(str) != 4 {
		return 0
	}
	switch str {
	case "Zzzz", "Zyyy", "Zinh":
		return 0
	}
	return ot.MakeTag(str[0], str[1], str[2], str[3])
}

// featureList translates the session's typographic flags into a shaping
// feature list. It starts from the engine's default set and overrides the
// kerning and ligature features, so that clearing a flag actively turns
// the feature off instead of merely not requesting it.
func featureList(typoFlags int) []ot.Feature {
	feats := ot.DefaultFeatures()
	var kern, liga uint32
	if typoFlags&TypoFlagKern != 0 {
		kern = 1
	}
	if typoFlags&TypoFlagLiga != 0 {
		liga = 1
	}
	for i := range feats {
		switch feats[i].Tag {
		case ot.TagKern:
			feats[i].Value = kern
		case ot.TagLiga, ot.TagClig:
			feats[i].Value = liga
		}
	}
	return feats
}
