package fix8

import "testing"

func TestFloatConversion(t *testing.T) {
	if p := FromFloat32(1.5); p != 384 {
		t.Errorf("expected 1.5 to convert to 384/256, have %d", p)
	}
	if f := Position(384).Float32(); f != 1.5 {
		t.Errorf("expected 384/256 to convert to 1.5, have %f", f)
	}
	if p := FromFloat32(-2.25); p != -576 {
		t.Errorf("expected -2.25 to convert to -576/256, have %d", p)
	}
}

func TestMulDiv(t *testing.T) {
	// 1000 font units at 12 ppem over a 2048-unit em
	scale := FromFloat32(12)
	if p := MulDiv(1000, scale, 2048); p != 1500 {
		t.Errorf("expected scaled advance of 1500/256, have %d", p)
	}
	if p := MulDiv(1000, -scale, 2048); p != -1500 {
		t.Errorf("expected inverted axis to negate, have %d", p)
	}
	if p := MulDiv(1000, scale, 0); p != 0 {
		t.Errorf("expected zero for zero denominator, have %d", p)
	}
}

func TestString(t *testing.T) {
	if s := Position(384).String(); s == "" {
		t.Error("expected non-empty position formatting")
	}
}
