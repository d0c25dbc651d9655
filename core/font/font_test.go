package font

import (
	"fmt"
	"testing"
)

func TestTableTag(t *testing.T) {
	tag := MakeTableTag('c', 'm', 'a', 'p')
	if uint32(tag) != 0x636d6170 {
		t.Errorf("expected tag 'cmap' to encode as 636d6170, is %x", uint32(tag))
	}
	if tag.String() != "cmap" {
		t.Errorf("expected tag to format as 'cmap', is %q", tag.String())
	}
	s := fmt.Sprintf("%s", MakeTableTag('O', 'S', '/', '2'))
	if s != "OS/2" {
		t.Errorf("expected tag to format as 'OS/2', is %q", s)
	}
}
