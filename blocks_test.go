package ucdblocks_test

import (
	"testing"
	"unicode"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/ucdblocks"
)

func TestBlockOfBoundaries(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	table, err := ucdblocks.Parse("0000..007F; Basic Latin\n0080..00FF; Latin-1 Supplement")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if name := table.BlockOf(0x007F); name != "Basic Latin" {
		t.Errorf("expected block of 007F to be 'Basic Latin', is %q", name)
	}
	if name := table.BlockOf(0x0080); name != "Latin-1 Supplement" {
		t.Errorf("expected block of 0080 to be 'Latin-1 Supplement', is %q", name)
	}
}

func TestBlockOfGaps(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	table, err := ucdblocks.Parse("0100..017F; Latin Extended-A\n01C0..01FF; Fantasy Block")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	for _, r := range []rune{0x00FF, 0x0180, 0x01BF, 0x0200, 0x10FFFF} {
		if name := table.BlockOf(r); name != ucdblocks.NoBlock {
			t.Errorf("expected %#U to be in no block, is in %q", r, name)
		}
	}
	if name := table.BlockOf(0x01C0); name != "Fantasy Block" {
		t.Errorf("expected block of 01C0 to be 'Fantasy Block', is %q", name)
	}
}

// Mirrors the lookup scenario from real UCD data.
func TestRealUnicodeBlocks(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	table, err := ucdblocks.FromFile("testdata/Blocks.txt")
	if err != nil {
		t.Fatalf("cannot load testdata/Blocks.txt: %v", err)
	}
	t.Logf("table has %d block ranges", table.Len())
	for _, r := range []rune{0x0080, '½', 0x00FF} {
		if name := table.BlockOf(r); name != "Latin-1 Supplement" {
			t.Errorf("expected %#U in 'Latin-1 Supplement', is in %q", r, name)
		}
	}
	if name := table.BlockOf(0xEFFFF); name != ucdblocks.NoBlock {
		t.Errorf("expected U+EFFFF in no block, is in %q", name)
	}
	if name := table.BlockOf(0x1F600); name != "Emoticons" {
		t.Errorf("expected U+1F600 in 'Emoticons', is in %q", name)
	}
}

func TestNames(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	table, err := ucdblocks.Parse("0000..007F; Basic Latin\n0080..00FF; Latin-1 Supplement")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	names := table.Names()
	if len(names) != 2 || names[0] != "Basic Latin" || names[1] != "Latin-1 Supplement" {
		t.Errorf("unexpected block names %v", names)
	}
}

func TestRangeTable(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	table, err := ucdblocks.FromFile("testdata/Blocks.txt")
	if err != nil {
		t.Fatalf("cannot load testdata/Blocks.txt: %v", err)
	}
	latin1 := table.RangeTable("Latin-1 Supplement")
	for _, r := range []rune{0x0080, 0x00BD, 0x00FF} {
		if !unicode.Is(latin1, r) {
			t.Errorf("expected %#U to be member of the Latin-1 Supplement range table", r)
		}
	}
	for _, r := range []rune{0x007F, 0x0100, 0x1F600} {
		if unicode.Is(latin1, r) {
			t.Errorf("expected %#U not to be member of the Latin-1 Supplement range table", r)
		}
	}
	emoticons := table.RangeTable("Emoticons")
	if !unicode.Is(emoticons, 0x1F600) {
		t.Errorf("expected U+1F600 to be member of the Emoticons range table")
	}
}
