package minefield_test

import (
	"testing"

	"github.com/vovakirdan/minefield/internal/minefield"
)

func TestDump(t *testing.T) {
	s := mustLayout(t, 3, 3, minefield.C(0, 0))
	s.Reveal(2, 2)

	want := "" +
		"   012\n" +
		" 0 #1.\n" +
		" 1 11.\n" +
		" 2 ...\n"
	if got := s.Dump(false); got != want {
		t.Errorf("Dump(false) =\n%s\nwant\n%s", got, want)
	}
}

func TestDumpMarksAndRevealAll(t *testing.T) {
	s := mustLayout(t, 2, 3, minefield.C(0, 0), minefield.C(1, 2))
	s.CycleMark(0, 0) // correct flag
	s.CycleMark(0, 2) // wrong flag
	s.CycleMark(1, 0)
	s.CycleMark(1, 0) // question mark
	s.Reveal(0, 1)

	hidden := "" +
		"   012\n" +
		" 0 F2F\n" +
		" 1 ?##\n"
	if got := s.Dump(false); got != hidden {
		t.Errorf("Dump(false) =\n%s\nwant\n%s", got, hidden)
	}

	if got := s.Reveal(1, 2); got != minefield.Loss {
		t.Fatalf("Reveal(1,2) = %v, want Loss", got)
	}
	all := "" +
		"   012\n" +
		" 0 F2x\n" +
		" 1 ?#X\n"
	if got := s.Dump(true); got != all {
		t.Errorf("Dump(true) =\n%s\nwant\n%s", got, all)
	}
}
