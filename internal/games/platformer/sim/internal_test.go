package sim

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

type seqRand struct {
	n []int
	i int
}

func (r *seqRand) Intn(int) int {
	v := r.n[r.i%len(r.n)]
	r.i++
	return v
}

func (r *seqRand) Float64() float64 { return 0 }

func TestStrideRange(t *testing.T) {
	r := &seqRand{n: []int{0, 1, 2, 3, 4}}
	want := []float64{-5, -4, -3, -2, -1}
	for i, w := range want {
		if got := stride(r); got != w {
			t.Errorf("stride #%d = %v, expected %v", i, got, w)
		}
	}

	if got := stride(&seqRand{n: []int{5}}); got != 1 {
		t.Errorf("zero factor should map to 1, got %v", got)
	}
}

func TestUpdateWithoutPlayer(t *testing.T) {
	lvl, err := ParseLevel("#@.o#")
	if err != nil {
		t.Fatalf("ParseLevel() failed: %v", err)
	}
	s := Start(lvl, WithRand(&seqRand{n: []int{4}}))

	var rest []Actor
	for _, a := range s.actors {
		if a.Kind() != KindPlayer {
			rest = append(rest, a)
		}
	}
	broken := s.with(rest, Playing)

	_, err = broken.Update(0.1, core.NewInputFrame())
	if !errors.Is(err, ErrInvariantViolation) {
		t.Errorf("Update() error = %v, expected ErrInvariantViolation", err)
	}
}

func TestOverlapIsStrict(t *testing.T) {
	tests := []struct {
		name string
		a, b Actor
		want bool
	}{
		{"shared edge", Lava{pos: V(0, 0)}, Lava{pos: V(1, 0)}, false},
		{"shared corner", Lava{pos: V(0, 0)}, Lava{pos: V(1, 1)}, false},
		{"inside", Lava{pos: V(0, 0)}, Coin{pos: V(0.2, 0.2)}, true},
		{"partial", Player{pos: V(0.5, -1)}, Monster{pos: V(1, 0)}, true},
		{"apart", Player{pos: V(5, 5)}, Monster{pos: V(1, 0)}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := overlap(tc.a, tc.b); got != tc.want {
				t.Errorf("overlap() = %v, expected %v", got, tc.want)
			}
			if got := overlap(tc.b, tc.a); got != tc.want {
				t.Errorf("overlap() reversed = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestLethal(t *testing.T) {
	if !Lethal(Lava{}) || !Lethal(Monster{}) {
		t.Error("lava and monsters should be lethal")
	}
	if Lethal(Coin{}) || Lethal(Player{}) {
		t.Error("coins and players should not be lethal")
	}
}
