package segment

import (
	"reflect"
	"testing"
)

func TestPatternSegment(t *testing.T) {
	p := NewPattern(2)

	got := p.Segment("don't stop me now")
	want := []string{"don't", "stop", "me", "now"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPatternDropsShortWords(t *testing.T) {
	p := NewPattern(2)

	got := p.Segment("a i to be or not")
	want := []string{"to", "be", "or", "not"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPatternTrimsApostrophes(t *testing.T) {
	p := NewPattern(2)

	got := p.Segment("'tis rock 'n' roll")
	want := []string{"tis", "rock", "roll"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPatternEmptyInput(t *testing.T) {
	p := NewPattern(2)
	if got := p.Segment("   "); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}

func TestPatternDefaultMinLen(t *testing.T) {
	p := NewPattern(0)
	got := p.Segment("a bb")
	want := []string{"bb"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
