package players

import (
	"errors"
	"reflect"
	"testing"
)

func TestPlayerJSONTags(t *testing.T) {
	type fieldCheck struct {
		name string
		tag  string
	}
	playerType := reflect.TypeOf(Player{})
	fields := []fieldCheck{
		{"ID", "id"},
		{"Name", "name"},
		{"Positions", "positions"},
		{"Rating", "rating"},
		{"IsSelected", "isSelected,omitempty"},
		{"IsGuest", "isGuest,omitempty"},
		{"AssignedPosition", "assignedPosition,omitempty"},
	}
	for _, fc := range fields {
		f, ok := playerType.FieldByName(fc.name)
		if !ok {
			t.Fatalf("missing field %s", fc.name)
		}
		if tag := f.Tag.Get("json"); tag != fc.tag {
			t.Fatalf("field %s expected tag %s, got %s", fc.name, fc.tag, tag)
		}
	}
}

func TestParsePosition(t *testing.T) {
	cases := []struct {
		raw  string
		want Position
	}{
		{"Goalkeeper", Goalkeeper},
		{"gk", Goalkeeper},
		{" defender ", Defender},
		{"MID", Midfielder},
		{"fwd", Forward},
	}
	for _, tc := range cases {
		got, err := ParsePosition(tc.raw)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("expected %s for %q, got %s", tc.want, tc.raw, got)
		}
	}

	if _, err := ParsePosition("striker"); !errors.Is(err, ErrInvalidPlayer) {
		t.Fatalf("expected ErrInvalidPlayer, got %v", err)
	}
}

func TestPlayerHelpers(t *testing.T) {
	p := Player{ID: "1", Name: "Rooman", Positions: []Position{Defender, Goalkeeper}, Rating: 6.5}

	if p.PrimaryPosition() != Defender {
		t.Fatalf("expected primary Defender, got %s", p.PrimaryPosition())
	}
	if !p.IsGoalkeeper() {
		t.Fatalf("expected goalkeeper eligibility")
	}
	if p.CanPlay(Forward) {
		t.Fatalf("did not expect forward eligibility")
	}
	if (Player{}).PrimaryPosition() != "" {
		t.Fatalf("expected empty primary position for empty player")
	}
}

func TestCloneDoesNotShareState(t *testing.T) {
	pos := Defender
	p := Player{ID: "1", Name: "A", Positions: []Position{Defender}, AssignedPosition: &pos}

	c := p.Clone()
	c.Positions[0] = Forward
	*c.AssignedPosition = Forward

	if p.Positions[0] != Defender || *p.AssignedPosition != Defender {
		t.Fatalf("expected original to be untouched, got %+v", p)
	}
}

func TestValidate(t *testing.T) {
	cases := map[string]Player{
		"missing id":       {Name: "A", Positions: []Position{Forward}},
		"blank name":       {ID: "1", Name: "   ", Positions: []Position{Forward}},
		"no positions":     {ID: "1", Name: "A"},
		"unknown position": {ID: "1", Name: "A", Positions: []Position{"Striker"}},
		"duplicate":        {ID: "1", Name: "A", Positions: []Position{Forward, Forward}},
		"too many":         {ID: "1", Name: "A", Positions: []Position{Forward, Defender, Midfielder, Goalkeeper, Forward}},
	}
	for name, p := range cases {
		if err := p.Validate(); !errors.Is(err, ErrInvalidPlayer) {
			t.Fatalf("%s: expected ErrInvalidPlayer, got %v", name, err)
		}
	}

	ok := Player{ID: "1", Name: "A", Positions: AllPositions, Rating: 7}
	if err := ok.Validate(); err != nil {
		t.Fatalf("expected valid player, got %v", err)
	}
}

func TestValidateRosterRejectsDuplicateIDs(t *testing.T) {
	roster := []Player{
		{ID: "1", Name: "A", Positions: []Position{Forward}},
		{ID: "1", Name: "B", Positions: []Position{Defender}},
	}
	if err := ValidateRoster(roster); !errors.Is(err, ErrInvalidPlayer) {
		t.Fatalf("expected duplicate id error, got %v", err)
	}
	if err := ValidateRoster(roster[:1]); err != nil {
		t.Fatalf("expected single player roster to be valid, got %v", err)
	}
}
