package static

import (
	"errors"
	"strings"
	"testing"
)

func TestDefaultRulesetLoads(t *testing.T) {
	logic, err := Default()
	if err != nil {
		t.Fatalf("load default rule set: %v", err)
	}

	if len(logic.Rooms) == 0 {
		t.Fatal("no rooms loaded")
	}
	if logic.PaintingEntrances <= 0 || logic.PaintingExits <= 0 {
		t.Fatalf("painting targets %d/%d", logic.PaintingEntrances, logic.PaintingExits)
	}

	door, ok := logic.Door("Starting Room", "Back Right Door")
	if !ok {
		t.Fatal("starting room door missing")
	}
	if door.ItemName != "Starting Room - Back Right Door" {
		t.Fatalf("door item %q", door.ItemName)
	}

	painting, ok := logic.PaintingByID("pilgrim_painting")
	if !ok {
		t.Fatal("pilgrim painting missing")
	}
	if painting.Room != "Pilgrim Room" {
		t.Fatalf("pilgrim painting in room %q", painting.Room)
	}
	if !painting.Required || !painting.ExitOnly {
		t.Fatal("pilgrim painting flags lost in load")
	}

	if !logic.RequiredPaintingRoom("Pilgrim Room", false) {
		t.Fatal("pilgrim room not marked required")
	}
	if logic.RequiredPaintingRoom("Rhyme Room", false) {
		t.Fatal("rhyme room required without the no-doors extension")
	}
	if !logic.RequiredPaintingRoom("Rhyme Room", true) {
		t.Fatal("rhyme room not required with the no-doors extension")
	}

	prog, ok := logic.Progression("Orange Tower", "Fifth Floor")
	if !ok {
		t.Fatal("tower progression missing")
	}
	if prog.ItemName != "Progressive Orange Tower" || prog.Index != 4 {
		t.Fatalf("tower progression %+v", prog)
	}
}

func TestParseRejectsBrokenTables(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{
			name: "duplicate room",
			yaml: `
rooms:
  - name: Atrium
  - name: Atrium
`,
			want: ErrDuplicateRoom,
		},
		{
			name: "door references unknown panel",
			yaml: `
rooms:
  - name: Atrium
    doors:
      - name: East Door
        item: Atrium - East Door
        panels:
          - panel: MISSING
`,
			want: ErrUnknownReference,
		},
		{
			name: "location references unknown room",
			yaml: `
rooms:
  - name: Atrium
    panels:
      - name: WELCOME
locations:
  - name: Annex - WELCOME
    room: Annex
    code: 1
    classification: [normal]
`,
			want: ErrUnknownReference,
		},
		{
			name: "painting requires unknown door",
			yaml: `
rooms:
  - name: Atrium
    paintings:
      - id: lone_painting
        required_door:
          room: Atrium
          door: MISSING
`,
			want: ErrUnknownReference,
		},
		{
			name: "required exits exceed target",
			yaml: `
painting_entrances: 1
painting_exits: 1
rooms:
  - name: Atrium
    paintings:
      - id: first_painting
        exit_only: true
        required: true
      - id: second_painting
        exit_only: true
        required: true
      - id: third_painting
      - id: fourth_painting
      - id: fifth_painting
`,
			want: ErrPaintingCounts,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestParseRejectsUnknownEnumValues(t *testing.T) {
	badClassification := `
rooms:
  - name: Atrium
    panels:
      - name: WELCOME
locations:
  - name: Atrium - WELCOME
    room: Atrium
    code: 1
    classification: [bogus]
`
	if _, err := Parse([]byte(badClassification)); err == nil ||
		!strings.Contains(err.Error(), "classification") {
		t.Fatalf("expected classification error, got %v", err)
	}

	badMode := `
rooms:
  - name: Atrium
items:
  - name: Odd Item
    mode: bogus
`
	if _, err := Parse([]byte(badMode)); err == nil || !strings.Contains(err.Error(), "mode") {
		t.Fatalf("expected item mode error, got %v", err)
	}
}
