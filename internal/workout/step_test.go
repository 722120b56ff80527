package workout

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
)

const sampleCatalog = `{
  "workouts": [
    {
      "id": "full-body",
      "name": "Full Body",
      "muscleGroups": ["Chest", "Legs"],
      "steps": [
        {"type": "exercise", "name": "Pushups", "duration": 30, "description": "Keep good form."},
        {"type": "rest", "duration": 10},
        {
          "type": "repetition",
          "count": 2,
          "restBetweenReps": 5,
          "steps": [
            {"type": "exercise", "name": "Lunges", "duration": 40},
            {"type": "repetition", "count": 3, "steps": [{"type": "exercise", "name": "Hop", "duration": 2}]}
          ]
        }
      ]
    },
    {
      "id": "sectioned",
      "name": "Sectioned",
      "sections": [
        {"name": "Warmup", "steps": [{"type": "exercise", "name": "Stretch", "duration": 60}]}
      ]
    }
  ]
}`

// TestDecodeCatalog verifies that every step variant, including nested
// repetitions, decodes from the workouts.json wire format.
func TestDecodeCatalog(t *testing.T) {
	var data Data
	if err := json.Unmarshal([]byte(sampleCatalog), &data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(data.Workouts) != 2 {
		t.Fatalf("workouts = %d, want 2", len(data.Workouts))
	}

	fb := data.Workouts[0]
	want := Steps{
		Exercise{Name: "Pushups", DurationSeconds: 30, Description: "Keep good form."},
		Rest{DurationSeconds: 10},
		Repetition{
			Count:                  2,
			RestBetweenRepsSeconds: 5,
			Steps: Steps{
				Exercise{Name: "Lunges", DurationSeconds: 40},
				Repetition{Count: 3, Steps: Steps{Exercise{Name: "Hop", DurationSeconds: 2}}},
			},
		},
	}
	if !reflect.DeepEqual(fb.Steps, want) {
		t.Errorf("steps = %#v\nwant %#v", fb.Steps, want)
	}
	if fb.Sections != nil {
		t.Errorf("sections = %#v, want nil for absent field", fb.Sections)
	}
	if !reflect.DeepEqual(fb.MuscleGroups, []string{"Chest", "Legs"}) {
		t.Errorf("muscleGroups = %v", fb.MuscleGroups)
	}

	sec := data.Workouts[1]
	if sec.Steps != nil {
		t.Errorf("steps = %#v, want nil for absent field", sec.Steps)
	}
	if len(sec.Sections) != 1 || sec.Sections[0].Name != "Warmup" {
		t.Errorf("sections = %#v", sec.Sections)
	}
}

// TestDecodeEmptySectionsIsPresent verifies that "sections": [] decodes to a
// non-nil slice, so it still takes precedence over top-level steps.
func TestDecodeEmptySectionsIsPresent(t *testing.T) {
	var w Workout
	if err := json.Unmarshal([]byte(`{"id":"x","name":"X","sections":[],"steps":[{"type":"rest","duration":5}]}`), &w); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if w.Sections == nil {
		t.Fatal("sections = nil, want empty non-nil slice")
	}
	if got := DurationOfWorkout(w); got != 0 {
		t.Errorf("DurationOfWorkout = %d, want 0 (sections win)", got)
	}
}

// TestDecodeUnknownStepType verifies that an unrecognized discriminator is
// reported as an error instead of being skipped or treated as zero duration.
func TestDecodeUnknownStepType(t *testing.T) {
	cases := []struct {
		name string
		json string
	}{
		{"unknown tag", `{"id":"x","name":"X","steps":[{"type":"stretch","duration":5}]}`},
		{"missing tag", `{"id":"x","name":"X","steps":[{"duration":5}]}`},
		{"nested unknown", `{"id":"x","name":"X","steps":[{"type":"repetition","count":2,"steps":[{"type":"jog"}]}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var w Workout
			err := json.Unmarshal([]byte(tc.json), &w)
			if err == nil {
				t.Fatal("expected error for unknown step type")
			}
			if !errors.Is(err, ErrUnknownStepType) {
				t.Errorf("err = %v, want ErrUnknownStepType", err)
			}
		})
	}
}

// TestMarshalStepsUsesWireNames verifies steps encode back with the type tag
// and the field names the catalog file uses.
func TestMarshalStepsUsesWireNames(t *testing.T) {
	steps := Steps{
		Exercise{Name: "Squats", DurationSeconds: 20},
		Repetition{Count: 2, Steps: Steps{Rest{DurationSeconds: 0}}, RestBetweenRepsSeconds: 3},
	}
	data, err := json.Marshal(steps)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got := string(data)
	for _, want := range []string{
		`"type":"exercise"`, `"name":"Squats"`, `"duration":20`,
		`"type":"repetition"`, `"count":2`, `"restBetweenReps":3`,
		`"type":"rest","duration":0`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("marshal output %s missing %s", got, want)
		}
	}

	var back Steps
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(back, steps) {
		t.Errorf("decoded = %#v, want %#v", back, steps)
	}
}

// TestValidate verifies the invariants rejected before a workout reaches the engine.
func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		w       Workout
		wantErr bool
	}{
		{"valid steps", Workout{ID: "a", Steps: Steps{Exercise{Name: "x", DurationSeconds: 1}}}, false},
		{"no steps or sections", Workout{ID: "a"}, false},
		{"missing id", Workout{Steps: Steps{Rest{DurationSeconds: 1}}}, true},
		{"negative exercise", Workout{ID: "a", Steps: Steps{Exercise{DurationSeconds: -1}}}, true},
		{"negative rest", Workout{ID: "a", Steps: Steps{Rest{DurationSeconds: -5}}}, true},
		{"zero count", Workout{ID: "a", Steps: Steps{Repetition{Count: 0}}}, true},
		{"negative rest between reps", Workout{ID: "a", Steps: Steps{Repetition{Count: 2, RestBetweenRepsSeconds: -1}}}, true},
		{"nested invalid", Workout{ID: "a", Sections: []Section{{Name: "s", Steps: Steps{Repetition{Count: 1, Steps: Steps{Rest{DurationSeconds: -1}}}}}}}, true},
		{"nil step", Workout{ID: "a", Steps: Steps{nil}}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.w.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.wantErr && !errors.Is(err, ErrInvalidWorkout) {
				t.Errorf("err = %v, want ErrInvalidWorkout", err)
			}
		})
	}
}
