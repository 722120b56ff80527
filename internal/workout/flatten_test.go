package workout

import (
	"math/rand/v2"
	"reflect"
	"testing"
)

func strPtr(s string) *string { return &s }

// TestFlattenSimpleSteps verifies a flat workout maps one-to-one with no section tag.
func TestFlattenSimpleSteps(t *testing.T) {
	w := Workout{ID: "simple", Steps: Steps{
		Exercise{Name: "Warmup", DurationSeconds: 30},
		Rest{DurationSeconds: 10},
		Exercise{Name: "Cool Down", DurationSeconds: 20},
	}}
	got := Flatten(w)
	want := []FlattenedStep{
		{Step: Exercise{Name: "Warmup", DurationSeconds: 30}},
		{Step: Rest{DurationSeconds: 10}},
		{Step: Exercise{Name: "Cool Down", DurationSeconds: 20}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Flatten = %#v\nwant %#v", got, want)
	}
	if got[0].SectionName != nil {
		t.Errorf("sectionName = %q, want absent", *got[0].SectionName)
	}
}

// TestFlattenSections verifies every step carries its section name and that
// sections are concatenated in order.
func TestFlattenSections(t *testing.T) {
	w := Workout{ID: "sectioned", Sections: []Section{
		{Name: "Part A", Steps: Steps{Exercise{Name: "Ex1", DurationSeconds: 15}}},
		{Name: "Part B", Steps: Steps{Rest{DurationSeconds: 5}, Exercise{Name: "Ex2", DurationSeconds: 25}}},
	}}
	got := Flatten(w)
	want := []FlattenedStep{
		{Step: Exercise{Name: "Ex1", DurationSeconds: 15}, SectionName: strPtr("Part A")},
		{Step: Rest{DurationSeconds: 5}, SectionName: strPtr("Part B")},
		{Step: Exercise{Name: "Ex2", DurationSeconds: 25}, SectionName: strPtr("Part B")},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Flatten = %#v\nwant %#v", got, want)
	}
}

// TestFlattenRepetitionWithRestBetweenReps verifies the synthetic rest sits
// between passes only, never after the last one.
func TestFlattenRepetitionWithRestBetweenReps(t *testing.T) {
	w := Workout{ID: "repetition", Steps: Steps{
		Exercise{Name: "PreRep", DurationSeconds: 20},
		Repetition{Count: 2, Steps: Steps{Exercise{Name: "RepEx1", DurationSeconds: 10}, Rest{DurationSeconds: 5}}, RestBetweenRepsSeconds: 3},
		Exercise{Name: "PostRep", DurationSeconds: 15},
	}}
	got := Flatten(w)
	want := []FlattenedStep{
		{Step: Exercise{Name: "PreRep", DurationSeconds: 20}},
		{Step: Exercise{Name: "RepEx1", DurationSeconds: 10}},
		{Step: Rest{DurationSeconds: 5}},
		{Step: Rest{DurationSeconds: 3}},
		{Step: Exercise{Name: "RepEx1", DurationSeconds: 10}},
		{Step: Rest{DurationSeconds: 5}},
		{Step: Exercise{Name: "PostRep", DurationSeconds: 15}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Flatten = %#v\nwant %#v", got, want)
	}
}

// TestFlattenIntroAndLunges pins the entry count of the overview example:
// Intro followed by two passes of [Lunges, Rest] with a 5s rest between them
// yields six entries lasting 115s in total.
func TestFlattenIntroAndLunges(t *testing.T) {
	w := Workout{ID: "lunges", Steps: Steps{
		Exercise{Name: "Intro", DurationSeconds: 10},
		Repetition{Count: 2, Steps: Steps{Exercise{Name: "Lunges", DurationSeconds: 40}, Rest{DurationSeconds: 10}}, RestBetweenRepsSeconds: 5},
	}}
	got := Flatten(w)
	want := []FlattenedStep{
		{Step: Exercise{Name: "Intro", DurationSeconds: 10}},
		{Step: Exercise{Name: "Lunges", DurationSeconds: 40}},
		{Step: Rest{DurationSeconds: 10}},
		{Step: Rest{DurationSeconds: 5}},
		{Step: Exercise{Name: "Lunges", DurationSeconds: 40}},
		{Step: Rest{DurationSeconds: 10}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Flatten = %#v\nwant %#v", got, want)
	}
	if d := DurationOfWorkout(w); d != 115 {
		t.Errorf("DurationOfWorkout = %d, want 115", d)
	}
}

// TestFlattenNestedRepetitionInSection verifies nested repetitions inherit
// the section tag of the enclosing section.
func TestFlattenNestedRepetitionInSection(t *testing.T) {
	inner := Repetition{Count: 2, Steps: Steps{Exercise{Name: "InnerEx", DurationSeconds: 5}}, RestBetweenRepsSeconds: 2}
	outer := Repetition{Count: 1, Steps: Steps{Exercise{Name: "OuterEx1", DurationSeconds: 10}, inner}}
	w := Workout{ID: "nested", Sections: []Section{{Name: "Main Section", Steps: Steps{
		Exercise{Name: "StartEx", DurationSeconds: 15},
		outer,
		Rest{DurationSeconds: 5},
	}}}}

	got := Flatten(w)
	wantSteps := []Runnable{
		Exercise{Name: "StartEx", DurationSeconds: 15},
		Exercise{Name: "OuterEx1", DurationSeconds: 10},
		Exercise{Name: "InnerEx", DurationSeconds: 5},
		Rest{DurationSeconds: 2},
		Exercise{Name: "InnerEx", DurationSeconds: 5},
		Rest{DurationSeconds: 5},
	}
	if len(got) != len(wantSteps) {
		t.Fatalf("len = %d, want %d", len(got), len(wantSteps))
	}
	for i, fs := range got {
		if !reflect.DeepEqual(fs.Step, wantSteps[i]) {
			t.Errorf("step %d = %#v, want %#v", i, fs.Step, wantSteps[i])
		}
		if fs.SectionName == nil || *fs.SectionName != "Main Section" {
			t.Errorf("step %d sectionName = %v, want Main Section", i, fs.SectionName)
		}
	}
}

// TestFlattenZeroRestBetweenRepsInsertsNothing verifies an unset or zero
// rest produces no synthetic entries.
func TestFlattenZeroRestBetweenRepsInsertsNothing(t *testing.T) {
	w := Workout{ID: "z", Steps: Steps{Repetition{Count: 3, Steps: Steps{Exercise{Name: "A", DurationSeconds: 1}}}}}
	got := Flatten(w)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i, fs := range got {
		if _, ok := fs.Step.(Exercise); !ok {
			t.Errorf("step %d = %T, want Exercise", i, fs.Step)
		}
	}
}

// TestFlattenEmpty verifies workouts without steps or sections flatten to an
// empty, non-nil sequence.
func TestFlattenEmpty(t *testing.T) {
	got := Flatten(Workout{ID: "empty"})
	if got == nil || len(got) != 0 {
		t.Errorf("Flatten = %#v, want empty slice", got)
	}
}

// TestFlattenLengthAndIdempotence checks the entry-count rule and that
// repeated calls on random workouts give equal results without touching the input.
func TestFlattenLengthAndIdempotence(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 300; i++ {
		w := Workout{ID: "p", Steps: randomSteps(rng, 0)}
		before := DurationOfWorkout(w)

		first := Flatten(w)
		second := Flatten(w)
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("case %d: Flatten not idempotent", i)
		}
		if len(first) != referenceLength(w.Steps) {
			t.Fatalf("case %d: len = %d, want %d", i, len(first), referenceLength(w.Steps))
		}
		if DurationOfWorkout(w) != before {
			t.Fatalf("case %d: input modified by Flatten", i)
		}
	}
}

func referenceLength(steps Steps) int {
	n := 0
	for _, step := range steps {
		switch s := step.(type) {
		case Repetition:
			n += s.Count * referenceLength(s.Steps)
			if s.RestBetweenRepsSeconds > 0 && s.Count > 1 {
				n += s.Count - 1
			}
		default:
			n++
		}
	}
	return n
}
