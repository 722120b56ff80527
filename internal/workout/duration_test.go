package workout

import (
	"math/rand/v2"
	"testing"
)

// TestDurationOfWorkout verifies totals for flat, sectioned, nested and empty workouts.
func TestDurationOfWorkout(t *testing.T) {
	cases := []struct {
		name string
		w    Workout
		want int
	}{
		{
			name: "flat steps",
			w:    Workout{ID: "1", Steps: Steps{Exercise{Name: "Jump", DurationSeconds: 20}, Rest{DurationSeconds: 10}}},
			want: 30,
		},
		{
			name: "sections",
			w: Workout{ID: "2", Sections: []Section{
				{Name: "Warmup", Steps: Steps{Exercise{Name: "Stretch", DurationSeconds: 60}}},
				{Name: "Main", Steps: Steps{Exercise{Name: "Run", DurationSeconds: 120}, Rest{DurationSeconds: 30}}},
			}},
			want: 210,
		},
		{
			// 30 + (20*2 + 5) + 10
			name: "repetition in section",
			w: Workout{ID: "3", Sections: []Section{{Name: "Circuit", Steps: Steps{
				Exercise{Name: "Jumping Jacks", DurationSeconds: 30},
				Repetition{Count: 2, Steps: Steps{Exercise{Name: "Burpees", DurationSeconds: 20}}, RestBetweenRepsSeconds: 5},
				Rest{DurationSeconds: 10},
			}}}},
			want: 85,
		},
		{
			// 10 + (40+10)*2 + 5
			name: "intro plus lunges",
			w: Workout{ID: "4", Steps: Steps{
				Exercise{Name: "Intro", DurationSeconds: 10},
				Repetition{Count: 2, Steps: Steps{Exercise{Name: "Lunges", DurationSeconds: 40}, Rest{DurationSeconds: 10}}, RestBetweenRepsSeconds: 5},
			}},
			want: 115,
		},
		{
			name: "pushups and rest",
			w:    Workout{ID: "5", Steps: Steps{Exercise{Name: "Pushups", DurationSeconds: 30}, Rest{DurationSeconds: 10}}},
			want: 40,
		},
		{
			name: "single repetition never charges rest",
			w:    Workout{ID: "6", Steps: Steps{Repetition{Count: 1, Steps: Steps{Rest{DurationSeconds: 7}}, RestBetweenRepsSeconds: 100}}},
			want: 7,
		},
		{
			name: "empty repetition",
			w:    Workout{ID: "7", Steps: Steps{Repetition{Count: 3, RestBetweenRepsSeconds: 4}}},
			want: 8,
		},
		{name: "no steps or sections", w: Workout{ID: "8"}, want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DurationOfWorkout(tc.w); got != tc.want {
				t.Errorf("DurationOfWorkout = %d, want %d", got, tc.want)
			}
		})
	}
}

// TestDurationSectionsWinOverSteps verifies that sections are used when a
// workout carries both fields.
func TestDurationSectionsWinOverSteps(t *testing.T) {
	w := Workout{
		ID:       "both",
		Steps:    Steps{Exercise{Name: "ignored", DurationSeconds: 999}},
		Sections: []Section{{Name: "A", Steps: Steps{Rest{DurationSeconds: 12}}}},
	}
	if got := DurationOfWorkout(w); got != 12 {
		t.Errorf("DurationOfWorkout = %d, want 12", got)
	}
}

// TestDurationOfStepsProperty checks random nested trees against a naive
// reference that expands every repetition pass literally, and against the
// sum of the flattened sequence.
func TestDurationOfStepsProperty(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 500; i++ {
		steps := randomSteps(rng, 0)
		got := DurationOfSteps(steps)
		want := referenceDuration(steps)
		if got != want {
			t.Fatalf("case %d: DurationOfSteps = %d, want %d", i, got, want)
		}
		if got < 0 {
			t.Fatalf("case %d: negative duration %d", i, got)
		}
		flat := 0
		for _, fs := range Flatten(Workout{ID: "p", Steps: steps}) {
			flat += fs.Step.Seconds()
		}
		if flat != got {
			t.Fatalf("case %d: flattened sum = %d, want %d", i, flat, got)
		}
	}
}

func referenceDuration(steps Steps) int {
	total := 0
	for _, step := range steps {
		switch s := step.(type) {
		case Exercise:
			total += s.DurationSeconds
		case Rest:
			total += s.DurationSeconds
		case Repetition:
			for pass := 0; pass < s.Count; pass++ {
				total += referenceDuration(s.Steps)
				if pass < s.Count-1 {
					total += s.RestBetweenRepsSeconds
				}
			}
		}
	}
	return total
}

// randomSteps builds a step tree up to four levels deep.
func randomSteps(rng *rand.Rand, depth int) Steps {
	n := rng.IntN(4)
	steps := make(Steps, 0, n)
	for i := 0; i < n; i++ {
		kind := rng.IntN(3)
		if depth >= 4 {
			kind = rng.IntN(2)
		}
		switch kind {
		case 0:
			steps = append(steps, Exercise{Name: "ex", DurationSeconds: rng.IntN(60)})
		case 1:
			steps = append(steps, Rest{DurationSeconds: rng.IntN(30)})
		default:
			steps = append(steps, Repetition{
				Count:                  1 + rng.IntN(3),
				Steps:                  randomSteps(rng, depth+1),
				RestBetweenRepsSeconds: rng.IntN(3) * 5,
			})
		}
	}
	return steps
}
