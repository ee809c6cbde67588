package score

import (
	"testing"

	"quadstep/internal/game"
)

func countsOf(grades ...game.Grade) [game.NumGrades]int {
	var counts [game.NumGrades]int
	for _, g := range grades {
		counts[g]++
	}
	return counts
}

func TestAllMarvelousPlay(t *testing.T) {
	health := DefaultHealth()
	s := applyAll(NewState(20), health, make([]game.Grade, 20)...)

	if p := Percentage(s.Counts, s.TotalNotes); p != 100 {
		t.Log("got percentage", p)
		t.Fail()
	}
	if score := FinalScore(s.Counts, s.TotalNotes); score != 1000000 {
		t.Log("got score", score)
		t.Fail()
	}
	if grade := LetterGrade(s.Counts, s.TotalNotes); grade != "AAAA" {
		t.Log("got grade", grade)
		t.Fail()
	}
	if !FullCombo(s.Counts, s.TotalJudged) {
		t.Log("an all-marvelous play is a full combo")
		t.Fail()
	}
}

func TestAllMissPlay(t *testing.T) {
	health := DefaultHealth()
	s := NewState(20)
	for i := 0; i < 20; i++ {
		s = s.Apply(judgement(game.Miss), health)
	}

	if p := Percentage(s.Counts, s.TotalNotes); p != 0 {
		t.Log("got percentage", p)
		t.Fail()
	}
	if score := FinalScore(s.Counts, s.TotalNotes); score != 0 {
		t.Log("got score", score)
		t.Fail()
	}
	if !s.Failed {
		t.Log("an all-miss play must fail")
		t.Fail()
	}
	if FullCombo(s.Counts, s.TotalJudged) {
		t.Log("an all-miss play is not a full combo")
		t.Fail()
	}
}

// The final score ignores the combo multiplier that shapes the running
// score: only the grade counts matter once the play is over.
func TestFinalScoreIgnoresMultiplier(t *testing.T) {
	health := DefaultHealth()

	// Same grades, different order: a boo in the middle breaks the combo
	// and changes the running score, but not the final one.
	a := applyAll(NewState(21), health,
		append([]game.Grade{game.Boo}, make([]game.Grade, 20)...)...)
	b := applyAll(NewState(21), health, make([]game.Grade, 10)...)
	b = b.Apply(judgement(game.Boo), health)
	b = applyAll(b, health, make([]game.Grade, 10)...)

	if a.Score == b.Score {
		t.Log("running scores should differ across orderings:", a.Score, b.Score)
		t.Fail()
	}
	if FinalScore(a.Counts, a.TotalNotes) != FinalScore(b.Counts, b.TotalNotes) {
		t.Log("final scores must agree:", FinalScore(a.Counts, a.TotalNotes), FinalScore(b.Counts, b.TotalNotes))
		t.Fail()
	}
}

var letterGradeTests = map[string][game.NumGrades]int{
	// 4 notes per case unless stated; weights marvelous=100, perfect=98,
	// great=65, good=25.
	"AAAA": countsOf(game.Marvelous, game.Marvelous, game.Marvelous, game.Marvelous),
	"AA":   countsOf(game.Perfect, game.Perfect, game.Perfect, game.Perfect),     // 98%
	"A":    countsOf(game.Marvelous, game.Marvelous, game.Marvelous, game.Great), // 91.25%
	"B":    countsOf(game.Great, game.Great, game.Great, game.Great),             // 65%
	"C":    countsOf(game.Marvelous, game.Marvelous, game.Miss, game.Miss),       // 50%
	"D":    countsOf(game.Miss, game.Miss, game.Miss, game.Miss),                 // 0%
}

func TestLetterGrade(t *testing.T) {
	for expected, counts := range letterGradeTests {
		if got := LetterGrade(counts, 4); got != expected {
			t.Log("counts  ", counts)
			t.Log("got     ", got)
			t.Log("expected", expected)
			t.Fail()
		}
	}
}

func TestFullCombo(t *testing.T) {
	// Greats do not break a full combo; goods do.
	if !FullCombo(countsOf(game.Marvelous, game.Great, game.Perfect), 3) {
		t.Log("greats must not break a full combo")
		t.Fail()
	}
	if FullCombo(countsOf(game.Marvelous, game.Good), 2) {
		t.Log("goods must break a full combo")
		t.Fail()
	}
	if FullCombo([game.NumGrades]int{}, 0) {
		t.Log("an empty play is not a full combo")
		t.Fail()
	}
}

func TestNewResults(t *testing.T) {
	song := &game.Song{ID: "song-1", Title: "Test"}
	chart := &game.Chart{Difficulty: game.Hard, Level: 9}

	health := DefaultHealth()
	s := applyAll(NewState(4), health,
		game.Marvelous, game.Marvelous, game.Great, game.Marvelous)

	r := NewResults(song, chart, s)
	if r.SongID != "song-1" || r.Title != "Test" || r.Difficulty != game.Hard || r.Level != 9 {
		t.Log("got", r)
		t.Fail()
	}
	if r.TotalNotes != 4 || r.MaxCombo != 4 || r.Failed {
		t.Log("got", r)
		t.Fail()
	}
	if !r.FullCombo {
		t.Log("expected a full combo")
		t.Fail()
	}
	if r.Counts != s.Counts {
		t.Log("counts must be carried over")
		t.Fail()
	}
	expected := FinalScore(s.Counts, 4)
	if r.Score != expected {
		t.Log("got score", r.Score)
		t.Log("expected ", expected)
		t.Fail()
	}
}
