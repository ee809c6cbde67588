package score

import (
	"math"

	"quadstep/internal/game"
)

// Percentage recomputes the play quality from grade counts alone, as a value
// in [0, 100]. The combo multiplier is deliberately absent here: it affects
// only the live running score, never the archived result.
func Percentage(counts [game.NumGrades]int, totalNotes int) float64 {
	if totalNotes == 0 {
		return 0
	}
	sum := 0
	for g := 0; g < game.NumGrades; g++ {
		sum += counts[g] * gradeWeight(game.Grade(g))
	}
	return float64(sum) / float64(totalNotes*100) * 100
}

// FinalScore maps the percentage onto a 0..1,000,000 scale.
func FinalScore(counts [game.NumGrades]int, totalNotes int) int {
	return int(math.Round(Percentage(counts, totalNotes) / 100 * 1000000))
}

// LetterGrade assigns the tier for a finished play. An all-marvelous clear
// sits above the top percentage tier.
func LetterGrade(counts [game.NumGrades]int, totalNotes int) string {
	if totalNotes > 0 && counts[game.Marvelous] == totalNotes {
		return "AAAA"
	}
	p := Percentage(counts, totalNotes)
	switch {
	case p >= 100:
		return "AAA"
	case p >= 93:
		return "AA"
	case p >= 80:
		return "A"
	case p >= 65:
		return "B"
	case p >= 45:
		return "C"
	}
	return "D"
}

// FullCombo reports whether the play had no combo-breaking or near-miss
// judgements at all. Greats and better qualify; goods do not.
func FullCombo(counts [game.NumGrades]int, totalJudged int) bool {
	return totalJudged > 0 &&
		counts[game.Good] == 0 &&
		counts[game.Boo] == 0 &&
		counts[game.Miss] == 0
}

// Results is the terminal artifact of a play, derived once from the final
// state and handed to presentation and persistence.
type Results struct {
	SongID     string
	Title      string
	Difficulty game.Difficulty
	Level      int
	Score      int
	Grade      string
	MaxCombo   int
	Counts     [game.NumGrades]int
	TotalNotes int
	Percentage float64
	Failed     bool
	FullCombo  bool
}

func NewResults(song *game.Song, chart *game.Chart, s State) Results {
	return Results{
		SongID:     song.ID,
		Title:      song.Title,
		Difficulty: chart.Difficulty,
		Level:      chart.Level,
		Score:      FinalScore(s.Counts, s.TotalNotes),
		Grade:      LetterGrade(s.Counts, s.TotalNotes),
		MaxCombo:   s.MaxCombo,
		Counts:     s.Counts,
		TotalNotes: s.TotalNotes,
		Percentage: Percentage(s.Counts, s.TotalNotes),
		Failed:     s.Failed,
		FullCombo:  FullCombo(s.Counts, s.TotalJudged),
	}
}
