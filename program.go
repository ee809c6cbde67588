package main

import (
	"fmt"
	"math"
	"time"

	"github.com/eiannone/keyboard"

	"quadstep/internal/config"
	"quadstep/internal/game"
	"quadstep/internal/input"
	"quadstep/internal/judge"
	"quadstep/internal/render"
	"quadstep/internal/score"
	"quadstep/internal/theme"
)

// Program drives one play session: once per frame it promotes timed-out
// notes to misses, drains the buffered key presses in arrival order, folds
// every resulting judgement into the score state, and renders. A note is
// judged exactly once; both paths check the Judged flag before writing.
type Program struct {
	Renderer render.Renderer
	Theme    theme.Theme
	Keyboard *input.Keyboard
	Health   score.HealthTable

	song  *game.Song
	chart *game.Chart

	notes []*game.Note // per-play working copy, the parsed chart is never touched
	state score.State

	rows, cols int
	lanes      [game.NumDirections]int
	sideCol    int
	hitRow     int
	cen        int
}

func (p *Program) layout() error {
	cols, rows, err := p.Renderer.Size()
	if nil != err {
		return fmt.Errorf("unable to get terminal size: %w", err)
	}
	p.cols, p.rows = cols, rows

	mc := cols >> 1
	p.cen = rows >> 1
	spacing := int(*config.ColumnSpacing)
	p.lanes = [game.NumDirections]int{
		mc - spacing*3,
		mc - spacing,
		mc + spacing,
		mc + spacing*3,
	}
	p.sideCol = p.lanes[0] - 36
	if p.sideCol < 2 {
		p.sideCol = 2
	}
	p.hitRow = rows - int(*config.BarRow)
	return nil
}

// Play runs the session to completion and returns the results summary.
func (p *Program) Play(song *game.Song, chart *game.Chart) (score.Results, error) {
	p.song, p.chart = song, chart
	p.notes = game.CloneNotes(chart.Notes)
	p.state = score.NewState(len(p.notes))

	if err := p.layout(); nil != err {
		return score.Results{}, err
	}

	last := p.notes[len(p.notes)-1].Time
	p.Renderer.RenderLoop(*config.Delay, *config.FramePeriod, func(now time.Time, duration time.Duration) bool {
		clock := duration + *config.Offset
		if clock-3*time.Second > last {
			return false
		}
		p.promoteMisses(clock)
		if p.handleInputs(clock) {
			return false
		}
		p.renderFrame(clock)
		return true
	})

	return score.NewResults(song, chart, p.state), nil
}

// promoteMisses turns every unjudged note past the late edge of the boo
// window into a miss, through the same accumulator path as player input.
func (p *Program) promoteMisses(clock time.Duration) {
	for _, n := range p.notes {
		if n.Judged || !judge.IsMissed(n.Time, clock) {
			continue
		}
		j := judge.Judge(n, clock)
		n.Judged = true
		n.Judgement = &j
		p.state = p.state.Apply(j, p.Health)

		col := p.lanes[n.Direction]
		p.Renderer.AddDecoration(col-1, p.cen-1, "\033[1;31m╭\033[0m", 240)
		p.Renderer.AddDecoration(col+1, p.cen-1, "\033[1;31m╮\033[0m", 240)
		p.Renderer.AddDecoration(col-1, p.cen, "\033[1;31m╰\033[0m", 240)
		p.Renderer.AddDecoration(col+1, p.cen, "\033[1;31m╯\033[0m", 240)
	}
}

// handleInputs drains the key presses buffered since the last frame. The
// returned flag is true when the player quit.
func (p *Program) handleInputs(clock time.Duration) bool {
	for _, ev := range p.Keyboard.Drain() {
		if ev.Key == keyboard.KeyEsc {
			return true
		}
		dir, ok := config.KeyDirection(ev.Rune)
		if !ok {
			continue
		}
		n := judge.FindMatch(p.notes, dir, clock)
		if n == nil {
			// Press landed on nothing. No judgement, no combo change.
			continue
		}
		j := judge.Judge(n, clock)
		n.Judged = true
		n.Judgement = &j
		p.state = p.state.Apply(j, p.Health)

		p.Renderer.AddDecoration(p.lanes[0], p.cen, p.Theme.RenderGrade(j.Grade), 120)
	}
	return false
}

func isRowInField(row, rows int) bool {
	return row > 0 && row < rows
}

func (p *Program) renderFrame(clock time.Duration) {
	// Hit bar
	for d := game.Direction(0); d < game.NumDirections; d++ {
		p.Renderer.Fill(p.hitRow, p.lanes[d], p.Theme.RenderHitField(d))
	}

	// Notes
	for _, n := range p.notes {
		col := p.lanes[n.Direction]
		if isRowInField(n.Row, p.rows) {
			p.Renderer.Fill(n.Row, col, " ")
		}

		distance := int(math.Round(float64((n.Time - clock).Milliseconds()) / config.ScrollSpeed))
		n.Row = p.hitRow - distance

		if !n.Judged && isRowInField(n.Row, p.rows) {
			p.Renderer.Fill(n.Row, col, p.Theme.RenderNote(n.Direction, n.Denom))
		}
	}

	// Side panel
	p.Renderer.Fill(10, p.sideCol, fmt.Sprintf("      Score:  %8v / %v", p.state.Score, p.state.MaxScore))
	p.Renderer.Fill(11, p.sideCol, fmt.Sprintf("      Combo:  %8v (max %v)", p.state.Combo, p.state.MaxCombo))
	p.Renderer.Fill(12, p.sideCol, fmt.Sprintf("     Health:  %8v", p.state.Health))
	p.Renderer.Fill(13, p.sideCol, fmt.Sprintf("      Notes:  %8v / %v", p.state.TotalJudged, p.state.TotalNotes))
	if p.state.Failed {
		p.Renderer.Fill(14, p.sideCol, "     \033[1;31mFAILED\033[0m")
	}
	for g := 0; g < game.NumGrades; g++ {
		grade := game.Grade(g)
		p.Renderer.Fill(16+g, p.sideCol, fmt.Sprintf("%11v:  %6v", p.Theme.RenderGrade(grade), p.state.Counts[grade]))
	}
}
