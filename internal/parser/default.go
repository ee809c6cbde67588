package parser

import (
	"fmt"
	"math"
	"math/big"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"quadstep/internal/game"
)

type DefaultParser struct{}

var (
	chartFence = regexp.MustCompile(`(?i)^//---\s*CHART:\s*(.+?)\s*\(\s*Level\s+(-?\d+)\s*\)\s*---$`)
	fenceish   = regexp.MustCompile(`(?i)^//-.*chart`)
)

// Canonical row counts for a 4-beat measure. Anything else still parses,
// with an advisory message.
var commonRowCounts = map[int]bool{
	4: true, 8: true, 12: true, 16: true, 24: true,
	32: true, 48: true, 64: true, 96: true, 192: true,
}

// ParseFile reads and parses a chart file. The base name without extension
// becomes the song id. The error return covers I/O only; parse problems are
// in the Error slice.
func ParseFile(path string) (*game.Song, []Error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to read chart file: %w", err)
	}
	id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	song, errs := (&DefaultParser{}).Parse(string(data), id)
	return song, errs, nil
}

// chartState accumulates one chart between its fence and the next fence or
// end of input. Note ids and the measure index restart per chart.
type chartState struct {
	chart        *game.Chart
	measureIndex int
	nextNoteID   int
	rows         [][]game.Direction // pending measure; empty rows still occupy a slot
}

func newChartState(d game.Difficulty, level int) *chartState {
	return &chartState{chart: &game.Chart{Difficulty: d, Level: level}}
}

func (st *chartState) addRow(line string, lineNo int, errs *[]Error) {
	if len(line) != 4 {
		*errs = append(*errs, Error{lineNo, fmt.Sprintf("note row must be exactly 4 characters, got %d", len(line))})
		return
	}
	var dirs []game.Direction
	for i := 0; i < 4; i++ {
		switch line[i] {
		case '.':
		case 'L', 'D', 'U', 'R':
			// Column position decides the lane; the letter is mnemonic.
			dirs = append(dirs, game.Direction(i))
		default:
			*errs = append(*errs, Error{lineNo, fmt.Sprintf("Invalid character %q in note row", line[i])})
			return
		}
	}
	st.rows = append(st.rows, dirs)
}

// flushMeasure assigns times to the pending rows and emits their notes.
// Every measure spans exactly 4 beats; the row count only sets the
// subdivision within it.
func (st *chartState) flushMeasure(song *game.Song, lineNo int, errs *[]Error) {
	rowCount := len(st.rows)
	if rowCount == 0 {
		return
	}
	if rowCount > 192 {
		*errs = append(*errs, Error{lineNo, fmt.Sprintf("unusual measure length %d", rowCount)})
	} else if !commonRowCounts[rowCount] {
		*errs = append(*errs, Error{lineNo, fmt.Sprintf("non-standard measure length %d", rowCount)})
	}
	for i, dirs := range st.rows {
		beat := float64(st.measureIndex)*4 + float64(i)/float64(rowCount)*4
		t := game.BeatToTime(beat, song.BPM, song.Offset)
		r := big.NewRat(int64(i*4), int64(rowCount))
		denom := int(r.Denom().Int64())
		for _, dir := range dirs {
			st.chart.Notes = append(st.chart.Notes, &game.Note{
				ID:        st.nextNoteID,
				Time:      t,
				Direction: dir,
				Denom:     denom,
				Type:      game.Tap,
			})
			st.nextNoteID++
		}
	}
	st.rows = nil
	st.measureIndex++
}

// finalize flushes any pending measure and pushes the chart, notes sorted by
// time. Ids were assigned in playback order, so the stable sort keeps
// simultaneous notes in column order.
func (st *chartState) finalize(song *game.Song, lineNo int, errs *[]Error) {
	st.flushMeasure(song, lineNo, errs)
	sort.SliceStable(st.chart.Notes, func(i, j int) bool {
		return st.chart.Notes[i].Time < st.chart.Notes[j].Time
	})
	song.Charts = append(song.Charts, st.chart)
}

func clampLevel(level int) int {
	if level < game.MinLevel {
		return game.MinLevel
	}
	if level > game.MaxLevel {
		return game.MaxLevel
	}
	return level
}

func requiredHeaderErrors(song *game.Song) []Error {
	var errs []Error
	if song.Title == "" {
		errs = append(errs, Error{0, "missing required header TITLE"})
	}
	if song.BPM == 0 {
		errs = append(errs, Error{0, "missing required header BPM"})
	}
	if song.MusicFile == "" {
		errs = append(errs, Error{0, "missing required header MUSIC"})
	}
	return errs
}

// parseHeader handles one #KEY:VALUE line. The returned flag is true only
// for an unusable BPM, the single value the rest of the file cannot be
// interpreted without.
func (p *DefaultParser) parseHeader(song *game.Song, line string, lineNo int, errs *[]Error) bool {
	colon := strings.Index(line, ":")
	if colon < 0 {
		*errs = append(*errs, Error{lineNo, "invalid header format, expected #KEY:VALUE"})
		return false
	}
	key := strings.ToUpper(strings.TrimSpace(line[1:colon]))
	value := strings.TrimSpace(line[colon+1:])
	switch key {
	case "TITLE":
		song.Title = value
	case "ARTIST":
		if value != "" {
			song.Artist = value
		}
	case "BPM":
		bpm, err := strconv.ParseFloat(value, 64)
		if err != nil || math.IsNaN(bpm) || math.IsInf(bpm, 0) || bpm <= 0 {
			*errs = append(*errs, Error{lineNo, fmt.Sprintf("invalid BPM value %q", value)})
			return true
		}
		song.BPM = bpm
	case "OFFSET":
		// Seconds in the file, held as a duration internally.
		off, err := strconv.ParseFloat(value, 64)
		if err != nil || math.IsNaN(off) || math.IsInf(off, 0) {
			*errs = append(*errs, Error{lineNo, fmt.Sprintf("invalid OFFSET value %q", value)})
			return false
		}
		song.Offset = time.Duration(off * float64(time.Second))
	case "MUSIC":
		song.MusicFile = value
	case "PREVIEW":
		pv, err := strconv.ParseFloat(value, 64)
		if err != nil || math.IsNaN(pv) || math.IsInf(pv, 0) {
			*errs = append(*errs, Error{lineNo, fmt.Sprintf("invalid PREVIEW value %q", value)})
			return false
		}
		song.PreviewStart = pv
	}
	// Unrecognized keys are ignored.
	return false
}

func (p *DefaultParser) Parse(text string, songID string) (*game.Song, []Error) {
	song := &game.Song{ID: songID, Artist: "Unknown"}
	var errs []Error
	var st *chartState
	headersChecked := false

	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for i, raw := range lines {
		lineNo := i + 1
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "#"):
			if fatal := p.parseHeader(song, line, lineNo, &errs); fatal {
				return nil, errs
			}
		case strings.HasPrefix(line, "//"):
			m := chartFence.FindStringSubmatch(line)
			if m == nil {
				if fenceish.MatchString(line) {
					errs = append(errs, Error{lineNo, "invalid chart declaration syntax"})
				}
				// Plain comment otherwise.
				continue
			}
			if !headersChecked {
				if missing := requiredHeaderErrors(song); len(missing) > 0 {
					errs = append(errs, missing...)
					return nil, errs
				}
				headersChecked = true
			}
			d, ok := game.ParseDifficulty(m[1])
			if !ok {
				// Reported, and no chart is opened; a previously open
				// chart keeps collecting rows.
				errs = append(errs, Error{lineNo, fmt.Sprintf("unknown difficulty %q in chart declaration", m[1])})
				continue
			}
			level, _ := strconv.Atoi(m[2])
			if st != nil {
				st.finalize(song, lineNo, &errs)
			}
			st = newChartState(d, clampLevel(level))
		case line == ",":
			if st != nil {
				st.flushMeasure(song, lineNo, &errs)
			}
		default:
			if st == nil {
				// Stray content outside any chart.
				continue
			}
			st.addRow(line, lineNo, &errs)
		}
	}
	if st != nil {
		st.finalize(song, len(lines), &errs)
	}
	if !headersChecked {
		if missing := requiredHeaderErrors(song); len(missing) > 0 {
			errs = append(errs, missing...)
			return nil, errs
		}
	}
	if len(song.Charts) == 0 {
		errs = append(errs, Error{0, "no charts defined in file"})
		return nil, errs
	}
	hasNotes := false
	for _, c := range song.Charts {
		if len(c.Notes) > 0 {
			hasNotes = true
			break
		}
	}
	if !hasNotes {
		errs = append(errs, Error{0, "no chart produced any notes"})
		return nil, errs
	}
	return song, errs
}
