package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"

	"quadstep/internal/config"
	"quadstep/internal/game"
	"quadstep/internal/input"
	"quadstep/internal/parser"
	"quadstep/internal/render"
	"quadstep/internal/score"
	"quadstep/internal/theme"
)

func main() {
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

// findSongFiles walks the song directory for the chart file and an audio
// file to play alongside it.
func findSongFiles(dir string) (chartFile, mp3File, oggFile string, err error) {
	err = filepath.Walk(dir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		switch path.Ext(info.Name()) {
		case ".mp3":
			mp3File = p
		case ".ogg":
			oggFile = p
		case ".chart":
			chartFile = p
		}
		return nil
	})
	if err != nil {
		err = fmt.Errorf("unable to walk song directory: %w", err)
	}
	return
}

// resolveAudio prefers the MUSIC header path relative to the chart file,
// falling back to whatever audio the directory walk found.
func resolveAudio(song *game.Song, chartFile, mp3File, oggFile string) string {
	if song.MusicFile != "" {
		p := filepath.Join(filepath.Dir(chartFile), song.MusicFile)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	if oggFile != "" {
		return oggFile
	}
	return mp3File
}

func openAudio(audioFile string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(audioFile)
	if err != nil {
		return nil, beep.Format{}, err
	}
	if path.Ext(audioFile) == ".ogg" {
		return vorbis.Decode(f)
	}
	return mp3.Decode(f)
}

func run() error {
	config.Parse()

	health, err := config.LoadSettings(*config.Settings)
	if nil != err {
		return err
	}

	chartFile, mp3File, oggFile, err := findSongFiles(*config.Directory)
	if nil != err {
		return err
	}
	if (mp3File == "" && oggFile == "") || chartFile == "" {
		return errors.New("unable to find .chart and .mp3/.ogg file in given directory")
	}

	song, parseErrs, err := parser.ParseFile(chartFile)
	if nil != err {
		return err
	}
	for _, e := range parseErrs {
		log.Println("chart:", e)
	}
	if song == nil {
		return fmt.Errorf("unable to parse %v", chartFile)
	}

	kb, err := input.Open(128)
	if nil != err {
		return err
	}
	defer func() {
		if err := kb.Close(); nil != err {
			log.Println("unable to close keyboard:", err)
		}
	}()

	// Difficulty selection
	fmt.Printf("%v - %v\n", song.Title, song.Artist)
	for i, c := range song.Charts {
		fmt.Printf("%2v) %-9v %3v  %5v notes\n", i, c.Difficulty, c.Level, len(c.Notes))
	}
	key := kb.Next()
	index, err := strconv.ParseInt(string(key.Rune), 10, 64)
	if nil != err || index < 0 || index > int64(len(song.Charts)-1) {
		return errors.New("invalid difficulty selection")
	}
	chart := song.Charts[index]
	if len(chart.Notes) == 0 {
		return errors.New("selected chart has no notes")
	}

	store, err := score.OpenStore(*config.DBPath)
	if nil != err {
		return err
	}
	defer store.Close()
	best, err := store.Best(song.ID, chart.Difficulty)
	if nil != err {
		return err
	}

	audioFile := resolveAudio(song, chartFile, mp3File, oggFile)
	log.Printf("Opening %v (%v)\n", audioFile, chartFile)
	streamer, format, err := openAudio(audioFile)
	if nil != err {
		return err
	}
	defer streamer.Close()

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/60)); nil != err {
		return err
	}
	go func() {
		time.Sleep(*config.Delay)
		speaker.Play(streamer)
	}()

	var r render.Renderer = &render.DefaultRenderer{}
	var th theme.Theme = &theme.DefaultTheme{}
	if err := r.Init(); nil != err {
		return err
	}

	p := &Program{Renderer: r, Theme: th, Keyboard: kb, Health: health}
	results, err := p.Play(song, chart)

	// Restore the terminal state before printing the summary
	if derr := r.Deinit(); nil != derr {
		log.Println("unable to restore terminal:", derr)
	}
	if nil != err {
		return err
	}

	if err := store.Save(results); nil != err {
		return err
	}
	printResults(results, best)
	return nil
}

func printResults(r score.Results, best *score.Results) {
	fmt.Printf("\n%v [%v %v]\n", r.Title, r.Difficulty, r.Level)
	fmt.Printf("      Score:  %8v (%.2f%%)\n", r.Score, r.Percentage)
	fmt.Printf("      Grade:  %8v\n", r.Grade)
	fmt.Printf("  Max Combo:  %8v\n", r.MaxCombo)
	for g := 0; g < game.NumGrades; g++ {
		fmt.Printf("%11v:  %6v\n", game.Grade(g), r.Counts[g])
	}
	if r.FullCombo {
		fmt.Println("  FULL COMBO")
	}
	if r.Failed {
		fmt.Println("  FAILED")
	}
	if best != nil {
		fmt.Printf("\nPrevious best:  %v (%v)\n", best.Score, best.Grade)
	}
}
