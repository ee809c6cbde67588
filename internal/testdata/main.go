package testdata

import (
	"fmt"

	"quadstep/internal/game"
	"quadstep/internal/parser"
)

// Text is a small but complete chart file: 120 BPM, one Easy chart, two
// measures, including a quad.
const Text = `#TITLE:Test Song
#ARTIST:Tester
#BPM:120
#MUSIC:song.mp3

//--- CHART: Easy (Level 3) ---
L...
..U.
.D..
...R
,
LDUR
....
L...
....
,
`

func GetSong() (*game.Song, error) {
	song, errs := (&parser.DefaultParser{}).Parse(Text, "test-song")
	if song == nil {
		return nil, fmt.Errorf("unable to parse test chart: %v", errs)
	}
	return song, nil
}

func GetChart() (*game.Chart, error) {
	song, err := GetSong()
	if err != nil {
		return nil, err
	}
	return song.Charts[0], nil
}
