package main

import (
	"fmt"
	"os"

	"github.com/icco/gofocus"
	"github.com/icco/gutil/logging"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

var opts struct {
	Filename flags.Filename `short:"f" long:"filename" description:"Game script to replay" required:"true"`
	Size     int            `long:"size" description:"Board size, unless the script has a Size tag"`
	Pattern  int            `long:"pattern" description:"Starting layout run length, unless the script has a Pattern tag"`
	Height   int            `long:"max-height" description:"Stack height limit, unless the script has a MaxStackHeight tag"`
	Captures int            `long:"captures" description:"Captures needed to win, unless the script has a WinningCaptures tag"`
	Board    bool           `short:"b" long:"board" description:"Print the board after every action"`
}

var log = logging.Must(logging.NewLogger(gofocus.Service))

func main() {
	_, err := flags.Parse(&opts)
	if err != nil {
		os.Exit(1)
	}

	file, err := os.ReadFile(string(opts.Filename))
	if err != nil {
		log.Fatalw("could not read script", "file", opts.Filename, zap.Error(err))
	}

	s, err := gofocus.ParseScript(file)
	if err != nil {
		log.Fatalw("could not parse script", "file", opts.Filename, zap.Error(err))
	}

	g, err := s.NewGame(gameOptions()...)
	if err != nil {
		log.Fatalw("could not create game", zap.Error(err))
	}

	if err := replay(os.Stdout, s, g, opts.Board); err != nil {
		log.Fatalw("could not write output", zap.Error(err))
	}
}

// gameOptions turns the rule flags that were set into game options.
func gameOptions() []gofocus.Option {
	o := []gofocus.Option{gofocus.WithLogger(log)}
	if opts.Size > 0 {
		o = append(o, gofocus.WithBoardSize(opts.Size))
	}
	if opts.Pattern > 0 {
		o = append(o, gofocus.WithPattern(opts.Pattern))
	}
	if opts.Height > 0 {
		o = append(o, gofocus.WithMaxStackHeight(opts.Height))
	}
	if opts.Captures > 0 {
		o = append(o, gofocus.WithWinningCaptures(opts.Captures))
	}
	return o
}

func summary(g *gofocus.Game) string {
	out := ""
	for _, p := range g.Players() {
		out += fmt.Sprintf("%s\n", p.String())
	}
	if w, over := g.GameOver(); over {
		out += fmt.Sprintf("winner: %s\n", w)
	}
	return out
}
