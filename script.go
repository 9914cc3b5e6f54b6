package gofocus

import (
	"bufio"
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Script is a whole game written down: tags describing the players and rules,
// followed by numbered actions.
type Script struct {
	Meta    []*Tag
	Actions []*Record
}

// Outcome is what happened when a scripted action was played.
type Outcome struct {
	Record *Record
	Result *Result
	Err    error
}

func (o *Outcome) String() string {
	if o.Err != nil {
		return o.Err.Error()
	}
	return o.Result.String()
}

// (number). (player) reserve (position)
var reserveLineRegex = regexp.MustCompile(`^(\d+)\.\s+(\S+)\s+reserve\s+(\([^)]*\)|\S+)$`)

// (number). (player) (from) (to) (count)
var moveLineRegex = regexp.MustCompile(`^(\d+)\.\s+(\S+)\s+(\([^)]*\)|\S+)\s+(\([^)]*\)|\S+)\s+(\d+)$`)

var commentRegex = regexp.MustCompile(`{[^}]*}`)

// GetMeta does a linear search for the key specified and returns the value. It
// returns an error if the key does not exist.
func (s *Script) GetMeta(key string) (string, error) {
	for _, t := range s.Meta {
		if t != nil && t.Key == key {
			return t.Value, nil
		}
	}

	return "", fmt.Errorf("no such meta key '%s'", key)
}

// ParseScript reads a script. Blank lines are ignored.
func ParseScript(data []byte) (*Script, error) {
	ret := &Script{}

	s := bufio.NewScanner(bytes.NewReader(data))
	n := 0
	for s.Scan() {
		n++
		l := s.Text()

		if ta := parseTag(l); ta != nil {
			ret.Meta = append(ret.Meta, ta)
			continue
		}

		rec, err := parseAction(l)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		if rec != nil {
			ret.Actions = append(ret.Actions, rec)
		}
	}

	if err := s.Err(); err != nil {
		return nil, err
	}

	return ret, nil
}

func parseAction(line string) (*Record, error) {
	cmnt := strings.TrimSpace(strings.Join(commentRegex.FindAllString(line, -1), " "))
	cmnt = strings.TrimSpace(strings.Trim(cmnt, "{}"))
	cleanLine := strings.TrimSpace(commentRegex.ReplaceAllString(line, ""))

	if cleanLine == "" {
		return nil, nil
	}

	if parts := reserveLineRegex.FindStringSubmatch(cleanLine); parts != nil {
		num, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return nil, err
		}
		pos, err := ParsePosition(parts[3])
		if err != nil {
			return nil, err
		}
		return &Record{Number: num, Player: parts[2], Reserve: true, To: pos, Count: 1, Comment: cmnt}, nil
	}

	parts := moveLineRegex.FindStringSubmatch(cleanLine)
	if parts == nil {
		return nil, fmt.Errorf("invalid action: %q", cleanLine)
	}

	num, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return nil, err
	}
	from, err := ParsePosition(parts[3])
	if err != nil {
		return nil, err
	}
	to, err := ParsePosition(parts[4])
	if err != nil {
		return nil, err
	}
	count, err := strconv.Atoi(parts[5])
	if err != nil {
		return nil, err
	}

	return &Record{Number: num, Player: parts[2], From: from, To: to, Count: count, Comment: cmnt}, nil
}

// Players reads the Player1 and Player2 tags, each written as "name color".
func (s *Script) Players() (PlayerInfo, PlayerInfo, error) {
	var infos [2]PlayerInfo
	for i, key := range []string{"Player1", "Player2"} {
		v, err := s.GetMeta(key)
		if err != nil {
			return PlayerInfo{}, PlayerInfo{}, err
		}

		fields := strings.Fields(v)
		if len(fields) != 2 {
			return PlayerInfo{}, PlayerInfo{}, fmt.Errorf("%s should be \"name color\", got %q", key, v)
		}

		c, err := ParseColor(fields[1])
		if err != nil {
			return PlayerInfo{}, PlayerInfo{}, fmt.Errorf("%s: %w", key, err)
		}
		infos[i] = PlayerInfo{Name: fields[0], Color: c}
	}

	return infos[0], infos[1], nil
}

// Options turns the rule tags that are present into game options.
func (s *Script) Options() ([]Option, error) {
	rules := []struct {
		key string
		opt func(int) Option
	}{
		{"Size", WithBoardSize},
		{"Pattern", WithPattern},
		{"MaxStackHeight", WithMaxStackHeight},
		{"WinningCaptures", WithWinningCaptures},
	}

	var opts []Option
	for _, r := range rules {
		v, err := s.GetMeta(r.key)
		if err != nil {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("tag %s: %w", r.key, err)
		}
		opts = append(opts, r.opt(n))
	}

	return opts, nil
}

// NewGame creates the game the script describes. Options given here are
// applied before the script's own rule tags.
func (s *Script) NewGame(opts ...Option) (*Game, error) {
	p1, p2, err := s.Players()
	if err != nil {
		return nil, err
	}

	tagged, err := s.Options()
	if err != nil {
		return nil, err
	}

	return NewGame(p1, p2, append(opts, tagged...)...)
}

// Play replays every action on g. Refused actions are reported in their
// Outcome and do not stop the replay.
func (s *Script) Play(g *Game) []*Outcome {
	out := make([]*Outcome, 0, len(s.Actions))
	for _, a := range s.Actions {
		o := &Outcome{Record: a}
		if a.Reserve {
			o.Result, o.Err = g.ReservedMove(a.Player, a.To)
		} else {
			o.Result, o.Err = g.Move(a.Player, a.From, a.To, a.Count)
		}
		out = append(out, o)
	}
	return out
}
