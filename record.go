package gofocus

import "fmt"

// Record is a single accepted action, numbered from 1.
type Record struct {
	Number  int64
	Player  string
	Reserve bool
	From    Position
	To      Position
	Count   int
	Result  string
	Comment string
}

// Notation is the action without its number, as written in a script.
func (r *Record) Notation() string {
	if r.Reserve {
		return fmt.Sprintf("%s reserve %s", r.Player, r.To)
	}
	return fmt.Sprintf("%s %s %s %d", r.Player, r.From, r.To, r.Count)
}

// Text returns a script formatted line for the record.
func (r *Record) Text() string {
	line := fmt.Sprintf("%d. %s", r.Number, r.Notation())
	if r.Comment != "" {
		line = fmt.Sprintf("%s { %s }", line, r.Comment)
	}
	return line
}

// Debug is a verbose dumping of the record.
func (r *Record) Debug() string {
	return fmt.Sprintf("&{%d %s Result:%+v Comment: \"%s\"}", r.Number, r.Notation(), r.Result, r.Comment)
}
