package uci

import (
	"strconv"
	"strings"
)

const (
	infoPrefix     = "info "
	bestMovePrefix = "bestmove"
	idNamePrefix   = "id name "
)

// Fallback decides the value of a numeric telemetry field whose argument
// token does not parse as an unsigned integer.
type Fallback func(previous uint64, token string) uint64

// KeepPrevious is the Fallback used by the Driver: a malformed token leaves
// the field at the value it already had.
func KeepPrevious(previous uint64, _ string) uint64 {
	return previous
}

// Telemetry is the scratch state of one exchange, folded from info lines.
type Telemetry struct {
	Nodes  uint64
	TimeMS uint64
	NPS    uint64
	Depth  uint64
	Score  string

	// Fallbacks counts the numeric arguments that failed to parse.
	Fallbacks int
}

// infoKey is one recognized key of the info grammar.
type infoKey struct {
	arity int
	apply func(t *Telemetry, args []string, fallback Fallback)
}

var infoKeys = map[string]infoKey{
	"nodes": numericKey(func(t *Telemetry) *uint64 { return &t.Nodes }),
	"time":  numericKey(func(t *Telemetry) *uint64 { return &t.TimeMS }),
	"nps":   numericKey(func(t *Telemetry) *uint64 { return &t.NPS }),
	"depth": numericKey(func(t *Telemetry) *uint64 { return &t.Depth }),
	"score": {
		arity: 2,
		apply: func(t *Telemetry, args []string, _ Fallback) {
			t.Score = strings.Join(args, " ")
		},
	},
}

func numericKey(field func(t *Telemetry) *uint64) infoKey {
	return infoKey{
		arity: 1,
		apply: func(t *Telemetry, args []string, fallback Fallback) {
			p := field(t)

			v, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				t.Fallbacks++
				*p = fallback(*p, args[0])

				return
			}

			*p = v
		},
	}
}

// IsInfo reports whether line is an info line.
func IsInfo(line string) bool {
	return strings.HasPrefix(line, infoPrefix)
}

// ApplyInfo folds one info line into t.
//
// Tokens are scanned left to right. A recognized key consumes the number of
// tokens its arity requires and overwrites the field, so later keys win. A
// key without enough tokens after it, and any unrecognized token, is
// skipped on its own.
func (t *Telemetry) ApplyInfo(line string, fallback Fallback) {
	tokens := strings.Fields(strings.TrimPrefix(line, infoPrefix))

	for i := 0; i < len(tokens); {
		key, ok := infoKeys[tokens[i]]
		if !ok || i+key.arity >= len(tokens) {
			i++

			continue
		}

		key.apply(t, tokens[i+1:i+1+key.arity], fallback)
		i += 1 + key.arity
	}
}

// ParseBestMove reports whether line is the terminal bestmove line and
// returns its move, which is empty when the line has no second field.
func ParseBestMove(line string) (string, bool) {
	if !strings.HasPrefix(line, bestMovePrefix) {
		return "", false
	}

	fields := strings.Fields(line)
	if len(fields) < 2 {
		return "", true
	}

	return fields[1], true
}

// ParseIDName returns the engine name from an "id name" line.
func ParseIDName(line string) (string, bool) {
	name, ok := strings.CutPrefix(line, idNamePrefix)
	if !ok {
		return "", false
	}

	return name, true
}
