package brackets

import (
	"errors"
	"fmt"
)

// Engine errors. All validation happens before any slot or result write,
// so an error always means the tournament snapshot is unchanged.
var (
	ErrTiedScore        = errors.New("tied scores are not allowed")
	ErrNoEligiblePlayer = errors.New("no eligible player for walkover")
	ErrUnknownMatch     = errors.New("match not found")
	ErrMatchNotReady    = errors.New("match does not have both slots occupied")
	ErrMatchFinished    = errors.New("match is already finished")
	ErrMatchContested   = errors.New("match has both slots occupied, submit a score instead")
	ErrOpponentPending  = errors.New("opposing slot can still be filled by routing")
)

// Warning reports a malformed-graph condition. Warnings never abort an
// operation; the engine degrades gracefully and leaves it to the caller
// to log them.
type Warning struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

const WarnMalformedGraph = "malformed_graph"

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Kind, w.Message)
}

func malformedGraph(format string, args ...any) Warning {
	return Warning{Kind: WarnMalformedGraph, Message: fmt.Sprintf(format, args...)}
}
