package models

// SlotColor identifies a side of a match. Kendo convention: the two
// competitors wear a red (aka) or white (shiro) ribbon.
type SlotColor string

const (
	SlotRed   SlotColor = "red"
	SlotWhite SlotColor = "white"
	// SlotAuto is only valid on edges: the routed player takes whichever
	// slot the placement policy resolves at routing time.
	SlotAuto SlotColor = "auto"
)

// Edge routes the winner or loser of a match into a slot of another match.
type Edge struct {
	ToMatchID int       `json:"to_match_id"`
	ToSlot    SlotColor `json:"to_slot"`
}

// MatchResult records a decided match. The loser is derivable as the slot
// occupant that is not the winner.
type MatchResult struct {
	WinnerID   string `json:"winner_id"`
	RedScore   uint   `json:"red_score"`
	WhiteScore uint   `json:"white_score"`
	Details    string `json:"details,omitempty"`
}

// Match is a node in the bracket graph. IDs are assigned 1..TotalMatches
// when the match set is initialized and stay stable for the tournament's
// lifetime. An empty player ID means the slot is vacant.
type Match struct {
	ID            int          `json:"id"`
	RedPlayerID   string       `json:"red_player_id,omitempty"`
	WhitePlayerID string       `json:"white_player_id,omitempty"`
	WinnerEdge    *Edge        `json:"winner_edge,omitempty"`
	LoserEdge     *Edge        `json:"loser_edge,omitempty"`
	Result        *MatchResult `json:"result,omitempty"`
}

// SlotPlayer returns the occupant of the given slot, or "" when vacant.
// SlotAuto is not a real slot and always reads as vacant.
func (m *Match) SlotPlayer(slot SlotColor) string {
	switch slot {
	case SlotRed:
		return m.RedPlayerID
	case SlotWhite:
		return m.WhitePlayerID
	}
	return ""
}

// SetSlot writes a player into the given slot. SlotAuto is ignored;
// callers must resolve it first.
func (m *Match) SetSlot(slot SlotColor, playerID string) {
	switch slot {
	case SlotRed:
		m.RedPlayerID = playerID
	case SlotWhite:
		m.WhitePlayerID = playerID
	}
}

func (m *Match) IsFinished() bool {
	return m.Result != nil
}

// LoserID returns the occupant that did not win, or "" if the match is
// not finished or the losing slot was vacant.
func (m *Match) LoserID() string {
	if m.Result == nil {
		return ""
	}
	if m.RedPlayerID == m.Result.WinnerID {
		return m.WhitePlayerID
	}
	return m.RedPlayerID
}

// Participants returns the non-vacant slot occupants.
func (m *Match) Participants() []string {
	ps := make([]string, 0, 2)
	if m.RedPlayerID != "" {
		ps = append(ps, m.RedPlayerID)
	}
	if m.WhitePlayerID != "" {
		ps = append(ps, m.WhitePlayerID)
	}
	return ps
}

// MatchState is the derived lifecycle state of a match. It is never
// stored; it is recomputed from slots, result and feeder topology.
type MatchState string

const (
	// MatchWaiting: at least one vacant slot that some edge still feeds.
	MatchWaiting MatchState = "waiting"
	// MatchReady: both slots occupied, no result yet.
	MatchReady MatchState = "ready"
	// MatchBye: one occupant, and the opposing slot can never be filled
	// by routing. Eligible for a walkover.
	MatchBye MatchState = "bye"
	// MatchDead: both slots vacant with no feeders; the match can only
	// proceed after manual slot edits.
	MatchDead MatchState = "dead"
	// MatchFinished: result recorded, routing applied. Terminal.
	MatchFinished MatchState = "finished"
)
