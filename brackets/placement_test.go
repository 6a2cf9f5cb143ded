package brackets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brian91-1031/Kendo-Play-Recorder/models"
)

func TestPlaceExplicitSlotOverwrites(t *testing.T) {
	matches := []models.Match{{ID: 1, RedPlayerID: pid("X")}}

	updated, warnings := Place(matches, 1, pid("A"), models.SlotRed, nil)
	require.Empty(t, warnings)
	assert.Equal(t, pid("A"), updated[0].RedPlayerID)

	// input slice untouched
	assert.Equal(t, pid("X"), matches[0].RedPlayerID)
}

func TestPlaceExplicitSlotIdempotent(t *testing.T) {
	matches := []models.Match{{ID: 1}}

	once, _ := Place(matches, 1, pid("A"), models.SlotRed, nil)
	twice, _ := Place(once, 1, pid("A"), models.SlotRed, nil)
	assert.Equal(t, once, twice)
}

func TestPlaceAutoFillsFirstEmptySlot(t *testing.T) {
	matches := []models.Match{{ID: 1}}

	updated, warnings := Place(matches, 1, pid("A"), models.SlotAuto, []string{pid("A"), pid("B")})
	require.Empty(t, warnings)
	assert.Equal(t, pid("A"), updated[0].RedPlayerID)
	assert.Empty(t, updated[0].WhitePlayerID)

	updated, warnings = Place(updated, 1, pid("C"), models.SlotAuto, []string{pid("C"), pid("D")})
	require.Empty(t, warnings)
	assert.Equal(t, pid("A"), updated[0].RedPlayerID)
	assert.Equal(t, pid("C"), updated[0].WhitePlayerID)
}

func TestPlaceAutoCorrectionPriority(t *testing.T) {
	// White already holds a player from the same source match; a corrected
	// result must overwrite that slot, not the unrelated red slot.
	matches := []models.Match{{ID: 1, RedPlayerID: pid("X"), WhitePlayerID: pid("A")}}

	updated, warnings := Place(matches, 1, pid("B"), models.SlotAuto, []string{pid("A"), pid("B")})
	require.Empty(t, warnings)
	assert.Equal(t, pid("X"), updated[0].RedPlayerID)
	assert.Equal(t, pid("B"), updated[0].WhitePlayerID)
}

func TestPlaceAutoPrefersRedOnCorrection(t *testing.T) {
	matches := []models.Match{{ID: 1, RedPlayerID: pid("A"), WhitePlayerID: pid("B")}}

	// Both slots hold source participants; red is corrected first.
	updated, _ := Place(matches, 1, pid("B"), models.SlotAuto, []string{pid("A"), pid("B")})
	assert.Equal(t, pid("B"), updated[0].RedPlayerID)
	assert.Equal(t, pid("B"), updated[0].WhitePlayerID)
}

func TestPlaceAutoFullMatchIsNoOp(t *testing.T) {
	matches := []models.Match{{ID: 1, RedPlayerID: pid("X"), WhitePlayerID: pid("Y")}}

	updated, warnings := Place(matches, 1, pid("A"), models.SlotAuto, []string{pid("A"), pid("B")})
	require.Len(t, warnings, 1)
	assert.Equal(t, WarnMalformedGraph, warnings[0].Kind)
	assert.Equal(t, matches, updated)
}

func TestPlaceUnknownTargetWarns(t *testing.T) {
	matches := []models.Match{{ID: 1}}

	updated, warnings := Place(matches, 99, pid("A"), models.SlotRed, nil)
	require.Len(t, warnings, 1)
	assert.Equal(t, WarnMalformedGraph, warnings[0].Kind)
	assert.Equal(t, matches, updated)
}
