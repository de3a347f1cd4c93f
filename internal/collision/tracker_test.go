package collision

import (
	"testing"

	"github.com/arloliu/rvjitter/errs"
	"github.com/stretchr/testify/require"
)

func TestNewTracker(t *testing.T) {
	tracker := NewTracker()

	require.NotNil(t, tracker)
	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Empty(t, tracker.Names())
}

func TestTracker_Track_Success(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Track("RV_RMS_All_Giant_LMT_alpha", 0x1))
	require.NoError(t, tracker.Track("RV_RMS_All_Giant_LMT_beta", 0x2))

	require.Equal(t, 2, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Equal(t, []string{"RV_RMS_All_Giant_LMT_alpha", "RV_RMS_All_Giant_LMT_beta"}, tracker.Names())
}

func TestTracker_Track_EmptyName(t *testing.T) {
	tracker := NewTracker()

	err := tracker.Track("", 0x1)

	require.ErrorIs(t, err, errs.ErrEmptyCoefficientName)
	require.Equal(t, 0, tracker.Count())
}

func TestTracker_Track_Duplicate(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Track("RV_RMS_All_Dwarf_Tg_alpha", 0x1))
	err := tracker.Track("RV_RMS_All_Dwarf_Tg_alpha", 0x1)

	require.ErrorIs(t, err, errs.ErrDuplicateCoefficient)
	require.Contains(t, err.Error(), "RV_RMS_All_Dwarf_Tg_alpha")
	require.Equal(t, 1, tracker.Count())
}

func TestTracker_Track_Collision(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Track("a", 0x1))
	require.NoError(t, tracker.Track("b", 0x1))

	require.True(t, tracker.HasCollision())
	require.Equal(t, 2, tracker.Count())

	// A duplicate of the colliding name is still detected.
	err := tracker.Track("b", 0x1)
	require.ErrorIs(t, err, errs.ErrDuplicateCoefficient)
}

func TestTracker_Reset(t *testing.T) {
	tracker := NewTracker()
	require.NoError(t, tracker.Track("a", 0x1))
	require.NoError(t, tracker.Track("b", 0x1))

	tracker.Reset()

	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.NoError(t, tracker.Track("a", 0x1))
}
