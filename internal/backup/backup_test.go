package backup

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velarium/scriptorium/internal/domain"
)

func sampleState() *domain.PlayerState {
	state := domain.NewPlayerState()
	state.XP = 2500
	state.Level = 5
	state.TotalQuotesRead = 40
	state.StreakDays = 3
	state.LastReadDate = "2026-08-30"
	state.Scripts["file-1"] = &domain.ScriptureStats{
		FileID:      "file-1",
		DisplayName: "meditations.txt",
		QuotesRead:  12,
		LocalXP:     120,
		LocalLevel:  1,
		MasteryTier: domain.MasteryTouched,
	}
	return state
}

func TestBuildExport_ReducedShape(t *testing.T) {
	state := sampleState()
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	exp := BuildExport(state, now)

	assert.Equal(t, ExportVersion, exp.Version)
	assert.Equal(t, now, exp.ExportedAt)
	assert.Equal(t, 2500, exp.Player.XP)
	assert.Equal(t, 5, exp.Player.Level)
	require.Len(t, exp.Scriptures, 1)
	assert.Equal(t, "meditations.txt", exp.Scriptures[0].DisplayName)

	// Quote bodies and focus selection never travel in a backup.
	data, err := json.Marshal(exp)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"focus"`)
}

func TestBuildExport_DoesNotAliasState(t *testing.T) {
	state := sampleState()
	exp := BuildExport(state, time.Now())

	exp.Player.Equipment[domain.SlotHead] = "tampered"
	exp.Scriptures[0].QuotesRead = 999

	assert.Empty(t, state.Equipment[domain.SlotHead])
	assert.Equal(t, 12, state.Scripts["file-1"].QuotesRead)
}

func TestParse_RoundTrip(t *testing.T) {
	state := sampleState()
	data, err := json.Marshal(BuildExport(state, time.Now()))
	require.NoError(t, err)

	env, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, 2500, *env.Player.XP)
	require.Len(t, env.Scriptures, 1)
	assert.Equal(t, 12, *env.Scriptures[0].QuotesRead)
}

func TestParse_RejectsMalformedJSON(t *testing.T) {
	_, err := Parse([]byte(`{not json`))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidBackup)
	assert.Contains(t, err.Error(), ReasonMalformedJSON)
}

func TestParse_RejectsStringXP(t *testing.T) {
	payload := `{"version":"1","player":{"xp":"lots","level":3,"total_quotes_read":5}}`

	_, err := Parse([]byte(payload))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidBackup)
	assert.Contains(t, err.Error(), ReasonWrongFieldType)
}

func TestParse_RejectsMissingRequiredFields(t *testing.T) {
	payload := `{"version":"1","player":{"level":3}}`

	_, err := Parse([]byte(payload))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ReasonMissingFields)
}

func TestParse_RejectsNegativeValues(t *testing.T) {
	payload := `{"version":"1","player":{"xp":-5,"level":3,"total_quotes_read":0}}`

	_, err := Parse([]byte(payload))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ReasonNegativeNumbers)
}

func TestParse_RejectsUnknownVersion(t *testing.T) {
	payload := `{"version":"99","player":{"xp":1,"level":1,"total_quotes_read":0}}`

	_, err := Parse([]byte(payload))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ReasonUnknownVersion)
}

func TestMerge_OverwritesProgression(t *testing.T) {
	state := sampleState()
	payload := `{"version":"1","player":{"xp":10000,"level":10,"total_quotes_read":200,"streak_days":9}}`

	env, err := Parse([]byte(payload))
	require.NoError(t, err)

	merged := Merge(state, env)

	assert.Equal(t, 10000, merged.XP)
	assert.Equal(t, 10, merged.Level)
	assert.Equal(t, 200, merged.TotalQuotesRead)
	assert.Equal(t, 9, merged.StreakDays)

	// Source state stays untouched.
	assert.Equal(t, 2500, state.XP)
	assert.Equal(t, 5, state.Level)
}

func TestMerge_MatchesScriptureByFilename(t *testing.T) {
	state := sampleState()
	payload := `{"version":"1",
		"player":{"xp":1,"level":1,"total_quotes_read":1},
		"scriptures":[{"file_id":"other-device-id","display_name":"meditations.txt","quotes_read":50,"local_xp":500}]}`

	env, err := Parse([]byte(payload))
	require.NoError(t, err)

	merged := Merge(state, env)

	require.Contains(t, merged.Scripts, "file-1", "record folds into the local id sharing the filename")
	assert.NotContains(t, merged.Scripts, "other-device-id")
	assert.Equal(t, 50, merged.Scripts["file-1"].QuotesRead)
	assert.Equal(t, 500, merged.Scripts["file-1"].LocalXP)
}

func TestMerge_PreservesUnmatchedScripture(t *testing.T) {
	state := sampleState()
	payload := `{"version":"1",
		"player":{"xp":1,"level":1,"total_quotes_read":1},
		"scriptures":[{"file_id":"ghost-file","display_name":"lost.txt","quotes_read":7,"local_xp":70}]}`

	env, err := Parse([]byte(payload))
	require.NoError(t, err)

	merged := Merge(state, env)

	require.Contains(t, merged.Scripts, "ghost-file")
	assert.Equal(t, 7, merged.Scripts["ghost-file"].QuotesRead)
	// The existing local text is untouched.
	assert.Equal(t, 12, merged.Scripts["file-1"].QuotesRead)
}
