package riskresult

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderRoundsNumericPercentage(t *testing.T) {
	got := Render(RiskResult{KeyPercentage: 63.7, KeyMessage: "See a doctor"})

	require.Equal(t, "64%", got.Label)
	require.Equal(t, int64(64), got.Percentage)
	require.True(t, got.Available)
	require.Equal(t, TierElevated, got.Tier)
	require.Equal(t, "See a doctor", got.Advisory)
}

func TestRenderParsesPercentString(t *testing.T) {
	got := Render(RiskResult{KeyPercentage: " 12.4% ", KeyMessage: "Routine checkups"})

	require.Equal(t, "12%", got.Label)
	require.Equal(t, int64(12), got.Percentage)
	require.Equal(t, TierRisk, got.Tier)
}

func TestRenderThresholdUsesRoundedValue(t *testing.T) {
	cases := []struct {
		name  string
		raw   any
		label string
		tier  string
	}{
		{name: "exactly fifty", raw: 50.0, label: "50%", tier: TierElevated},
		{name: "rounds up to fifty", raw: 49.99, label: "50%", tier: TierElevated},
		{name: "half rounds away from zero", raw: 49.5, label: "50%", tier: TierElevated},
		{name: "just below", raw: 49.49, label: "49%", tier: TierRisk},
		{name: "integer", raw: 72, label: "72%", tier: TierElevated},
		{name: "string without suffix", raw: "50", label: "50%", tier: TierElevated},
		{name: "out of range kept", raw: 150.2, label: "150%", tier: TierElevated},
		{name: "negative near zero", raw: -0.2, label: "0%", tier: TierRisk},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Render(RiskResult{KeyPercentage: tc.raw})
			require.Equal(t, tc.label, got.Label)
			require.Equal(t, tc.tier, got.Tier)
			require.True(t, got.Available)
		})
	}
}

func TestRenderMalformedPercentageFallsBack(t *testing.T) {
	got := Render(RiskResult{KeyPercentage: "unknown", KeyMessage: "n/a"})

	require.Equal(t, "unknown", got.Label)
	require.False(t, got.Available)
	require.Zero(t, got.Percentage)
	require.Equal(t, TierRisk, got.Tier)
	require.Equal(t, "n/a", got.Advisory)
}

func TestRenderMissingFields(t *testing.T) {
	got := Render(RiskResult{"unexpected": true})

	require.Equal(t, "", got.Label)
	require.False(t, got.Available)
	require.Equal(t, TierRisk, got.Tier)
	require.Equal(t, "", got.Advisory)

	require.NotPanics(t, func() { Render(nil) })
}

func TestRenderDecodedJSON(t *testing.T) {
	var raw RiskResult
	require.NoError(t, json.Unmarshal([]byte(`{"Risk percentage": 72, "Action message": "Consult a specialist"}`), &raw))

	got := Render(raw)
	require.Equal(t, "72%", got.Label)
	require.Equal(t, TierElevated, got.Tier)
	require.Equal(t, "Consult a specialist", got.Advisory)
}

func TestRenderJSONNumber(t *testing.T) {
	got := Render(RiskResult{KeyPercentage: json.Number("33.5")})
	require.Equal(t, "34%", got.Label)
	require.Equal(t, TierRisk, got.Tier)
}

func TestRenderIsPure(t *testing.T) {
	raw := RiskResult{KeyPercentage: "63.7%", KeyMessage: "Alert"}
	first := Render(raw)
	second := Render(raw)

	require.Equal(t, first, second)
	require.Equal(t, "63.7%", raw[KeyPercentage])
}
