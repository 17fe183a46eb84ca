// Package riskresult turns raw prediction responses into display values.
package riskresult

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Response keys used by the prediction service.
const (
	KeyPercentage = "Risk percentage"
	KeyMessage    = "Action message"
)

// Tier labels. The threshold is inclusive and applied to the rounded percentage.
const (
	TierRisk          = "Risk"
	TierElevated      = "Elevated Risk"
	ElevatedThreshold = 50
)

// RiskResult is the decoded response body, kept exactly as the service sent it.
type RiskResult map[string]any

// Percentage returns the raw percentage value, if any.
func (r RiskResult) Percentage() any {
	return r[KeyPercentage]
}

// Message returns the raw advisory value, if any.
func (r RiskResult) Message() any {
	return r[KeyMessage]
}

// DisplayResult is ready to print.
type DisplayResult struct {
	// Label is "64%" when the percentage parsed, otherwise the raw value as text.
	Label string `json:"label"`
	// Percentage is the rounded value, or 0 when unavailable.
	Percentage int64  `json:"percentage"`
	Available  bool   `json:"available"`
	Tier       string `json:"tier"`
	Advisory   string `json:"advisory"`
}

// Render derives display values from a raw result. It never fails: unparsable
// percentages fall back to their raw text and are tiered as zero.
func Render(raw RiskResult) DisplayResult {
	out := DisplayResult{Advisory: textOf(raw.Message())}

	value := raw.Percentage()
	pct, ok := parsePercentage(value)
	if !ok {
		out.Label = textOf(value)
		out.Tier = tierFor(0)
		return out
	}

	rounded := math.Round(pct)
	out.Available = true
	out.Label = strconv.FormatFloat(rounded, 'f', 0, 64) + "%"
	if rounded == 0 {
		// avoid "-0%"
		out.Label = "0%"
	}
	if math.Abs(rounded) <= math.MaxInt64/2 {
		out.Percentage = int64(rounded)
	}
	out.Tier = tierFor(rounded)
	return out
}

func tierFor(rounded float64) string {
	if rounded >= ElevatedThreshold {
		return TierElevated
	}
	return TierRisk
}

func parsePercentage(value any) (float64, bool) {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		text := strings.TrimSpace(v)
		text = strings.TrimSpace(strings.TrimSuffix(text, "%"))
		if text == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func textOf(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	case map[string]any, []any:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(data)
	default:
		return fmt.Sprint(v)
	}
}
