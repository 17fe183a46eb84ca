package intake

import (
	"regexp"
	"strconv"
	"strings"
)

// Payload is the normalized body sent to the prediction service.
// Numeric fields are nil (JSON null) when the form text holds no number.
type Payload struct {
	Age                   *int     `json:"age"`
	Gender                string   `json:"gender"`
	BMI                   *float64 `json:"bmi"`
	AlcoholConsumption    string   `json:"alcohol_consumption"`
	SmokingStatus         string   `json:"smoking_status"`
	HepatitisB            bool     `json:"hepatitis_b"`
	HepatitisC            bool     `json:"hepatitis_c"`
	LiverFunctionScore    *float64 `json:"liver_function_score"`
	AlphaFetoproteinLevel *float64 `json:"alpha_fetoprotein_level"`
	CirrhosisHistory      bool     `json:"cirrhosis_history"`
	FamilyHistoryCancer   bool     `json:"family_history_cancer"`
	PhysicalActivityLevel string   `json:"physical_activity_level"`
	Diabetes              bool     `json:"diabetes"`
}

// BuildPayload converts form text into service types. Enum values keep their exact casing.
func BuildPayload(form FormState) Payload {
	return Payload{
		Age:                   parseIntPrefix(form.Age),
		Gender:                form.Gender,
		BMI:                   parseFloatPrefix(form.BMI),
		AlcoholConsumption:    form.AlcoholConsumption,
		SmokingStatus:         form.SmokingStatus,
		HepatitisB:            form.HepatitisB,
		HepatitisC:            form.HepatitisC,
		LiverFunctionScore:    parseFloatPrefix(form.LiverFunctionScore),
		AlphaFetoproteinLevel: parseFloatPrefix(form.AlphaFetoproteinLevel),
		CirrhosisHistory:      form.CirrhosisHistory,
		FamilyHistoryCancer:   form.FamilyHistoryCancer,
		PhysicalActivityLevel: form.PhysicalActivityLevel,
		Diabetes:              form.Diabetes,
	}
}

var (
	intPrefix   = regexp.MustCompile(`^[+-]?\d+`)
	floatPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
)

// parseIntPrefix reads the leading base-10 integer of the trimmed text ("45.9" -> 45).
func parseIntPrefix(raw string) *int {
	match := intPrefix.FindString(strings.TrimSpace(raw))
	if match == "" {
		return nil
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return nil
	}
	return &n
}

// parseFloatPrefix reads the leading decimal number of the trimmed text ("24.5kg" -> 24.5).
func parseFloatPrefix(raw string) *float64 {
	match := floatPrefix.FindString(strings.TrimSpace(raw))
	if match == "" {
		return nil
	}
	f, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return nil
	}
	return &f
}
