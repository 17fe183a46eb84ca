package intake

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func filledForm() FormState {
	form := DefaultFormState()
	form.Age = "45"
	form.BMI = "24.5"
	form.LiverFunctionScore = "8"
	form.AlphaFetoproteinLevel = "15.2"
	return form
}

func TestBuildPayloadTypes(t *testing.T) {
	form := filledForm()
	form.Gender = "Female"
	form.SmokingStatus = "Current"
	form.HepatitisC = true

	data, err := json.Marshal(BuildPayload(form))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, 45.0, decoded["age"])
	require.Equal(t, 24.5, decoded["bmi"])
	require.Equal(t, 8.0, decoded["liver_function_score"])
	require.Equal(t, 15.2, decoded["alpha_fetoprotein_level"])
	require.Equal(t, "Female", decoded["gender"])
	require.Equal(t, "Current", decoded["smoking_status"])
	require.Equal(t, "Never", decoded["alcohol_consumption"])
	require.Equal(t, "Low", decoded["physical_activity_level"])
	require.Equal(t, true, decoded["hepatitis_c"])
	require.Equal(t, false, decoded["hepatitis_b"])
	require.Len(t, decoded, 13)
}

func TestBuildPayloadKeepsEnumCasing(t *testing.T) {
	form := filledForm()
	form.Gender = "male"

	payload := BuildPayload(form)
	require.Equal(t, "male", payload.Gender)
}

func TestParseNumericPrefixes(t *testing.T) {
	require.Equal(t, 45, *parseIntPrefix(" 45.9 "))
	require.Equal(t, -3, *parseIntPrefix("-3abc"))
	require.Nil(t, parseIntPrefix("abc"))
	require.Nil(t, parseIntPrefix(""))

	require.Equal(t, 24.5, *parseFloatPrefix("24.5kg"))
	require.Equal(t, 0.5, *parseFloatPrefix(".5"))
	require.Equal(t, 1500.0, *parseFloatPrefix("1.5e3"))
	require.Equal(t, 7.0, *parseFloatPrefix("7."))
	require.Nil(t, parseFloatPrefix("n/a"))
	require.Nil(t, parseFloatPrefix("1e999"))
}

func TestBuildPayloadNonNumericBecomesNull(t *testing.T) {
	form := filledForm()
	form.BMI = "unknown"

	data, err := json.Marshal(BuildPayload(form))
	require.NoError(t, err)
	require.Contains(t, string(data), `"bmi":null`)
}
