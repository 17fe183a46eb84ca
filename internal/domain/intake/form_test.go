package intake

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/risk-intake/pkg/errors"
)

func TestDefaultFormStateHasEveryField(t *testing.T) {
	data, err := json.Marshal(DefaultFormState())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, len(Fields()))
	for _, f := range Fields() {
		require.Contains(t, decoded, f.Name)
	}
	require.Equal(t, "Male", decoded[FieldGender])
	require.Equal(t, "Low", decoded[FieldPhysicalActivityLevel])
	require.Equal(t, "", decoded[FieldAge])
	require.Equal(t, false, decoded[FieldDiabetes])
}

func TestSetChangesOnlyNamedField(t *testing.T) {
	updates := map[string]any{
		FieldAge:                   "45",
		FieldGender:                "Female",
		FieldBMI:                   "24.5",
		FieldAlcoholConsumption:    "Regular",
		FieldSmokingStatus:         "Former",
		FieldHepatitisB:            true,
		FieldHepatitisC:            true,
		FieldLiverFunctionScore:    "8",
		FieldAlphaFetoproteinLevel: "15",
		FieldCirrhosisHistory:      true,
		FieldFamilyHistoryCancer:   true,
		FieldPhysicalActivityLevel: "High",
		FieldDiabetes:              true,
	}
	for name, value := range updates {
		t.Run(name, func(t *testing.T) {
			form := DefaultFormState()
			before := form
			require.NoError(t, form.Set(name, value))

			got, ok := form.Value(name)
			require.True(t, ok)
			require.Equal(t, value, got)

			for _, other := range Fields() {
				if other.Name == name {
					continue
				}
				want, _ := before.Value(other.Name)
				have, _ := form.Value(other.Name)
				require.Equal(t, want, have, "field %s changed", other.Name)
			}
		})
	}
}

func TestSetCoercesInputs(t *testing.T) {
	form := DefaultFormState()

	require.NoError(t, form.Set(FieldAge, 45.0))
	require.Equal(t, "45", form.Age)

	require.NoError(t, form.Set(FieldBMI, json.Number("24.5")))
	require.Equal(t, "24.5", form.BMI)

	require.NoError(t, form.Set(FieldDiabetes, "on"))
	require.True(t, form.Diabetes)

	require.NoError(t, form.Set(FieldDiabetes, "false"))
	require.False(t, form.Diabetes)

	require.NoError(t, form.Set(FieldAge, nil))
	require.Equal(t, "", form.Age)
}

func TestSetRejectsUnknownAndMistyped(t *testing.T) {
	form := DefaultFormState()

	err := form.Set("weight", "80")
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))

	err = form.Set(FieldHepatitisB, "maybe")
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
	require.False(t, form.HepatitisB)

	err = form.Set(FieldAge, []string{"4"})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
	require.Equal(t, DefaultFormState(), form)
}

func TestMissingRequired(t *testing.T) {
	form := DefaultFormState()
	require.Equal(t, []string{FieldAge, FieldBMI, FieldLiverFunctionScore, FieldAlphaFetoproteinLevel}, MissingRequired(form))

	form.Age = "45"
	form.BMI = "   "
	form.LiverFunctionScore = "8"
	form.AlphaFetoproteinLevel = "15"
	require.Equal(t, []string{FieldBMI}, MissingRequired(form))

	form.BMI = "24.5"
	require.Empty(t, MissingRequired(form))
}

func TestFieldsCatalogIsCopied(t *testing.T) {
	fields := Fields()
	fields[1].Options[0] = "changed"

	f, ok := LookupField(FieldGender)
	require.True(t, ok)
	require.Equal(t, []string{"Male", "Female"}, f.Options)

	_, ok = LookupField("nope")
	require.False(t, ok)
}
