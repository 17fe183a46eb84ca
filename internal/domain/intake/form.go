package intake

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "github.com/yanqian/risk-intake/pkg/errors"
)

// FormState holds the current value of every declared intake field.
// Numeric fields stay as raw text until a payload is built.
type FormState struct {
	Age                   string `json:"age"`
	Gender                string `json:"gender"`
	BMI                   string `json:"bmi"`
	AlcoholConsumption    string `json:"alcohol_consumption"`
	SmokingStatus         string `json:"smoking_status"`
	HepatitisB            bool   `json:"hepatitis_b"`
	HepatitisC            bool   `json:"hepatitis_c"`
	LiverFunctionScore    string `json:"liver_function_score"`
	AlphaFetoproteinLevel string `json:"alpha_fetoprotein_level"`
	CirrhosisHistory      bool   `json:"cirrhosis_history"`
	FamilyHistoryCancer   bool   `json:"family_history_cancer"`
	PhysicalActivityLevel string `json:"physical_activity_level"`
	Diabetes              bool   `json:"diabetes"`
}

// DefaultFormState returns the values a fresh or reset form starts with.
func DefaultFormState() FormState {
	return FormState{
		Gender:                "Male",
		AlcoholConsumption:    "Never",
		SmokingStatus:         "Never",
		PhysicalActivityLevel: "Low",
	}
}

// Set replaces a single field. Only the named field changes.
func (f *FormState) Set(name string, raw any) error {
	if ptr := f.textField(name); ptr != nil {
		text, err := coerceText(raw)
		if err != nil {
			return apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("field %s expects text", name), err)
		}
		*ptr = text
		return nil
	}
	if ptr := f.toggleField(name); ptr != nil {
		flag, err := coerceBool(raw)
		if err != nil {
			return apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("field %s expects a boolean", name), err)
		}
		*ptr = flag
		return nil
	}
	return apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("unknown field %q", name), nil)
}

// Value returns the current value of a field as string or bool.
func (f FormState) Value(name string) (any, bool) {
	if ptr := f.textField(name); ptr != nil {
		return *ptr, true
	}
	if ptr := f.toggleField(name); ptr != nil {
		return *ptr, true
	}
	return nil, false
}

func (f *FormState) textField(name string) *string {
	switch name {
	case FieldAge:
		return &f.Age
	case FieldGender:
		return &f.Gender
	case FieldBMI:
		return &f.BMI
	case FieldAlcoholConsumption:
		return &f.AlcoholConsumption
	case FieldSmokingStatus:
		return &f.SmokingStatus
	case FieldLiverFunctionScore:
		return &f.LiverFunctionScore
	case FieldAlphaFetoproteinLevel:
		return &f.AlphaFetoproteinLevel
	case FieldPhysicalActivityLevel:
		return &f.PhysicalActivityLevel
	}
	return nil
}

func (f *FormState) toggleField(name string) *bool {
	switch name {
	case FieldHepatitisB:
		return &f.HepatitisB
	case FieldHepatitisC:
		return &f.HepatitisC
	case FieldCirrhosisHistory:
		return &f.CirrhosisHistory
	case FieldFamilyHistoryCancer:
		return &f.FamilyHistoryCancer
	case FieldDiabetes:
		return &f.Diabetes
	}
	return nil
}

func coerceText(raw any) (string, error) {
	switch v := raw.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return "", fmt.Errorf("unsupported value type %T", raw)
	}
}

func coerceBool(raw any) (bool, error) {
	switch v := raw.(type) {
	case nil:
		return false, nil
	case bool:
		return v, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "", "false", "0", "no", "off":
			return false, nil
		case "true", "1", "yes", "on":
			return true, nil
		}
		return false, fmt.Errorf("unrecognized boolean %q", v)
	case float64:
		return v != 0, nil
	case int:
		return v != 0, nil
	default:
		return false, fmt.Errorf("unsupported value type %T", raw)
	}
}
