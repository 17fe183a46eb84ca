package intake

// Field names accepted by UpdateField and used as payload keys.
const (
	FieldAge                   = "age"
	FieldGender                = "gender"
	FieldBMI                   = "bmi"
	FieldAlcoholConsumption    = "alcohol_consumption"
	FieldSmokingStatus         = "smoking_status"
	FieldHepatitisB            = "hepatitis_b"
	FieldHepatitisC            = "hepatitis_c"
	FieldLiverFunctionScore    = "liver_function_score"
	FieldAlphaFetoproteinLevel = "alpha_fetoprotein_level"
	FieldCirrhosisHistory      = "cirrhosis_history"
	FieldFamilyHistoryCancer   = "family_history_cancer"
	FieldPhysicalActivityLevel = "physical_activity_level"
	FieldDiabetes              = "diabetes"
)

// FieldKind tells renderers which control to draw.
type FieldKind string

const (
	KindNumber FieldKind = "number"
	KindEnum   FieldKind = "enum"
	KindToggle FieldKind = "toggle"
)

// Field describes one intake form control.
type Field struct {
	Name        string    `json:"name"`
	Label       string    `json:"label"`
	Section     string    `json:"section"`
	Kind        FieldKind `json:"kind"`
	Required    bool      `json:"required"`
	Options     []string  `json:"options,omitempty"`
	Step        string    `json:"step,omitempty"`
	Min         string    `json:"min,omitempty"`
	Placeholder string    `json:"placeholder,omitempty"`
}

const (
	SectionDemographic = "Demographic Data"
	SectionLifestyle   = "Lifestyle Habits"
	SectionClinical    = "Clinical History"
)

var fieldCatalog = []Field{
	{Name: FieldAge, Label: "Age", Section: SectionDemographic, Kind: KindNumber, Required: true, Min: "0", Placeholder: "e.g. 45"},
	{Name: FieldGender, Label: "Gender", Section: SectionDemographic, Kind: KindEnum, Options: []string{"Male", "Female"}},
	{Name: FieldBMI, Label: "BMI", Section: SectionLifestyle, Kind: KindNumber, Required: true, Step: "0.1", Placeholder: "e.g. 24.5"},
	{Name: FieldSmokingStatus, Label: "Smoking Status", Section: SectionLifestyle, Kind: KindEnum, Options: []string{"Current", "Former", "Never"}},
	{Name: FieldAlcoholConsumption, Label: "Alcohol consumption", Section: SectionLifestyle, Kind: KindEnum, Options: []string{"Never", "Occasional", "Regular"}},
	{Name: FieldPhysicalActivityLevel, Label: "Physical Activity Level", Section: SectionLifestyle, Kind: KindEnum, Options: []string{"High", "Low", "Moderate"}},
	{Name: FieldLiverFunctionScore, Label: "Liver Function Score", Section: SectionClinical, Kind: KindNumber, Required: true, Step: "0.1", Placeholder: "e.g. 8"},
	{Name: FieldAlphaFetoproteinLevel, Label: "Alpha Fetoprotein Level", Section: SectionClinical, Kind: KindNumber, Required: true, Step: "0.1", Placeholder: "e.g. 15"},
	{Name: FieldHepatitisB, Label: "Hepatitis B", Section: SectionClinical, Kind: KindToggle},
	{Name: FieldHepatitisC, Label: "Hepatitis C", Section: SectionClinical, Kind: KindToggle},
	{Name: FieldCirrhosisHistory, Label: "Cirrhosis History", Section: SectionClinical, Kind: KindToggle},
	{Name: FieldFamilyHistoryCancer, Label: "Family History Cancer", Section: SectionClinical, Kind: KindToggle},
	{Name: FieldDiabetes, Label: "Diabetes", Section: SectionClinical, Kind: KindToggle},
}

// Fields returns the form catalog in display order.
func Fields() []Field {
	out := make([]Field, len(fieldCatalog))
	for i, f := range fieldCatalog {
		f.Options = append([]string(nil), f.Options...)
		out[i] = f
	}
	return out
}

// LookupField finds a field by name.
func LookupField(name string) (Field, bool) {
	for _, f := range fieldCatalog {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
