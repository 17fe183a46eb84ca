package intake

import "strings"

// MissingRequiredMessage is shown when any required field is blank at submit time.
const MissingRequiredMessage = "Please complete the required fields: Age, BMI, Liver Function Score and AFP."

// MissingRequired lists the required fields that are blank, in catalog order.
func MissingRequired(form FormState) []string {
	var missing []string
	for _, f := range fieldCatalog {
		if !f.Required {
			continue
		}
		value, _ := form.Value(f.Name)
		text, _ := value.(string)
		if strings.TrimSpace(text) == "" {
			missing = append(missing, f.Name)
		}
	}
	return missing
}
