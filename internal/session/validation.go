// internal/session/validation.go
package session

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"huntboard/internal/common/errors"
	"huntboard/internal/models"
)

// profileSchema is the onboarding payload contract. dateOfBirth is the
// only optional field.
var profileSchema = map[string]interface{}{
	"type": "object",
	"required": []interface{}{
		"firstName", "lastName", "email", "preferredRole", "phoneNumber", "countryPhoneCode",
	},
	"properties": map[string]interface{}{
		"firstName":     map[string]interface{}{"type": "string", "minLength": 1},
		"lastName":      map[string]interface{}{"type": "string", "minLength": 1},
		"email":         map[string]interface{}{"type": "string", "format": "email"},
		"preferredRole": map[string]interface{}{"type": "string", "minLength": 1},
		"phoneNumber":   map[string]interface{}{"type": "string", "minLength": 1},
		"countryPhoneCode": map[string]interface{}{
			"type":    "string",
			"pattern": `^\+[0-9]{1,4}$`,
		},
		"dateOfBirth": map[string]interface{}{"type": "string"},
	},
}

// validateProfileInput checks the onboarding payload against the schema
// before it goes on the wire.
func validateProfileInput(input models.CandidateProfileInput) error {
	raw, err := json.Marshal(input)
	if err != nil {
		return errors.NewSerializationError(err)
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return errors.NewSerializationError(err)
	}
	schemaLoader := gojsonschema.NewGoLoader(profileSchema)
	documentLoader := gojsonschema.NewGoLoader(doc)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return errors.NewValidationFailedError(err.Error())
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, resultErr := range result.Errors() {
			msgs = append(msgs, fmt.Sprintf("%s: %s", resultErr.Field(), resultErr.Description()))
		}
		return errors.NewValidationFailedError(strings.Join(msgs, "; "))
	}
	return nil
}
