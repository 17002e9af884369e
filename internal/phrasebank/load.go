package phrasebank

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/message-polisher/internal/types"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed banks.schema.json
var banksSchema string

// FieldError represents a single schema violation at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates the schema violations found in a bank file.
type ValidationError struct {
	Path   string
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("phrase bank file %s failed validation:\n", e.Path))
	for i, fe := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, fe.Field, fe.Message))
	}
	return sb.String()
}

// overrides mirrors the Banks JSON shape but keeps sections optional so a
// file may override only some tables.
type overrides struct {
	SignOffs        map[string][]string `json:"sign_offs"`
	Openers         map[string][]string `json:"openers"`
	SubjectPrefixes map[string][]string `json:"subject_prefixes"`
	LocaleFlavor    map[string]Flavor   `json:"locale_flavor"`
	ReplyStyles     map[string][]string `json:"reply_styles"`
	Reference       map[string][]string `json:"reference"`
}

// Load reads a phrase bank override file, validates it against the embedded
// JSON Schema, and returns the defaults with the overridden sections applied.
// Each key present in the file replaces the corresponding default list
// wholesale; keys absent from the file keep their defaults.
func Load(path string) (*Banks, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve bank file path %s: %w", path, err)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read phrase bank file %s: %w", absPath, err)
	}

	if err := validateBankJSON(absPath, data); err != nil {
		return nil, err
	}

	var ov overrides
	if err := json.Unmarshal(data, &ov); err != nil {
		return nil, fmt.Errorf("failed to parse phrase bank file %s: %w", absPath, err)
	}

	banks := Defaults()
	merge(banks.SignOffs, ov.SignOffs)
	merge(banks.Openers, ov.Openers)
	merge(banks.SubjectPrefixes, ov.SubjectPrefixes)
	merge(banks.ReplyStyles, ov.ReplyStyles)
	for key, flavor := range ov.LocaleFlavor {
		banks.LocaleFlavor[types.Locale(key)] = flavor
	}
	for key, phrases := range ov.Reference {
		banks.Reference[key] = phrases
	}
	return banks, nil
}

// validateBankJSON checks the raw file content against the embedded schema.
func validateBankJSON(path string, data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(banksSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to validate phrase bank file %s: %w", path, err)
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{Path: path}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}

// merge replaces defaults with overridden lists. The enum key types differ
// per table, so the map is keyed generically on the JSON string value.
func merge[K ~string](dst map[K][]string, src map[string][]string) {
	for key, phrases := range src {
		dst[K(key)] = phrases
	}
}
