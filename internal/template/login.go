package template

import (
	"fmt"

	"github.com/MKhiriev/go-vault-clip/models"
)

const (
	designationUsername = "username"
	designationPassword = "password"
)

// loginExtractor handles Login-kind records: the username and password live
// in designated fields, everything else in labelled sections.
type loginExtractor struct{}

// Password implements [Extractor] via the designated password field.
func (loginExtractor) Password(record models.ItemRecord) (string, error) {
	if value, ok := designatedField(record, designationPassword); ok {
		return value, nil
	}
	return "", fmt.Errorf("%w: login item %q has no password field", ErrFieldNotFound, record.Title)
}

// Field implements [Extractor]. Built-in designated fields take precedence
// over section fields with the same label.
func (loginExtractor) Field(record models.ItemRecord, name string) (string, error) {
	if name == designationUsername || name == designationPassword {
		if value, ok := designatedField(record, name); ok {
			return value, nil
		}
		return "", fmt.Errorf("%w: %q", ErrFieldNotFound, name)
	}

	if value, ok := sectionField(record, name); ok {
		return value, nil
	}
	return "", fmt.Errorf("%w: %q", ErrFieldNotFound, name)
}

// Labels implements [Extractor]: present built-ins first, then section
// labels in encounter order.
func (loginExtractor) Labels(record models.ItemRecord) []string {
	var labels []string
	if _, ok := designatedField(record, designationUsername); ok {
		labels = append(labels, designationUsername)
	}
	if _, ok := designatedField(record, designationPassword); ok {
		labels = append(labels, designationPassword)
	}
	return append(labels, sectionLabels(record)...)
}

func designatedField(record models.ItemRecord, designation string) (string, bool) {
	for _, field := range record.Details.Fields {
		if field.Designation == designation {
			return field.Value, true
		}
	}
	return "", false
}
