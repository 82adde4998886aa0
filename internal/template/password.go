package template

import (
	"fmt"

	"github.com/MKhiriev/go-vault-clip/models"
)

// passwordExtractor handles Password-kind records: a direct password
// attribute plus labelled sections. There is no username concept.
type passwordExtractor struct{}

// Password implements [Extractor] via the record's direct attribute.
func (passwordExtractor) Password(record models.ItemRecord) (string, error) {
	if record.Details.Password != "" {
		return record.Details.Password, nil
	}
	return "", fmt.Errorf("%w: password item %q carries no password value", ErrFieldNotFound, record.Title)
}

// Field implements [Extractor].
func (p passwordExtractor) Field(record models.ItemRecord, name string) (string, error) {
	if name == designationPassword {
		return p.Password(record)
	}

	if value, ok := sectionField(record, name); ok {
		return value, nil
	}
	return "", fmt.Errorf("%w: %q", ErrFieldNotFound, name)
}

// Labels implements [Extractor].
func (passwordExtractor) Labels(record models.ItemRecord) []string {
	labels := []string{designationPassword}
	return append(labels, sectionLabels(record)...)
}
