// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package template maps requested field names to values within decrypted
// item records. Each template kind has its own [Extractor] variant with its
// own rules for the password pseudo-field, arbitrary named fields, and
// field-label listing; adding a new kind means adding a variant here, never
// another conditional at a call site.
package template

import (
	"fmt"

	"github.com/MKhiriev/go-vault-clip/models"
)

// Extractor resolves fields within a decrypted item record of one template
// kind.
type Extractor interface {
	// Password returns the value of the password pseudo-field.
	Password(record models.ItemRecord) (string, error)

	// Field returns the value of a named field: a kind-specific built-in
	// field, or a labelled section field matched by label in encounter
	// order. Returns an error wrapping [ErrFieldNotFound] when no field
	// matches.
	Field(record models.ItemRecord, name string) (string, error)

	// Labels lists every available field label: the kind's built-in
	// fields first, then every labelled section field in encounter order.
	Labels(record models.ItemRecord) []string
}

// ForKind returns the [Extractor] variant for the given template kind, or
// an error wrapping [ErrUnsupportedTemplate] for kinds this build does not
// recognize.
func ForKind(kind models.TemplateKind) (Extractor, error) {
	switch kind {
	case models.KindLogin:
		return loginExtractor{}, nil
	case models.KindPassword:
		return passwordExtractor{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedTemplate, kind)
	}
}

// sectionField searches the record's sections in order and returns the
// first field whose label matches name.
func sectionField(record models.ItemRecord, name string) (string, bool) {
	for _, section := range record.Details.Sections {
		for _, field := range section.Fields {
			if field.Label == name {
				return field.Value, true
			}
		}
	}
	return "", false
}

// sectionLabels collects every labelled section field in encounter order.
func sectionLabels(record models.ItemRecord) []string {
	var labels []string
	for _, section := range record.Details.Sections {
		for _, field := range section.Fields {
			if field.Label != "" {
				labels = append(labels, field.Label)
			}
		}
	}
	return labels
}
