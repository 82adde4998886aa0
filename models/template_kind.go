package models

import "strings"

// TemplateKind defines the schema variant governing an item's internal
// field layout. The value determines which field-extraction rules apply
// to the decrypted record.
type TemplateKind int

const (
	// KindUnknown marks a category string the client does not recognize.
	// Entries of this kind are carried through the index unchanged and
	// rejected only when a field is actually resolved against them.
	KindUnknown TemplateKind = 0

	// KindLogin represents authentication credentials with designated
	// username/password fields plus free-form sections.
	KindLogin TemplateKind = 1

	// KindPassword represents a standalone password value plus free-form
	// sections. There is no username concept for this kind.
	KindPassword TemplateKind = 2
)

// ParseTemplateKind maps a provider category string to a TemplateKind.
// Matching is case-insensitive; unrecognized categories map to KindUnknown.
func ParseTemplateKind(category string) TemplateKind {
	switch strings.ToLower(strings.TrimSpace(category)) {
	case "login":
		return KindLogin
	case "password":
		return KindPassword
	default:
		return KindUnknown
	}
}

// String returns the canonical lower-case name of the kind.
func (k TemplateKind) String() string {
	switch k {
	case KindLogin:
		return "login"
	case KindPassword:
		return "password"
	default:
		return "unknown"
	}
}
