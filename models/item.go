package models

// ItemRecord is the decrypted representation of one secret. Its internal
// structure depends on Kind: Login items carry designated fields
// (username, password) in Details.Fields, Password items carry a direct
// Details.Password value. Both kinds may carry free-form sections.
type ItemRecord struct {
	// Identifier is the opaque unique ID of the item in the remote vault.
	Identifier string `json:"identifier"`

	// Title is the human-readable item name.
	Title string `json:"title"`

	// Kind is the template kind governing the Details layout.
	Kind TemplateKind `json:"kind"`

	// Details holds the kind-specific secret payload.
	Details ItemDetails `json:"details"`
}

// ItemDetails is the kind-dependent body of an item record.
type ItemDetails struct {
	// Password is the direct password attribute used by Password-kind
	// items. Empty for Login-kind items, which carry their password as a
	// designated field instead.
	Password string `json:"password,omitempty"`

	// Fields holds the designated named fields of a Login-kind item.
	Fields []DesignatedField `json:"fields,omitempty"`

	// Sections holds the free-form labelled sections, in the order the
	// provider returned them.
	Sections []Section `json:"sections,omitempty"`
}

// DesignatedField is a built-in named field of a Login-kind item. The
// designation ("username", "password") identifies the field's role
// independently of its display name.
type DesignatedField struct {
	Designation string `json:"designation"`
	Name        string `json:"name"`
	Value       string `json:"value"`
}

// Section is an ordered group of labelled free-form fields.
type Section struct {
	Title  string         `json:"title"`
	Fields []SectionField `json:"fields"`
}

// SectionField is a single labelled value inside a section.
type SectionField struct {
	Label string `json:"label"`
	Value string `json:"value"`
}
