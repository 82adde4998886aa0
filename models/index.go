// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// IndexEntry is one row of the cached vault index: the minimal data needed
// to resolve a human-readable title to an item without downloading the full
// record.
type IndexEntry struct {
	// Identifier is the opaque unique ID of the item in the remote vault.
	Identifier string `json:"identifier"`

	// Title is the human-readable item name. Titles are not guaranteed
	// unique across the vault.
	Title string `json:"title"`

	// Kind is the item's template kind as reported by the provider.
	Kind TemplateKind `json:"kind"`
}

// Index is the cached title→identifier(+kind) listing of all items in the
// vault. Entries preserve the provider's listing order so that duplicate
// titles resolve deterministically.
type Index struct {
	// Entries holds all index rows in provider listing order.
	Entries []IndexEntry `json:"entries"`

	// FetchedAt is the time the listing was retrieved from the provider.
	FetchedAt time.Time `json:"fetched_at"`
}

// FindTitle returns the first entry whose title matches exactly, preserving
// the provider's listing order when duplicate titles exist. The second
// return value reports whether a match was found.
func (ix *Index) FindTitle(title string) (IndexEntry, bool) {
	for _, e := range ix.Entries {
		if e.Title == title {
			return e, true
		}
	}
	return IndexEntry{}, false
}

// Titles returns all item titles in listing order, duplicates included.
func (ix *Index) Titles() []string {
	titles := make([]string, 0, len(ix.Entries))
	for _, e := range ix.Entries {
		titles = append(titles, e.Title)
	}
	return titles
}
