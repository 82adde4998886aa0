package clip

import "github.com/atotto/clipboard"

// Clipboard is the OS clipboard capability the broker needs.
type Clipboard interface {
	// Read returns the clipboard's current contents.
	Read() (string, error)

	// Write replaces the clipboard's contents.
	Write(value string) error
}

// systemClipboard backs [Clipboard] with the atotto/clipboard bindings.
type systemClipboard struct{}

// SystemClipboard returns the OS-backed [Clipboard].
func SystemClipboard() Clipboard {
	return systemClipboard{}
}

func (systemClipboard) Read() (string, error) {
	return clipboard.ReadAll()
}

func (systemClipboard) Write(value string) error {
	return clipboard.WriteAll(value)
}
