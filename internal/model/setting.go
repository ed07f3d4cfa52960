package model

// Setting is one row of the key-value site configuration table.
// Settings are seeded by migration and read-only through the API.
type Setting struct {
	Key   string  `json:"key"`
	Value *string `json:"value"`
}
