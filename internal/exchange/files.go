// Package exchange moves persisted collections to and from user files:
// JSON and CSV export/import of every collection, and OFX statement import.
// Nothing in this package runs as a side effect of normal loads or saves; it
// is invoked only by explicit export/import commands.
package exchange

import (
	"fmt"

	"github.com/pocketbook/pocketbook/internal/common"
	"github.com/pocketbook/pocketbook/internal/storage"
)

// Format names a supported file format.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatOFX  Format = "ofx"
)

var fileNames = map[string]string{
	storage.KeyAccounts:     "accounts.json",
	storage.KeyTransactions: "transactions.json",
	storage.KeyBudgets:      "budgets.json",
	storage.KeyCategories:   "categories.json",
	storage.KeySettings:     "settings.json",
}

// FileName returns the default export file name for a key and format.
func FileName(key string, format Format) (string, error) {
	name, ok := fileNames[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", common.ErrUnknownDataKey, key)
	}
	if format == FormatCSV {
		if key == storage.KeySettings {
			return "", fmt.Errorf("%w: settings has no CSV form", common.ErrUnknownDataKey)
		}
		return name[:len(name)-len("json")] + "csv", nil
	}
	return name, nil
}
