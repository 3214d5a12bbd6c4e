package data

import "github.com/udisondev/transmog/internal/model"

// SetTestItemTemplate populates ItemTable with a test template.
// Intended for tests from other packages that need item data setup.
func SetTestItemTemplate(tmpl *model.ItemTemplate) {
	if ItemTable == nil {
		ItemTable = make(map[int32]*model.ItemTemplate, 8)
	}
	ItemTable[tmpl.Entry] = tmpl
}

// DeleteTestItemTemplate removes a single entry from ItemTable.
func DeleteTestItemTemplate(entry int32) {
	delete(ItemTable, entry)
}

// ClearTestItemTable resets ItemTable for test isolation.
func ClearTestItemTable() {
	ItemTable = make(map[int32]*model.ItemTemplate, 8)
}
