package data

import (
	"log/slog"

	"github.com/udisondev/transmog/internal/model"
)

// ItemTable — глобальный registry всех item templates.
// map[entry]*model.ItemTemplate
var ItemTable map[int32]*model.ItemTemplate

// GetItemTemplate возвращает template по entry, или nil.
func GetItemTemplate(entry int32) *model.ItemTemplate {
	if ItemTable == nil {
		return nil
	}
	return ItemTable[entry]
}

// LoadItemTemplates строит ItemTable из Go-литералов (itemDefs).
func LoadItemTemplates() error {
	ItemTable = make(map[int32]*model.ItemTemplate, len(itemDefs))

	for i := range itemDefs {
		ItemTable[itemDefs[i].Entry] = &itemDefs[i]
	}

	slog.Info("loaded item templates", "count", len(ItemTable))
	return nil
}
