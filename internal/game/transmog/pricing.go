package transmog

import (
	"fmt"
	"strings"

	"github.com/udisondev/transmog/internal/model"
)

// defaultBasePrice is charged for items a vendor would pay nothing for.
const defaultBasePrice = 100 // copper

// LookPrice returns the copper cost of overriding the target item's
// appearance: (sell price + flat fee) * multiplier, truncated.
func LookPrice(tmpl *model.ItemTemplate, cfg Config) int64 {
	if tmpl == nil {
		return 0
	}
	base := tmpl.SellPrice
	if base == 0 {
		base = defaultBasePrice
	}
	return int64(float64(base+cfg.CostFee) * cfg.CostMultiplier)
}

// FormatPrice renders copper as "Xg Ys Zc". Silver is suppressed above
// 50 gold, copper above 10 gold.
func FormatPrice(copper int64) string {
	if copper <= 0 {
		return "0"
	}

	gold := copper / 10000
	copper -= gold * 10000
	silver := copper / 100
	copper -= silver * 100

	var parts []string
	if gold > 0 {
		parts = append(parts, fmt.Sprintf("%dg", gold))
	}
	if silver > 0 && gold < 50 {
		parts = append(parts, fmt.Sprintf("%ds", silver))
	}
	if copper > 0 && gold < 10 {
		parts = append(parts, fmt.Sprintf("%dc", copper))
	}
	return strings.Join(parts, " ")
}
