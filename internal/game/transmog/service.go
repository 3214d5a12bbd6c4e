package transmog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/udisondev/transmog/internal/data"
	"github.com/udisondev/transmog/internal/metrics"
	"github.com/udisondev/transmog/internal/model"
)

// Config holds appearance override configuration.
type Config struct {
	Enabled        bool
	PresetsEnabled bool
	MaxPresets     int // per-character preset quota, capped at 25

	CostMultiplier float64
	CostFee        int64 // copper, added to the sell price before the multiplier

	TokenRequired bool
	TokenEntry    int32
	TokenAmount   int32
}

// maxPresetCeiling is the hard cap on the configurable preset quota.
const maxPresetCeiling = 25

// AppearanceNotifier pushes visual updates and messages back to the
// player. The presentation layer supplies the real implementation.
type AppearanceNotifier interface {
	// RefreshSlot re-sends the visible item for an equipped slot.
	RefreshSlot(player *model.Player, slot model.EquipSlot)

	// Notify delivers a plain text message to the player.
	Notify(player *model.Player, message string)
}

// NopNotifier discards all updates. Useful in tests and batch tools.
type NopNotifier struct{}

func (NopNotifier) RefreshSlot(*model.Player, model.EquipSlot) {}
func (NopNotifier) Notify(*model.Player, string)               {}

// Service orchestrates appearance override operations.
// Bridges the in-memory Table and Registry with the DB Repository.
type Service struct {
	config   Config
	table    *Table
	presets  *Registry
	repo     Repository
	notifier AppearanceNotifier
}

// NewService creates a new appearance override service.
// Invalid config values are normalized: the preset quota is clamped, a
// non-positive token amount becomes 1, and an unknown token entry
// disables the token requirement entirely.
func NewService(cfg Config, repo Repository, notifier AppearanceNotifier) *Service {
	if cfg.MaxPresets < 1 {
		cfg.MaxPresets = 1
	}
	if cfg.MaxPresets > maxPresetCeiling {
		cfg.MaxPresets = maxPresetCeiling
	}
	if cfg.CostMultiplier < 0 {
		cfg.CostMultiplier = 1.0
	}
	if cfg.TokenAmount < 1 {
		cfg.TokenAmount = 1
	}
	if cfg.TokenRequired && data.GetItemTemplate(cfg.TokenEntry) == nil {
		slog.Error("transmogrification token does not exist, disabling token requirement",
			"tokenEntry", cfg.TokenEntry)
		cfg.TokenRequired = false
	}

	if notifier == nil {
		notifier = NopNotifier{}
	}

	return &Service{
		config:   cfg,
		table:    NewTable(),
		presets:  NewRegistry(),
		repo:     repo,
		notifier: notifier,
	}
}

// Enabled returns true if appearance overrides are enabled in config.
func (s *Service) Enabled() bool {
	return s.config.Enabled
}

// Look returns the borrowed entry displayed for an item, if any.
func (s *Service) Look(itemGUID uint32) (int32, bool) {
	return s.table.Look(itemGUID)
}

// ActiveLooks returns the overrides currently visible on the player's
// paperdoll: slot → borrowed entry.
func (s *Service) ActiveLooks(player *model.Player) map[model.EquipSlot]int32 {
	out := make(map[model.EquipSlot]int32)
	for _, item := range player.Inventory().EquippedItems() {
		if entry, ok := s.table.Look(item.GUID()); ok {
			out[item.Slot()] = entry
		}
	}
	return out
}

// ApplyLook copies the donor item's appearance onto whatever is equipped
// in the slot. A zero donor guid reverts the slot to its true appearance
// free of charge.
//
// Flow: validate slot → resolve target and donor → compatibility →
// same-look check → charge (tokens when required, money otherwise) →
// durable write → cache update → donor binding → visible refresh.
// A durable-write failure aborts before any cache mutation.
func (s *Service) ApplyLook(ctx context.Context, player *model.Player, slot model.EquipSlot, donorGUID uint32) error {
	if !s.config.Enabled {
		return ErrDisabled
	}
	if !slot.Valid() {
		slog.Error("apply look with wrong slot", "characterID", player.CharacterID(), "slot", slot)
		return ErrInvalidSlot
	}

	var donor *model.Item
	if donorGUID != 0 {
		donor = player.Inventory().ItemByGUID(donorGUID)
		if donor == nil {
			return ErrMissingDonorItem
		}
	}

	target := player.Inventory().EquippedItem(slot)
	if target == nil {
		return ErrMissingTargetItem
	}

	if donor == nil {
		// Revert to the item's own appearance, free of charge
		return s.removeLook(ctx, player, target)
	}

	return s.applyDonor(ctx, player, target, donor)
}

// applyDonor performs the charged part of ApplyLook. In token mode the
// token quantity replaces the currency cost.
func (s *Service) applyDonor(ctx context.Context, player *model.Player, target, donor *model.Item) error {
	if !CanCopyLook(player, target.Template(), donor.Template()) {
		metrics.LooksRejected.WithLabelValues("incompatible").Inc()
		return ErrIncompatibleItems
	}

	if current, ok := s.table.Look(target.GUID()); ok && current == donor.Entry() {
		return ErrSameLook
	}

	var price int64
	if s.config.TokenRequired {
		if player.Inventory().CountByEntry(s.config.TokenEntry) < int64(s.config.TokenAmount) {
			metrics.LooksRejected.WithLabelValues("tokens").Inc()
			return ErrNotEnoughTokens
		}
		if err := player.Inventory().RemoveByEntry(s.config.TokenEntry, s.config.TokenAmount); err != nil {
			return ErrNotEnoughTokens
		}
	} else {
		price = LookPrice(target.Template(), s.config)
		if price > 0 && player.Money() < price {
			metrics.LooksRejected.WithLabelValues("money").Inc()
			return ErrNotEnoughMoney
		}
		if price > 0 {
			if err := player.SpendMoney(price); err != nil {
				return ErrNotEnoughMoney
			}
			metrics.MoneyCharged.Add(float64(price))
		}
	}

	if err := s.repo.UpsertLook(ctx, LookRow{
		ItemGUID:  target.GUID(),
		OwnerID:   player.CharacterID(),
		FakeEntry: donor.Entry(),
	}); err != nil {
		return fmt.Errorf("persist look: %w", err)
	}

	s.table.Set(player.CharacterID(), target.GUID(), donor.Entry())

	// Using an unworn BoE/BoU item as a donor binds it
	if b := donor.Template().Bonding; b == model.BindOnEquip || b == model.BindOnUse {
		donor.SetBound(true)
	}

	s.notifier.RefreshSlot(player, target.Slot())
	s.notifier.Notify(player, fmt.Sprintf("Transmogrification applied (%s).", FormatPrice(price)))

	metrics.LooksApplied.Inc()
	slog.Info("look applied",
		"characterID", player.CharacterID(),
		"slot", target.Slot(),
		"itemGUID", target.GUID(),
		"fakeEntry", donor.Entry(),
		"price", price)

	return nil
}

// applyEntry is the preset path: the donor exists only as a catalog
// entry, no live item and no charge.
func (s *Service) applyEntry(ctx context.Context, player *model.Player, target *model.Item, entry int32) error {
	donorTmpl := data.GetItemTemplate(entry)
	if donorTmpl == nil {
		return ErrMissingDonorItem
	}
	if !CanCopyLook(player, target.Template(), donorTmpl) {
		return ErrIncompatibleItems
	}
	if current, ok := s.table.Look(target.GUID()); ok && current == entry {
		return ErrSameLook
	}

	if err := s.repo.UpsertLook(ctx, LookRow{
		ItemGUID:  target.GUID(),
		OwnerID:   player.CharacterID(),
		FakeEntry: entry,
	}); err != nil {
		return fmt.Errorf("persist look: %w", err)
	}

	s.table.Set(player.CharacterID(), target.GUID(), entry)
	s.notifier.RefreshSlot(player, target.Slot())
	metrics.LooksApplied.Inc()
	return nil
}

// RemoveLook reverts a slot to its true appearance. Never fails on a
// slot that has no override.
func (s *Service) RemoveLook(ctx context.Context, player *model.Player, slot model.EquipSlot) error {
	if !slot.Valid() {
		return ErrInvalidSlot
	}
	target := player.Inventory().EquippedItem(slot)
	if target == nil {
		return ErrMissingTargetItem
	}
	return s.removeLook(ctx, player, target)
}

func (s *Service) removeLook(ctx context.Context, player *model.Player, target *model.Item) error {
	if err := s.repo.DeleteLook(ctx, target.GUID()); err != nil {
		return fmt.Errorf("delete look: %w", err)
	}

	if s.table.Remove(target.GUID()) {
		metrics.LooksRemoved.Inc()
		slog.Info("look removed",
			"characterID", player.CharacterID(),
			"itemGUID", target.GUID())
	}
	s.notifier.RefreshSlot(player, target.Slot())
	return nil
}

// RemoveAllLooks reverts every override the player holds. Returns how
// many were removed.
func (s *Service) RemoveAllLooks(ctx context.Context, player *model.Player) (int, error) {
	removed := 0
	for guid := range s.table.OwnerLooks(player.CharacterID()) {
		if err := s.repo.DeleteLook(ctx, guid); err != nil {
			return removed, fmt.Errorf("delete look for item %d: %w", guid, err)
		}
		s.table.Remove(guid)
		removed++

		if item := player.Inventory().ItemByGUID(guid); item != nil && item.IsEquipped() {
			s.notifier.RefreshSlot(player, item.Slot())
		}
	}

	if removed > 0 {
		metrics.LooksRemoved.Add(float64(removed))
		slog.Info("all looks removed", "characterID", player.CharacterID(), "count", removed)
	}
	return removed, nil
}

// SavePreset captures the player's active overrides under a new preset.
func (s *Service) SavePreset(ctx context.Context, player *model.Player, name string) (*Preset, error) {
	if !s.config.Enabled {
		return nil, ErrDisabled
	}
	if !s.config.PresetsEnabled {
		return nil, ErrPresetsDisabled
	}

	ownerID := player.CharacterID()
	if s.presets.Count(ownerID) >= s.config.MaxPresets {
		return nil, ErrPresetLimit
	}

	slots := s.ActiveLooks(player)
	if len(slots) == 0 {
		return nil, ErrNoActiveLooks
	}

	preset := &Preset{
		ID:    s.presets.NextFreeID(ownerID),
		Name:  name,
		Slots: slots,
	}

	if err := s.repo.SavePreset(ctx, PresetRow{
		OwnerID:  ownerID,
		PresetID: preset.ID,
		Name:     preset.Name,
		SlotData: EncodeSlotData(preset.Slots),
	}); err != nil {
		return nil, fmt.Errorf("persist preset: %w", err)
	}

	s.presets.Put(ownerID, preset)
	metrics.PresetsSaved.Inc()
	slog.Info("preset saved",
		"characterID", ownerID,
		"presetID", preset.ID,
		"name", name,
		"slots", len(slots))
	return preset, nil
}

// ApplyPreset re-applies a saved preset slot by slot, free of charge.
// Slots that are empty, or whose pairing no longer passes the
// compatibility rules, are skipped silently. Slots are independent: an
// infrastructure failure mid-way leaves earlier slots applied.
func (s *Service) ApplyPreset(ctx context.Context, player *model.Player, presetID int32) error {
	if !s.config.Enabled {
		return ErrDisabled
	}
	if !s.config.PresetsEnabled {
		return ErrPresetsDisabled
	}

	preset := s.presets.Get(player.CharacterID(), presetID)
	if preset == nil {
		return ErrPresetNotFound
	}

	for slot, entry := range preset.Slots {
		target := player.Inventory().EquippedItem(slot)
		if target == nil {
			continue
		}
		err := s.applyEntry(ctx, player, target, entry)
		switch {
		case err == nil, err == ErrSameLook, err == ErrIncompatibleItems, err == ErrMissingDonorItem:
			// Business skips are silent in the preset path
		default:
			return err
		}
	}

	metrics.PresetsApplied.Inc()
	slog.Info("preset applied",
		"characterID", player.CharacterID(),
		"presetID", presetID)
	return nil
}

// DeletePreset removes a preset. Deleting an absent preset is a no-op.
func (s *Service) DeletePreset(ctx context.Context, player *model.Player, presetID int32) error {
	if err := s.repo.DeletePreset(ctx, player.CharacterID(), presetID); err != nil {
		return fmt.Errorf("delete preset: %w", err)
	}
	if s.presets.Delete(player.CharacterID(), presetID) {
		metrics.PresetsDeleted.Inc()
	}
	return nil
}

// Presets returns the player's saved presets ordered by id.
func (s *Service) Presets(player *model.Player) []*Preset {
	return s.presets.List(player.CharacterID())
}

// OnLogin loads the player's durable overrides and presets into memory.
// Rows pointing at items the player no longer owns, or at entries no
// longer in the catalog, are deleted on the spot. Presets that end up
// empty after filtering are deleted too. Finishes by refreshing every
// equipped slot that carries an override.
func (s *Service) OnLogin(ctx context.Context, player *model.Player) error {
	if !s.config.Enabled {
		return nil
	}

	ownerID := player.CharacterID()

	rows, err := s.repo.LooksByOwner(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("load looks: %w", err)
	}

	loaded := 0
	for _, row := range rows {
		item := player.Inventory().ItemByGUID(row.ItemGUID)
		if item == nil {
			// Item was destroyed or traded away while the row survived
			if err := s.repo.DeleteLook(ctx, row.ItemGUID); err != nil {
				slog.Error("delete dangling look row", "itemGUID", row.ItemGUID, "error", err)
			}
			slog.Debug("dropped dangling look row", "characterID", ownerID, "itemGUID", row.ItemGUID)
			continue
		}
		if data.GetItemTemplate(row.FakeEntry) == nil {
			if err := s.repo.DeleteLook(ctx, row.ItemGUID); err != nil {
				slog.Error("delete unresolvable look row", "itemGUID", row.ItemGUID, "error", err)
			}
			slog.Warn("dropped look with unknown entry",
				"characterID", ownerID, "itemGUID", row.ItemGUID, "fakeEntry", row.FakeEntry)
			continue
		}

		s.table.Set(ownerID, row.ItemGUID, row.FakeEntry)
		loaded++

		if item.IsEquipped() {
			s.notifier.RefreshSlot(player, item.Slot())
		}
	}

	if err := s.loadPresets(ctx, player); err != nil {
		return err
	}

	slog.Info("looks loaded",
		"characterID", ownerID,
		"looks", loaded,
		"presets", s.presets.Count(ownerID))
	return nil
}

func (s *Service) loadPresets(ctx context.Context, player *model.Player) error {
	if !s.config.PresetsEnabled {
		return nil
	}

	ownerID := player.CharacterID()
	rows, err := s.repo.PresetsByOwner(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("load presets: %w", err)
	}

	for _, row := range rows {
		slots := make(map[model.EquipSlot]int32)
		for _, pair := range ParseSlotData(row.SlotData) {
			// Entries gone from the catalog drop out silently
			if data.GetItemTemplate(pair.Entry) == nil {
				continue
			}
			slots[pair.Slot] = pair.Entry
		}

		if len(slots) == 0 {
			// Nothing survived the filter, the row is dead weight
			if err := s.repo.DeletePreset(ctx, ownerID, row.PresetID); err != nil {
				slog.Error("delete empty preset row",
					"characterID", ownerID, "presetID", row.PresetID, "error", err)
			}
			slog.Warn("dropped empty preset",
				"characterID", ownerID, "presetID", row.PresetID, "name", row.Name)
			continue
		}

		s.presets.Put(ownerID, &Preset{ID: row.PresetID, Name: row.Name, Slots: slots})
	}
	return nil
}

// OnLogout evicts the player's overrides and presets from memory.
// Durable rows stay put.
func (s *Service) OnLogout(player *model.Player) {
	evicted := s.table.EvictOwner(player.CharacterID())
	s.presets.EvictOwner(player.CharacterID())
	slog.Debug("looks evicted", "characterID", player.CharacterID(), "count", evicted)
}

// OnCharacterDeleted purges everything a deleted character owned, both
// durable and cached.
func (s *Service) OnCharacterDeleted(ctx context.Context, characterID int64) error {
	if err := s.repo.DeleteLooksByOwner(ctx, characterID); err != nil {
		return fmt.Errorf("purge looks: %w", err)
	}
	if err := s.repo.DeletePresetsByOwner(ctx, characterID); err != nil {
		return fmt.Errorf("purge presets: %w", err)
	}
	s.table.EvictOwner(characterID)
	s.presets.EvictOwner(characterID)
	slog.Info("character looks purged", "characterID", characterID)
	return nil
}

// SweepOrphans deletes look rows whose item row is gone and preset rows
// whose character row is gone. Intended for startup.
func (s *Service) SweepOrphans(ctx context.Context) (looks, presets int64, err error) {
	looks, err = s.repo.SweepOrphanLooks(ctx)
	if err != nil {
		return 0, 0, err
	}
	metrics.OrphanRowsSwept.WithLabelValues("looks").Add(float64(looks))

	presets, err = s.repo.SweepOrphanPresets(ctx)
	if err != nil {
		return looks, 0, err
	}
	metrics.OrphanRowsSwept.WithLabelValues("presets").Add(float64(presets))

	slog.Info("orphan rows swept", "looks", looks, "presets", presets)
	return looks, presets, nil
}
