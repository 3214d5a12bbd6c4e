package transmog

import "errors"

// Business rejections. All recoverable: callers report them to the player
// and move on.
var (
	ErrDisabled          = errors.New("transmogrification is disabled")
	ErrPresetsDisabled   = errors.New("transmogrification presets are disabled")
	ErrInvalidSlot       = errors.New("invalid equipment slot")
	ErrMissingTargetItem = errors.New("no item equipped in the slot")
	ErrMissingDonorItem  = errors.New("donor item not found")
	ErrIncompatibleItems = errors.New("items are not compatible")
	ErrSameLook          = errors.New("item already has this look")
	ErrNotEnoughMoney    = errors.New("not enough money")
	ErrNotEnoughTokens   = errors.New("not enough tokens")
	ErrPresetLimit       = errors.New("preset limit reached")
	ErrNoActiveLooks     = errors.New("no active looks to save")
	ErrPresetNotFound    = errors.New("preset not found")
)
