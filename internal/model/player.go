package model

import (
	"fmt"
	"sync"
)

// Player — состояние персонажа, достаточное для проверки пригодности
// предметов и оплаты: уровень, проф. навыки, изученные способности,
// деньги и инвентарь.
type Player struct {
	mu          sync.RWMutex
	characterID int64
	name        string
	level       int32
	money       int64 // copper

	// Proficiencies: map[skillID]value
	skills map[int32]int32
	// Learned abilities
	spells map[int32]struct{}

	inventory *Inventory
}

// NewPlayer создаёт персонажа с пустым инвентарём.
func NewPlayer(characterID int64, name string, level int32) *Player {
	return &Player{
		characterID: characterID,
		name:        name,
		level:       level,
		skills:      make(map[int32]int32, 8),
		spells:      make(map[int32]struct{}, 8),
		inventory:   NewInventory(characterID),
	}
}

// CharacterID returns the durable character id.
func (p *Player) CharacterID() int64 {
	return p.characterID
}

// Name returns the character name.
func (p *Player) Name() string {
	return p.name
}

// Level returns the character level.
func (p *Player) Level() int32 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.level
}

// SetLevel updates the character level.
func (p *Player) SetLevel(level int32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.level = level
}

// Inventory returns the character's inventory.
func (p *Player) Inventory() *Inventory {
	return p.inventory
}

// Money returns the character's copper balance.
func (p *Player) Money() int64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.money
}

// AddMoney credits copper to the balance.
func (p *Player) AddMoney(amount int64) error {
	if amount < 0 {
		return fmt.Errorf("amount must be non-negative, got %d", amount)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.money += amount
	return nil
}

// SpendMoney debits copper, failing without mutation if the balance is
// insufficient.
func (p *Player) SpendMoney(amount int64) error {
	if amount < 0 {
		return fmt.Errorf("amount must be non-negative, got %d", amount)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.money < amount {
		return fmt.Errorf("not enough money: have %d, need %d", p.money, amount)
	}
	p.money -= amount
	return nil
}

// SkillValue returns the player's value in a proficiency (0 if untrained).
func (p *Player) SkillValue(skillID int32) int32 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.skills[skillID]
}

// SetSkill sets a proficiency value.
func (p *Player) SetSkill(skillID, value int32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.skills[skillID] = value
}

// HasSpell reports whether the player learned an ability.
func (p *Player) HasSpell(spellID int32) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.spells[spellID]
	return ok
}

// AddSpell records a learned ability.
func (p *Player) AddSpell(spellID int32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.spells[spellID] = struct{}{}
}
