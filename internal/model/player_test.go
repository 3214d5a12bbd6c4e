package model

import (
	"testing"
)

func TestPlayer_Money(t *testing.T) {
	p := NewPlayer(100, "Tester", 80)

	if p.Money() != 0 {
		t.Errorf("Money() = %d, want 0", p.Money())
	}

	if err := p.AddMoney(10000); err != nil {
		t.Fatalf("AddMoney() error = %v", err)
	}
	if p.Money() != 10000 {
		t.Errorf("Money() = %d, want 10000", p.Money())
	}

	if err := p.SpendMoney(4000); err != nil {
		t.Fatalf("SpendMoney() error = %v", err)
	}
	if p.Money() != 6000 {
		t.Errorf("Money() = %d, want 6000", p.Money())
	}

	// Недостаточно денег — баланс не меняется
	if err := p.SpendMoney(7000); err == nil {
		t.Error("SpendMoney() error = nil, want error")
	}
	if p.Money() != 6000 {
		t.Errorf("Money() = %d after failed spend, want 6000", p.Money())
	}

	if err := p.SpendMoney(-1); err == nil {
		t.Error("SpendMoney(-1) error = nil, want error")
	}
	if err := p.AddMoney(-1); err == nil {
		t.Error("AddMoney(-1) error = nil, want error")
	}
}

func TestPlayer_Skills(t *testing.T) {
	p := NewPlayer(100, "Tester", 80)

	if got := p.SkillValue(197); got != 0 {
		t.Errorf("SkillValue() untrained = %d, want 0", got)
	}

	p.SetSkill(197, 450)
	if got := p.SkillValue(197); got != 450 {
		t.Errorf("SkillValue() = %d, want 450", got)
	}
}

func TestPlayer_Spells(t *testing.T) {
	p := NewPlayer(100, "Tester", 80)

	if p.HasSpell(674) {
		t.Error("HasSpell() = true for unlearned ability")
	}
	p.AddSpell(674)
	if !p.HasSpell(674) {
		t.Error("HasSpell() = false after AddSpell")
	}
}

func TestPlayer_Inventory(t *testing.T) {
	p := NewPlayer(100, "Tester", 80)

	inv := p.Inventory()
	if inv == nil {
		t.Fatal("Inventory() = nil")
	}
	if inv.OwnerID() != 100 {
		t.Errorf("OwnerID() = %d, want 100", inv.OwnerID())
	}
}
