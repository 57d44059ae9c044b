package components

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/sandstorm/constants"
)

func TestParseEnemyKind(t *testing.T) {
	for _, k := range AllEnemyKinds() {
		t.Run(k.String(), func(t *testing.T) {
			got, err := ParseEnemyKind(k.String())
			if err != nil {
				t.Fatalf("ParseEnemyKind(%q) error: %v", k.String(), err)
			}
			if got != k {
				t.Errorf("ParseEnemyKind(%q) = %v, want %v", k.String(), got, k)
			}
		})
	}

	if _, err := ParseEnemyKind("dragon"); err == nil {
		t.Error("expected error for unknown kind")
	}
	if EnemyKind(99).Valid() {
		t.Error("EnemyKind(99) should be invalid")
	}
}

func TestNewEnemy_PayloadMatchesKind(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tests := []struct {
		kind                   EnemyKind
		strafe, rush, shielded bool
	}{
		{EnemySmall, false, false, false},
		{EnemyNormal, false, false, false},
		{EnemyBig, false, false, false},
		{EnemyDodger, true, false, false},
		{EnemyRusher, false, true, false},
		{EnemyShielded, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			e := NewEnemy(tt.kind, 0, 1, rng)
			if (e.Strafe != nil) != tt.strafe || (e.Rush != nil) != tt.rush || (e.Shield != nil) != tt.shielded {
				t.Errorf("payload mismatch: strafe=%v rush=%v shield=%v", e.Strafe != nil, e.Rush != nil, e.Shield != nil)
			}
			if e.Z != constants.EnemySpawnDepth {
				t.Errorf("Z = %v, want spawn depth %v", e.Z, constants.EnemySpawnDepth)
			}
			if e.Health != e.MaxHealth {
				t.Errorf("Health = %v, want MaxHealth %v", e.Health, e.MaxHealth)
			}
			if e.Shielded() != tt.shielded {
				t.Errorf("Shielded() = %v, want %v", e.Shielded(), tt.shielded)
			}
		})
	}
}

func TestNewEnemy_HealthMultiplier(t *testing.T) {
	e := NewEnemy(EnemyNormal, 0, 1.6, nil)
	if e.MaxHealth != 16 || e.Health != 16 {
		t.Errorf("health = %v/%v, want 16/16", e.Health, e.MaxHealth)
	}
}

func TestShieldState_Absorb(t *testing.T) {
	tests := []struct {
		name         string
		pool, damage float64
		wantPool     float64
		wantOverflow float64
	}{
		{"partial", 12, 3, 9, 0},
		{"exact", 3, 3, 0, 0},
		{"overflow", 2, 3, 0, 1},
		{"zero damage", 5, 0, 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ShieldState{Health: tt.pool, Max: 12}
			got := s.Absorb(tt.damage)
			if got != tt.wantOverflow || s.Health != tt.wantPool {
				t.Errorf("Absorb(%v) = %v pool %v, want %v pool %v", tt.damage, got, s.Health, tt.wantOverflow, tt.wantPool)
			}
		})
	}
}
