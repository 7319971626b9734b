package combat

import (
	"errors"
	"fmt"

	"github.com/udisondev/lanewars/internal/model"
)

var (
	// ErrNoTarget is returned when the attacker or target is missing or dead.
	ErrNoTarget = errors.New("no valid target")
	// ErrFriendlyTarget is returned when both units belong to the same faction.
	ErrFriendlyTarget = errors.New("target is friendly")
	// ErrOutOfRange is returned when the target is beyond attack range.
	ErrOutOfRange = errors.New("target out of range")
)

// ValidateAttack validates an attack before the damage pipeline runs.
//
// Checks:
//   - both units exist and are alive
//   - target belongs to the opposing faction
func ValidateAttack(attacker, target *model.Unit) error {
	if attacker == nil || target == nil {
		return ErrNoTarget
	}
	if attacker.IsDead() {
		return fmt.Errorf("%w: attacker %s is dead", ErrNoTarget, attacker.Name())
	}
	if target.IsDead() {
		return fmt.Errorf("%w: target %s is dead", ErrNoTarget, target.Name())
	}
	if !attacker.IsEnemy(target) {
		return ErrFriendlyTarget
	}
	return nil
}

// ValidateRange returns ErrOutOfRange if target is beyond the attacker's attack range.
func ValidateRange(attacker, target *model.Unit) error {
	if !attacker.Position().Within(target.Position(), attacker.AttackRange()) {
		return fmt.Errorf("%w: %.1f > %.1f", ErrOutOfRange,
			attacker.Position().Distance(target.Position()), attacker.AttackRange())
	}
	return nil
}
