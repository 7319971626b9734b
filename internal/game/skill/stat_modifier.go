package skill

import "github.com/udisondev/lanewars/internal/model"

// statusHandler describes what a status kind mutates on its target.
// fields is snapshotted right before mutate runs; removal restores the snapshot literally.
type statusHandler struct {
	fields   model.StatField
	debuff   bool
	periodic bool // deals DamagePerSecond every tick
	mutate   func(u *model.Unit, s *model.Status)
}

// statusHandlers maps every status kind to its handler.
var statusHandlers = map[model.StatusKind]statusHandler{
	model.StatusHaste: {
		fields: model.FieldAttackSpeed | model.FieldMoveSpeed,
		mutate: func(u *model.Unit, s *model.Status) {
			u.SetAttackSpeed(u.AttackSpeed() / (1 + s.Percent))
			u.SetMoveSpeed(u.MoveSpeed() * (1 + s.Percent))
		},
	},
	model.StatusFortify: {
		fields: model.FieldArmor | model.FieldAttackPower,
		mutate: func(u *model.Unit, s *model.Status) {
			u.SetArmor(u.Armor() + s.Amount)
			u.SetAttackPower(u.AttackMin()*(1+s.Percent), u.AttackMax()*(1+s.Percent))
		},
	},
	model.StatusSlow: {
		fields: model.FieldAttackSpeed | model.FieldMoveSpeed,
		debuff: true,
		mutate: func(u *model.Unit, s *model.Status) {
			u.SetAttackSpeed(u.AttackSpeed() * (1 + s.Percent))
			u.SetMoveSpeed(u.MoveSpeed() * (1 - s.Percent))
		},
	},
	model.StatusArmorBreak: {
		fields: model.FieldArmor,
		debuff: true,
		mutate: func(u *model.Unit, s *model.Status) {
			u.SetArmor(u.Armor() - s.Amount)
		},
	},
	model.StatusTaunt: {
		fields: model.FieldForcedTarget,
		debuff: true,
		mutate: func(u *model.Unit, s *model.Status) {
			u.SetForcedTarget(s.Source)
		},
	},
	model.StatusLink: {},
	model.StatusShield: {
		debuff:   true,
		periodic: true,
	},
	model.StatusStun: {
		fields: model.FieldStunned,
		debuff: true,
		mutate: func(u *model.Unit, _ *model.Status) {
			u.SetStunned(true)
		},
	},
}

// isDebuffKind reports whether statuses of this kind live in the debuff map.
func isDebuffKind(kind model.StatusKind) bool {
	return statusHandlers[kind].debuff
}
