package data

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/lanewars/internal/model"
)

// yamlTables is the on-disk layout of ability/unit tables.
type yamlTables struct {
	Abilities []yamlAbility `yaml:"abilities"`
	Units     []yamlUnit    `yaml:"units"`
}

type yamlAbility struct {
	ID           string             `yaml:"id"`
	Name         string             `yaml:"name"`
	Kind         string             `yaml:"kind"`
	ManaCost     float64            `yaml:"mana_cost"`
	Cooldown     float64            `yaml:"cooldown"`
	Range        float64            `yaml:"range"`
	Status       string             `yaml:"status"`
	AttackTypes  []string           `yaml:"attack_types"`
	AllowedTypes []string           `yaml:"allowed_types"`
	Params       map[string]float64 `yaml:"params"`
}

type yamlOverrides struct {
	ManaCost *float64          `yaml:"mana_cost"`
	Cooldown *float64          `yaml:"cooldown"`
	Range    *float64          `yaml:"range"`
	Params   map[string]float64 `yaml:"params"`
}

type yamlUnitAbility struct {
	ID              string        `yaml:"id"`
	RequiresUpgrade bool          `yaml:"requires_upgrade"`
	Overrides       yamlOverrides `yaml:"overrides"`
}

type yamlUnit struct {
	Type        string            `yaml:"type"`
	Name        string            `yaml:"name"`
	Structure   bool              `yaml:"structure"`
	MaxHealth   float64           `yaml:"max_health"`
	MaxMana     float64           `yaml:"max_mana"`
	ManaRegen   float64           `yaml:"mana_regen"`
	AttackMin   float64           `yaml:"attack_min"`
	AttackMax   float64           `yaml:"attack_max"`
	AttackSpeed float64           `yaml:"attack_speed"`
	AttackRange float64           `yaml:"attack_range"`
	AttackType  string            `yaml:"attack_type"`
	MoveSpeed   float64           `yaml:"move_speed"`
	ArmorType   string            `yaml:"armor_type"`
	Armor       float64           `yaml:"armor"`
	Abilities   []yamlUnitAbility `yaml:"abilities"`
}

// LoadRegistry reads ability/unit tables from a YAML file and overlays them on the
// built-in tables: an entry with an existing id/type replaces the built-in one.
// An empty path returns the built-in registry.
func LoadRegistry(path string) (*Registry, error) {
	if path == "" {
		return DefaultRegistry()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tables %s: %w", path, err)
	}
	return ParseRegistry(raw)
}

// ParseRegistry decodes YAML tables and overlays them on the built-in tables.
func ParseRegistry(raw []byte) (*Registry, error) {
	var doc yamlTables
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing tables: %w", err)
	}

	abilities := make([]AbilityTemplate, len(abilityDefs))
	copy(abilities, abilityDefs)
	for _, ya := range doc.Abilities {
		t, err := ya.template()
		if err != nil {
			return nil, err
		}
		abilities = upsert(abilities, t, func(a AbilityTemplate) string { return a.ID })
	}

	units := make([]UnitTemplate, len(unitDefs))
	copy(units, unitDefs)
	for _, yu := range doc.Units {
		t, err := yu.template()
		if err != nil {
			return nil, err
		}
		units = upsert(units, t, func(u UnitTemplate) string { return u.Type })
	}

	r, err := NewRegistry(abilities, units)
	if err != nil {
		return nil, err
	}

	slog.Info("loaded tables",
		"abilities", len(r.abilities),
		"units", len(r.units),
		"overrides", len(doc.Abilities)+len(doc.Units))
	return r, nil
}

func upsert[T any](list []T, item T, key func(T) string) []T {
	k := key(item)
	for i := range list {
		if key(list[i]) == k {
			list[i] = item
			return list
		}
	}
	return append(list, item)
}

func (ya yamlAbility) template() (AbilityTemplate, error) {
	kind, err := ParseEffectKind(ya.Kind)
	if err != nil {
		return AbilityTemplate{}, fmt.Errorf("ability %q: %w", ya.ID, err)
	}

	status := model.StatusNone
	if ya.Status != "" {
		s, ok := model.ParseStatusKind(ya.Status)
		if !ok {
			return AbilityTemplate{}, fmt.Errorf("ability %q: %w: status %q", ya.ID, ErrInvalidTemplate, ya.Status)
		}
		status = s
	}

	params, err := parseParams(ya.ID, ya.Params)
	if err != nil {
		return AbilityTemplate{}, err
	}

	var attackTypes []model.AttackType
	for _, s := range ya.AttackTypes {
		attackTypes = append(attackTypes, model.ParseAttackType(s))
	}

	return AbilityTemplate{
		ID:           ya.ID,
		Name:         ya.Name,
		Kind:         kind,
		ManaCost:     ya.ManaCost,
		Cooldown:     ya.Cooldown,
		Range:        ya.Range,
		Status:       status,
		AttackTypes:  attackTypes,
		AllowedTypes: ya.AllowedTypes,
		Params:       params,
	}, nil
}

func (yu yamlUnit) template() (UnitTemplate, error) {
	abilities := make([]UnitAbility, 0, len(yu.Abilities))
	for _, ya := range yu.Abilities {
		params, err := parseParams(ya.ID, ya.Overrides.Params)
		if err != nil {
			return UnitTemplate{}, fmt.Errorf("unit %q: %w", yu.Type, err)
		}
		abilities = append(abilities, UnitAbility{
			AbilityID:       ya.ID,
			RequiresUpgrade: ya.RequiresUpgrade,
			Overrides: model.AbilityOverrides{
				ManaCost: ya.Overrides.ManaCost,
				Cooldown: ya.Overrides.Cooldown,
				Range:    ya.Overrides.Range,
				Params:   params,
			},
		})
	}

	return UnitTemplate{
		Type:        yu.Type,
		Name:        yu.Name,
		Structure:   yu.Structure,
		MaxHealth:   yu.MaxHealth,
		MaxMana:     yu.MaxMana,
		ManaRegen:   yu.ManaRegen,
		AttackMin:   yu.AttackMin,
		AttackMax:   yu.AttackMax,
		AttackSpeed: yu.AttackSpeed,
		AttackRange: yu.AttackRange,
		AttackType:  model.ParseAttackType(yu.AttackType),
		MoveSpeed:   yu.MoveSpeed,
		ArmorType:   model.ParseArmorType(yu.ArmorType),
		Armor:       yu.Armor,
		Abilities:   abilities,
	}, nil
}

func parseParams(owner string, raw map[string]float64) (map[model.Param]float64, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	params := make(map[model.Param]float64, len(raw))
	for name, v := range raw {
		p, ok := model.ParseParam(name)
		if !ok {
			return nil, fmt.Errorf("%q: %w: unknown param %q", owner, ErrInvalidTemplate, name)
		}
		params[p] = v
	}
	return params, nil
}
