package bestiary

import "tabletop-server/internal/domain"

// Пресеты монстров. Чистые данные: позиция не входит в пресет,
// её вычисляет спавн (поиск свободной клетки).
// Цифры соответствуют статблокам SRD и являются частью контракта
// с нарративным движком - он ссылается на монстров по имени.

// Preset - статблок монстра без позиции.
type Preset struct {
	Name             string          `json:"name"`
	HP               int             `json:"hp"`
	AC               int             `json:"ac"`
	CR               float64         `json:"cr"`
	Attacks          []domain.Attack `json:"attacks"`
	SpecialAbilities []string        `json:"specialAbilities,omitempty"`
}

// Spawn создает боевого монстра из пресета на заданной позиции.
func (p Preset) Spawn(name string, pos domain.Position) domain.Monster {
	attacks := make([]domain.Attack, len(p.Attacks))
	copy(attacks, p.Attacks)
	abilities := make([]string, len(p.SpecialAbilities))
	copy(abilities, p.SpecialAbilities)

	return domain.Monster{
		Name:             name,
		HP:               domain.HitPoints{Current: p.HP, Max: p.HP},
		AC:               p.AC,
		CR:               p.CR,
		Attacks:          attacks,
		Position:         pos,
		SpecialAbilities: abilities,
	}
}

// Presets - все доступные пресеты по имени.
var Presets = map[string]Preset{
	"Goblin": {
		Name: "Goblin", HP: 7, AC: 15, CR: 0.25,
		Attacks: []domain.Attack{
			{Name: "Scimitar", Bonus: 4, Damage: "1d6+2 slashing"},
			{Name: "Shortbow", Bonus: 4, Damage: "1d6+2 piercing"},
		},
		SpecialAbilities: []string{"Nimble Escape"},
	},
	"Hobgoblin": {
		Name: "Hobgoblin", HP: 11, AC: 18, CR: 0.5,
		Attacks: []domain.Attack{
			{Name: "Longsword", Bonus: 3, Damage: "1d10+1 slashing"},
			{Name: "Longbow", Bonus: 3, Damage: "1d8+1 piercing"},
		},
		SpecialAbilities: []string{"Martial Advantage"},
	},
	"Orc": {
		Name: "Orc", HP: 15, AC: 13, CR: 0.5,
		Attacks: []domain.Attack{
			{Name: "Greataxe", Bonus: 5, Damage: "1d12+3 slashing"},
			{Name: "Javelin", Bonus: 5, Damage: "1d6+3 piercing"},
		},
		SpecialAbilities: []string{"Aggressive"},
	},
	"Ogre": {
		Name: "Ogre", HP: 59, AC: 11, CR: 2,
		Attacks: []domain.Attack{
			{Name: "Greatclub", Bonus: 6, Damage: "2d8+4 bludgeoning"},
			{Name: "Javelin", Bonus: 6, Damage: "2d6+4 piercing"},
		},
	},
	"Skeleton": {
		Name: "Skeleton", HP: 13, AC: 13, CR: 0.25,
		Attacks: []domain.Attack{
			{Name: "Shortsword", Bonus: 4, Damage: "1d6+2 piercing"},
			{Name: "Shortbow", Bonus: 4, Damage: "1d6+2 piercing"},
		},
		SpecialAbilities: []string{"Vulnerability to bludgeoning"},
	},
	"Zombie": {
		Name: "Zombie", HP: 22, AC: 8, CR: 0.25,
		Attacks: []domain.Attack{
			{Name: "Slam", Bonus: 3, Damage: "1d6+1 bludgeoning"},
		},
		SpecialAbilities: []string{"Undead Fortitude"},
	},
	"Wolf": {
		Name: "Wolf", HP: 11, AC: 13, CR: 0.25,
		Attacks: []domain.Attack{
			{Name: "Bite", Bonus: 4, Damage: "2d4+2 piercing"},
		},
		SpecialAbilities: []string{"Pack Tactics", "Keen Hearing and Smell"},
	},
	"Giant Spider": {
		Name: "Giant Spider", HP: 26, AC: 14, CR: 1,
		Attacks: []domain.Attack{
			{Name: "Bite", Bonus: 5, Damage: "1d8+3 piercing + 2d6 poison"},
		},
		SpecialAbilities: []string{"Spider Climb", "Web Sense", "Web Walker"},
	},
	"Bandit": {
		Name: "Bandit", HP: 11, AC: 12, CR: 0.125,
		Attacks: []domain.Attack{
			{Name: "Scimitar", Bonus: 3, Damage: "1d6+1 slashing"},
			{Name: "Light Crossbow", Bonus: 3, Damage: "1d8+1 piercing"},
		},
	},
	"Kobold": {
		Name: "Kobold", HP: 5, AC: 12, CR: 0.125,
		Attacks: []domain.Attack{
			{Name: "Dagger", Bonus: 4, Damage: "1d4+2 piercing"},
			{Name: "Sling", Bonus: 4, Damage: "1d4+2 bludgeoning"},
		},
		SpecialAbilities: []string{"Pack Tactics", "Sunlight Sensitivity"},
	},
	"Troll": {
		Name: "Troll", HP: 84, AC: 15, CR: 5,
		Attacks: []domain.Attack{
			{Name: "Claw", Bonus: 7, Damage: "2d6+4 slashing"},
			{Name: "Bite", Bonus: 7, Damage: "1d6+4 piercing"},
		},
		SpecialAbilities: []string{"Regeneration (10 HP/turn)", "Keen Smell"},
	},
	"Owlbear": {
		Name: "Owlbear", HP: 59, AC: 13, CR: 3,
		Attacks: []domain.Attack{
			{Name: "Beak", Bonus: 7, Damage: "1d10+5 piercing"},
			{Name: "Claws", Bonus: 7, Damage: "2d8+5 slashing"},
		},
		SpecialAbilities: []string{"Keen Sight and Smell"},
	},
	"Mimic": {
		Name: "Mimic", HP: 58, AC: 12, CR: 2,
		Attacks: []domain.Attack{
			{Name: "Pseudopod", Bonus: 5, Damage: "1d8+3 bludgeoning"},
			{Name: "Bite", Bonus: 5, Damage: "1d8+3 piercing + 1d8 acid"},
		},
		SpecialAbilities: []string{"Shapechanger", "Adhesive", "Grappler"},
	},
	"Gelatinous Cube": {
		Name: "Gelatinous Cube", HP: 84, AC: 6, CR: 2,
		Attacks: []domain.Attack{
			{Name: "Pseudopod", Bonus: 4, Damage: "3d6 acid"},
		},
		SpecialAbilities: []string{"Transparent", "Engulf"},
	},
	"Young Dragon": {
		Name: "Young Dragon", HP: 136, AC: 18, CR: 10,
		Attacks: []domain.Attack{
			{Name: "Bite", Bonus: 10, Damage: "2d10+6 piercing"},
			{Name: "Claw", Bonus: 10, Damage: "2d6+6 slashing"},
			{Name: "Breath Weapon", Bonus: 0, Damage: "12d6 fire (DC 17 Dex save)"},
		},
		SpecialAbilities: []string{"Multiattack (3)", "Frightful Presence"},
	},
}

// QuickSpawn - короткий список для панели быстрого спавна.
var QuickSpawn = []string{
	"Goblin", "Ogre", "Skeleton", "Wolf", "Bandit", "Young Dragon",
}

// Custom собирает произвольного монстра, заданного мастером вручную.
// Нулевые HP/AC заменяются безопасными значениями по умолчанию.
func Custom(name string, hp, ac int) Preset {
	if hp <= 0 {
		hp = 10
	}
	if ac <= 0 {
		ac = 12
	}
	return Preset{
		Name: name, HP: hp, AC: ac, CR: 1,
		Attacks: []domain.Attack{
			{Name: "Attack", Bonus: 4, Damage: "1d6+2"},
		},
	}
}
