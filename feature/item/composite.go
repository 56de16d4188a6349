package item

import (
	"fmt"
	"sort"

	"hogger/core/codec"

	"gopkg.in/yaml.v3"
)

// Socket color codes stored in socketColor_N.
const (
	socketMeta   = 1
	socketRed    = 2
	socketYellow = 4
	socketBlue   = 8
)

// socketSlots is the number of socketColor_N/socketContent_N pairs.
const socketSlots = 3

// Sockets counts gem sockets per color. At most three colors can be non-zero.
type Sockets struct {
	Meta       int `yaml:"meta"`
	Red        int `yaml:"red"`
	Yellow     int `yaml:"yellow"`
	Blue       int `yaml:"blue"`
	Bonus      int `yaml:"socketBonus"`
	Properties int `yaml:"properties"`
}

func socketsCodec() codec.Codec[Sockets] {
	var cols []string
	for i := 1; i <= socketSlots; i++ {
		cols = append(cols, fmt.Sprintf("socketColor_%d", i), fmt.Sprintf("socketContent_%d", i))
	}
	cols = append(cols, "socketBonus", "GemProperties")

	return codec.New(cols,
		func(row codec.Row) (Sockets, error) {
			var s Sockets
			for i := 1; i <= socketSlots; i++ {
				color, err := row.Int(fmt.Sprintf("socketColor_%d", i))
				if err != nil {
					return s, err
				}
				content, err := row.Int(fmt.Sprintf("socketContent_%d", i))
				if err != nil {
					return s, err
				}
				switch color {
				case 0:
				case socketMeta:
					s.Meta += content
				case socketRed:
					s.Red += content
				case socketYellow:
					s.Yellow += content
				case socketBlue:
					s.Blue += content
				default:
					return s, &codec.Error{Value: color, Reason: fmt.Sprintf("unknown color in socketColor_%d", i)}
				}
			}
			var err error
			if s.Bonus, err = row.Int("socketBonus"); err != nil {
				return s, err
			}
			if s.Properties, err = row.Int("GemProperties"); err != nil {
				return s, err
			}
			return s, nil
		},
		func(s Sockets) (codec.Row, error) {
			row := codec.Row{"socketBonus": s.Bonus, "GemProperties": s.Properties}
			slot := 0
			for _, c := range []struct{ code, count int }{
				{socketMeta, s.Meta}, {socketRed, s.Red}, {socketYellow, s.Yellow}, {socketBlue, s.Blue},
			} {
				if c.count < 0 {
					return nil, &codec.Error{Value: s, Reason: "socket counts cannot be negative"}
				}
				if c.count == 0 {
					continue
				}
				slot++
				if slot > socketSlots {
					return nil, &codec.Error{Value: s, Reason: "an item holds sockets of at most 3 colors"}
				}
				row[fmt.Sprintf("socketColor_%d", slot)] = c.code
				row[fmt.Sprintf("socketContent_%d", slot)] = c.count
			}
			for slot++; slot <= socketSlots; slot++ {
				row[fmt.Sprintf("socketColor_%d", slot)] = 0
				row[fmt.Sprintf("socketContent_%d", slot)] = 0
			}
			return row, nil
		},
	)
}

// RandomStat selects a random enchantment table. RandomProperty holds the id
// unless WithSuffix is set, in which case RandomSuffix does.
type RandomStat struct {
	ID         int  `yaml:"id"`
	WithSuffix bool `yaml:"withSuffix"`
}

func randomStatCodec() codec.Codec[RandomStat] {
	return codec.New([]string{"RandomProperty", "RandomSuffix"},
		func(row codec.Row) (RandomStat, error) {
			prop, err := row.Int("RandomProperty")
			if err != nil {
				return RandomStat{}, err
			}
			suff, err := row.Int("RandomSuffix")
			if err != nil {
				return RandomStat{}, err
			}
			id := max(prop, suff)
			if id < 0 {
				id = -id
			}
			return RandomStat{ID: id, WithSuffix: suff != 0}, nil
		},
		func(r RandomStat) (codec.Row, error) {
			if r.ID < 0 {
				return nil, &codec.Error{Value: r.ID, Reason: "random stat id cannot be negative"}
			}
			if r.WithSuffix {
				return codec.Row{"RandomProperty": 0, "RandomSuffix": r.ID}, nil
			}
			return codec.Row{"RandomProperty": r.ID, "RandomSuffix": 0}, nil
		},
	)
}

// Damage holds the two weapon damage ranges.
type Damage struct {
	Min1  float32    `yaml:"min1"`
	Max1  float32    `yaml:"max1"`
	Type1 DamageType `yaml:"type1"`
	Min2  float32    `yaml:"min2"`
	Max2  float32    `yaml:"max2"`
	Type2 DamageType `yaml:"type2"`
}

func damageCodec() codec.Codec[Damage] {
	fields := codec.NewTable(
		codec.Bind("min1", codec.FloatColumn("dmg_min1"), func(d *Damage) *float32 { return &d.Min1 }),
		codec.Bind("max1", codec.FloatColumn("dmg_max1"), func(d *Damage) *float32 { return &d.Max1 }),
		codec.Bind("type1", codec.EnumColumn[DamageType]("dmg_type1"), func(d *Damage) *DamageType { return &d.Type1 }),
		codec.Bind("min2", codec.FloatColumn("dmg_min2"), func(d *Damage) *float32 { return &d.Min2 }),
		codec.Bind("max2", codec.FloatColumn("dmg_max2"), func(d *Damage) *float32 { return &d.Max2 }),
		codec.Bind("type2", codec.EnumColumn[DamageType]("dmg_type2"), func(d *Damage) *DamageType { return &d.Type2 }),
	)
	return codec.New(fields.Columns(),
		func(row codec.Row) (Damage, error) {
			var d Damage
			err := fields.Decode(row, &d)
			return d, err
		},
		func(d Damage) (codec.Row, error) {
			if d.Min1 > d.Max1 || d.Min2 > d.Max2 {
				return nil, &codec.Error{Value: d, Reason: "minimum damage exceeds maximum"}
			}
			return fields.Encode(&d)
		},
	)
}

// Spell is one spell slot. Cooldowns are milliseconds; -1 uses the spell's own.
type Spell struct {
	ID               int          `yaml:"id"`
	Trigger          SpellTrigger `yaml:"trigger"`
	Charges          int          `yaml:"charges"`
	ProcsPerMinute   float32      `yaml:"procsPerMinute"`
	Cooldown         int          `yaml:"cooldown"`
	Category         int          `yaml:"category"`
	CategoryCooldown int          `yaml:"categoryCooldown"`
}

// UnmarshalYAML fills omitted cooldowns with -1.
func (s *Spell) UnmarshalYAML(n *yaml.Node) error {
	type plain Spell
	p := plain{Cooldown: -1, CategoryCooldown: -1}
	if err := n.Decode(&p); err != nil {
		return err
	}
	*s = Spell(p)
	return nil
}

// spellSlots is the number of spell column groups in item_template.
const spellSlots = 5

func spellsCodec() codec.Group[Spell] {
	return codec.Group[Spell]{
		Slots:    spellSlots,
		Presence: "spellid_%d",
		Slot: func(i int) codec.Codec[Spell] {
			col := func(name string) string { return fmt.Sprintf("%s_%d", name, i) }
			fields := codec.NewTable(
				codec.Bind("id", codec.IntColumn(col("spellid")), func(s *Spell) *int { return &s.ID }),
				codec.Bind("trigger", codec.EnumColumn[SpellTrigger](col("spelltrigger")), func(s *Spell) *SpellTrigger { return &s.Trigger }),
				codec.Bind("charges", codec.IntColumn(col("spellcharges")), func(s *Spell) *int { return &s.Charges }),
				codec.Bind("procsPerMinute", codec.FloatColumn(col("spellppmRate")), func(s *Spell) *float32 { return &s.ProcsPerMinute }),
				codec.Bind("cooldown", codec.IntColumn(col("spellcooldown")), func(s *Spell) *int { return &s.Cooldown }),
				codec.Bind("category", codec.IntColumn(col("spellcategory")), func(s *Spell) *int { return &s.Category }),
				codec.Bind("categoryCooldown", codec.IntColumn(col("spellcategorycooldown")), func(s *Spell) *int { return &s.CategoryCooldown }),
			)
			return codec.New(fields.Columns(),
				func(row codec.Row) (Spell, error) {
					var s Spell
					err := fields.Decode(row, &s)
					return s, err
				},
				func(s Spell) (codec.Row, error) { return fields.Encode(&s) },
			)
		},
	}
}

// Stats maps a stat to its bonus. Zero bonuses are not stored.
type Stats map[Stat]int

// statSlots is the number of stat_typeN/stat_valueN pairs.
const statSlots = 10

func statsCodec() codec.Codec[Stats] {
	var cols []string
	for i := 1; i <= statSlots; i++ {
		cols = append(cols, fmt.Sprintf("stat_type%d", i), fmt.Sprintf("stat_value%d", i))
	}
	cols = append(cols, "StatsCount")

	return codec.New(cols,
		func(row codec.Row) (Stats, error) {
			var stats Stats
			for i := 1; i <= statSlots; i++ {
				typ, err := row.Int(fmt.Sprintf("stat_type%d", i))
				if err != nil {
					return nil, err
				}
				value, err := row.Int(fmt.Sprintf("stat_value%d", i))
				if err != nil {
					return nil, err
				}
				if value == 0 {
					continue
				}
				if stats == nil {
					stats = Stats{}
				}
				stats[Stat(typ)] += value
			}
			return stats.Normalize(), nil
		},
		func(stats Stats) (codec.Row, error) {
			keys := stats.sorted()
			if len(keys) > statSlots {
				return nil, &codec.Error{Value: len(keys), Reason: fmt.Sprintf("an item holds at most %d stats", statSlots)}
			}
			row := codec.Row{"StatsCount": len(keys)}
			for i := 1; i <= statSlots; i++ {
				typ, value := 0, 0
				if i <= len(keys) {
					typ, value = int(keys[i-1]), stats[keys[i-1]]
				}
				row[fmt.Sprintf("stat_type%d", i)] = typ
				row[fmt.Sprintf("stat_value%d", i)] = value
			}
			return row, nil
		},
	)
}

// Normalize drops zero bonuses and returns nil when none remain.
func (s Stats) Normalize() Stats {
	var out Stats
	for k, v := range s {
		if v == 0 {
			continue
		}
		if out == nil {
			out = Stats{}
		}
		out[k] = v
	}
	return out
}

func (s Stats) sorted() []Stat {
	keys := make([]Stat, 0, len(s))
	for k, v := range s {
		if v != 0 {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Resistances are the per-school resistance bonuses.
type Resistances struct {
	Holy   int `yaml:"holy"`
	Fire   int `yaml:"fire"`
	Nature int `yaml:"nature"`
	Frost  int `yaml:"frost"`
	Shadow int `yaml:"shadow"`
	Arcane int `yaml:"arcane"`
}

func resistancesCodec() codec.Codec[Resistances] {
	fields := codec.NewTable(
		codec.Bind("holy", codec.IntColumn("holy_res"), func(r *Resistances) *int { return &r.Holy }),
		codec.Bind("fire", codec.IntColumn("fire_res"), func(r *Resistances) *int { return &r.Fire }),
		codec.Bind("nature", codec.IntColumn("nature_res"), func(r *Resistances) *int { return &r.Nature }),
		codec.Bind("frost", codec.IntColumn("frost_res"), func(r *Resistances) *int { return &r.Frost }),
		codec.Bind("shadow", codec.IntColumn("shadow_res"), func(r *Resistances) *int { return &r.Shadow }),
		codec.Bind("arcane", codec.IntColumn("arcane_res"), func(r *Resistances) *int { return &r.Arcane }),
	)
	return codec.New(fields.Columns(),
		func(row codec.Row) (Resistances, error) {
			var r Resistances
			err := fields.Decode(row, &r)
			return r, err
		},
		func(r Resistances) (codec.Row, error) { return fields.Encode(&r) },
	)
}

// Requirements restrict who can use the item.
type Requirements struct {
	Classes         codec.Flags[PlayerClass] `yaml:"classes"`
	Races           codec.Flags[Race]        `yaml:"races"`
	Level           int                      `yaml:"level"`
	Skill           int                      `yaml:"skill"`
	SkillRank       int                      `yaml:"skillRank"`
	Spell           int                      `yaml:"spell"`
	HonorRank       int                      `yaml:"honorRank"`
	CityRank        int                      `yaml:"cityRank"`
	Faction         int                      `yaml:"reputationFaction"`
	FactionRank     ReputationRank           `yaml:"reputationRank"`
	DisenchantSkill int                      `yaml:"disenchantSkill"`
	Map             int                      `yaml:"map"`
	Area            int                      `yaml:"area"`
}

func requirementsCodec() codec.Codec[Requirements] {
	fields := codec.NewTable(
		codec.Bind("classes", codec.SignedFlagColumn[PlayerClass]("AllowableClass"), func(r *Requirements) *codec.Flags[PlayerClass] { return &r.Classes }),
		codec.Bind("races", codec.SignedFlagColumn[Race]("AllowableRace"), func(r *Requirements) *codec.Flags[Race] { return &r.Races }),
		codec.Bind("level", codec.IntColumn("RequiredLevel"), func(r *Requirements) *int { return &r.Level }),
		codec.Bind("skill", codec.IntColumn("RequiredSkill"), func(r *Requirements) *int { return &r.Skill }),
		codec.Bind("skillRank", codec.IntColumn("RequiredSkillRank"), func(r *Requirements) *int { return &r.SkillRank }),
		codec.Bind("spell", codec.IntColumn("requiredspell"), func(r *Requirements) *int { return &r.Spell }),
		codec.Bind("honorRank", codec.IntColumn("requiredhonorrank"), func(r *Requirements) *int { return &r.HonorRank }),
		codec.Bind("cityRank", codec.IntColumn("RequiredCityRank"), func(r *Requirements) *int { return &r.CityRank }),
		codec.Bind("reputationFaction", codec.IntColumn("RequiredReputationFaction"), func(r *Requirements) *int { return &r.Faction }),
		codec.Bind("reputationRank", codec.EnumColumn[ReputationRank]("RequiredReputationRank"), func(r *Requirements) *ReputationRank { return &r.FactionRank }),
		codec.Bind("disenchantSkill", codec.IntColumn("RequiredDisenchantSkill"), func(r *Requirements) *int { return &r.DisenchantSkill }),
		codec.Bind("map", codec.IntColumn("Map"), func(r *Requirements) *int { return &r.Map }),
		codec.Bind("area", codec.IntColumn("area"), func(r *Requirements) *int { return &r.Area }),
	)
	return codec.New(fields.Columns(),
		func(row codec.Row) (Requirements, error) {
			var r Requirements
			err := fields.Decode(row, &r)
			return r, err
		},
		func(r Requirements) (codec.Row, error) {
			row, err := fields.Encode(&r)
			if err != nil {
				return nil, err
			}
			// An empty class or race set means "everyone".
			if len(r.Classes) == 0 {
				row["AllowableClass"] = codec.NoFlags
			}
			if len(r.Races) == 0 {
				row["AllowableRace"] = codec.NoFlags
			}
			return row, nil
		},
	)
}

// ReadText is the readable page attached to an item.
type ReadText struct {
	Page     int          `yaml:"page"`
	Material PageMaterial `yaml:"material"`
	Language Language     `yaml:"language"`
}

func readTextCodec() codec.Codec[ReadText] {
	fields := codec.NewTable(
		codec.Bind("page", codec.IntColumn("PageText"), func(t *ReadText) *int { return &t.Page }),
		codec.Bind("material", codec.EnumColumn[PageMaterial]("PageMaterial"), func(t *ReadText) *PageMaterial { return &t.Material }),
		codec.Bind("language", codec.EnumColumn[Language]("LanguageID"), func(t *ReadText) *Language { return &t.Language }),
	)
	return codec.New(fields.Columns(),
		func(row codec.Row) (ReadText, error) {
			var t ReadText
			err := fields.Decode(row, &t)
			return t, err
		},
		func(t ReadText) (codec.Row, error) { return fields.Encode(&t) },
	)
}
