package codec

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	copperPerSilver = 100
	copperPerGold   = 100 * copperPerSilver
)

// Money is an amount split into gold, silver and copper. Storage keeps the
// total in copper.
type Money struct {
	Gold   int `yaml:"gold"`
	Silver int `yaml:"silver"`
	Copper int `yaml:"copper"`
}

// MoneyFromCopper splits a copper total with floor arithmetic, so that
// Silver and Copper always land in [0, 100).
func MoneyFromCopper(c int) Money {
	copper := floorMod(c, copperPerSilver)
	c = floorDiv(c-copper, copperPerSilver)
	silver := floorMod(c, copperPerSilver)
	gold := floorDiv(c-silver, copperPerSilver)
	return Money{Gold: gold, Silver: silver, Copper: copper}
}

// TotalCopper returns the amount in copper.
func (m Money) TotalCopper() int {
	return m.Copper + m.Silver*copperPerSilver + m.Gold*copperPerGold
}

// Normalize carries overflowing copper and silver into the larger units.
func (m Money) Normalize() Money {
	return MoneyFromCopper(m.TotalCopper())
}

func (m Money) String() string {
	return fmt.Sprintf("%dg %ds %dc", m.Gold, m.Silver, m.Copper)
}

// UnmarshalYAML accepts a copper total or a gold/silver/copper mapping.
func (m *Money) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var c int
		if err := node.Decode(&c); err != nil {
			return &Error{Value: node.Value, Reason: "money must be a copper amount or a gold/silver/copper mapping"}
		}
		*m = MoneyFromCopper(c)
		return nil
	}
	type plain Money
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*m = Money(p).Normalize()
	return nil
}

// MoneyColumn stores Money as a copper total in col.
func MoneyColumn(col string) Codec[Money] {
	return New([]string{col},
		func(row Row) (Money, error) {
			c, err := row.Int(col)
			if err != nil {
				return Money{}, err
			}
			return MoneyFromCopper(c), nil
		},
		func(m Money) (Row, error) {
			total := m.TotalCopper()
			if total < 0 {
				return nil, &Error{Value: m, Reason: "money cannot be negative"}
			}
			return Row{col: total}, nil
		},
	)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
