package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type color int

const (
	red   color = 1
	green color = 2
	blue  color = 4
)

var colorDomain = NewDomain("Color", map[color]string{red: "Red", green: "Green", blue: "Blue"})

func (color) Domain() *Domain[color] { return colorDomain }

func (c *color) UnmarshalYAML(n *yaml.Node) error { return UnmarshalSymbol(n, c) }

func TestDomain_Parse(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		want       color
		suggestion string
		wantErr    bool
	}{
		{"Name", "Green", green, "", false},
		{"KnownInt", "4", blue, "", false},
		{"UnknownIntKept", "64", color(64), "", false},
		{"Typo", "Gren", 0, "Green", true},
		{"Garbage", "purple", 0, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := colorDomain.Parse(tt.in)
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}
			var ce *Error
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tt.suggestion, ce.Suggestion)
			assert.Equal(t, []string{"Red", "Green", "Blue"}, ce.Expected)
			assert.Contains(t, err.Error(), "invalid Color")
		})
	}
}

func TestDomain_Format(t *testing.T) {
	assert.Equal(t, "Blue", colorDomain.Format(blue))
	assert.Equal(t, "64", colorDomain.Format(color(64)))
	assert.True(t, colorDomain.Known(red))
	assert.False(t, colorDomain.Known(color(3)))
}

func TestSuggest(t *testing.T) {
	candidates := []string{"OneHandedAxe", "TwoHandedAxe", "Bow"}
	assert.Equal(t, "OneHandedAxe", Suggest("OneHandAxe", candidates))
	assert.Equal(t, "Bow", Suggest("bow", candidates))
	assert.Equal(t, "", Suggest("Crossbow", candidates))
}

func TestFlags(t *testing.T) {
	assert.Nil(t, FlagsOf[color](NoFlags))
	assert.Nil(t, FlagsOf[color](0))
	assert.Equal(t, Flags[color]{red, blue}, FlagsOf[color](5))

	mixed := FlagsOf[color](1 | 64)
	assert.Equal(t, Flags[color]{red, color(64)}, mixed)
	assert.Equal(t, []int{64}, mixed.Unknown())
	assert.Equal(t, 65, mixed.Mask())
	assert.True(t, mixed.Has(red))
	assert.False(t, mixed.Has(green))
	assert.Equal(t, "[Red 64]", mixed.String())

	// bit 31 survives the round trip
	high := FlagsOf[color](1 << 31)
	assert.Equal(t, 1<<31, high.Mask())
}

func TestFlags_UnmarshalYAML(t *testing.T) {
	var doc struct {
		Flags Flags[color] `yaml:"flags"`
	}

	require.NoError(t, yaml.Unmarshal([]byte("flags: [Blue, 1, Red]"), &doc))
	assert.Equal(t, Flags[color]{red, blue}, doc.Flags)

	require.NoError(t, yaml.Unmarshal([]byte("flags: []"), &doc))
	assert.Nil(t, doc.Flags)

	require.NoError(t, yaml.Unmarshal([]byte("flags: -1"), &doc))
	assert.Nil(t, doc.Flags)

	err := yaml.Unmarshal([]byte("flags: [Blu]"), &doc)
	var ce *Error
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "Blue", ce.Suggestion)

	assert.Error(t, yaml.Unmarshal([]byte("flags: [-4]"), &doc))
}

func TestMoney(t *testing.T) {
	assert.Equal(t, Money{Gold: 12, Silver: 34, Copper: 56}, MoneyFromCopper(123456))
	assert.Equal(t, Money{}, MoneyFromCopper(0))
	assert.Equal(t, Money{Gold: -1, Silver: 99, Copper: 99}, MoneyFromCopper(-1))

	for _, c := range []int{0, 1, 99, 100, 10000, 123456, -1, -10001} {
		assert.Equal(t, c, MoneyFromCopper(c).TotalCopper(), "copper %d", c)
	}

	assert.Equal(t, Money{Gold: 1, Silver: 50}, Money{Silver: 150}.Normalize())
}

func TestMoney_UnmarshalYAML(t *testing.T) {
	var doc struct {
		Price Money `yaml:"price"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("price: {silver: 150, copper: 5}"), &doc))
	assert.Equal(t, Money{Gold: 1, Silver: 50, Copper: 5}, doc.Price)

	require.NoError(t, yaml.Unmarshal([]byte("price: 250"), &doc))
	assert.Equal(t, Money{Silver: 2, Copper: 50}, doc.Price)

	assert.Error(t, yaml.Unmarshal([]byte("price: lots"), &doc))
}

func TestMoneyColumn(t *testing.T) {
	c := MoneyColumn("BuyPrice")
	row, err := c.Encode(Money{Gold: 1, Copper: 1})
	require.NoError(t, err)
	assert.Equal(t, Row{"BuyPrice": 10001}, row)

	got, err := c.Decode(row)
	require.NoError(t, err)
	assert.Equal(t, Money{Gold: 1, Copper: 1}, got)

	_, err = c.Encode(Money{Copper: -5})
	assert.Error(t, err)

	_, err = c.Decode(Row{})
	assert.ErrorContains(t, err, "BuyPrice")
}

func TestDuration(t *testing.T) {
	d := DurationFromSeconds(90061)
	assert.Equal(t, Duration{Days: 1, Hours: 1, Minutes: 1, Seconds: 1}, d)
	assert.Equal(t, 90061, d.TotalSeconds())
	assert.Equal(t, 90061000, d.TotalMilliseconds())

	assert.Equal(t, Duration{Seconds: 1, Milli: 500}, DurationFromMilliseconds(1500))
	assert.Equal(t, Duration{Hours: 2}, Duration{Minutes: 120}.Normalize())
}

func TestDurationColumn(t *testing.T) {
	secs := DurationColumn("duration", Seconds)
	row, err := secs.Encode(Duration{Minutes: 2})
	require.NoError(t, err)
	assert.Equal(t, Row{"duration": 120}, row)

	_, err = secs.Encode(Duration{Milli: 5})
	assert.ErrorContains(t, err, "whole seconds")

	ms := DurationColumn("cooldown", Milliseconds)
	row, err = ms.Encode(Duration{Seconds: 1, Milli: 5})
	require.NoError(t, err)
	assert.Equal(t, Row{"cooldown": 1005}, row)
	got, err := ms.Decode(row)
	require.NoError(t, err)
	assert.Equal(t, Duration{Seconds: 1, Milli: 5}, got)

	_, err = ms.Encode(Duration{Seconds: -1})
	assert.Error(t, err)
}

func TestDuration_UnmarshalYAML(t *testing.T) {
	var doc struct {
		D Duration `yaml:"d"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("d: 3600"), &doc))
	assert.Equal(t, Duration{Hours: 1}, doc.D)

	require.NoError(t, yaml.Unmarshal([]byte("d: {minutes: 90}"), &doc))
	assert.Equal(t, Duration{Hours: 1, Minutes: 30}, doc.D)
}

func TestEnumAndFlagColumns_RoundTrip(t *testing.T) {
	enum := EnumColumn[color]("Color")
	for _, v := range []color{red, green, blue, color(99)} {
		row, err := enum.Encode(v)
		require.NoError(t, err)
		got, err := enum.Decode(row)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	flags := FlagColumn[color]("Flags")
	for _, v := range []Flags[color]{nil, {red}, {red, blue}, {green, color(256)}} {
		row, err := flags.Encode(v)
		require.NoError(t, err)
		got, err := flags.Decode(row)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	got, err := flags.Decode(Row{"Flags": int64(-1)})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSignedFlagColumn(t *testing.T) {
	signed := SignedFlagColumn[color]("Allowed")

	for _, stored := range []int64{-2, -2147483648, 5, 0} {
		got, err := signed.Decode(Row{"Allowed": stored})
		require.NoError(t, err)
		row, err := signed.Encode(got)
		require.NoError(t, err)
		assert.Equal(t, int(stored), row["Allowed"])
	}

	high := Flags[color]{red, color(1 << 31)}
	row, err := FlagColumn[color]("Allowed").Encode(high)
	require.NoError(t, err)
	assert.Equal(t, 1<<31|1, row["Allowed"])
	row, err = signed.Encode(high)
	require.NoError(t, err)
	assert.Equal(t, -2147483647, row["Allowed"])
}

func TestIdentifier(t *testing.T) {
	tests := []struct {
		id      string
		display string
		tag     string
	}{
		{"Recruit's Shirt#variantA", "Recruit's Shirt", "variantA"},
		{"Worn Shortsword", "Worn Shortsword", ""},
		{"Item #5#blue", "Item #5", "blue"},
	}

	t.Run("DisplayWithSeparator", func(t *testing.T) {
		assert.Equal(t, "Item #5", JoinIdentifier("Item #5", ""))
		assert.Equal(t, "Item #5", JoinIdentifier("Item #5", "  "))
		assert.Equal(t, "Item #5#blue", JoinIdentifier("Item #5", " blue "))
	})

	t.Run("ValidateTag", func(t *testing.T) {
		assert.NoError(t, ValidateTag("variantA"))
		var ce *Error
		require.ErrorAs(t, ValidateTag("x#y"), &ce)
		assert.Equal(t, "tag", ce.Field)
	})

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			display, tag := SplitIdentifier(tt.id)
			assert.Equal(t, tt.display, display)
			assert.Equal(t, tt.tag, tag)
			assert.Equal(t, tt.id, JoinIdentifier(display, tag))
		})
	}
}

func TestError_Message(t *testing.T) {
	err := &Error{Field: "quality", Value: "Epik", Reason: "invalid Quality", Expected: []string{"Rare", "Epic"}, Suggestion: "Epic"}
	assert.Equal(t, `field "quality": invalid Quality (got Epik); valid values are Rare, Epic, or an integer; did you mean "Epic"?`, err.Error())

	named := withField("price", &Error{Reason: "money cannot be negative"})
	assert.Equal(t, `field "price": money cannot be negative`, named.Error())
	assert.Same(t, named, withField("other", named))
}
