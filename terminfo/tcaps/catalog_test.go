package tcaps

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xo/terminfo"
)

func TestCounts(t *testing.T) {
	assert.Len(t, BoolNames(), BoolCount)
	assert.Len(t, NumberNames(), NumberCount)
	assert.Len(t, StringNames(), StringCount)
	assert.Equal(t, StringCount, KindString.Count())
}

func TestOrder(t *testing.T) {
	assert.Equal(t, "auto_left_margin", BoolName(0))
	assert.Equal(t, "auto_right_margin", BoolName(1))
	assert.Equal(t, "columns", NumberName(0))
	assert.Equal(t, "max_colors", NumberName(13))
	assert.Equal(t, "back_tab", StringName(0))
	assert.Equal(t, "clear_screen", StringName(5))
	assert.Equal(t, "user7", StringName(294))
	assert.Equal(t, "", StringName(StringCount))
	assert.Equal(t, "", BoolName(-1))
}

func TestAgainstIndependentCatalog(t *testing.T) {
	longBools := lo.Times(BoolCount, terminfo.BoolCapName)
	shortBools := lo.Times(BoolCount, terminfo.BoolCapNameShort)
	assert.Equal(t, longBools, BoolNames())
	assert.Equal(t, shortBools, lo.Times(BoolCount, KindBool.Capname))

	assert.Equal(t, lo.Times(NumberCount, terminfo.NumCapName), NumberNames())
	assert.Equal(t, lo.Times(NumberCount, terminfo.NumCapNameShort), lo.Times(NumberCount, KindNumber.Capname))

	assert.Equal(t, lo.Times(StringCount, terminfo.StringCapName), StringNames())
	assert.Equal(t, lo.Times(StringCount, terminfo.StringCapNameShort), lo.Times(StringCount, KindString.Capname))
}

func TestIndex(t *testing.T) {
	i, ok := StringIndex("clear_screen")
	require.True(t, ok)
	assert.Equal(t, 5, i)

	i, ok = StringIndex("clear")
	require.True(t, ok)
	assert.Equal(t, 5, i)

	i, ok = NumberIndex("colors")
	require.True(t, ok)
	assert.Equal(t, 13, i)

	i, ok = BoolIndex("am")
	require.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = BoolIndex("clear_screen")
	assert.False(t, ok)
	_, ok = StringIndex("")
	assert.False(t, ok)

	for i, name := range StringNames() {
		j, ok := StringIndex(name)
		require.True(t, ok, name)
		assert.Equal(t, i, j, name)
	}
}

func TestNamesIsCopy(t *testing.T) {
	names := BoolNames()
	names[0] = "changed"
	assert.Equal(t, "auto_left_margin", BoolName(0))
}

func TestParseKind(t *testing.T) {
	kind, ok := ParseKind("num")
	require.True(t, ok)
	assert.Equal(t, KindNumber, kind)

	_, ok = ParseKind("float")
	assert.False(t, ok)
}
