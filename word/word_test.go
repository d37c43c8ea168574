package word

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewContext(t *testing.T) {
	assert := assert.New(t)

	ctx, err := NewContext(16, MODE_TWOS)
	assert.NoError(err)
	assert.Equal(uint(16), ctx.Bits)
	assert.Equal(MODE_TWOS, ctx.Mode)

	_, err = NewContext(3, MODE_TWOS)
	assert.ErrorIs(err, ErrWordSize(3))

	_, err = NewContext(65, MODE_TWOS)
	assert.ErrorIs(err, ErrWordSize(65))

	_, err = NewContext(16, Mode(7))
	assert.Error(err)
}

func TestMask(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		bits uint
		raw  uint64
		want uint64
	}){
		{"in_range", 8, 0xAB, 0xAB},
		{"truncated", 8, 0x1FF, 0xFF},
		{"word_4", 4, 0x123, 0x3},
		{"word_64", 64, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF},
		{"zero", 16, 0, 0},
	}

	for _, entry := range table {
		ctx := Context{Bits: entry.bits, Mode: MODE_UNSIGNED}
		assert.Equal(entry.want, ctx.Mask(entry.raw), entry.name)
	}
}

func TestMaskIdempotent(t *testing.T) {
	assert := assert.New(t)

	for bits := uint(WORD_BITS_MIN); bits <= WORD_BITS_MAX; bits++ {
		ctx := Context{Bits: bits, Mode: MODE_UNSIGNED}
		for _, raw := range []uint64{0, 1, 0xFF, 0xDEADBEEF, ^uint64(0)} {
			once := ctx.Mask(raw)
			assert.Equal(once, ctx.Mask(once), "bits %v raw %#x", bits, raw)
		}
	}
}

func TestInterpret(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		bits  uint
		mode  Mode
		value uint64
		want  int64
	}){
		{"unsigned", 8, MODE_UNSIGNED, 0xFF, 255},
		{"twos_positive", 8, MODE_TWOS, 0x7F, 127},
		{"twos_negative", 8, MODE_TWOS, 0x80, -128},
		{"twos_minus_one", 8, MODE_TWOS, 0xFF, -1},
		{"twos_64", 64, MODE_TWOS, 0xFFFFFFFFFFFFFFFF, -1},
		{"ones_positive", 8, MODE_ONES, 0x05, 5},
		{"ones_negative", 8, MODE_ONES, 0xFA, -5},
		{"ones_negative_zero", 8, MODE_ONES, 0xFF, 0},
		{"signmag_positive", 8, MODE_SIGNMAG, 0x05, 5},
		{"signmag_negative", 8, MODE_SIGNMAG, 0x85, -5},
		{"signmag_negative_zero", 8, MODE_SIGNMAG, 0x80, 0},
		{"word_4_twos", 4, MODE_TWOS, 0x8, -8},
	}

	for _, entry := range table {
		ctx := Context{Bits: entry.bits, Mode: entry.mode}
		assert.Equal(entry.want, ctx.Interpret(entry.value), entry.name)
	}
}

func TestFromSigned(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		bits   uint
		mode   Mode
		signed int64
		want   uint64
	}){
		{"twos", 8, MODE_TWOS, -5, 0xFB},
		{"ones", 8, MODE_ONES, -5, 0xFA},
		{"signmag", 8, MODE_SIGNMAG, -5, 0x85},
		{"unsigned_wrap", 8, MODE_UNSIGNED, -1, 0xFF},
		{"positive", 8, MODE_TWOS, 127, 0x7F},
	}

	for _, entry := range table {
		ctx := Context{Bits: entry.bits, Mode: entry.mode}
		assert.Equal(entry.want, ctx.FromSigned(entry.signed), entry.name)
	}
}

func TestInterpretRoundTrip(t *testing.T) {
	assert := assert.New(t)

	for _, mode := range []Mode{MODE_ONES, MODE_TWOS, MODE_SIGNMAG} {
		ctx := Context{Bits: 8, Mode: mode}
		for signed := ctx.MinSigned(); signed <= ctx.MaxSigned(); signed++ {
			assert.Equal(signed, ctx.Interpret(ctx.FromSigned(signed)),
				"mode %v signed %v", mode, signed)
		}
	}
}

func TestBounds(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		bits uint
		mode Mode
		min  int64
		max  int64
	}){
		{"unsigned_8", 8, MODE_UNSIGNED, 0, 255},
		{"twos_8", 8, MODE_TWOS, -128, 127},
		{"ones_8", 8, MODE_ONES, -127, 127},
		{"signmag_8", 8, MODE_SIGNMAG, -127, 127},
		{"twos_4", 4, MODE_TWOS, -8, 7},
		{"twos_64", 64, MODE_TWOS, -0x8000000000000000, 0x7FFFFFFFFFFFFFFF},
	}

	for _, entry := range table {
		ctx := Context{Bits: entry.bits, Mode: entry.mode}
		assert.Equal(entry.min, ctx.MinSigned(), entry.name)
		assert.Equal(entry.max, ctx.MaxSigned(), entry.name)
	}
}

func TestNegate(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		mode  Mode
		value uint64
		want  uint64
	}){
		{"twos", MODE_TWOS, 0x05, 0xFB},
		{"twos_zero", MODE_TWOS, 0x00, 0x00},
		{"twos_min", MODE_TWOS, 0x80, 0x80},
		{"ones", MODE_ONES, 0x05, 0xFA},
		{"ones_zero", MODE_ONES, 0x00, 0xFF},
		{"signmag", MODE_SIGNMAG, 0x05, 0x85},
		{"unsigned", MODE_UNSIGNED, 0x01, 0xFF},
	}

	for _, entry := range table {
		ctx := Context{Bits: 8, Mode: entry.mode}
		assert.Equal(entry.want, ctx.Negate(entry.value), entry.name)
	}
}

func TestModeOf(t *testing.T) {
	assert := assert.New(t)

	mode, ok := ModeOf("twos")
	assert.True(ok)
	assert.Equal(MODE_TWOS, mode)

	_, ok = ModeOf("bogus")
	assert.False(ok)
}
