package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/hp16c/word"
)

func TestStack_Push(t *testing.T) {
	assert := assert.New(t)

	st := &Stack{}
	st.Push(1)
	st.Push(2)
	st.Push(3)
	st.Push(4)

	assert.Equal([4]uint64{4, 3, 2, 1}, st.Reg)

	// Fifth push pushes the oldest value off the T end.
	st.Push(5)
	assert.Equal([4]uint64{5, 4, 3, 2}, st.Reg)
}

func TestStack_Pop(t *testing.T) {
	assert := assert.New(t)

	st := &Stack{Reg: [4]uint64{1, 2, 3, 4}}

	assert.Equal(uint64(1), st.Pop())
	// T replicates downward.
	assert.Equal([4]uint64{2, 3, 4, 4}, st.Reg)

	assert.Equal(uint64(2), st.Pop())
	assert.Equal([4]uint64{3, 4, 4, 4}, st.Reg)
}

func TestStack_Peek(t *testing.T) {
	assert := assert.New(t)

	st := &Stack{Reg: [4]uint64{1, 2, 3, 4}}

	assert.Equal(uint64(1), st.Peek(REG_X))
	assert.Equal(uint64(2), st.Peek(REG_Y))
	assert.Equal(uint64(3), st.Peek(REG_Z))
	assert.Equal(uint64(4), st.Peek(REG_T))
	assert.Equal([4]uint64{1, 2, 3, 4}, st.Reg)

	// Out of range levels read as X.
	assert.Equal(uint64(1), st.Peek(9))
}

func TestStack_SwapXY(t *testing.T) {
	assert := assert.New(t)

	st := &Stack{Reg: [4]uint64{1, 2, 3, 4}}
	st.SwapXY()
	assert.Equal([4]uint64{2, 1, 3, 4}, st.Reg)
}

func TestStack_RollDown(t *testing.T) {
	assert := assert.New(t)

	st := &Stack{Reg: [4]uint64{1, 2, 3, 4}}
	st.RollDown()
	assert.Equal([4]uint64{2, 3, 4, 1}, st.Reg)

	// Four rolls restore the original order.
	st.RollDown()
	st.RollDown()
	st.RollDown()
	assert.Equal([4]uint64{1, 2, 3, 4}, st.Reg)
}

func TestStack_RollUp(t *testing.T) {
	assert := assert.New(t)

	st := &Stack{Reg: [4]uint64{1, 2, 3, 4}}
	st.RollUp()
	assert.Equal([4]uint64{4, 1, 2, 3}, st.Reg)

	st.RollDown()
	assert.Equal([4]uint64{1, 2, 3, 4}, st.Reg)
}

func TestStack_Clear(t *testing.T) {
	assert := assert.New(t)

	st := &Stack{Reg: [4]uint64{1, 2, 3, 4}}
	st.Mem[7] = 99

	st.ClearX()
	assert.Equal([4]uint64{0, 2, 3, 4}, st.Reg)

	st.Clear()
	assert.Equal([4]uint64{0, 0, 0, 0}, st.Reg)

	// Memory has an independent lifecycle.
	assert.Equal(uint64(99), st.Mem[7])
	st.ClearMem()
	assert.Equal(uint64(0), st.Mem[7])
}

func TestStack_Memory(t *testing.T) {
	assert := assert.New(t)

	st := &Stack{}

	err := st.Store(0xF, 0xAB)
	assert.NoError(err)

	value, err := st.Recall(0xF)
	assert.NoError(err)
	assert.Equal(uint64(0xAB), value)

	err = st.Store(16, 1)
	assert.ErrorIs(err, ErrRegister(16))

	_, err = st.Recall(-1)
	assert.ErrorIs(err, ErrRegister(-1))
}

func TestStack_Remask(t *testing.T) {
	assert := assert.New(t)

	st := &Stack{Reg: [4]uint64{0x1FF, 0xFFFF, 0x10, 0}}
	st.Mem[3] = 0x1234

	ctx := word.Context{Bits: 8, Mode: word.MODE_TWOS}
	st.Remask(&ctx)

	assert.Equal([4]uint64{0xFF, 0xFF, 0x10, 0}, st.Reg)
	assert.Equal(uint64(0x34), st.Mem[3])
}
