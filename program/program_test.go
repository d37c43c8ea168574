package program

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/hp16c/alu"
	"github.com/ezrec/hp16c/calc"
	"github.com/ezrec/hp16c/display"
	"github.com/ezrec/hp16c/word"
)

func testCalc(t *testing.T) (c *calc.Calculator) {
	t.Helper()

	c, err := calc.New(calc.Config{
		WordSize: 16,
		Mode:     word.MODE_TWOS,
		Base:     display.BASE_DEC,
	})
	if err != nil {
		t.Fatal(err)
	}

	return
}

func TestParser(t *testing.T) {
	assert := assert.New(t)

	p := &Parser{}

	prog, err := p.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, len(prog.Steps))

	assert.Equal("0", p.Equate["LINENO"])
}

func TestParserSteps(t *testing.T) {
	assert := assert.New(t)

	p := &Parser{}

	text := []string{
		"; compute (7+1)*2",
		"7 enter 1 +",
		"2 *",
		"hex",
		"twos",
		"sl 3",
		"sr", // default count
		"sto 5",
	}

	prog, err := p.Parse(strings.NewReader(strings.Join(text, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	expected := []Step{
		{LineNo: 2, Kind: STEP_LITERAL, Literal: "7"},
		{LineNo: 2, Kind: STEP_OP, Op: alu.Op{Kind: alu.OP_ENTER}},
		{LineNo: 2, Kind: STEP_LITERAL, Literal: "1"},
		{LineNo: 2, Kind: STEP_OP, Op: alu.Op{Kind: alu.OP_ADD}},
		{LineNo: 3, Kind: STEP_LITERAL, Literal: "2"},
		{LineNo: 3, Kind: STEP_OP, Op: alu.Op{Kind: alu.OP_MUL}},
		{LineNo: 4, Kind: STEP_BASE, Base: display.BASE_HEX},
		{LineNo: 5, Kind: STEP_MODE, Mode: word.MODE_TWOS},
		{LineNo: 6, Kind: STEP_OP, Op: alu.Op{Kind: alu.OP_SL, Arg: 3}},
		{LineNo: 7, Kind: STEP_OP, Op: alu.Op{Kind: alu.OP_SR, Arg: 1}},
		{LineNo: 8, Kind: STEP_OP, Op: alu.Op{Kind: alu.OP_STO, Arg: 5}},
	}

	assert.Equal(expected, prog.Steps)
}

func TestParserEquate(t *testing.T) {
	assert := assert.New(t)

	p := &Parser{}

	text := []string{
		".equ SHIFT 3",
		".equ VALUE 100",
		"VALUE sl SHIFT",
	}

	prog, err := p.Parse(strings.NewReader(strings.Join(text, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	expected := []Step{
		{LineNo: 3, Kind: STEP_LITERAL, Literal: "100"},
		{LineNo: 3, Kind: STEP_OP, Op: alu.Op{Kind: alu.OP_SL, Arg: 3}},
	}

	assert.Equal(expected, prog.Steps)
}

func TestParserExpression(t *testing.T) {
	assert := assert.New(t)

	p := &Parser{}
	p.Predefine("MEM_COUNT", "16")

	text := []string{
		".equ LAST $(MEM_COUNT - 1)",
		"42 sto LAST",
		"$(6 * 7)",
	}

	prog, err := p.Parse(strings.NewReader(strings.Join(text, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	expected := []Step{
		{LineNo: 2, Kind: STEP_LITERAL, Literal: "42"},
		{LineNo: 2, Kind: STEP_OP, Op: alu.Op{Kind: alu.OP_STO, Arg: 15}},
		{LineNo: 3, Kind: STEP_LITERAL, Literal: "42"},
	}

	assert.Equal(expected, prog.Steps)
}

func TestParserErrors(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		name string
		text string
		err  error
	}{
		{name: "equ_args", text: ".equ ONLY", err: ErrEquateSyntax},
		{name: "equ_dup", text: ".equ A 1\n.equ A 2", err: ErrEquateDuplicate},
		{name: "arg_missing", text: "1 sto", err: ErrArgMissing},
		{name: "arg_not_number", text: "sb oops", err: ErrParseNumber("")},
		{name: "bad_expr", text: "$(nonesuch + 1)", err: nil},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p := &Parser{}
			_, err := p.Parse(strings.NewReader(test.text))
			assert.Error(err, test.name)

			var syntax *ErrSyntax
			assert.ErrorAs(err, &syntax, test.name)
			if test.err != nil {
				assert.ErrorIs(err, test.err, test.name)
			}
		})
	}
}

func TestProgramRun(t *testing.T) {
	assert := assert.New(t)

	c := testCalc(t)
	p := &Parser{}

	text := []string{
		"; sum, then inspect the bit pattern",
		"7 enter 1 +",
		"hex",
		"sl 4",
	}

	prog, err := p.Parse(strings.NewReader(strings.Join(text, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.NoError(prog.Run(c))
	assert.Equal("0080", c.Display())
}

func TestProgramRunDefines(t *testing.T) {
	assert := assert.New(t)

	c := testCalc(t)

	p := &Parser{}
	for key, value := range c.Defines() {
		p.Predefine(key, value)
	}

	text := []string{
		"1 sf $(FLAG_CARRY)",
	}

	prog, err := p.Parse(strings.NewReader(strings.Join(text, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.NoError(prog.Run(c))
	assert.True(c.Flags.Carry)
}

func TestProgramRunFailure(t *testing.T) {
	assert := assert.New(t)

	c := testCalc(t)
	p := &Parser{}

	text := []string{
		"5 enter",
		"0 /",
	}

	prog, err := p.Parse(strings.NewReader(strings.Join(text, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	err = prog.Run(c)
	assert.ErrorIs(err, alu.ErrDivideByZero)

	var runtime *ErrRuntime
	assert.ErrorAs(err, &runtime)
	assert.Equal(2, runtime.LineNo)
}
