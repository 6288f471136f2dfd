package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateSource(t *testing.T, src string) []string {
	t.Helper()
	state, cerr := analyzeSource(src)
	require.Nil(t, cerr)
	gen := &tacGen{state: state}
	gen.generate()
	return state.code
}

func TestGenerateConcreteScenario(t *testing.T) {
	code := generateSource(t, "int a;\nint b;\na = 3 + 4 * 2;\nprint a - b;\n")
	assert.Equal(t, []string{
		"t1 = 4 * 2",
		"t2 = 3 + t1",
		"a = t2",
		"t3 = a - b",
		"print t3",
	}, code)
}

func TestGenerateDeclarationEmitsNothing(t *testing.T) {
	code := generateSource(t, "int a; int b; int c;")
	assert.Empty(t, code)
}

func TestGenerateAssignLiteral(t *testing.T) {
	code := generateSource(t, "int x; x = 5;")
	assert.Equal(t, []string{"x = 5"}, code)
}

func TestGeneratePrintVariable(t *testing.T) {
	code := generateSource(t, "int x; x = 1; print x;")
	assert.Equal(t, []string{"x = 1", "print x"}, code)
}

func TestGenerateUnaryMinusCanonicalization(t *testing.T) {
	code := generateSource(t, "int x; x = -5;")
	assert.Equal(t, []string{"t1 = 0 - 5", "x = t1"}, code)
}

func TestGenerateUnaryPlusIsNoOp(t *testing.T) {
	code := generateSource(t, "int x; x = +5;")
	assert.Equal(t, []string{"x = 5"}, code)
}

func TestGenerateNestedUnaryMinus(t *testing.T) {
	code := generateSource(t, "int a; int b; int x; x = -(a + b);")
	assert.Equal(t, []string{
		"t1 = a + b",
		"t2 = 0 - t1",
		"x = t2",
	}, code)
}

func TestGenerateLeftAssociativity(t *testing.T) {
	code := generateSource(t, "int a; int b; int c; print a - b - c;")
	assert.Equal(t, []string{
		"t1 = a - b",
		"t2 = t1 - c",
		"print t2",
	}, code)
}

func TestGeneratePrecedence(t *testing.T) {
	code := generateSource(t, "print 2 + 3 * 4;")
	assert.Equal(t, []string{
		"t1 = 3 * 4",
		"t2 = 2 + t1",
		"print t2",
	}, code)

	code = generateSource(t, "print 2 * 3 + 4;")
	assert.Equal(t, []string{
		"t1 = 2 * 3",
		"t2 = t1 + 4",
		"print t2",
	}, code)
}

func TestGenerateLeftOperandFullyEvaluatedFirst(t *testing.T) {
	code := generateSource(t, "int a; print (a + 1) * (a - 1);")
	assert.Equal(t, []string{
		"t1 = a + 1",
		"t2 = a - 1",
		"t3 = t1 * t2",
		"print t3",
	}, code)
}

func TestGenerateFreshRunResetsTemporaries(t *testing.T) {
	state, cerr := analyzeSource("int a; a = 1 + 2; print a * 3;")
	require.Nil(t, cerr)

	first := &tacGen{state: state}
	first.generate()
	firstCode := state.code

	second := &tacGen{state: state}
	second.generate()
	assert.Equal(t, firstCode, state.code)
	assert.Equal(t, "t1 = 1 + 2", state.code[0])
}

func TestGenerateSharedGeneratorResetsCounter(t *testing.T) {
	state, cerr := analyzeSource("int a; a = 1 + 2;")
	require.Nil(t, cerr)

	gen := &tacGen{state: state}
	gen.generate()
	require.Equal(t, []string{"t1 = 1 + 2", "a = t1"}, state.code)

	// generate resets the counter, numbering restarts at t1
	gen.generate()
	assert.Equal(t, []string{"t1 = 1 + 2", "a = t1"}, state.code)
}
