package cpf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "52998224725", Normalize("529.982.247-25"))
	assert.Equal(t, "52998224725", Normalize("52998224725"))
	assert.Equal(t, "52998224725", Normalize(" 529 982 247 25 "))
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal("529.982.247-25", "52998224725"))
	assert.False(t, Equal("529.982.247-25", "153.509.460-56"))
	assert.False(t, Equal("", ""))
}

func TestValidate(t *testing.T) {
	valid := []string{
		"529.982.247-25",
		"52998224725",
		"153.509.460-56",
		"358.350.678-28",
	}
	for _, c := range valid {
		assert.NoError(t, Validate(c), c)
	}

	invalid := []string{
		"",
		"1234567890",      // десять цифр
		"123456789012",    // двенадцать цифр
		"111.111.111-11",  // все цифры одинаковые
		"529.982.247-26",  // неверная контрольная цифра
		"529.982.248-25",  // испорчено тело
		"abc.def.ghi-jk",
	}
	for _, c := range invalid {
		assert.ErrorIs(t, Validate(c), ErrInvalidCPF, c)
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "529.982.247-25", Format("52998224725"))
	assert.Equal(t, "529.982.247-25", Format("529.982.247-25"))
}
