package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	e, err := NewEmail("  Tecnico@Empresa.com.BR ")
	require.NoError(t, err)
	assert.Equal(t, "tecnico@empresa.com.br", e.String())

	_, err = NewEmail("")
	assert.Error(t, err)
	_, err = NewEmail("not-an-email")
	assert.Error(t, err)
}

func TestNormalizeFullName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"joão  da silva", "João da Silva"},
		{"MARIA DOS SANTOS", "Maria dos Santos"},
		{"de souza", "De Souza"},
		{"   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizeFullName(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateUsername(t *testing.T) {
	v, err := ValidateUsername(" joao.silva ")
	require.NoError(t, err)
	assert.Equal(t, "joao.silva", v)

	_, err = ValidateUsername("ab")
	assert.Error(t, err)
	_, err = ValidateUsername("joao silva")
	assert.Error(t, err)
}
