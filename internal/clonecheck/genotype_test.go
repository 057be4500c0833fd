package clonecheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// genotype is a test helper for making a Genotype with the default missing code.
func genotype(t *testing.T, id string, codes ...string) *Genotype {
	t.Helper()

	g, err := NewGenotype(id, codes, Missing)
	require.NoError(t, err)
	return g
}

func TestNewGenotype(t *testing.T) {
	type args struct {
		id      string
		codes   []string
		missing string
	}
	tests := []struct {
		name        string
		args        args
		wantMissing int
		wantValues  []int
		wantErr     error
	}{
		{
			"no missing loci",
			args{"MJ872", []string{"158", "193", "191"}, "0"},
			0,
			[]int{158, 193, 191},
			nil,
		},
		{
			"missing loci are counted",
			args{"MJ873", []string{"158", "0", "0"}, "0"},
			2,
			[]int{158, 0, 0},
			nil,
		},
		{
			"custom missing code",
			args{"MJ874", []string{"-", "193", "0"}, "-"},
			1,
			[]int{0, 193, 0},
			nil,
		},
		{
			"empty missing code falls back to 0",
			args{"MJ875", []string{"0", "193"}, ""},
			1,
			[]int{0, 193},
			nil,
		},
		{
			"whitespace around codes",
			args{"MJ876", []string{" 158", "193 "}, "0"},
			0,
			[]int{158, 193},
			nil,
		},
		{
			"non-integer allele",
			args{"MJ877", []string{"158", "A"}, "0"},
			0,
			nil,
			ErrMalformedRow,
		},
		{
			"largest 32-bit alleles",
			args{"MJ880", []string{"2147483647", "-2147483648"}, "0"},
			0,
			[]int{2147483647, -2147483648},
			nil,
		},
		{
			"allele beyond 32 bits",
			args{"MJ881", []string{"158", "9223372036854775807"}, "0"},
			0,
			nil,
			ErrMalformedRow,
		},
		{
			"negative allele beyond 32 bits",
			args{"MJ882", []string{"-2147483649", "193"}, "0"},
			0,
			nil,
			ErrMalformedRow,
		},
		{
			"empty allele",
			args{"MJ878", []string{"158", ""}, "0"},
			0,
			nil,
			ErrMalformedRow,
		},
		{
			"no alleles",
			args{"MJ879", []string{}, "0"},
			0,
			nil,
			ErrMalformedRow,
		},
		{
			"no id",
			args{"", []string{"158"}, "0"},
			0,
			nil,
			ErrMalformedRow,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGenotype(tt.args.id, tt.args.codes, tt.args.missing)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, g)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tt.args.id, g.ID)
			assert.Equal(t, tt.wantMissing, g.MissingCount())
			assert.Equal(t, len(tt.args.codes), g.Len())

			values := make([]int, g.Len())
			for i, a := range g.Alleles {
				values[i] = a.Value
			}
			assert.Equal(t, tt.wantValues, values)
		})
	}
}

func TestGenotype_Codes(t *testing.T) {
	g := genotype(t, "MJ872", "158", "0", "191")

	assert.Equal(t, []string{"158", "0", "191"}, g.Codes())
	assert.True(t, g.Alleles[1].Missing)
	assert.False(t, g.Alleles[0].Missing)
}
