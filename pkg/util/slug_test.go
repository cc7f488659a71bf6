package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "Eletrônicos & Informática", want: "eletronicos-informatica"},
		{input: "  Moda   Feminina ", want: "moda-feminina"},
		{input: "Açaí", want: "acai"},
		{input: "TV 4K", want: "tv-4k"},
		{input: "---", want: ""},
		{input: "ß", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}
