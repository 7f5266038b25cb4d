package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple", in: "Red Shoe", want: "red-shoe"},
		{name: "already slug", in: "red-shoe", want: "red-shoe"},
		{name: "punctuation collapses", in: "Summer   Sale!!!", want: "summer-sale"},
		{name: "leading and trailing junk trimmed", in: "  --Hello World--  ", want: "hello-world"},
		{name: "digits kept", in: "iPhone 15 Pro", want: "iphone-15-pro"},
		{name: "symbols become single hyphen", in: "A&B / C", want: "a-b-c"},
		{name: "empty", in: "", want: ""},
		{name: "only junk", in: "!!!", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlug(tt.in))
		})
	}
}
