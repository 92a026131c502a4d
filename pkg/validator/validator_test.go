package validator

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

type named struct {
	Name  string  `binding:"required,notblank"`
	Alias *string `binding:"omitempty,notblank"`
}

func TestNotBlank(t *testing.T) {
	t.Parallel()
	Register()
	Register()

	blank := "  "
	ok := "Lions"
	tests := []struct {
		in    named
		valid bool
	}{
		{named{Name: "Lions"}, true},
		{named{Name: "   "}, false},
		{named{Name: "Lions", Alias: &ok}, true},
		{named{Name: "Lions", Alias: &blank}, false},
	}
	for _, tt := range tests {
		err := binding.Validator.ValidateStruct(tt.in)
		assert.Equal(t, tt.valid, err == nil, "%+v", tt.in)
	}
}
