package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSpecs(t *testing.T) {
	tests := []struct {
		name        string
		description string
		expected    []string
	}{
		{
			name:        "Typical spec fragments",
			description: "16GB RAM, 512GB SSD",
			expected:    []string{"16GB RAM", "512GB SSD"},
		},
		{
			name:        "Untrimmed fragments",
			description: "  16GB RAM ,512GB SSD  ",
			expected:    []string{"16GB RAM", "512GB SSD"},
		},
		{
			name:        "Empty segments are dropped",
			description: "16GB RAM,, 512GB SSD,",
			expected:    []string{"16GB RAM", "512GB SSD"},
		},
		{
			name:        "Empty description",
			description: "",
			expected:    []string{},
		},
		{
			name:        "Only whitespace and commas",
			description: " , , ",
			expected:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitSpecs(tt.description))
		})
	}
}

func TestSpecsRoundTrip(t *testing.T) {
	specs := []string{"16GB RAM", "512GB SSD"}

	joined := JoinSpecs(specs)
	assert.Equal(t, "16GB RAM, 512GB SSD", joined)

	assert.Equal(t, specs, SplitSpecs(joined))
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input    string
		expected Category
		ok       bool
	}{
		{input: "Laptops", expected: CategoryLaptops, ok: true},
		{input: "Desktops", expected: CategoryDesktops, ok: true},
		{input: "Accessories", expected: CategoryAccessories, ok: true},
		{input: " Laptops ", expected: CategoryLaptops, ok: true},
		{input: "laptops", ok: false},
		{input: "Phones", ok: false},
		{input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, ok := ParseCategory(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, c)
			}
		})
	}
}

func TestUpdateProductRequest_Empty(t *testing.T) {
	assert.True(t, (&UpdateProductRequest{}).Empty())

	zero := 0
	assert.False(t, (&UpdateProductRequest{Stock: &zero}).Empty())

	name := "Tower X"
	assert.False(t, (&UpdateProductRequest{Name: &name}).Empty())
}
