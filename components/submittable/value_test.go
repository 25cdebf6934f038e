package submittable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue_Equal(t *testing.T) {
	cases := []struct {
		name     string
		baseline Value
		live     Value
		equal    bool
	}{
		{"identical strings", StringValue("mr"), StringValue("mr"), true},
		{"different strings", StringValue("mr"), StringValue("mrs"), false},
		{"numeric baseline vs string digits", NumberValue(5), StringValue("5"), true},
		{"string digits vs numeric live", StringValue("5"), NumberValue(5), true},
		{"numeric baseline vs padded string", NumberValue(5), StringValue(" 5 "), true},
		{"numeric baseline vs other number", NumberValue(5), StringValue("6"), false},
		{"numeric baseline vs non-numeric", NumberValue(5), StringValue("five"), false},
		{"fractional number", NumberValue(2.5), StringValue("2.5"), true},
		{"empty strings", StringValue(""), StringValue(""), true},
		{"numeric zero vs empty", NumberValue(0), StringValue(""), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.equal, tc.baseline.Equal(tc.live))
		})
	}
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "5", NumberValue(5).String())
	assert.Equal(t, "2.5", NumberValue(2.5).String())
	assert.Equal(t, "mr", StringValue("mr").String())
}

func TestValue_Float(t *testing.T) {
	f, ok := NumberValue(3.5).Float()
	assert.True(t, ok)
	assert.Equal(t, 3.5, f)

	f, ok = StringValue("42").Float()
	assert.True(t, ok)
	assert.Equal(t, 42.0, f)

	_, ok = StringValue("mr").Float()
	assert.False(t, ok)
}
