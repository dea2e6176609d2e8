package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storectl/internal/faults"
)

func TestID(t *testing.T) {
	t.Parallel()

	valid := map[string]int64{"0": 0, "7": 7, "15": 15, "0042": 42}
	for token, want := range valid {
		got, err := ID(token)
		require.NoError(t, err, token)
		assert.Equal(t, want, got, token)
	}

	invalid := []string{"", "abc", "-1", "+1", "1.5", " 1", "1 ", "1e3", "١", "99999999999999999999"}
	for _, token := range invalid {
		_, err := ID(token)
		require.Error(t, err, token)
		assert.True(t, faults.Is(err, faults.ValidationError), token)
		assert.Contains(t, err.Error(), "id must be numeric", token)
	}
}

func TestPrice(t *testing.T) {
	t.Parallel()

	for _, token := range []string{"300", "0.01", "1e2", " 12.5 "} {
		_, err := Price(token)
		assert.NoError(t, err, token)
	}

	for _, token := range []string{"-5", "0", "-0", "abc", "", "NaN", "Inf", "+Inf", "1e400"} {
		_, err := Price(token)
		require.Error(t, err, token)
		assert.True(t, faults.Is(err, faults.ValidationError), token)
		assert.Equal(t, "invalid price", err.Error(), token)
	}
}

func TestCreateDraft(t *testing.T) {
	t.Parallel()

	d, err := CreateDraft("  Remera ", "300", "remeras")
	require.NoError(t, err)
	assert.Equal(t, Draft{Title: "Remera", Price: 300, Category: "remeras"}, d)

	cases := map[string][3]string{
		"title is required":    {"  ", "300", "remeras"},
		"price is required":    {"Remera", " ", "remeras"},
		"category is required": {"Remera", "300", ""},
		"invalid price":        {"Remera", "-5", "remeras"},
	}
	for want, in := range cases {
		_, err := CreateDraft(in[0], in[1], in[2])
		require.Error(t, err)
		assert.Equal(t, want, err.Error())
	}
}
