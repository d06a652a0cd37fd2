package cache

import (
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestAutocompleteMembers_SkipsBlankWords(t *testing.T) {
	members := autocompleteMembers([]string{" Νερό ", "", "   ", "και"})

	assert.Equal(t, []redis.Z{
		{Score: 0, Member: "νερό"},
		{Score: 0, Member: "και"},
	}, members)
}

func TestAutocompleteMembers_AllBlank(t *testing.T) {
	assert.Empty(t, autocompleteMembers([]string{"", " "}))
}

func TestMergeSorted_SkipsBlankWords(t *testing.T) {
	assert.Equal(t, []string{"και", "νερό"}, mergeSorted(nil, []string{"νερό", " ", "και"}))
}
