package listquery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type rec struct {
	id      string
	likes   int64
	created time.Time
}

func recID(r rec) string         { return r.id }
func recLikes(r rec) int64       { return r.likes }
func recCreated(r rec) time.Time { return r.created }

func stamps(n int) []rec {
	base := time.Date(2023, 6, 21, 10, 0, 0, 0, time.UTC)
	out := make([]rec, n)
	for i := range out {
		out[i] = rec{id: string(rune('a' + i)), created: base.Add(time.Duration(i) * time.Hour)}
	}
	return out
}

// newest then reversed equals oldest for distinct timestamps.
func TestNewestReversedIsOldest(t *testing.T) {
	items := []rec{stamps(5)[3], stamps(5)[0], stamps(5)[4], stamps(5)[1], stamps(5)[2]}

	newest := Sort(items, Newest(recCreated, recID))
	oldest := Sort(items, Oldest(recCreated, recID))

	for i := range newest {
		assert.Equal(t, oldest[len(oldest)-1-i].id, newest[i].id)
	}
}

func TestSortLeavesInputUntouched(t *testing.T) {
	items := stamps(4)
	orig := append([]rec{}, items...)
	_ = Sort(items, Newest(recCreated, recID))
	assert.Equal(t, orig, items)
}

func TestPopularTiebreakByID(t *testing.T) {
	items := []rec{
		{id: "c", likes: 2},
		{id: "a", likes: 2},
		{id: "b", likes: 9},
	}
	got := Sort(items, Popular(recLikes, recID))
	assert.Equal(t, []string{"b", "a", "c"}, []string{got[0].id, got[1].id, got[2].id})
}

func TestMatchFoldCaseInsensitive(t *testing.T) {
	assert.True(t, MatchFold("WEB3", "building on web3 tech"))
	assert.True(t, MatchFold("web3", "Building on WEB3 tech"))
	assert.True(t, MatchFold("fan", "", "Web3 Fan"))
	assert.False(t, MatchFold("solana", "building on web3 tech"))
}

func TestFilterPreservesOrder(t *testing.T) {
	items := []rec{{id: "a", likes: 1}, {id: "b"}, {id: "c", likes: 3}}
	got := Filter(items, func(r rec) bool { return r.likes > 0 })
	assert.Equal(t, []string{"a", "c"}, []string{got[0].id, got[1].id})
}
