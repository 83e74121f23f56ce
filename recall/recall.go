// Package recall manages the persistence and retrieval of previously pushed payloads and their suggestions.
package recall

import (
	"strings"

	"github.com/dynstack-cli/dynstack/filesystem"
	"github.com/dynstack-cli/dynstack/key"
	"github.com/dynstack-cli/dynstack/util"
	"github.com/dynstack-cli/dynstack/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

type recallRecord struct {
	Count int    `json:"count"`
	Value string `json:"value"`
}

var cacher = gache.New[map[string]*recallRecord](
	&gache.Options{
		Path:       where.Recall(),
		FileSystem: &filesystem.GacheFs{},
	},
)

var suggestionCache = make(map[string][]*recallRecord)

// Remember records a pushed payload in the persistent registry or increments its use count.
func Remember(value string, weight int) error {
	value = sanitize(value)
	cached, expired, err := cacher.Get()
	if expired || err != nil || cached == nil {
		cached = make(map[string]*recallRecord)
	}

	if record, ok := cached[value]; ok {
		record.Count += weight
	} else {
		cached[value] = &recallRecord{Count: weight, Value: value}
	}

	suggestionCache = make(map[string][]*recallRecord)
	return cacher.Set(cached)
}

// Suggest returns the most relevant previously pushed payload for a partial input.
func Suggest(partial string) mo.Option[string] {
	suggestions := SuggestMany(partial)
	if len(suggestions) == 0 {
		return mo.None[string]()
	}
	return mo.Some(suggestions[0])
}

// SuggestMany returns previously pushed payloads matching the partial input,
// ranked by fuzzy closeness, then by use count, then lexicographically.
func SuggestMany(partial string) []string {
	if !viper.GetBool(key.RecallSuggestions) {
		return []string{}
	}

	partial = sanitize(partial)
	var records []*recallRecord

	if prev, ok := suggestionCache[partial]; ok {
		records = prev
	} else {
		cached, expired, err := cacher.Get()
		if err != nil || expired || cached == nil {
			return []string{}
		}

		ranks := make(map[string]int)
		for _, record := range cached {
			if rank := fuzzy.RankMatch(partial, record.Value); rank >= 0 {
				ranks[record.Value] = rank
				records = append(records, record)
			}
		}

		slices.SortFunc(records, func(a, b *recallRecord) int {
			if ranks[a.Value] != ranks[b.Value] {
				return ranks[a.Value] - ranks[b.Value]
			}
			if a.Count != b.Count {
				return b.Count - a.Count
			}
			return strings.Compare(a.Value, b.Value)
		})

		suggestionCache[partial] = records
	}

	if limit := viper.GetInt(key.RecallLimit); limit > 0 {
		records = records[:util.Min(limit, len(records))]
	}

	return lo.Map(records, func(r *recallRecord, _ int) string {
		return r.Value
	})
}

func sanitize(value string) string {
	return strings.TrimSpace(value)
}
