package reconcile

import "github.com/vadiminshakov/symbex/internal/domain"

// MinLists is the number of lists a multi-list comparison needs.
const MinLists = 2

// CommonAcrossAll returns the symbols whose normalized form appears in every list.
// The representative record comes from the first list. Fewer than MinLists
// lists yield an empty result.
func CommonAcrossAll(lists []domain.SymbolList) []domain.SymbolRecord {
	common := make([]domain.SymbolRecord, 0)
	if len(lists) < MinLists {
		return common
	}

	indexes := indexLists(lists)
	first := indexes[0]

next:
	for _, key := range first.keys {
		for _, other := range indexes[1:] {
			if !other.has(key) {
				continue next
			}
		}
		common = append(common, first.get(key))
	}

	return common
}

// UniquePerList returns, per list name, the symbols whose normalized form
// appears in no other list. When two lists share a name the later one
// overwrites the earlier in the result. Fewer than MinLists lists yield an empty map.
func UniquePerList(lists []domain.SymbolList) map[string][]domain.SymbolRecord {
	result := make(map[string][]domain.SymbolRecord)
	if len(lists) < MinLists {
		return result
	}

	indexes := indexLists(lists)
	for i, current := range indexes {
		unique := make([]domain.SymbolRecord, 0)

	keys:
		for _, key := range current.keys {
			for j, other := range indexes {
				if i != j && other.has(key) {
					continue keys
				}
			}
			unique = append(unique, current.get(key))
		}

		result[lists[i].Name] = unique
	}

	return result
}

// Counts returns the number of records per list name.
func Counts(lists []domain.SymbolList) map[string]int {
	counts := make(map[string]int, len(lists))
	for _, l := range lists {
		counts[l.Name] = l.Len()
	}
	return counts
}

func indexLists(lists []domain.SymbolList) []*index {
	indexes := make([]*index, 0, len(lists))
	for _, l := range lists {
		indexes = append(indexes, newIndex(l.Symbols))
	}
	return indexes
}
