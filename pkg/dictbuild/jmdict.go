package dictbuild

import (
	"strconv"
	"strings"

	"github.com/yomikiri-go/engine/pkg/dictionary"
	"github.com/yomikiri-go/engine/pkg/pos"
)

// jmnedictIDRangeStart/jmnedictIDRangeEnd mark the id range original_source/.../dictionary.rs's
// three-state builder skips when reading JMdict (ids in
// [5000000, 6000000) are JMnedict-reserved, spec.md §4.4 "Build order").
const (
	jmnedictIDRangeStart = 5_000_000
	jmnedictIDRangeEnd   = 6_000_000
)

// BuildWordEntry converts one parsed JMdict entry into a dictionary.WordEntry.
// Entries whose seq falls in the JMnedict-reserved id range are skipped by
// the caller (JMdictPhase.ReadJMdict), not here.
func BuildWordEntry(e jmdictEntryXML) dictionary.WordEntry {
	kanjis := make([]dictionary.Kanji, len(e.KanjiEle))
	for i, k := range e.KanjiEle {
		kanjis[i] = dictionary.Kanji{Text: k.Keb, Rarity: rarityOf(k.KeInf)}
	}

	readings := make([]dictionary.Reading, len(e.ReadEle))
	for i, r := range e.ReadEle {
		readings[i] = dictionary.Reading{
			Text:      r.Reb,
			Rarity:    rarityOf(r.ReInf),
			NoKanji:   r.NoKanji != nil,
			AppliesTo: append([]string(nil), r.ReRestr...),
		}
	}

	senses := groupSenses(e.Senses)

	// spec.md §4.4: priority is derived from the first reading's priority
	// tags (falling back to the first kanji form's, for kana-only entries
	// whose only r_ele carries no re_pri of its own).
	var priTags []string
	if len(e.ReadEle) > 0 {
		priTags = e.ReadEle[0].RePri
	}
	if len(priTags) == 0 && len(e.KanjiEle) > 0 {
		priTags = e.KanjiEle[0].KePri
	}

	return dictionary.WordEntry{
		ID:       uint32(e.Seq),
		Kanjis:   kanjis,
		Readings: readings,
		Senses:   senses,
		Priority: priorityScore(priTags),
	}
}

// rarityOf derives a form's Rarity from its ke_inf/re_inf tags per
// spec.md §4.4's mapping, taking the MINIMUM (mildest) Rarity when
// several tags apply to the same form.
func rarityOf(infTags []string) dictionary.Rarity {
	best := dictionary.RarityNormal
	seenAny := false
	for _, t := range infTags {
		r, ok := infTagRarity[t]
		if !ok {
			continue
		}
		if !seenAny || r < best {
			best = r
			seenAny = true
		}
	}
	return best
}

// groupSenses folds consecutive JMdict <sense> elements that share an
// identical pos set into one dictionary.GroupedSense, matching how the
// reference format displays senses (entry.rs's Sense -> GroupedSense
// collapsing, applied here at build time instead of at display time since
// Go's dictionary.View has no owned per-sense pos list to re-derive from).
func groupSenses(senses []senseXML) []dictionary.GroupedSense {
	var out []dictionary.GroupedSense
	var lastKey string

	for _, s := range senses {
		posList := make([]pos.POS, 0, len(s.Pos))
		for _, tag := range s.Pos {
			posList = append(posList, mapPos(tag))
		}
		meanings := englishGlosses(s.Gloss)
		if len(meanings) == 0 {
			continue
		}

		key := posKey(posList)
		if len(out) > 0 && key == lastKey {
			out[len(out)-1].Meanings = append(out[len(out)-1].Meanings, meanings...)
			continue
		}
		out = append(out, dictionary.GroupedSense{PartsOfSpeech: posList, Meanings: meanings})
		lastKey = key
	}
	return out
}

func posKey(list []pos.POS) string {
	var b strings.Builder
	for _, p := range list {
		b.WriteByte(p.Encode())
	}
	return b.String()
}

func englishGlosses(glosses []glossXML) []string {
	var out []string
	for _, g := range glosses {
		if g.Lang == "" || g.Lang == "eng" {
			out = append(out, g.Text)
		}
	}
	return out
}

// isTopPriorityTag reports whether tag is in {news1, ichi1, spec1, gai1}.
func isTopPriorityTag(tag string) bool {
	switch tag {
	case "news1", "ichi1", "spec1", "gai1":
		return true
	}
	return false
}

// isSecondPriorityTag reports whether tag is in {news2, ichi2, spec2, gai2}.
func isSecondPriorityTag(tag string) bool {
	switch tag {
	case "news2", "ichi2", "spec2", "gai2":
		return true
	}
	return false
}

// priorityScore computes a WordEntry's priority from its first reading's
// priority tags (spec.md §4.4): top-tier tags contribute +100 the first
// time and +25 thereafter, second-tier tags contribute +5 each, and
// nf<nn> tags contribute 50-nn.
func priorityScore(tags []string) uint16 {
	var total int
	sawTop := false
	for _, t := range tags {
		switch {
		case isTopPriorityTag(t):
			if !sawTop {
				total += 100
				sawTop = true
			} else {
				total += 25
			}
		case isSecondPriorityTag(t):
			total += 5
		case strings.HasPrefix(t, "nf"):
			if rank, err := strconv.Atoi(t[2:]); err == nil {
				total += 50 - rank
			}
		}
	}
	if total < 0 {
		return 0
	}
	if total > 0xFFFF {
		return 0xFFFF
	}
	return uint16(total)
}
