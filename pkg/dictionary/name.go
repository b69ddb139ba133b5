package dictionary

// NameType is a JMnedict name-type tag (person, surname, place, company,
// ...), grounded on original_source/crates/yomikiri-dictionary/src/name.rs.
type NameType uint8

const (
	NameUnknown NameType = iota
	NameCompany
	NameFemale
	NameMale
	NameFull
	NameGiven
	NamePerson
	NamePlace
	NameProduct
	NameRailStation
	NameSurname
	NameUnclass
	NameWork
	NameOrganization
	NameFiction
	NameGod
	NameEvent
	NameObject
	NameDoc
)

// NameItem is one reading-keyed hit within a NameEntry's group.
type NameItem struct {
	ID      uint32
	Reading string
}

// GroupedNameItem is a run of NameItems that share the same NameType set,
// exactly mirroring name.rs::GroupedNameItem.
type GroupedNameItem struct {
	Types []NameType
	Items []NameItem
}

// NameEntry is one JMnedict entry kept as a name (not re-routed to
// WordEntry by the person+gender exception, see dictbuild's jmnedict
// partitioning logic).
type NameEntry struct {
	Kanji  string
	Groups []GroupedNameItem
}

// Terms returns the kanji form plus every distinct reading. The term
// index does not use it: dictbuild keys name entries by Kanji only.
func (e *NameEntry) Terms() []string {
	seen := map[string]bool{e.Kanji: true}
	out := []string{e.Kanji}
	for _, g := range e.Groups {
		for _, item := range g.Items {
			if !seen[item.Reading] {
				seen[item.Reading] = true
				out = append(out, item.Reading)
			}
		}
	}
	return out
}
