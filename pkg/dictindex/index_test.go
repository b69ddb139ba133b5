package dictindex

import "testing"

func TestIncrementBytes(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"a", "b"},
		{"art", "aru"},
		{"a\xff", "b\x00"},
		{"\xff\xff", "\x00\x00\x00"},
		{"", "\x00"},
	}
	for _, c := range cases {
		b := []byte(c.in)
		IncrementBytes(&b)
		if string(b) != c.want {
			t.Errorf("incrementBytes(%q) = %q, want %q", c.in, b, c.want)
		}
	}
}

func TestBuildGetRoundTrip(t *testing.T) {
	items := []Item{
		{Key: "あ", Entries: []EntryIdx{{Kind: Word, Idx: 1}}},
		{Key: "あい", Entries: []EntryIdx{{Kind: Word, Idx: 2}, {Kind: Name, Idx: 3}}},
		{Key: "い", Entries: []EntryIdx{{Kind: Name, Idx: 0}}},
	}

	encoded, err := BuildAndEncodeTo(items, nil)
	if err != nil {
		t.Fatal(err)
	}

	m, n, err := TryDecode(encoded)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(encoded) {
		t.Errorf("consumed %d bytes, want %d", n, len(encoded))
	}

	got, err := m.Get("あい")
	if err != nil {
		t.Fatal(err)
	}
	want := []EntryIdx{{Kind: Word, Idx: 2}, {Kind: Name, Idx: 3}}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Get(あい) = %v, want %v", got, want)
	}

	if !m.ContainsKey("あ") {
		t.Error("expected あ to be present")
	}
	if m.ContainsKey("う") {
		t.Error("did not expect う to be present")
	}

	has, err := m.HasStartsWithExcluding("あ")
	if err != nil {
		t.Fatal(err)
	}
	if !has {
		t.Error("expected some key to strictly extend あ")
	}

	has, err = m.HasStartsWithExcluding("あい")
	if err != nil {
		t.Fatal(err)
	}
	if has {
		t.Error("did not expect any key to strictly extend あい")
	}
}
