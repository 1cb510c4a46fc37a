package domain

import "testing"

func TestView_FilterByTitleAndTags(t *testing.T) {
	s := NewStore()
	a := NewAsset("/img/dragon.jpg")
	a.Title = "Dragon Study"
	s.Add(a)
	b := NewAsset("/img/b.jpg")
	b.Title = "Untitled"
	b.SetTagsString("ink, creature")
	s.Add(b)
	c := NewAsset("/img/c.jpg")
	c.Title = "Landscape"
	s.Add(c)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty query matches everything in order", "", []string{"Dragon Study", "Untitled", "Landscape"}},
		{"title substring case-insensitive", "dRaGoN", []string{"Dragon Study"}},
		{"tag substring", "creat", []string{"Untitled"}},
		{"no match returns empty", "zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := View{Query: tt.query}
			got := v.Compute(s)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d results, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i].Title != tt.want[i] {
					t.Errorf("result %d = %q, want %q", i, got[i].Title, tt.want[i])
				}
			}
		})
	}
}

func TestView_SortByTitleCaseInsensitive(t *testing.T) {
	s := makeStore("B", "a", "C")

	v := View{Sort: SortTitle}
	got := v.Compute(s)

	want := []string{"a", "B", "C"}
	for i := range want {
		if got[i].Title != want[i] {
			t.Errorf("position %d = %q, want %q", i, got[i].Title, want[i])
		}
	}
}

func TestView_SortByYearEmptyFirst(t *testing.T) {
	s := NewStore()
	for _, year := range []string{"2020", "", "1999"} {
		a := NewAsset("/img/y.jpg")
		a.Year = year
		s.Add(a)
	}

	v := View{Sort: SortYear}
	got := v.Compute(s)

	want := []string{"", "1999", "2020"}
	for i := range want {
		if got[i].Year != want[i] {
			t.Errorf("position %d year = %q, want %q", i, got[i].Year, want[i])
		}
	}
}

func TestView_DoesNotMutateStore(t *testing.T) {
	s := makeStore("c", "a", "b")

	v := View{Sort: SortTitle}
	v.Compute(s)

	assertOrder(t, s, []string{"c", "a", "b"})
}

func TestParseSortMode(t *testing.T) {
	tests := []struct {
		in   string
		want SortMode
	}{
		{"title", SortTitle},
		{"Year", SortYear},
		{"added", SortAdded},
		{"bogus", SortAdded},
		{"", SortAdded},
	}

	for _, tt := range tests {
		if got := ParseSortMode(tt.in); got != tt.want {
			t.Errorf("ParseSortMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
