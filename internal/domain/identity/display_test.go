package identity

import "testing"

func TestResolveDisplayNameCanonical(t *testing.T) {
	tests := []struct {
		key    string
		domain Domain
		want   string
	}{
		{"kylian mbappe", DomainPlayer, "Kylian Mbappé"},
		{"lionel messi", DomainPlayer, "Lionel Messi"},
		{"neymar", DomainPlayer, "Neymar Jr"},
		{"sergio perez", DomainDriver, "Sergio Pérez"},
	}

	for _, tt := range tests {
		got := ResolveDisplayName("whatever hint", tt.key, tt.domain)
		if got != tt.want {
			t.Fatalf("ResolveDisplayName(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestResolveDisplayNameFallsBackToTitleCase(t *testing.T) {
	tests := []struct {
		hint string
		want string
	}{
		{"john doe", "John Doe"},
		{"JOHN DOE", "John Doe"},
		{"émile zola", "Émile Zola"},
	}

	for _, tt := range tests {
		got := ResolveDisplayName(tt.hint, "john doe", DomainPlayer)
		if got != tt.want {
			t.Fatalf("ResolveDisplayName(hint=%q) = %q, want %q", tt.hint, got, tt.want)
		}
	}
}

func TestOrderedSet(t *testing.T) {
	s := NewSet("b", "a", "b", "")

	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
	if got := s.Items(); got[0] != "b" || got[1] != "a" {
		t.Fatalf("Items = %v, want [b a]", got)
	}
	if !s.Contains("a") || s.Contains("c") {
		t.Fatal("Contains gave wrong membership")
	}

	s.Add("c")
	if got := s.Items(); len(got) != 3 || got[2] != "c" {
		t.Fatalf("Items after Add = %v", got)
	}
}
