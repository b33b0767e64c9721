package catalog

import "testing"

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "lowercases", input: "PARAFUSO M8", want: "parafuso m8"},
		{name: "strips punctuation", input: "arroz, tipo-1 (5kg)", want: "arroz tipo1 5kg"},
		{name: "strips accents without transliteration", input: "PREÇO AÇÚCAR", want: "preo acar"},
		{name: "collapses whitespace", input: "  feijão   preto \t 1kg ", want: "feijo preto 1kg"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Normalize(tc.input); got != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"", "PARAFUSO M8", "Açúcar Cristal 5kg!", "  a   b  c  ", "123,45"}
	for _, input := range inputs {
		once := Normalize(input)
		if twice := Normalize(once); twice != once {
			t.Fatalf("Normalize not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestTokenize(t *testing.T) {
	t.Parallel()

	tokens := Tokenize("Parafuso M8 parafuso M8 INOX")
	want := []string{"parafuso", "m8", "inox"}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d (%v)", len(want), len(tokens), tokens)
	}
	for _, token := range want {
		if _, ok := tokens[token]; !ok {
			t.Fatalf("missing token %q in %v", token, tokens)
		}
	}
}

func TestTokenizeEmpty(t *testing.T) {
	t.Parallel()

	if tokens := Tokenize("  !!! "); len(tokens) != 0 {
		t.Fatalf("expected no tokens, got %v", tokens)
	}
}
