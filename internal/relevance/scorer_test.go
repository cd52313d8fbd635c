package relevance

import "testing"

func TestScoreBounds(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		keywords []string
	}{
		{"empty text", "", []string{"button"}},
		{"empty keywords", "add a button", nil},
		{"both empty", "", nil},
		{"full match", "button button button", []string{"button"}},
		{"no match", "completely unrelated words", []string{"database", "migration"}},
		{"synonym heavy", "meta og sitemap robots canonical", []string{"seo"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.text, tt.keywords, true)
			if got < 0 || got > 1 {
				t.Errorf("Score(%q, %v) = %f, out of [0,1]", tt.text, tt.keywords, got)
			}
		})
	}
}

func TestScoreEmptyInputsAreZero(t *testing.T) {
	if got := Score("", []string{"button"}, true); got != 0 {
		t.Errorf("Score with empty text = %f, want 0", got)
	}
	if got := Score("add a button", nil, true); got != 0 {
		t.Errorf("Score with empty keywords = %f, want 0", got)
	}
}

func TestScoreExactMatchBeatsPartial(t *testing.T) {
	full := Score("signup button with primary color", []string{"signup", "button", "color"}, false)
	partial := Score("signup form", []string{"signup", "button", "color"}, false)

	if full <= partial {
		t.Errorf("full match %f should exceed partial match %f", full, partial)
	}
	if full != 1 {
		t.Errorf("all keywords matching without expansion should score 1, got %f", full)
	}
}

func TestScoreSynonymExpansion(t *testing.T) {
	// "meta" and "sitemap" are synonyms of "seo" but the word itself is absent.
	without := Score("update the meta tags and sitemap", []string{"seo"}, false)
	with := Score("update the meta tags and sitemap", []string{"seo"}, true)

	if without != 0 {
		t.Errorf("expected 0 without expansion, got %f", without)
	}
	if with <= 0 {
		t.Errorf("expected positive score with expansion, got %f", with)
	}
}

func TestScoreDeterministic(t *testing.T) {
	text := "fix the login validation error on the signup form"
	keywords := []string{"login", "validation", "signup", "auth"}

	first := Score(text, keywords, true)
	for i := 0; i < 5; i++ {
		if got := Score(text, keywords, true); got != first {
			t.Fatalf("Score not deterministic: run %d got %f, want %f", i, got, first)
		}
	}

	// Keyword order must not matter.
	reordered := Score(text, []string{"auth", "signup", "validation", "login"}, true)
	if reordered != first {
		t.Errorf("Score order-dependent: %f vs %f", reordered, first)
	}
}

func TestExpandExcludesOriginals(t *testing.T) {
	expanded := Expand([]string{"seo", "meta"})
	for _, term := range expanded {
		if term == "seo" || term == "meta" {
			t.Errorf("Expand returned original keyword %q", term)
		}
	}

	found := false
	for _, term := range expanded {
		if term == "sitemap" {
			found = true
		}
	}
	if !found {
		t.Error("Expand should include 'sitemap' for keyword 'seo'")
	}
}

func TestExpandStems(t *testing.T) {
	expanded := Expand([]string{"valid"})

	want := map[string]bool{"validate": false, "validation": false}
	for _, term := range expanded {
		if _, ok := want[term]; ok {
			want[term] = true
		}
	}
	for term, seen := range want {
		if !seen {
			t.Errorf("Expand(valid) missing inflection %q", term)
		}
	}
}

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
		skip []string // tokens that must NOT appear
	}{
		{
			name: "basic sentence",
			text: "add a signup button with the primary color",
			want: []string{"signup", "button", "primary", "color"},
			skip: []string{"add", "the", "with", "a"},
		},
		{
			name: "known phrase",
			text: "support open graph tags for sharing",
			want: []string{"open graph", "tags", "sharing"},
		},
		{
			name: "punctuation split",
			text: "user-profile page, dark_mode toggle.",
			want: []string{"user", "profile", "page", "mode", "toggle"},
		},
		{
			name: "short tokens dropped",
			text: "an ui fix of db io",
			want: []string{"fix"},
			skip: []string{"ui", "db", "io", "an", "of"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractKeywords(tt.text)
			has := make(map[string]bool, len(got))
			for _, k := range got {
				has[k] = true
			}
			for _, w := range tt.want {
				if !has[w] {
					t.Errorf("ExtractKeywords(%q) missing %q (got %v)", tt.text, w, got)
				}
			}
			for _, s := range tt.skip {
				if has[s] {
					t.Errorf("ExtractKeywords(%q) should not contain %q", tt.text, s)
				}
			}
		})
	}
}

func TestExtractKeywordsDeduplicates(t *testing.T) {
	got := ExtractKeywords("button button BUTTON")
	count := 0
	for _, k := range got {
		if k == "button" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected 'button' once, got %d times in %v", count, got)
	}
}
