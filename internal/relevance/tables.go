package relevance

// Static lookup tables used for scoring and keyword extraction. These are
// loaded once and never mutated, so they are safe to share across invocations.

// synonyms maps a topic keyword to related terms that count as weak matches.
var synonyms = map[string][]string{
	"seo":         {"meta", "og", "sitemap", "robots", "canonical", "schema", "crawl"},
	"api":         {"endpoint", "route", "rest", "request", "response", "handler"},
	"auth":        {"login", "signin", "signup", "session", "token", "password", "oauth"},
	"ui":          {"component", "button", "form", "modal", "layout", "style", "css"},
	"database":    {"query", "table", "migration", "index", "schema", "sql"},
	"test":        {"spec", "mock", "assert", "coverage", "fixture"},
	"performance": {"cache", "lazy", "optimize", "bundle", "memo", "profil"},
	"deploy":      {"docker", "pipeline", "release", "build", "ci"},
	"color":       {"palette", "theme", "contrast", "hex", "hue"},
	"bug":         {"error", "crash", "broken", "regression", "stack"},
	"security":    {"xss", "csrf", "sanitize", "encrypt", "vulnerability"},
	"form":        {"input", "field", "submit", "validation", "label"},
}

// stems maps a root to its common inflections; any inflection present in the
// scored text counts toward the root keyword.
var stems = map[string][]string{
	"valid":    {"validate", "validation", "validator", "validity"},
	"auth":     {"authenticate", "authentication", "authorize", "authorization"},
	"test":     {"testing", "tested", "tests"},
	"deploy":   {"deployment", "deploying", "deployed"},
	"config":   {"configure", "configuration", "configured"},
	"optim":    {"optimize", "optimization", "optimized"},
	"migrat":   {"migrate", "migration", "migrating"},
	"render":   {"rendering", "rendered", "renderer"},
	"style":    {"styling", "styled", "styles"},
	"document": {"documentation", "documented", "documenting"},
}

// stopwords are filtered out of extracted keywords. Includes a handful of
// generic verbs that carry no topical signal.
var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "that": true,
	"this": true, "from": true, "into": true, "are": true, "was": true,
	"were": true, "will": true, "would": true, "could": true, "should": true,
	"has": true, "have": true, "had": true, "does": true, "did": true,
	"his": true, "her": true, "its": true, "our": true, "your": true,
	"their": true, "them": true, "they": true, "you": true, "she": true,
	"him": true, "who": true, "what": true, "when": true, "where": true,
	"which": true, "while": true, "been": true, "being": true, "can": true,
	"may": true, "might": true, "must": true, "shall": true, "not": true,
	"but": true, "all": true, "any": true, "some": true, "now": true,
	"new": true, "also": true, "then": true, "than": true, "too": true,
	"very": true, "just": true, "more": true, "most": true, "out": true,
	"please": true, "need": true, "want": true, "like": true, "use": true,
	"using": true, "add": true, "make": true, "get": true, "put": true,
	"set": true, "let": true,
}

// knownPhrases are multi-word terms kept verbatim when they appear as
// substrings of the lower-cased input.
var knownPhrases = []string{
	"open graph",
	"dark mode",
	"two factor",
	"rate limit",
	"unit test",
	"sign up",
	"sign in",
	"log in",
	"error handling",
	"color palette",
	"primary color",
	"pull request",
	"code review",
	"edge case",
	"drop down",
	"lazy loading",
	"single sign on",
}
