package catalog

import (
	"fmt"
	"slices"
	"sort"
)

// catalog holds the static quiz and article sets with precomputed indices.
type catalog struct {
	quizzes       []QuizDefinition
	articles      []Article
	names         []string
	byName        map[string]*QuizDefinition
	byPrinciple   map[Principle][]QuizDefinition
	articleBySlug map[string]*Article
}

// c is the package-level catalog singleton, set by init() in seed.go.
var c *catalog

// buildCatalog constructs the catalog from static definitions.
// Quiz enumeration order is deterministic: sorted by name.
func buildCatalog(quizzes []QuizDefinition, articles []Article) *catalog {
	ct := &catalog{
		quizzes:       slices.Clone(quizzes),
		articles:      slices.Clone(articles),
		byName:        make(map[string]*QuizDefinition, len(quizzes)),
		byPrinciple:   make(map[Principle][]QuizDefinition),
		articleBySlug: make(map[string]*Article, len(articles)),
	}

	sort.Slice(ct.quizzes, func(i, j int) bool {
		return ct.quizzes[i].Name < ct.quizzes[j].Name
	})

	for i := range ct.quizzes {
		q := &ct.quizzes[i]
		ct.byName[q.Name] = q
		ct.names = append(ct.names, q.Name)
		ct.byPrinciple[q.Principle] = append(ct.byPrinciple[q.Principle], *q)
	}

	for i := range ct.articles {
		ct.articleBySlug[ct.articles[i].Slug] = &ct.articles[i]
	}

	return ct
}

// Names returns all quiz names in deterministic (sorted) order.
func Names() []string {
	return slices.Clone(c.names)
}

// Get returns a quiz definition by name, or an error if not found.
func Get(name string) (QuizDefinition, error) {
	q, ok := c.byName[name]
	if !ok {
		return QuizDefinition{}, fmt.Errorf("quiz not found: %q", name)
	}
	return *q, nil
}

// Has reports whether a quiz with the given name exists in the catalog.
func Has(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// All returns all quiz definitions in name order.
func All() []QuizDefinition {
	return slices.Clone(c.quizzes)
}

// ByPrinciple returns all quizzes for a principle, in name order.
func ByPrinciple(p Principle) []QuizDefinition {
	return slices.Clone(c.byPrinciple[p])
}

// Articles returns all articles in declared reading order.
func Articles() []Article {
	return slices.Clone(c.articles)
}

// ArticleBySlug returns an article by slug, or an error if not found.
func ArticleBySlug(slug string) (Article, error) {
	a, ok := c.articleBySlug[slug]
	if !ok {
		return Article{}, fmt.Errorf("article not found: %q", slug)
	}
	return *a, nil
}

// ArticlesByPrinciple returns the articles covering a principle, in declared order.
func ArticlesByPrinciple(p Principle) []Article {
	var result []Article
	for _, a := range c.articles {
		if a.Principle == p {
			result = append(result, a)
		}
	}
	return result
}
