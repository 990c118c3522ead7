// Package catalog resolves genre labels to canonical genres and canonical
// genres to their fixed movie lists.
package catalog

import (
	"fmt"
	"strings"

	"github.com/DanRulev/moviebot.git/internal/models"
	"golang.org/x/text/unicode/norm"
)

type GenreSource interface {
	Genres(lang models.Language) []string
}

var labelMappings = map[models.Language]map[string]models.CanonicalGenre{
	models.LangEN: {
		"Comedy":          models.GenreComedy,
		"Horror":          models.GenreHorror,
		"Science Fiction": models.GenreScienceFiction,
		"Action":          models.GenreAction,
		"Thriller":        models.GenreThriller,
		"Mystery":         models.GenreMystery,
		"Documentary":     models.GenreDocumentary,
	},
	models.LangES: {
		"Comedia":         models.GenreComedy,
		"Terror":          models.GenreHorror,
		"Ciencia Ficción": models.GenreScienceFiction,
		"Acción":          models.GenreAction,
		"Suspense":        models.GenreThriller,
		"Misterio":        models.GenreMystery,
		"Documental":      models.GenreDocumentary,
	},
}

var movies = map[models.CanonicalGenre][]string{
	models.GenreComedy:         {"Superbad", "The Hangover", "Jumanji"},
	models.GenreHorror:         {"The Conjuring", "Insidious", "Get Out"},
	models.GenreScienceFiction: {"Interstellar", "Inception", "Blade Runner"},
	models.GenreAction:         {"Fast & Furious", "John Wick", "Mad Max"},
	models.GenreThriller:       {"Gone Girl", "Prisoners", "The Girl with the Dragon Tattoo"},
	models.GenreMystery:        {"Knives Out", "Sherlock Holmes", "The Prestige"},
	models.GenreDocumentary:    {"The Social Dilemma", "Planet Earth", "13th"},
}

// Catalog is immutable after New.
type Catalog struct {
	mappings map[models.Language]map[string]models.CanonicalGenre
	canon    map[string]models.CanonicalGenre
	movies   map[models.CanonicalGenre][]string
}

// New builds the catalog and checks it against the genre menus of src:
// every offered label must resolve to a genre with at least one title.
func New(src GenreSource) (*Catalog, error) {
	return newCatalog(src, labelMappings, movies)
}

func newCatalog(src GenreSource, mappings map[models.Language]map[string]models.CanonicalGenre, titles map[models.CanonicalGenre][]string) (*Catalog, error) {
	c := &Catalog{
		mappings: make(map[models.Language]map[string]models.CanonicalGenre, len(mappings)),
		canon:    make(map[string]models.CanonicalGenre, len(titles)),
		movies:   titles,
	}

	for genre, list := range titles {
		if len(list) == 0 {
			return nil, fmt.Errorf("catalog: genre %q has no titles", genre)
		}
		c.canon[normalizeLabel(string(genre))] = genre
	}

	for lang, table := range mappings {
		normalized := make(map[string]models.CanonicalGenre, len(table))
		for label, genre := range table {
			normalized[normalizeLabel(label)] = genre
		}
		c.mappings[lang] = normalized
	}

	for _, lang := range models.Languages() {
		if lang != models.CanonicalLanguage {
			if _, ok := c.mappings[lang]; !ok {
				return nil, fmt.Errorf("catalog: no genre mapping for %q", lang)
			}
		}
		for _, label := range src.Genres(lang) {
			genre := c.Normalize(lang, label)
			if genre.Empty() {
				return nil, fmt.Errorf("catalog: label %q (%s) has no canonical genre", label, lang)
			}
			if len(c.movies[genre]) == 0 {
				return nil, fmt.Errorf("catalog: label %q (%s) resolves to %q without titles", label, lang, genre)
			}
		}
	}

	return c, nil
}

// Normalize maps a label shown in lang to its canonical genre. Unknown labels
// and languages yield the empty genre.
func (c *Catalog) Normalize(lang models.Language, label string) models.CanonicalGenre {
	key := normalizeLabel(label)
	if lang == models.CanonicalLanguage {
		return c.canon[key]
	}
	return c.mappings[lang][key]
}

// Recommend returns the titles for genre in their fixed order, or an empty
// slice for a genre without an entry.
func (c *Catalog) Recommend(genre models.CanonicalGenre) []string {
	list := c.movies[genre]
	out := make([]string, len(list))
	copy(out, list)
	return out
}

func normalizeLabel(label string) string {
	return norm.NFC.String(strings.TrimSpace(label))
}
