package models

// CanonicalGenre is a genre spelled in CanonicalLanguage. The zero value means "no genre".
type CanonicalGenre string

const (
	GenreComedy         CanonicalGenre = "Comédia"
	GenreHorror         CanonicalGenre = "Terror"
	GenreScienceFiction CanonicalGenre = "Ficção Científica"
	GenreAction         CanonicalGenre = "Ação"
	GenreThriller       CanonicalGenre = "Thriller"
	GenreMystery        CanonicalGenre = "Mistério"
	GenreDocumentary    CanonicalGenre = "Documentário"
)

// Genres returns every canonical genre in menu order.
func Genres() []CanonicalGenre {
	return []CanonicalGenre{
		GenreComedy,
		GenreHorror,
		GenreScienceFiction,
		GenreAction,
		GenreThriller,
		GenreMystery,
		GenreDocumentary,
	}
}

func (g CanonicalGenre) Empty() bool {
	return g == ""
}

type Recommendation struct {
	Genre  CanonicalGenre
	Titles []string
}

func (r Recommendation) Empty() bool {
	return len(r.Titles) == 0
}
