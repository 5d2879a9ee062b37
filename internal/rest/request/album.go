package request

import "github.com/soundnest/soundnest/domain"

type Album struct {
	Title  string `json:"title" binding:"required"`
	Artist string `json:"artist" binding:"required"`
	Year   int    `json:"year" binding:"omitempty,release_year"`
}

// ToDomain: Request -> Domain
func (r *Album) ToDomain() domain.Album {
	return domain.Album{
		Title:  r.Title,
		Artist: r.Artist,
		Year:   r.Year,
	}
}
