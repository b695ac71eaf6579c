package domain

import (
	"strings"
	"time"
)

type Post struct {
	ID       int64     `db:"id"`
	Title    string    `db:"title"`
	Subtitle string    `db:"subtitle"`
	Body     string    `db:"body"`
	Author   string    `db:"author"` // denormalized user name, no foreign key
	Date     time.Time `db:"date"`
	ImgURL   string    `db:"img_url"`
}

func NewPost(title, subtitle, body, author, imgURL string) *Post {
	return &Post{
		Title:    title,
		Subtitle: subtitle,
		Body:     body,
		Author:   author,
		Date:     time.Now(),
		ImgURL:   imgURL,
	}
}

// Paragraphs splits the body on newlines for paragraph rendering.
func (p *Post) Paragraphs() []string {
	return strings.Split(p.Body, "\n")
}
