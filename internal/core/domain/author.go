package domain

import (
	"fmt"
	"slices"
)

type AuthorRole string

const (
	RoleAuthor       AuthorRole = "author"
	RoleContributor  AuthorRole = "contributor"
	RolePhotographer AuthorRole = "photographer"
	RoleEditor       AuthorRole = "editor"
)

// defaultAuthorOrder applies to attributions without an explicit order.
const defaultAuthorOrder = 1

type AuthorSummary struct {
	ID    string     `json:"_id,omitempty"`
	Name  string     `json:"name,omitempty"`
	Slug  *Slug      `json:"slug,omitempty"`
	Bio   string     `json:"bio,omitempty"`
	Image *ImageFile `json:"image,omitempty"`
}

type ArticleAuthor struct {
	Author *AuthorSummary `json:"author,omitempty"`
	Role   AuthorRole     `json:"role,omitempty"`
	Order  int            `json:"order,omitempty"`
}

func (a ArticleAuthor) Name() string {
	if a.Author == nil {
		return ""
	}
	return a.Author.Name
}

func (a ArticleAuthor) SortKey() int {
	if a.Order <= 0 {
		return defaultAuthorOrder
	}
	return a.Order
}

// SortAuthors returns a copy ordered by SortKey. Equal keys keep their input order.
func SortAuthors(authors []ArticleAuthor) []ArticleAuthor {
	sorted := slices.Clone(authors)
	slices.SortStableFunc(sorted, func(a, b ArticleAuthor) int {
		return a.SortKey() - b.SortKey()
	})
	return sorted
}

func FormatByline(authors []ArticleAuthor) string {
	names := make([]string, 0, len(authors))
	for _, a := range SortAuthors(authors) {
		if n := a.Name(); n != "" {
			names = append(names, n)
		}
	}

	switch len(names) {
	case 0:
		return ""
	case 1:
		return "By " + names[0]
	case 2:
		return fmt.Sprintf("By %s and %s", names[0], names[1])
	default:
		return fmt.Sprintf("By %s and %d others", names[0], len(names)-1)
	}
}

func PrimaryAuthor(authors []ArticleAuthor) *ArticleAuthor {
	if len(authors) == 0 {
		return nil
	}
	first := SortAuthors(authors)[0]
	return &first
}

func AuthorsByRole(authors []ArticleAuthor, role AuthorRole) []ArticleAuthor {
	out := make([]ArticleAuthor, 0, len(authors))
	for _, a := range authors {
		if a.Role == role {
			out = append(out, a)
		}
	}
	return out
}
