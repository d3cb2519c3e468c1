package dto

import "strings"

type PostCreateRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	ImageURL   string `json:"imageUrl"`
	CategoryID int64  `json:"categoryId"`
}

func (r PostCreateRequest) Validate() map[string]string {
	problems := map[string]string{}
	if strings.TrimSpace(r.Title) == "" {
		problems["title"] = "title is required"
	} else if len(r.Title) > 200 {
		problems["title"] = "title must be at most 200 characters"
	}
	if strings.TrimSpace(r.Content) == "" {
		problems["content"] = "content is required"
	}
	if len(r.ImageURL) > 500 {
		problems["imageUrl"] = "image url must be at most 500 characters"
	}
	if r.CategoryID <= 0 {
		problems["categoryId"] = "category id is required"
	}
	return problems
}

// PostUpdateRequest carries the same fields as creation; updates are full
// replacements, not patches.
type PostUpdateRequest = PostCreateRequest
