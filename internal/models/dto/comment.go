package dto

import "strings"

type CommentCreateRequest struct {
	Content string `json:"content"`
}

func (r CommentCreateRequest) Validate() map[string]string {
	problems := map[string]string{}
	if strings.TrimSpace(r.Content) == "" {
		problems["content"] = "content is required"
	}
	return problems
}
