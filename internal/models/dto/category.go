package dto

import "strings"

type CategoryCreateRequest struct {
	Name string `json:"name"`
}

func (r CategoryCreateRequest) Validate() map[string]string {
	problems := map[string]string{}
	if strings.TrimSpace(r.Name) == "" {
		problems["name"] = "name is required"
	} else if len(r.Name) > 80 {
		problems["name"] = "name must be at most 80 characters"
	}
	return problems
}

type CategoryUpdateRequest = CategoryCreateRequest
