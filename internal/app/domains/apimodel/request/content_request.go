package request

import "time"

// ContentRequest create or replace a news post, roster member or schedule match (DTO)
type ContentRequest struct {
	Slug       string                 `json:"slug" binding:"required" example:"spring-split-finals"`
	Title      string                 `json:"title" binding:"required" example:"Spring Split Finals"`
	Published  bool                   `json:"published"`
	StartsAt   *time.Time             `json:"starts_at,omitempty"`
	Attributes map[string]interface{} `json:"attributes"`
}
