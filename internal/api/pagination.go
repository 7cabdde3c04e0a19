package api

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

type paginationMeta struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

type pageRequest struct {
	Page    int
	PerPage int
	All     bool
}

func parsePageRequest(c *fiber.Ctx) pageRequest {
	request := pageRequest{
		Page:    parsePositiveInt(c.Query("page"), 1),
		PerPage: parsePositiveInt(c.Query("per_page"), defaultPerPage),
		All:     strings.EqualFold(c.Query("all"), "true"),
	}
	if request.PerPage > maxPerPage {
		request.PerPage = maxPerPage
	}
	return request
}

func (request pageRequest) offset() int {
	return (request.Page - 1) * request.PerPage
}

func (request pageRequest) metadata(total int64) paginationMeta {
	totalPages := int((total + int64(request.PerPage) - 1) / int64(request.PerPage))
	return paginationMeta{
		Page:       request.Page,
		PerPage:    request.PerPage,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    request.Page < totalPages,
		HasPrev:    request.Page > 1,
	}
}

func parsePositiveInt(raw string, fallback int) int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
