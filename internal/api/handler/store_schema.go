package handler

import (
	"github.com/storerating/platform/internal/core/domain"
	"github.com/storerating/platform/internal/core/ports"
)

// --- Request / Response types ---

// storeListQuery captures the optional filter and sort parameters of store
// listings. Sort fields outside the repository whitelist fall back to name.
type storeListQuery struct {
	Name    string `query:"name"`
	Email   string `query:"email"`
	Address string `query:"address"`
	SortBy  string `query:"sort_by"`
	Order   string `query:"order"`
}

func (q storeListQuery) filter() ports.StoreFilter {
	return ports.StoreFilter{
		Name:     q.Name,
		Email:    q.Email,
		Address:  q.Address,
		SortBy:   q.SortBy,
		SortDesc: q.Order == "desc",
	}
}

type listStoresResponse struct {
	Data []ports.StoreListing `json:"data"`
}

type submitRatingRequest struct {
	Score int `json:"score" validate:"required,gte=1,lte=5"`
}

type submitRatingResponse struct {
	Rating  *domain.Rating `json:"rating"`
	Created bool           `json:"created"`
}
