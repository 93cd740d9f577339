package handler

import (
	"net/http"

	"github.com/godofwar007/Store-income-control/internal/service"
	"github.com/go-chi/chi/v5"
)

type ShopHandler struct {
	Shops *service.ShopDirectory
}

func (h ShopHandler) RegisterRoutes(r chi.Router) {
	r.Get("/shops", h.list)
}

func (h ShopHandler) list(w http.ResponseWriter, r *http.Request) {
	shops := h.Shops.List()
	resp := make([]map[string]any, 0, len(shops))
	for _, s := range shops {
		resp = append(resp, map[string]any{
			"id":       s.ID,
			"name":     s.Name,
			"location": s.Location,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
