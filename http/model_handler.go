package http

import (
	"net/http"

	"carbon-predictor/service"
)

type ModelHandler struct {
	info  *service.ModelInfoService
	model service.ModelDescriber
}

func NewModelHandler(info *service.ModelInfoService, model service.ModelDescriber) *ModelHandler {
	return &ModelHandler{info: info, model: model}
}

func (h *ModelHandler) Describe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, r, http.StatusOK, h.info.Describe(h.model))
}
