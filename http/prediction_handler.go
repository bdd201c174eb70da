package http

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"carbon-predictor/domain"
	"carbon-predictor/service"
)

type PredictionHandler struct {
	service *service.PredictionService
}

func NewPredictionHandler(service *service.PredictionService) *PredictionHandler {
	return &PredictionHandler{service: service}
}

// predictRequest uses pointers so a missing field is told apart from zero.
type predictRequest struct {
	MonthlyGroceryBill       *int `json:"monthly_grocery_bill"`
	VehicleMonthlyDistanceKm *int `json:"vehicle_monthly_distance_km"`
	TVPCDailyHours           *int `json:"tv_pc_daily_hours"`
	NewClothesMonthly        *int `json:"new_clothes_monthly"`
	InternetDailyHours       *int `json:"internet_daily_hours"`
}

func (p predictRequest) toInput() (domain.LifestyleInput, error) {
	fields := []struct {
		name string
		v    *int
	}{
		{"monthly_grocery_bill", p.MonthlyGroceryBill},
		{"vehicle_monthly_distance_km", p.VehicleMonthlyDistanceKm},
		{"tv_pc_daily_hours", p.TVPCDailyHours},
		{"new_clothes_monthly", p.NewClothesMonthly},
		{"internet_daily_hours", p.InternetDailyHours},
	}

	var missing []string
	for _, f := range fields {
		if f.v == nil {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return domain.LifestyleInput{}, fmt.Errorf("missing fields: %s", strings.Join(missing, ", "))
	}

	return domain.LifestyleInput{
		MonthlyGroceryBill:       *p.MonthlyGroceryBill,
		VehicleMonthlyDistanceKm: *p.VehicleMonthlyDistanceKm,
		TVPCDailyHours:           *p.TVPCDailyHours,
		NewClothesMonthly:        *p.NewClothesMonthly,
		InternetDailyHours:       *p.InternetDailyHours,
	}, nil
}

func (h *PredictionHandler) Predict(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type")); err != nil || mediaType != "application/json" {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var req predictRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		logger.Debug().Err(err).Msg("decoding prediction request")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	input, err := req.toInput()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.service.Assess(r.Context(), input)
	if err != nil {
		logger.Error().Err(err).Msg("assessing lifestyle input")
		http.Error(w, "prediction failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusOK, result)
}
