package http

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"carbon-predictor/domain"
	"carbon-predictor/format"
	"carbon-predictor/service"
)

//go:embed templates/index.html
var indexHTML string

var indexTemplate = template.Must(template.New("index").Funcs(template.FuncMap{
	"units":    format.Units,
	"number":   format.Number,
	"percent":  format.SignedPercent,
	"ratio":    format.Ratio,
	"gaugeMax": gaugeMax,
}).Parse(indexHTML))

func gaugeMax() float64 { return service.GaugeMax }

type formView struct {
	Input  domain.LifestyleInput
	Result *domain.Assessment
	Error  string
	Model  domain.ModelInfo
	Limits formLimits
}

type formLimits struct {
	GroceryBill, VehicleDistance, DailyHours, NewClothes int
}

var limits = formLimits{
	GroceryBill:     service.MaxGroceryBill,
	VehicleDistance: service.MaxVehicleDistance,
	DailyHours:      service.MaxDailyHours,
	NewClothes:      service.MaxNewClothes,
}

// FormHandler serves the browser form and renders results on submit. The
// model info is read once at startup and shown under the form.
type FormHandler struct {
	service *service.PredictionService
	model   domain.ModelInfo
}

func NewFormHandler(service *service.PredictionService, model domain.ModelInfo) *FormHandler {
	return &FormHandler{service: service, model: model}
}

func (h *FormHandler) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.render(w, r, http.StatusOK, formView{Input: domain.DefaultLifestyleInput()})
	case http.MethodPost:
		h.submit(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *FormHandler) submit(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		h.render(w, r, http.StatusBadRequest, formView{
			Input: domain.DefaultLifestyleInput(),
			Error: "could not read the submitted form",
		})
		return
	}

	input, err := parseForm(r)
	if err != nil {
		h.render(w, r, http.StatusBadRequest, formView{Input: input, Error: err.Error()})
		return
	}

	result, err := h.service.Assess(r.Context(), input)
	if err != nil {
		logger.Error().Err(err).Msg("assessing form input")
		h.render(w, r, http.StatusInternalServerError, formView{
			Input: input,
			Error: "the prediction could not be computed",
		})
		return
	}

	h.render(w, r, http.StatusOK, formView{Input: result.Input, Result: &result})
}

// parseForm starts from the defaults so a bad field keeps the rest of the form.
func parseForm(r *http.Request) (domain.LifestyleInput, error) {
	in := domain.DefaultLifestyleInput()

	fields := []struct {
		name string
		dst  *int
	}{
		{"monthly_grocery_bill", &in.MonthlyGroceryBill},
		{"vehicle_monthly_distance_km", &in.VehicleMonthlyDistanceKm},
		{"tv_pc_daily_hours", &in.TVPCDailyHours},
		{"new_clothes_monthly", &in.NewClothesMonthly},
		{"internet_daily_hours", &in.InternetDailyHours},
	}

	var bad []string
	for _, f := range fields {
		raw := strings.TrimSpace(r.PostFormValue(f.name))
		v, err := strconv.Atoi(raw)
		if err != nil {
			bad = append(bad, f.name)
			continue
		}
		*f.dst = v
	}
	if len(bad) > 0 {
		return in, fmt.Errorf("whole numbers required for: %s", strings.Join(bad, ", "))
	}
	return in, nil
}

func (h *FormHandler) render(w http.ResponseWriter, r *http.Request, status int, view formView) {
	view.Model = h.model
	view.Limits = limits

	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, view); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("rendering form")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
