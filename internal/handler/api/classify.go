package api

import (
	"net/http"
	"time"

	"ExoScan/internal/classifier"
	models "ExoScan/internal/domain/models"
	svcmetrics "ExoScan/internal/service/metrics"
	xhttp "ExoScan/pkg/http"
	xlogger "ExoScan/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ClassifyHandler serves the classification endpoints over Echo.
type ClassifyHandler struct {
	logger       *xlogger.Logger
	clf          *classifier.Classifier
	modelVersion string
}

func NewClassifyHandler(logger *xlogger.Logger, clf *classifier.Classifier, modelVersion string) *ClassifyHandler {
	svcmetrics.Register()
	return &ClassifyHandler{logger: logger, clf: clf, modelVersion: modelVersion}
}

func (h *ClassifyHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.Health)
	e.POST("/predict", h.Predict)

	g := e.Group("/api")
	g.GET("/analyze/health", h.Health)
	g.POST("/analyze", h.Analyze)
}

// Health is the liveness probe. No side effects.
func (h *ClassifyHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, models.HealthResponse{Status: "ok"})
}

// Predict classifies a single observation in the canonical short-name
// dialect and returns a bare {"label": ...} body.
func (h *ClassifyHandler) Predict(c echo.Context) error {
	req := &models.PredictRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		svcmetrics.RejectedObservations.WithLabelValues("predict").Inc()
		return xhttp.BadRequestResponse(c, verr)
	}

	start := time.Now()
	label := h.clf.Classify(req.Observation())
	svcmetrics.ClassifyDuration.WithLabelValues("predict").Observe(time.Since(start).Seconds())
	svcmetrics.PredictionsTotal.WithLabelValues(string(label)).Inc()

	return c.JSON(http.StatusOK, models.PredictResponse{Label: label})
}

// Analyze classifies a batch in the frontend's long-name dialect. Items are
// validated individually: a bad item yields a per-item error entry at its
// input index and never aborts the rest of the batch.
func (h *ClassifyHandler) Analyze(c echo.Context) error {
	start := time.Now()

	req := &models.AnalyzeRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		svcmetrics.RejectedObservations.WithLabelValues("analyze").Inc()
		return xhttp.BadRequestResponse(c, verr)
	}

	items := make([]classifier.BatchItem, len(req.Data))
	for i := range req.Data {
		item := &req.Data[i]
		items[i] = classifier.BatchItem{Name: item.Name}
		if verrs := xhttp.ValidateValue(item); len(verrs) > 0 {
			items[i].Err = xhttp.JoinValidationErrors(verrs)
			continue
		}
		items[i].Obs = item.Observation()
	}

	results := h.clf.ClassifyBatch(items)

	preds := make([]models.AnalyzePrediction, 0, len(results))
	failed := 0
	for _, r := range results {
		preds = append(preds, models.AnalyzePrediction{Name: r.Name, Label: r.Label, Error: r.Err})
		if r.Err != "" {
			failed++
			continue
		}
		svcmetrics.PredictionsTotal.WithLabelValues(string(r.Label)).Inc()
	}

	svcmetrics.BatchSize.Observe(float64(len(results)))
	if failed > 0 {
		svcmetrics.RejectedObservations.WithLabelValues("analyze").Add(float64(failed))
		h.logger.Warn("analyze batch had invalid items",
			xlogger.Int("failed", failed),
			xlogger.Int("total", len(results)),
		)
	}

	elapsed := time.Since(start)
	svcmetrics.ClassifyDuration.WithLabelValues("analyze").Observe(elapsed.Seconds())

	version := h.modelVersion
	if req.ModelName != "" {
		version = req.ModelName
	}

	return c.JSON(http.StatusOK, models.AnalyzeResponse{
		Success:          failed == 0,
		Predictions:      preds,
		Insights:         []string{},
		Recommendations:  []string{},
		Anomalies:        []map[string]interface{}{},
		ModelVersion:     version,
		Timestamp:        float64(time.Now().UnixNano()) / float64(time.Second),
		ProcessingTimeMS: float64(elapsed.Microseconds()) / 1000.0,
	})
}
