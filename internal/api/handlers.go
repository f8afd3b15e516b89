package api

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"divarlens/server/internal/analysis"
	"divarlens/server/internal/csvio"
	"divarlens/server/internal/models"
)

const maxSampleCount = 10000

// RecordSource produces synthetic records when a request supplies none.
type RecordSource interface {
	Records(count int, now time.Time) []models.ListingRecord
	TimeSeries(now time.Time) []models.AggregatedBucket
}

// Handler wires the analysis pipeline to the HTTP surface. The dataset, if
// one was loaded at startup, is read-only and therefore safe across gin's
// per-request goroutines.
type Handler struct {
	analyzer   *analysis.Analyzer
	source     RecordSource
	dataset    []models.ListingRecord
	sampleSize int
	logger     *logrus.Logger
}

// AnalyzeRequest is the analyze endpoint payload. Dates accept RFC 3339 or
// bare calendar dates; an empty or "all" district means no district filter.
type AnalyzeRequest struct {
	Data     []models.ListingRecord `json:"data"`
	FromDate string                 `json:"fromDate"`
	ToDate   string                 `json:"toDate"`
	District string                 `json:"district"`
}

// NewHandler creates the API handler.
func NewHandler(analyzer *analysis.Analyzer, source RecordSource, dataset []models.ListingRecord, sampleSize int, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	return &Handler{
		analyzer:   analyzer,
		source:     source,
		dataset:    dataset,
		sampleSize: sampleSize,
		logger:     logger,
	}
}

// GetSampleData generates and returns sample listing records.
func (h *Handler) GetSampleData(c *gin.Context) {
	countStr := c.DefaultQuery("count", strconv.Itoa(h.sampleSize))
	count, err := strconv.Atoi(countStr)
	if err != nil || count <= 0 {
		count = h.sampleSize
	}
	if count > maxSampleCount {
		count = maxSampleCount
	}

	data := h.source.Records(count, time.Now())
	h.logger.WithField("count", len(data)).Info("Generated sample records")
	c.JSON(http.StatusOK, data)
}

// Analyze runs the filter/aggregate/metrics/insights pipeline over the
// supplied records. Substituting a synthetic set when the request carries no
// data is deliberately a decision of this layer, not the analytic core.
func (h *Handler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Failed to parse analyze request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request parameters"})
		return
	}

	filter, err := buildFilter(req)
	if err != nil {
		h.logger.WithError(err).Error("Failed to parse analyze date range")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	records := req.Data
	if len(records) == 0 {
		if len(h.dataset) > 0 {
			records = h.dataset
		} else {
			records = h.source.Records(h.sampleSize, time.Now())
		}
	}

	result := h.analyzer.Analyze(records, filter, time.Now())
	h.logger.WithFields(logrus.Fields{
		"records":  len(records),
		"filtered": result.FilteredCount,
		"insights": len(result.Insights),
	}).Info("Analysis completed")

	c.JSON(http.StatusOK, result)
}

// ExportCSV encodes the posted records through the CSV collaborator and
// returns them as an attachment.
func (h *Handler) ExportCSV(c *gin.Context) {
	var records []models.ListingRecord
	if err := c.ShouldBindJSON(&records); err != nil {
		h.logger.WithError(err).Error("Failed to parse export request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request parameters"})
		return
	}

	payload, err := csvio.Encode(records)
	if err != nil {
		h.logger.WithError(err).Error("Failed to encode CSV")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode CSV"})
		return
	}

	filename := fmt.Sprintf("divar_export_%s.csv", time.Now().Format("20060102_1504"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", payload)
}

// ExportGeoJSON aggregates the posted records and returns the buckets as a
// GeoJSON feature collection for the map layer.
func (h *Handler) ExportGeoJSON(c *gin.Context) {
	var records []models.ListingRecord
	if err := c.ShouldBindJSON(&records); err != nil {
		h.logger.WithError(err).Error("Failed to parse geojson request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request parameters"})
		return
	}

	buckets := h.analyzer.Aggregate(records)
	c.JSON(http.StatusOK, bucketFeatureCollection(buckets))
}

// GetTrends returns the generated time series together with its growth
// summary.
func (h *Handler) GetTrends(c *gin.Context) {
	samples := h.source.TimeSeries(time.Now())
	summary := analysis.AnalyzeTrends(samples)

	c.JSON(http.StatusOK, gin.H{
		"samples": samples,
		"summary": summary,
	})
}

// GetReport renders the plain-text market report from the loaded dataset
// (or a generated set) plus a generated time series.
func (h *Handler) GetReport(c *gin.Context) {
	now := time.Now()

	records := h.dataset
	if len(records) == 0 {
		records = h.source.Records(h.sampleSize, now)
	}
	samples := h.source.TimeSeries(now)

	c.String(http.StatusOK, analysis.RenderReport(records, samples, now))
}

func buildFilter(req AnalyzeRequest) (analysis.Filter, error) {
	filter := analysis.Filter{District: req.District}

	from, err := parseRequestDate(req.FromDate)
	if err != nil {
		return filter, fmt.Errorf("invalid fromDate %q", req.FromDate)
	}
	to, err := parseRequestDate(req.ToDate)
	if err != nil {
		return filter, fmt.Errorf("invalid toDate %q", req.ToDate)
	}

	filter.From = from
	filter.To = to
	return filter, nil
}

func parseRequestDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unrecognized date %q", value)
}
