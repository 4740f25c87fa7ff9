package v1

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/incident_map_dashboard/internal/export"
	"github.com/shenikar/incident_map_dashboard/internal/models"
	"github.com/shenikar/incident_map_dashboard/internal/pdf"
	"github.com/sirupsen/logrus"
)

// bindOptionalJSON допускает пустое тело: фильтр без ограничений
func bindOptionalJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// @Summary Summarize incidents
// @Description Summary of the incidents matching the filter. Uses the LLM when configured, otherwise a statistical summary.
// @Tags Reports
// @Accept json
// @Produce json
// @Param filter body ReportFilterRequest false "Filter"
// @Success 200 {object} SummaryResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/summary [post]
func (h *Handler) reportSummary(c *gin.Context) {
	var input ReportFilterRequest
	log := h.logger.WithField("method", "reportSummary")

	if err := bindOptionalJSON(c, &input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	filter, err := RequestToIncidentFilter(input)
	if err != nil {
		log.WithError(err).Warn("Invalid filter")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.reportService.Summary(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("Failed to build summary")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{Summary: summary})
}

// @Summary Download PDF report
// @Description A4 PDF with the summary and the table of incidents matching the filter
// @Tags Reports
// @Accept json
// @Produce application/pdf
// @Param request body PDFReportRequest false "Filter and template"
// @Success 200 {file} file
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/pdf [post]
func (h *Handler) reportPDF(c *gin.Context) {
	var input PDFReportRequest
	log := h.logger.WithField("method", "reportPDF")

	if err := bindOptionalJSON(c, &input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	filter, err := RequestToIncidentFilter(input.ReportFilterRequest)
	if err != nil {
		log.WithError(err).Warn("Invalid filter")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, err := h.reportService.ReportPDF(c.Request.Context(), filter, input.Template)
	if err != nil {
		log.WithError(err).Error("Failed to generate pdf report")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	writePDF(c, doc)
}

// @Summary Download incident report as PDF
// @Description Normalizes the stored report HTML and prints it to an A4 PDF
// @Tags Incidents
// @Produce application/pdf
// @Param id path string true "Incident ID"
// @Success 200 {file} file
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 422 {object} map[string]string "Report has no printable content"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/incidents/{id}/pdf [get]
func (h *Handler) incidentPDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "incidentPDF").WithField("id", id)

	doc, err := h.reportService.ExportIncidentPDF(c.Request.Context(), id)
	if err != nil {
		h.writeExportError(c, log, err)
		return
	}

	writePDF(c, doc)
}

// @Summary View normalized incident report
// @Description The composed A4 HTML document used for PDF export
// @Tags Incidents
// @Produce html
// @Param id path string true "Incident ID"
// @Success 200 {string} string "HTML document"
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 422 {object} map[string]string "Report has no printable content"
// @Router /api/incidents/{id}/report [get]
func (h *Handler) incidentReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "incidentReport").WithField("id", id)

	html, err := h.reportService.IncidentReportHTML(c.Request.Context(), id)
	if err != nil {
		h.writeExportError(c, log, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (h *Handler) writeExportError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		log.WithError(err).Warn("Incident not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
	case errors.Is(err, export.ErrEmptyContent):
		log.WithError(err).Warn("Report has no content")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "El informe no contiene contenido para exportar"})
	case errors.Is(err, pdf.ErrZeroHeight):
		log.WithError(err).Warn("Rendered report is empty")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "El informe generado está vacío"})
	default:
		log.WithError(err).Error("Failed to export incident report")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func writePDF(c *gin.Context, doc *models.PDFDocument) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", doc.FileName))
	c.Data(http.StatusOK, "application/pdf", doc.Content)
}
