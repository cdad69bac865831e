package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shopdata/internal/application/report"
	"shopdata/internal/domain/repository"
)

type ReportRunner interface {
	List() []report.Definition
	Run(ctx context.Context, name string) (*report.Table, error)
}

type Verifier interface {
	Verify(ctx context.Context) (*repository.Verification, error)
}

type ReportHandler struct {
	reports  ReportRunner
	verifier Verifier
}

func NewReportHandler(reports ReportRunner, verifier Verifier) *ReportHandler {
	return &ReportHandler{reports: reports, verifier: verifier}
}

func (h *ReportHandler) ListReports(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"reports": h.reports.List()})
}

func (h *ReportHandler) GetReport(c *gin.Context) {
	name := c.Param("name")
	table, err := h.reports.Run(c.Request.Context(), name)
	if errors.Is(err, report.ErrUnknownReport) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "report failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":    table.Name,
		"title":   table.Title,
		"columns": table.Columns,
		"rows":    table.Records(),
		"total":   len(table.Rows),
	})
}

func (h *ReportHandler) Verify(c *gin.Context) {
	v, err := h.verifier.Verify(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "verification failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ok":           v.OK(),
		"verification": v,
	})
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
