package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Bandicoot/internal/dto"
	"github.com/lshigami/Bandicoot/internal/jsonld"
	"github.com/lshigami/Bandicoot/internal/model"
	"github.com/lshigami/Bandicoot/internal/service"
	"github.com/rs/zerolog/log"
)

type Controller struct {
	benchmarkSvc  service.BenchmarkService
	checkpointSvc service.CheckpointService
	templateSvc   service.TemplateService
}

func NewController(bSvc service.BenchmarkService, cSvc service.CheckpointService, tSvc service.TemplateService) *Controller {
	return &Controller{
		benchmarkSvc:  bSvc,
		checkpointSvc: cSvc,
		templateSvc:   tSvc,
	}
}

func (ctrl *Controller) RegisterRoutes(router *gin.Engine) {
	apiV1 := router.Group("/api/v1")
	{
		benchmarks := apiV1.Group("/benchmarks")
		benchmarks.GET("", ctrl.ListBenchmarksHandler)
		benchmarks.GET("/:name", ctrl.LoadBenchmarkHandler)
		benchmarks.PUT("/:name", ctrl.SaveBenchmarkHandler)
		benchmarks.DELETE("/:name", ctrl.DeleteBenchmarkHandler)
		benchmarks.POST("/:name/resolve", ctrl.ResolveDuplicatesHandler)

		checkpoint := apiV1.Group("/checkpoint")
		checkpoint.POST("/export", ctrl.ExportCheckpointHandler)
		checkpoint.POST("/import", ctrl.ImportCheckpointHandler)

		apiV1.POST("/templates/generate", ctrl.GenerateTemplateHandler)
	}
}

// ListBenchmarksHandler godoc
// @Summary List all persisted benchmarks
// @Description Get summary information (name, question counts, dates) for every stored benchmark.
// @Tags Benchmarks
// @Produce json
// @Success 200 {array} dto.BenchmarkInfo
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /benchmarks [get]
func (ctrl *Controller) ListBenchmarksHandler(ctx *gin.Context) {
	infos, err := ctrl.benchmarkSvc.ListBenchmarks()
	if err != nil {
		log.Error().Err(err).Msg("ListBenchmarks: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to list benchmarks", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, infos)
}

// LoadBenchmarkHandler godoc
// @Summary Load a benchmark's full content
// @Description Get dataset metadata, the complete question map, and the global rubric of one benchmark.
// @Tags Benchmarks
// @Produce json
// @Param name path string true "Benchmark name"
// @Success 200 {object} dto.BenchmarkContent
// @Failure 404 {object} dto.ErrorResponse "Benchmark not found"
// @Router /benchmarks/{name} [get]
func (ctrl *Controller) LoadBenchmarkHandler(ctx *gin.Context) {
	name := ctx.Param("name")
	content, err := ctrl.benchmarkSvc.LoadBenchmark(name)
	if err != nil {
		log.Warn().Err(err).Str("benchmark", name).Msg("LoadBenchmark: not found or service error")
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, content)
}

// SaveBenchmarkHandler godoc
// @Summary Save a benchmark
// @Description Persist a question set under the given name. With detect_duplicates=true and an existing benchmark of that name, questions present in both sets block the save and are returned for resolution (409).
// @Tags Benchmarks
// @Accept json
// @Produce json
// @Param name path string true "Benchmark name"
// @Param detect_duplicates query bool false "Withhold the save and report duplicates instead of overwriting"
// @Param content body dto.BenchmarkContent true "Dataset metadata, question map, and optional global rubric"
// @Success 200 {object} dto.SaveBenchmarkResponse "Saved"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 409 {object} dto.SaveBenchmarkResponse "Duplicates detected, nothing persisted"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /benchmarks/{name} [put]
func (ctrl *Controller) SaveBenchmarkHandler(ctx *gin.Context) {
	name := ctx.Param("name")

	var content dto.BenchmarkContent
	if err := ctx.ShouldBindJSON(&content); err != nil {
		log.Warn().Err(err).Str("benchmark", name).Msg("SaveBenchmark: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	detectDuplicates := strings.EqualFold(ctx.Query("detect_duplicates"), "true")
	resp, err := ctrl.benchmarkSvc.SaveBenchmark(name, content, detectDuplicates)
	if err != nil {
		log.Error().Err(err).Str("benchmark", name).Msg("SaveBenchmark: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to save benchmark", Details: []string{err.Error()}})
		return
	}
	if len(resp.Duplicates) > 0 {
		ctx.JSON(http.StatusConflict, resp)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteBenchmarkHandler godoc
// @Summary Delete a benchmark
// @Description Remove a benchmark and all of its questions.
// @Tags Benchmarks
// @Param name path string true "Benchmark name"
// @Success 204 "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Benchmark not found"
// @Router /benchmarks/{name} [delete]
func (ctrl *Controller) DeleteBenchmarkHandler(ctx *gin.Context) {
	name := ctx.Param("name")
	if err := ctrl.benchmarkSvc.DeleteBenchmark(name); err != nil {
		log.Warn().Err(err).Str("benchmark", name).Msg("DeleteBenchmark: not found or service error")
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ResolveDuplicatesHandler godoc
// @Summary Resolve duplicates and persist the merged question set
// @Description Merge a candidate question set into the persisted benchmark using per-question keep_old/keep_new decisions (keep_new is the default), then persist the merged set.
// @Tags Benchmarks
// @Accept json
// @Produce json
// @Param name path string true "Benchmark name"
// @Param resolution_data body dto.ResolveDuplicatesRequest true "Candidate questions and resolutions"
// @Success 200 {object} dto.ResolveDuplicatesResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or corrupted duplicate state"
// @Failure 404 {object} dto.ErrorResponse "Benchmark not found"
// @Router /benchmarks/{name}/resolve [post]
func (ctrl *Controller) ResolveDuplicatesHandler(ctx *gin.Context) {
	name := ctx.Param("name")

	var req dto.ResolveDuplicatesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Str("benchmark", name).Msg("ResolveDuplicates: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := ctrl.benchmarkSvc.ResolveDuplicates(name, req)
	if err != nil {
		log.Error().Err(err).Str("benchmark", name).Msg("ResolveDuplicates: Service error")
		if strings.Contains(err.Error(), "not found") {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
			return
		}
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to resolve duplicates", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ExportCheckpointHandler godoc
// @Summary Export a checkpoint as a JSON-LD dataset
// @Description Convert an in-memory checkpoint into its portable schema.org JSON-LD representation. is_creation=true stamps a fresh dateModified; dateCreated always passes through when present.
// @Tags Checkpoint
// @Accept json
// @Produce json
// @Param is_creation query bool false "Treat this conversion as a new edit"
// @Param checkpoint body model.Checkpoint true "Checkpoint to export"
// @Success 200 {object} jsonld.Dataset
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Router /checkpoint/export [post]
func (ctrl *Controller) ExportCheckpointHandler(ctx *gin.Context) {
	var cp model.Checkpoint
	if err := ctx.ShouldBindJSON(&cp); err != nil {
		log.Warn().Err(err).Msg("ExportCheckpoint: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	isCreation := strings.EqualFold(ctx.Query("is_creation"), "true")
	ds, err := ctrl.checkpointSvc.ExportToJSONLD(&cp, isCreation)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to export checkpoint", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, ds)
}

// ImportCheckpointHandler godoc
// @Summary Import a JSON-LD dataset as a checkpoint
// @Description Convert a schema.org JSON-LD dataset document back into a checkpoint. Malformed hasPart entries are skipped, not fatal.
// @Tags Checkpoint
// @Accept json
// @Produce json
// @Param dataset body jsonld.Dataset true "JSON-LD dataset document"
// @Success 200 {object} model.Checkpoint
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Router /checkpoint/import [post]
func (ctrl *Controller) ImportCheckpointHandler(ctx *gin.Context) {
	var ds jsonld.Dataset
	if err := ctx.ShouldBindJSON(&ds); err != nil {
		log.Warn().Err(err).Msg("ImportCheckpoint: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	cp, err := ctrl.checkpointSvc.ImportFromJSONLD(&ds)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to import dataset", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, cp)
}

// GenerateTemplateHandler godoc
// @Summary Generate a structured-answer template
// @Description Ask the LLM for a Pydantic Answer class capturing the structure of a question's expected answer.
// @Tags Templates
// @Accept json
// @Produce json
// @Param template_data body dto.GenerateTemplateRequest true "Question and expected answer"
// @Success 200 {object} dto.GenerateTemplateResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 502 {object} dto.ErrorResponse "LLM unavailable or returned an unusable response"
// @Router /templates/generate [post]
func (ctrl *Controller) GenerateTemplateHandler(ctx *gin.Context) {
	var req dto.GenerateTemplateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("GenerateTemplate: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	template, err := ctrl.templateSvc.GenerateAnswerTemplate(req.Question, req.RawAnswer)
	if err != nil {
		log.Error().Err(err).Msg("GenerateTemplate: Service error")
		ctx.JSON(http.StatusBadGateway, dto.ErrorResponse{Message: "Failed to generate template", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, dto.GenerateTemplateResponse{Template: template})
}
