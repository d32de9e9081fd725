package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/monsalvellc/RoofingLeadApp/framework/connection"
	"github.com/monsalvellc/RoofingLeadApp/framework/web"
	"github.com/monsalvellc/RoofingLeadApp/job/domain"
	"github.com/monsalvellc/RoofingLeadApp/job/ledger"
	"github.com/monsalvellc/RoofingLeadApp/job/mediaperm"
	"github.com/monsalvellc/RoofingLeadApp/job/pipeline"
	"github.com/monsalvellc/RoofingLeadApp/job/service"
	"github.com/monsalvellc/RoofingLeadApp/logger"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("jobstatus", func(fl validator.FieldLevel) bool {
			return pipeline.Valid(domain.Status(fl.Field().String()))
		})
	}
}

type Job struct {
	loggerProvider logger.Provider
	service        service.IJobService
}

func NewJob(loggerProvider logger.Provider, conn *connection.Connection) *Job {
	return &Job{
		loggerProvider,
		service.NewJobService(loggerProvider, conn),
	}
}

func (h *Job) translateError(err error) error {
	switch {
	case errors.Is(err, service.ErrJobNotFound):
		return web.NewRequestError(err, http.StatusNotFound)
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, ledger.ErrIndexOutOfRange),
		errors.Is(err, pipeline.ErrUnknownStatus),
		errors.Is(err, mediaperm.ErrUnknownCategory):
		return web.NewRequestError(err, http.StatusBadRequest)
	case errors.Is(err, mediaperm.ErrAssetNotFound):
		return web.NewRequestError(err, http.StatusNotFound)
	case errors.Is(err, service.ErrUploadDiscarded):
		return web.NewRequestError(err, http.StatusGone)
	default:
		return web.NewRequestError(err, http.StatusInternalServerError)
	}
}

func (h *Job) GetJob(ctx *gin.Context) error {
	job, err := h.service.GetJob(ctx, ctx.Param("jobID"))
	if err != nil {
		return h.translateError(err)
	}

	return web.Respond(ctx, job, http.StatusOK)
}

func (h *Job) ListJobs(ctx *gin.Context) error {
	jobs, err := h.service.ListJobs(ctx, ctx.Param("companyID"))
	if err != nil {
		return h.translateError(err)
	}

	return web.Respond(ctx, jobs, http.StatusOK)
}

func (h *Job) CreateJob(ctx *gin.Context) error {
	var job domain.Job
	if err := ctx.ShouldBindJSON(&job); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	job.CompanyID = ctx.Param("companyID")

	id, err := h.service.CreateJob(ctx, &job)
	if err != nil {
		return h.translateError(err)
	}

	return web.Respond(ctx, gin.H{"id": id}, http.StatusCreated)
}

type updateJobRequest struct {
	JobNumber   *string                  `json:"jobNumber"`
	JobType     *domain.JobType          `json:"jobType"`
	Trades      []string                 `json:"trades"`
	Description *string                  `json:"description"`
	Notes       *string                  `json:"notes"`
	Insurance   *domain.InsuranceDetails `json:"insurance"`
}

func (h *Job) UpdateJob(ctx *gin.Context) error {
	var body updateJobRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	job, err := h.service.UpdateJobDetails(ctx, ctx.Param("jobID"), &service.JobUpdate{
		JobNumber:   body.JobNumber,
		JobType:     body.JobType,
		Trades:      body.Trades,
		Description: body.Description,
		Notes:       body.Notes,
		Insurance:   body.Insurance,
	})
	if err != nil {
		return h.translateError(err)
	}

	return web.Respond(ctx, job, http.StatusOK)
}

func (h *Job) DeleteJob(ctx *gin.Context) error {
	if err := h.service.DeleteJob(ctx, ctx.Param("jobID")); err != nil {
		return h.translateError(err)
	}

	return web.Respond(ctx, nil, http.StatusOK)
}

type paymentRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}

func (h *Job) AddPayment(ctx *gin.Context) error {
	var body paymentRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	job, err := h.service.AddPayment(ctx, ctx.Param("jobID"), body.Amount)
	if err != nil {
		return h.translateError(err)
	}

	return web.Respond(ctx, job, http.StatusOK)
}

type removePaymentRequest struct {
	Index *int `json:"index" binding:"required"`
}

func (h *Job) RemovePayment(ctx *gin.Context) error {
	var body removePaymentRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	job, err := h.service.RemovePayment(ctx, ctx.Param("jobID"), *body.Index)
	if err != nil {
		return h.translateError(err)
	}

	return web.Respond(ctx, job, http.StatusOK)
}

type depositPaidRequest struct {
	Paid *bool `json:"paid" binding:"required"`
}

func (h *Job) SetDepositPaid(ctx *gin.Context) error {
	var body depositPaidRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	job, err := h.service.SetDepositPaid(ctx, ctx.Param("jobID"), *body.Paid)
	if err != nil {
		return h.translateError(err)
	}

	return web.Respond(ctx, job, http.StatusOK)
}

type amountRequest struct {
	Amount *float64 `json:"amount" binding:"required"`
}

func (h *Job) SetContractAmount(ctx *gin.Context) error {
	var body amountRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	job, err := h.service.SetContractAmount(ctx, ctx.Param("jobID"), *body.Amount)
	if err != nil {
		return h.translateError(err)
	}

	return web.Respond(ctx, job, http.StatusOK)
}

func (h *Job) SetDepositAmount(ctx *gin.Context) error {
	var body amountRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	job, err := h.service.SetDepositAmount(ctx, ctx.Param("jobID"), *body.Amount)
	if err != nil {
		return h.translateError(err)
	}

	return web.Respond(ctx, job, http.StatusOK)
}

type changeStatusRequest struct {
	Status domain.Status `json:"status" binding:"required,jobstatus"`
}

func (h *Job) ChangeStatus(ctx *gin.Context) error {
	var body changeStatusRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	job, err := h.service.ChangeStatus(ctx, ctx.Param("jobID"), body.Status)
	if err != nil {
		return h.translateError(err)
	}

	return web.Respond(ctx, job, http.StatusOK)
}

func (h *Job) UploadMedia(ctx *gin.Context) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	req := &service.UploadMediaRequest{
		JobID:       ctx.Param("jobID"),
		Category:    domain.Category(ctx.PostForm("category")),
		Name:        fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	}

	if v := ctx.PostForm("shared"); v != "" {
		shared := v == "true"
		req.Shared = &shared
	}

	asset, err := h.service.UploadMedia(ctx, req)
	if err != nil {
		return h.translateError(err)
	}

	return web.Respond(ctx, asset, http.StatusCreated)
}

func (h *Job) DeleteMedia(ctx *gin.Context) error {
	if err := h.service.DeleteMedia(ctx, ctx.Param("jobID"), ctx.Param("assetID")); err != nil {
		return h.translateError(err)
	}

	return web.Respond(ctx, nil, http.StatusOK)
}

type sharedRequest struct {
	Shared *bool `json:"shared" binding:"required"`
}

func (h *Job) SetAssetShared(ctx *gin.Context) error {
	var body sharedRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	err := h.service.SetAssetShared(ctx, ctx.Param("jobID"), ctx.Param("assetID"), *body.Shared)
	if err != nil {
		return h.translateError(err)
	}

	return web.Respond(ctx, nil, http.StatusOK)
}

type recategorizeRequest struct {
	Category domain.Category `json:"category" binding:"required"`
}

func (h *Job) RecategorizeAsset(ctx *gin.Context) error {
	var body recategorizeRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	err := h.service.RecategorizeAsset(ctx, ctx.Param("jobID"), ctx.Param("assetID"), body.Category)
	if err != nil {
		return h.translateError(err)
	}

	return web.Respond(ctx, nil, http.StatusOK)
}

type folderDefaultRequest struct {
	Category domain.Category `json:"category" binding:"required"`
	Shared   *bool           `json:"shared" binding:"required"`
}

func (h *Job) SetFolderDefault(ctx *gin.Context) error {
	var body folderDefaultRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	err := h.service.SetFolderDefault(ctx, ctx.Param("jobID"), body.Category, *body.Shared)
	if err != nil {
		return h.translateError(err)
	}

	return web.Respond(ctx, nil, http.StatusOK)
}

// CloseJobScreen drops any upload still in flight for the job. Clients
// call it on navigation away so a slow transfer cannot resurrect state.
func (h *Job) CloseJobScreen(ctx *gin.Context) error {
	h.service.DiscardPendingUploads(ctx.Param("jobID"))

	return web.Respond(ctx, nil, http.StatusOK)
}

// WatchJobs streams the company's job list as server-sent events, backed
// by the store's snapshot listener.
func (h *Job) WatchJobs(ctx *gin.Context) error {
	jobs, stop, err := h.service.WatchJobs(ctx, ctx.Param("companyID"))
	if err != nil {
		return h.translateError(err)
	}
	defer stop()

	ctx.Writer.Header().Set("Content-Type", "text/event-stream")
	ctx.Writer.Header().Set("Cache-Control", "no-cache")

	for {
		select {
		case snapshot, ok := <-jobs:
			if !ok {
				return nil
			}

			ctx.SSEvent("jobs", snapshot)
			ctx.Writer.Flush()
		case <-ctx.Request.Context().Done():
			return nil
		}
	}
}
