package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	customerDomain "github.com/monsalvellc/RoofingLeadApp/customer/domain"
	"github.com/monsalvellc/RoofingLeadApp/customer/service"
	"github.com/monsalvellc/RoofingLeadApp/framework/connection"
	"github.com/monsalvellc/RoofingLeadApp/framework/web"
	jobDomain "github.com/monsalvellc/RoofingLeadApp/job/domain"
	"github.com/monsalvellc/RoofingLeadApp/logger"
)

type Customer struct {
	loggerProvider logger.Provider
	service        service.ICustomerService
}

func NewCustomer(loggerProvider logger.Provider, conn *connection.Connection) *Customer {
	return &Customer{
		loggerProvider,
		service.NewCustomerService(loggerProvider, conn),
	}
}

type createCustomerRequest struct {
	FirstName      string                  `json:"firstName"`
	LastName       string                  `json:"lastName"`
	Email          string                  `json:"email" binding:"omitempty,email"`
	Phone          string                  `json:"phone"`
	SecondaryPhone string                  `json:"secondaryPhone"`
	Address        customerDomain.Address  `json:"address"`
	AltAddress     *customerDomain.Address `json:"altAddress"`
	Notes          string                  `json:"notes"`
}

type createCustomerResponse struct {
	ID         string                     `json:"id"`
	Candidates []*customerDomain.Customer `json:"candidates,omitempty"`
}

func (h *Customer) CreateCustomer(ctx *gin.Context) error {
	companyID := ctx.Param("companyID")

	var body createCustomerRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	customer := &customerDomain.Customer{
		CompanyID:      companyID,
		FirstName:      body.FirstName,
		LastName:       body.LastName,
		Email:          body.Email,
		Phone:          body.Phone,
		SecondaryPhone: body.SecondaryPhone,
		Address:        body.Address,
		AltAddress:     body.AltAddress,
		Notes:          body.Notes,
	}

	id, candidates, err := h.service.CreateCustomer(ctx, customer)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			return web.NewRequestError(err, http.StatusBadRequest)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, createCustomerResponse{ID: id, Candidates: candidates}, http.StatusCreated)
}

func (h *Customer) GetCustomer(ctx *gin.Context) error {
	customerID := ctx.Param("customerID")

	customer, err := h.service.GetCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, service.ErrCustomerNotFound) {
			return web.NewRequestError(err, http.StatusNotFound)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, customer, http.StatusOK)
}

func (h *Customer) ListCustomers(ctx *gin.Context) error {
	companyID := ctx.Param("companyID")

	customers, err := h.service.ListCustomers(ctx, companyID)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, customers, http.StatusOK)
}

// FindCandidates powers the duplicate hint shown while a rep types a
// homeowner name into the lead form.
func (h *Customer) FindCandidates(ctx *gin.Context) error {
	companyID := ctx.Param("companyID")
	query := ctx.Query("name")

	candidates, err := h.service.FindCandidates(ctx, companyID, query)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, candidates, http.StatusOK)
}

type updateCustomerRequest struct {
	FirstName      *string                 `json:"firstName"`
	LastName       *string                 `json:"lastName"`
	Email          *string                 `json:"email" binding:"omitempty,email"`
	Phone          *string                 `json:"phone"`
	SecondaryPhone *string                 `json:"secondaryPhone"`
	Address        *customerDomain.Address `json:"address"`
	AltAddress     *customerDomain.Address `json:"altAddress"`
	Notes          *string                 `json:"notes"`
}

func (h *Customer) UpdateCustomer(ctx *gin.Context) error {
	customerID := ctx.Param("customerID")

	var body updateCustomerRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	customer, err := h.service.UpdateCustomer(ctx, customerID, &service.CustomerUpdate{
		FirstName:      body.FirstName,
		LastName:       body.LastName,
		Email:          body.Email,
		Phone:          body.Phone,
		SecondaryPhone: body.SecondaryPhone,
		Address:        body.Address,
		AltAddress:     body.AltAddress,
		Notes:          body.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCustomerNotFound):
			return web.NewRequestError(err, http.StatusNotFound)
		case errors.Is(err, service.ErrInvalidInput):
			return web.NewRequestError(err, http.StatusBadRequest)
		default:
			return web.NewRequestError(err, http.StatusInternalServerError)
		}
	}

	return web.Respond(ctx, customer, http.StatusOK)
}

type createLeadRequest struct {
	CustomerID string                 `json:"customerId"`
	Customer   *createCustomerRequest `json:"customer"`
	JobNumber  string                 `json:"jobNumber"`
	JobType    jobDomain.JobType      `json:"jobType" binding:"omitempty,oneof=Retail Insurance"`
	Trades     []string               `json:"trades"`
}

func (h *Customer) CreateLead(ctx *gin.Context) error {
	companyID := ctx.Param("companyID")

	var body createLeadRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	req := &service.LeadRequest{
		CompanyID:  companyID,
		CustomerID: body.CustomerID,
		JobNumber:  body.JobNumber,
		JobType:    body.JobType,
		Trades:     body.Trades,
	}

	if body.Customer != nil {
		req.Customer = &customerDomain.Customer{
			CompanyID:      companyID,
			FirstName:      body.Customer.FirstName,
			LastName:       body.Customer.LastName,
			Email:          body.Customer.Email,
			Phone:          body.Customer.Phone,
			SecondaryPhone: body.Customer.SecondaryPhone,
			Address:        body.Customer.Address,
			AltAddress:     body.Customer.AltAddress,
			Notes:          body.Customer.Notes,
		}
	}

	job, err := h.service.CreateLead(ctx, req)
	if err != nil {
		var orphaned *service.OrphanedCustomerError

		switch {
		case errors.As(err, &orphaned):
			// The customer write landed, the job write did not. Report the
			// surviving customer id so the client can retry against it.
			return web.Respond(ctx, gin.H{
				"error":      err.Error(),
				"customerId": orphaned.CustomerID,
			}, http.StatusConflict)
		case errors.Is(err, service.ErrInvalidInput):
			return web.NewRequestError(err, http.StatusBadRequest)
		case errors.Is(err, service.ErrCustomerNotFound):
			return web.NewRequestError(err, http.StatusNotFound)
		default:
			return web.NewRequestError(err, http.StatusInternalServerError)
		}
	}

	return web.Respond(ctx, job, http.StatusCreated)
}

func (h *Customer) DeleteCustomer(ctx *gin.Context) error {
	companyID := ctx.Param("companyID")
	customerID := ctx.Param("customerID")

	if err := h.service.DeleteCustomer(ctx, companyID, customerID); err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			return web.NewRequestError(err, http.StatusBadRequest)
		}

		var activeJob *service.ActiveJobError
		if errors.As(err, &activeJob) {
			return web.NewRequestError(err, http.StatusConflict)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, nil, http.StatusOK)
}
