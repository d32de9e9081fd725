package api

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	customerHandlers "github.com/monsalvellc/RoofingLeadApp/customer/handlers"
	"github.com/monsalvellc/RoofingLeadApp/framework/connection"
	"github.com/monsalvellc/RoofingLeadApp/framework/mid"
	"github.com/monsalvellc/RoofingLeadApp/framework/web"
	jobHandlers "github.com/monsalvellc/RoofingLeadApp/job/handlers"
	"github.com/monsalvellc/RoofingLeadApp/logger"
)

type API struct {
	shutdown chan os.Signal
	log      *logger.Logging
	conn     *connection.Connection
}

func NewAPI(shutdown chan os.Signal, logging *logger.Logging, conn *connection.Connection) *API {
	return &API{
		shutdown,
		logging,
		conn,
	}
}

// Build builds the api endpoints with the needed middlewares, and returns http.Handler interface.
func (a *API) Build() http.Handler {
	loggerProvider := logger.FromContext

	// Construct the web.App which holds all routes as well as common Middleware.
	app := web.NewApp(a.shutdown, a.conn, mid.Logger(), mid.Errors(), mid.Panics(), mid.Sentry())

	customer := customerHandlers.NewCustomer(loggerProvider, a.conn)
	job := jobHandlers.NewJob(loggerProvider, a.conn)

	app.Get("/health", func(ctx *gin.Context) error {
		return web.Respond(ctx, nil, http.StatusOK)
	})

	companyGroup := web.NewGroup(app, "/api/v1/companies/:companyID")
	{
		customersGroup := companyGroup.NewSubgroup("/customers")
		{
			customersGroup.Get("", customer.ListCustomers)
			customersGroup.Post("", customer.CreateCustomer)
			customersGroup.Get("/candidates", customer.FindCandidates)
			customersGroup.Get("/:customerID", customer.GetCustomer, mid.ValidatePathParamNotEmpty("customerID"))
			customersGroup.Patch("/:customerID", customer.UpdateCustomer, mid.ValidatePathParamNotEmpty("customerID"))
			customersGroup.Delete("/:customerID", customer.DeleteCustomer, mid.ValidatePathParamNotEmpty("customerID"))
		}

		companyGroup.Post("/leads", customer.CreateLead)

		jobsGroup := companyGroup.NewSubgroup("/jobs")
		{
			jobsGroup.Get("", job.ListJobs)
			jobsGroup.Post("", job.CreateJob)
			jobsGroup.Get("/watch", job.WatchJobs)
		}
	}

	jobGroup := web.NewGroup(app, "/api/v1/jobs/:jobID", mid.ValidatePathParamNotEmpty("jobID"))
	{
		jobGroup.Get("", job.GetJob)
		jobGroup.Patch("", job.UpdateJob)
		jobGroup.Delete("", job.DeleteJob)
		jobGroup.Post("/close", job.CloseJobScreen)

		jobGroup.Post("/payments", job.AddPayment)
		jobGroup.Delete("/payments", job.RemovePayment)
		jobGroup.Put("/deposit-paid", job.SetDepositPaid)
		jobGroup.Put("/contract-amount", job.SetContractAmount)
		jobGroup.Put("/deposit-amount", job.SetDepositAmount)

		jobGroup.Put("/status", job.ChangeStatus)

		mediaGroup := jobGroup.NewSubgroup("/media")
		{
			mediaGroup.Post("", job.UploadMedia)
			mediaGroup.Put("/folder-default", job.SetFolderDefault)
			mediaGroup.Delete("/:assetID", job.DeleteMedia, mid.ValidatePathParamNotEmpty("assetID"))
			mediaGroup.Put("/:assetID/shared", job.SetAssetShared, mid.ValidatePathParamNotEmpty("assetID"))
			mediaGroup.Put("/:assetID/category", job.RecategorizeAsset, mid.ValidatePathParamNotEmpty("assetID"))
		}
	}

	return app
}
