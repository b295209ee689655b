package routes

import (
	"quotedesk/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes      = "/quotes"
	PathReports     = "/reports"
	PathInvitations = "/invitations"
	PathProfile     = "/profile"
	PathData        = "/data"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, paymentHandler *handlers.QuotePaymentHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.POST("/pricing", quoteHandler.PricingPreview)
		quotes.POST("/drafts", quoteHandler.CreateDraft)
		quotes.PUT("/drafts/:id", quoteHandler.UpdateDraft)
		quotes.DELETE("/drafts/:id", quoteHandler.DeleteDraft)
		quotes.POST("/send", quoteHandler.SendQuote)

		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.GET("/:id/pdf", quoteHandler.QuotePDF)
		quotes.POST("/:id/send", quoteHandler.SendDraft)
		quotes.POST("/:id/resend", quoteHandler.Resend)
		quotes.POST("/:id/accept", quoteHandler.Accept)
		quotes.POST("/:id/deposit", quoteHandler.MarkDepositPaid)
		quotes.POST("/:id/complete", quoteHandler.MarkWorkComplete)
		quotes.POST("/:id/final-payment", quoteHandler.MarkFinalPayment)

		// Charges go through the payment gateway before the stage changes.
		quotes.POST("/:id/deposit/charge", paymentHandler.ChargeDeposit)
		quotes.POST("/:id/final-payment/charge", paymentHandler.ChargeFinalPayment)
		quotes.GET("/:id/payments", paymentHandler.ListPayments)
	}
}

func addReportRoutes(rg *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	reports := rg.Group(PathReports)
	{
		reports.GET("/monthly", reportHandler.Monthly)
		reports.GET("/monthly/pdf", reportHandler.IncomeStatementPDF)
		reports.GET("/yearly", reportHandler.Yearly)
	}
}

func addTeamRoutes(rg *gin.RouterGroup, invitationHandler *handlers.InvitationHandler) {
	invitations := rg.Group(PathInvitations)
	{
		invitations.POST("", invitationHandler.Invite)
		invitations.GET("", invitationHandler.ListByBusiness)
		invitations.POST("/resolve", invitationHandler.Resolve)
		invitations.POST("/join", invitationHandler.Join)
		invitations.PATCH("/:id/activate", invitationHandler.Activate)
		invitations.DELETE("/:id", invitationHandler.Delete)
	}
}

func addProfileRoutes(rg *gin.RouterGroup, profileHandler *handlers.ProfileHandler) {
	profile := rg.Group(PathProfile)
	{
		profile.GET("", profileHandler.GetProfile)
		profile.POST("/onboarding", profileHandler.Onboard)
		profile.PUT("/business", profileHandler.UpdateBusiness)
		profile.PUT("/user", profileHandler.UpdateUser)
	}

	rg.DELETE(PathData, profileHandler.ResetData)
}
