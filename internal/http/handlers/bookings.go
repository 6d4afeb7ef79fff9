package handlers

import (
	"net/http"

	"voyago/internal/http/middleware"
	"voyago/internal/repositories"
	"voyago/internal/services"

	"github.com/gin-gonic/gin"
)

// BookingHandler is the read side of the ledger: listing confirmed bookings
// and rendering their documents. Nothing here mutates the store.
type BookingHandler struct {
	Ledger repositories.BookingLedger
}

func NewBookingHandler(ledger repositories.BookingLedger) *BookingHandler {
	return &BookingHandler{Ledger: ledger}
}

// GET /api/bookings
func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.Ledger.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "count": len(bookings)})
}

// GET /api/bookings/:id
func (h *BookingHandler) Get(c *gin.Context) {
	booking, err := h.Ledger.Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// GET /api/bookings/:id/e-ticket
func (h *BookingHandler) ETicket(c *gin.Context) {
	svc := services.DocsService{Ledger: h.Ledger, RequestID: middleware.GetRequestID(c)}
	pdf, filename, err := svc.GenerateETicket(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// GET /api/bookings/:id/invoice
func (h *BookingHandler) Invoice(c *gin.Context) {
	svc := services.DocsService{Ledger: h.Ledger, RequestID: middleware.GetRequestID(c)}
	pdf, filename, err := svc.GenerateInvoice(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
