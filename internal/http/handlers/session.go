package handlers

import (
	"net/http"
	"sync"

	"voyago/internal/domain/models"
	"voyago/internal/http/middleware"
	"voyago/internal/services"
	"voyago/internal/utils"

	"github.com/gin-gonic/gin"
)

// SessionHandler exposes the booking funnel over HTTP. The core models a
// single logical session; the mutex serializes the concurrent HTTP surface
// onto it.
type SessionHandler struct {
	mu      sync.Mutex
	Session *services.BookingSession
}

func NewSessionHandler(session *services.BookingSession) *SessionHandler {
	return &SessionHandler{Session: session}
}

type seatMapView struct {
	Trip       models.Trip `json:"trip"`
	Occupied   []string    `json:"occupied"`
	Selected   []string    `json:"selected"`
	Free       []string    `json:"free"`
	TotalFare  int64       `json:"total_fare"`
	CanProceed bool        `json:"can_proceed"`
}

type sessionView struct {
	State     services.SessionState    `json:"state"`
	Criteria  *models.SearchCriteria   `json:"criteria,omitempty"`
	Trips     []models.Trip            `json:"trips,omitempty"`
	SeatMap   *seatMapView             `json:"seat_map,omitempty"`
	Passenger *models.PassengerDetails `json:"passenger,omitempty"`
	TotalFare int64                    `json:"total_fare"`
}

func (h *SessionHandler) view() sessionView {
	s := h.Session
	v := sessionView{State: s.State(), TotalFare: s.TotalFare()}

	if c := s.Criteria(); c != (models.SearchCriteria{}) {
		v.Criteria = &c
	}
	v.Trips = s.Trips()
	if m := s.SeatMap(); m != nil {
		v.SeatMap = &seatMapView{
			Trip:       m.Trip(),
			Occupied:   m.OccupiedSeats(),
			Selected:   m.SelectedSeats(),
			Free:       m.FreeSeats(),
			TotalFare:  m.TotalFare(),
			CanProceed: m.CanProceed(),
		}
	}
	if d, ok := s.Details(); ok {
		v.Passenger = &d
	}
	return v
}

// GET /api/session
func (h *SessionHandler) Snapshot(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	c.JSON(http.StatusOK, h.view())
}

// POST /api/session/search
func (h *SessionHandler) SubmitSearch(c *gin.Context) {
	var criteria models.SearchCriteria
	if !BindJSONOrError(c, &criteria) {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.Session.SubmitSearch(criteria); err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "session", "submit_search",
		criteria.Origin+" -> "+criteria.Destination+" on "+criteria.Date)
	c.JSON(http.StatusOK, h.view())
}

// GET /api/session/trips
func (h *SessionHandler) Trips(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"trips": h.Session.Trips()})
}

// POST /api/session/trips/:id/select
func (h *SessionHandler) SelectTrip(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.Session.SelectTrip(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.view())
}

// POST /api/session/seats/:code/toggle
func (h *SessionHandler) ToggleSeat(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.Session.ToggleSeat(c.Param("code")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.view())
}

// GET /api/session/seatmap
func (h *SessionHandler) SeatMap(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	v := h.view()
	if v.SeatMap == nil {
		respondError(c, http.StatusConflict, "precondition_failed", "no trip selected")
		return
	}
	c.JSON(http.StatusOK, v.SeatMap)
}

// POST /api/session/proceed
func (h *SessionHandler) Proceed(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.Session.Proceed(); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.view())
}

// POST /api/session/details
func (h *SessionHandler) SubmitDetails(c *gin.Context) {
	var in models.PassengerInput
	if !BindJSONOrError(c, &in) {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.Session.SubmitDetails(in); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.view())
}

// POST /api/session/confirm
func (h *SessionHandler) Confirm(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	booking, err := h.Session.ConfirmPayment()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "session", "confirm_payment", "booking_id="+booking.ID)
	c.JSON(http.StatusCreated, gin.H{"booking": booking})
}

// POST /api/session/back
func (h *SessionHandler) GoBack(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.Session.GoBack(); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.view())
}
