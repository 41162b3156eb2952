package httpgin

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	redisrepo "github.com/okatsune/voyago/internal/repository/redis"
	"github.com/okatsune/voyago/internal/service"
	"github.com/okatsune/voyago/internal/service/booking"
	"github.com/okatsune/voyago/internal/service/composer"
	"github.com/okatsune/voyago/internal/service/inventory"
	"github.com/okatsune/voyago/internal/service/loyalty"
	"github.com/okatsune/voyago/internal/service/payments"
	"github.com/okatsune/voyago/internal/service/query"
	"github.com/okatsune/voyago/internal/service/refund"
)

type RouterConfig struct {
	JWTSecret string
}

func NewRouter(
	svcs *service.Services,
	idem *redisrepo.IdempotencyStore,
	limiter *redisrepo.SlidingWindowLimiter,
	logger *slog.Logger,
	cfg RouterConfig,
	middlewares ...gin.HandlerFunc,
) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery(), LoggingMiddleware(logger), RequestIDMiddleware(), CORS())
	for _, m := range middlewares {
		if m != nil {
			r.Use(m)
		}
	}

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// health
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public catalog
	r.GET("/flights", handleListFlights(svcs))
	r.GET("/flights/:id", handleGetFlight(svcs))
	r.GET("/hotels", handleListHotels(svcs))
	r.GET("/hotels/:id", handleGetHotel(svcs))
	r.GET("/entertainments", handleListEntertainments(svcs))
	r.GET("/entertainments/:id", handleGetEntertainment(svcs))
	r.GET("/tour-packages", handleListTourPackages(svcs))
	r.GET("/tour-packages/:id", handleGetTourPackage(svcs))

	// Authenticated API
	auth := r.Group("", AuthMiddleware(cfg.JWTSecret))
	{
		auth.POST("/custom-packages", handleCreateCustomPackage(svcs))
		auth.GET("/custom-packages", handleListCustomPackages(svcs))
		auth.GET("/custom-packages/:id", handleGetCustomPackage(svcs))
		auth.DELETE("/custom-packages/:id", handleDeleteCustomPackage(svcs))

		auth.POST("/bookings", RateLimitMiddleware(limiter), handleCreateBooking(svcs, idem))
		auth.GET("/bookings", handleListBookings(svcs))
		auth.GET("/bookings/:id", handleGetBooking(svcs))
		auth.DELETE("/bookings/:id", handleCancelBooking(svcs))

		auth.POST("/refunds/request", handleRequestRefund(svcs))

		auth.GET("/loyalty/status", handleLoyaltyStatus(svcs))
		auth.GET("/loyalty/history", handleLoyaltyHistory(svcs))
		auth.POST("/loyalty/redeem", handleRedeemPoints(svcs))

		auth.POST("/bookings/:id/payments", handleCreatePaymentPlan(svcs))
		auth.GET("/bookings/:id/payments", handleGetPaymentPlan(svcs))
		auth.POST("/bookings/:id/payments/confirm", handleConfirmFullPayment(svcs))
		auth.POST("/payments/:id/pay", handlePayInstallment(svcs))
		auth.GET("/payments/:id/invoice", handleGetInvoice(svcs))
	}

	return r
}

// --- Catalog handlers ---

// @Summary  List flights
// @Param    limit  query  int  false  "page size"
// @Param    offset query  int  false  "offset"
// @Success  200  {array}  domain.Flight
// @Router   /flights [get]
func handleListFlights(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := parseIntDefault(c.Query("limit"), 0)
		offset := parseIntDefault(c.Query("offset"), 0)

		out, err := svcs.Query.ListFlights(c.Request.Context(), limit, offset)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, out, "public, max-age=15", true)
	}
}

// @Summary  Get flight
// @Param    id  path  string  true  "Flight ID (uuid)"
// @Success  200  {object}  domain.Flight
// @Failure  404  {object}  ErrorResponse
// @Router   /flights/{id} [get]
func handleGetFlight(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c, "id")
		if !ok {
			return
		}
		f, err := svcs.Query.GetFlight(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, f, "public, max-age=60", true)
	}
}

// @Summary  List hotels
// @Success  200  {array}  domain.Hotel
// @Router   /hotels [get]
func handleListHotels(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := parseIntDefault(c.Query("limit"), 0)
		offset := parseIntDefault(c.Query("offset"), 0)

		out, err := svcs.Query.ListHotels(c.Request.Context(), limit, offset)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, out, "public, max-age=15", true)
	}
}

// @Summary  Get hotel
// @Param    id  path  string  true  "Hotel ID (uuid)"
// @Success  200  {object}  domain.Hotel
// @Failure  404  {object}  ErrorResponse
// @Router   /hotels/{id} [get]
func handleGetHotel(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c, "id")
		if !ok {
			return
		}
		h, err := svcs.Query.GetHotel(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, h, "public, max-age=60", true)
	}
}

// @Summary  List entertainments
// @Success  200  {array}  domain.Entertainment
// @Router   /entertainments [get]
func handleListEntertainments(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := parseIntDefault(c.Query("limit"), 0)
		offset := parseIntDefault(c.Query("offset"), 0)

		out, err := svcs.Query.ListEntertainments(c.Request.Context(), limit, offset)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, out, "public, max-age=15", true)
	}
}

// @Summary  Get entertainment
// @Param    id  path  string  true  "Entertainment ID (uuid)"
// @Success  200  {object}  domain.Entertainment
// @Failure  404  {object}  ErrorResponse
// @Router   /entertainments/{id} [get]
func handleGetEntertainment(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c, "id")
		if !ok {
			return
		}
		e, err := svcs.Query.GetEntertainment(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, e, "public, max-age=60", true)
	}
}

// @Summary  List tour packages
// @Success  200  {array}  domain.TourPackage
// @Router   /tour-packages [get]
func handleListTourPackages(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := parseIntDefault(c.Query("limit"), 0)
		offset := parseIntDefault(c.Query("offset"), 0)

		out, err := svcs.Query.ListTourPackages(c.Request.Context(), limit, offset)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, out, "public, max-age=15", true)
	}
}

// @Summary  Get tour package
// @Param    id  path  string  true  "Tour package ID (uuid)"
// @Success  200  {object}  domain.TourPackage
// @Failure  404  {object}  ErrorResponse
// @Router   /tour-packages/{id} [get]
func handleGetTourPackage(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c, "id")
		if !ok {
			return
		}
		tp, err := svcs.Query.GetTourPackage(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, tp, "public, max-age=60", true)
	}
}

// --- Custom package handlers ---

// @Summary  Compose a custom package
// @Param    req  body  CreateCustomPackageRequest  true  "candidate item ids"
// @Success  201  {object}  CreateCustomPackageResponse
// @Failure  400  {object}  ErrorResponse
// @Router   /custom-packages [post]
func handleCreateCustomPackage(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFrom(c)
		if !ok {
			unauthorized(c)
			return
		}

		var req CreateCustomPackageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		flightIDs, err := parseUUIDs(req.Flights)
		if err != nil {
			badRequest(c, "invalid flight id")
			return
		}
		hotelIDs, err := parseUUIDs(req.Hotels)
		if err != nil {
			badRequest(c, "invalid hotel id")
			return
		}
		entIDs, err := parseUUIDs(req.Entertainments)
		if err != nil {
			badRequest(c, "invalid entertainment id")
			return
		}

		pkg, warnings, err := svcs.Composer.Compose(c.Request.Context(), userID, flightIDs, hotelIDs, entIDs)
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusCreated, CreateCustomPackageResponse{
			Package:  *pkg,
			Warnings: warnings,
		})
	}
}

// @Summary  List my custom packages with resolved items
// @Success  200  {array}  domain.CustomPackageItems
// @Router   /custom-packages [get]
func handleListCustomPackages(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFrom(c)
		if !ok {
			unauthorized(c)
			return
		}

		out, err := svcs.Query.ListCustomPackages(c.Request.Context(), userID)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Get a custom package with resolved items
// @Param    id  path  string  true  "Package ID (uuid)"
// @Success  200  {object}  domain.CustomPackageItems
// @Failure  404  {object}  ErrorResponse
// @Router   /custom-packages/{id} [get]
func handleGetCustomPackage(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c, "id")
		if !ok {
			return
		}
		p, err := svcs.Query.GetCustomPackageItems(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// @Summary  Delete a custom package
// @Param    id  path  string  true  "Package ID (uuid)"
// @Success  204
// @Failure  404  {object}  ErrorResponse
// @Router   /custom-packages/{id} [delete]
func handleDeleteCustomPackage(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c, "id")
		if !ok {
			return
		}
		if err := svcs.Composer.Delete(c.Request.Context(), id); err != nil {
			respondErr(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// --- Booking handlers ---

// @Summary  Create booking (idempotent)
// @Param    req  body  CreateBookingRequest  true  "payload"
// @Header   201  {string}  Idempotency-Key  "echo"
// @Success  201  {object}  domain.Booking
// @Failure  400  {object}  ErrorResponse
// @Failure  404  {object}  ErrorResponse
// @Failure  409  {object}  ErrorResponse  "inventory unavailable / idem in progress"
// @Failure  429  {object}  ErrorResponse  "rate limited"
// @Router   /bookings [post]
func handleCreateBooking(svcs *service.Services, idem *redisrepo.IdempotencyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFrom(c)
		if !ok {
			unauthorized(c)
			return
		}

		var req CreateBookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		idemKey := strings.TrimSpace(c.GetHeader("Idempotency-Key"))
		var idemStorageKey string
		if idem != nil && idemKey != "" {
			idemStorageKey = redisrepo.KeyIdemBooking(userID, idemKey)

			if payload, ok, _ := idem.GetResult(c.Request.Context(), idemStorageKey); ok {
				c.Header("Idempotency-Key", idemKey)
				c.Data(http.StatusCreated, "application/json; charset=utf-8", []byte(payload))
				return
			}

			locked, err := idem.AcquireLock(c.Request.Context(), idemStorageKey, 60*time.Second)
			if err != nil {
				respondErr(c, err)
				return
			}
			if !locked {
				if payload, ok, _ := idem.GetResult(c.Request.Context(), idemStorageKey); ok {
					c.Header("Idempotency-Key", idemKey)
					c.Data(http.StatusCreated, "application/json; charset=utf-8", []byte(payload))
					return
				}
				c.Header("Retry-After", "1")
				c.JSON(http.StatusConflict, ErrorResponse{Error: "idempotency key in progress"})
				return
			}
		}

		createReq, err := toCreateRequest(req)
		if err != nil {
			if idemStorageKey != "" && idem != nil {
				_ = idem.Release(c.Request.Context(), idemStorageKey)
			}
			badRequest(c, err.Error())
			return
		}

		b, err := svcs.Booking.Create(c.Request.Context(), userID, createReq)
		if err != nil {
			if idemStorageKey != "" && idem != nil {
				_ = idem.Release(c.Request.Context(), idemStorageKey)
			}
			respondErr(c, err)
			return
		}

		if idemStorageKey != "" && idem != nil {
			payload, _ := json.Marshal(b)
			_ = idem.SaveResult(c.Request.Context(), idemStorageKey, string(payload))
			c.Header("Idempotency-Key", idemKey)
		}

		c.JSON(http.StatusCreated, b)
	}
}

// @Summary  List my bookings
// @Success  200  {array}  domain.Booking
// @Router   /bookings [get]
func handleListBookings(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFrom(c)
		if !ok {
			unauthorized(c)
			return
		}

		out, err := svcs.Booking.ListByUser(c.Request.Context(), userID)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Get booking
// @Param    id  path  string  true  "Booking ID (uuid)"
// @Success  200  {object}  domain.Booking
// @Failure  404  {object}  ErrorResponse
// @Router   /bookings/{id} [get]
func handleGetBooking(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFrom(c)
		if !ok {
			unauthorized(c)
			return
		}

		id, ok := parseUUIDParam(c, "id")
		if !ok {
			return
		}

		b, err := svcs.Booking.Get(c.Request.Context(), userID, id)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, b)
	}
}

// @Summary  Cancel booking and release its inventory
// @Param    id  path  string  true  "Booking ID (uuid)"
// @Success  200  {object}  domain.Booking
// @Failure  404  {object}  ErrorResponse
// @Failure  409  {object}  ErrorResponse  "already cancelled"
// @Router   /bookings/{id} [delete]
func handleCancelBooking(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFrom(c)
		if !ok {
			unauthorized(c)
			return
		}

		id, ok := parseUUIDParam(c, "id")
		if !ok {
			return
		}

		b, err := svcs.Booking.Cancel(c.Request.Context(), userID, id)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, b)
	}
}

// --- Refund handlers ---

// @Summary  Request a refund for a confirmed booking
// @Param    req  body  RefundRequestBody  true  "payload"
// @Success  201  {object}  domain.Refund
// @Failure  403  {object}  ErrorResponse
// @Failure  404  {object}  ErrorResponse
// @Failure  409  {object}  ErrorResponse  "already requested or processed"
// @Router   /refunds/request [post]
func handleRequestRefund(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFrom(c)
		if !ok {
			unauthorized(c)
			return
		}

		var req RefundRequestBody
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		bookingID, err := uuid.Parse(req.BookingID)
		if err != nil {
			badRequest(c, "invalid booking_id")
			return
		}

		r, err := svcs.Refund.Request(c.Request.Context(), userID, bookingID, req.Reason)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, r)
	}
}

// --- Loyalty handlers ---

// @Summary  Loyalty status (balance, tier, distance to next tier)
// @Success  200  {object}  domain.LoyaltyStatus
// @Router   /loyalty/status [get]
func handleLoyaltyStatus(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFrom(c)
		if !ok {
			unauthorized(c)
			return
		}

		st, err := svcs.Loyalty.Status(c.Request.Context(), userID)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, st)
	}
}

// @Summary  Loyalty transaction history
// @Success  200  {array}  domain.LoyaltyTransaction
// @Router   /loyalty/history [get]
func handleLoyaltyHistory(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFrom(c)
		if !ok {
			unauthorized(c)
			return
		}

		out, err := svcs.Loyalty.History(c.Request.Context(), userID)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Redeem loyalty points
// @Param    req  body  RedeemRequest  true  "payload"
// @Success  201  {object}  domain.LoyaltyTransaction
// @Failure  400  {object}  ErrorResponse  "insufficient points"
// @Router   /loyalty/redeem [post]
func handleRedeemPoints(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFrom(c)
		if !ok {
			unauthorized(c)
			return
		}

		var req RedeemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		txn, err := svcs.Loyalty.Redeem(c.Request.Context(), userID, req.Points, req.Description)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, txn)
	}
}

// --- Payment handlers ---

// @Summary  Create a 3-installment payment plan for a booking
// @Param    id  path  string  true  "Booking ID (uuid)"
// @Success  201  {array}  domain.Payment
// @Failure  404  {object}  ErrorResponse
// @Router   /bookings/{id}/payments [post]
func handleCreatePaymentPlan(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c, "id")
		if !ok {
			return
		}

		plan, err := svcs.Payments.CreatePlan(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, plan)
	}
}

// @Summary  Get a booking's payment plan
// @Param    id  path  string  true  "Booking ID (uuid)"
// @Success  200  {array}  domain.Payment
// @Router   /bookings/{id}/payments [get]
func handleGetPaymentPlan(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c, "id")
		if !ok {
			return
		}

		plan, err := svcs.Payments.Plan(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, plan)
	}
}

// @Summary  Settle all open installments of a booking
// @Param    id  path  string  true  "Booking ID (uuid)"
// @Success  200  {object}  ConfirmPaymentResponse
// @Failure  404  {object}  ErrorResponse
// @Router   /bookings/{id}/payments/confirm [post]
func handleConfirmFullPayment(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c, "id")
		if !ok {
			return
		}

		n, err := svcs.Payments.ConfirmFullPayment(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, ConfirmPaymentResponse{BookingID: id.String(), Settled: n})
	}
}

// @Summary  Pay one installment
// @Param    id  path  string  true  "Payment ID (uuid)"
// @Success  200  {object}  domain.Payment
// @Failure  404  {object}  ErrorResponse
// @Failure  409  {object}  ErrorResponse  "already paid"
// @Router   /payments/{id}/pay [post]
func handlePayInstallment(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c, "id")
		if !ok {
			return
		}

		p, err := svcs.Payments.PayInstallment(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// @Summary  Get the invoice for a paid installment
// @Param    id  path  string  true  "Payment ID (uuid)"
// @Success  200  {object}  payments.InvoiceSnapshot
// @Failure  404  {object}  ErrorResponse
// @Failure  409  {object}  ErrorResponse  "installment not paid yet"
// @Router   /payments/{id}/invoice [get]
func handleGetInvoice(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c, "id")
		if !ok {
			return
		}

		inv, doc, contentType, err := svcs.Payments.Invoice(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}

		if doc != nil {
			c.Data(http.StatusOK, contentType, doc)
			return
		}
		c.JSON(http.StatusOK, inv)
	}
}

// --- Helpers ---

func toCreateRequest(req CreateBookingRequest) (booking.CreateRequest, error) {
	packageID, err := parseOptionalUUID(req.PackageID)
	if err != nil {
		return booking.CreateRequest{}, errors.New("invalid package_id")
	}
	hotelID, err := parseOptionalUUID(req.HotelID)
	if err != nil {
		return booking.CreateRequest{}, errors.New("invalid hotel_id")
	}
	flightID, err := parseOptionalUUID(req.FlightID)
	if err != nil {
		return booking.CreateRequest{}, errors.New("invalid flight_id")
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return booking.CreateRequest{}, errors.New("invalid start_date")
	}

	return booking.CreateRequest{
		PackageID:      packageID,
		HotelID:        hotelID,
		FlightID:       flightID,
		Name:           req.Name,
		NumberOfPeople: req.NumberOfPeople,
		StartDate:      startDate,
		Email:          req.Email,
		DepartureCity:  req.DepartureCity,
		Rooms:          req.Rooms,
	}, nil
}

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		badRequest(c, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

func unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
}

func respondErr(c *gin.Context, err error) {
	if err == nil {
		c.Status(http.StatusNoContent)
		return
	}

	switch {
	// composer service
	case errors.Is(err, composer.ErrPackageNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "custom package not found"})

	// booking service
	case errors.Is(err, booking.ErrNoTarget):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: booking.ErrNoTarget.Error()})
	case errors.Is(err, booking.ErrPackageNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "package not found"})
	case errors.Is(err, booking.ErrHotelNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "hotel not found"})
	case errors.Is(err, booking.ErrFlightNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "flight not found"})
	case errors.Is(err, booking.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "booking not found"})
	case errors.Is(err, booking.ErrAlreadyCancelled):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "booking already cancelled"})

	// inventory coordinator
	case errors.Is(err, inventory.ErrInsufficientInventory):
		c.JSON(http.StatusConflict, ErrorResponse{Error: unavailableMessage(err)})

	// refund service
	case errors.Is(err, refund.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "booking not found"})
	case errors.Is(err, refund.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "booking belongs to another user"})
	case errors.Is(err, refund.ErrNotRefundable):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "only confirmed bookings can be refunded"})
	case errors.Is(err, refund.ErrAlreadyProcessed):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "refund already requested or processed"})

	// loyalty service
	case errors.Is(err, loyalty.ErrUserNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "user not found"})
	case errors.Is(err, loyalty.ErrInsufficientPoints):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "insufficient loyalty points"})
	case errors.Is(err, loyalty.ErrInvalidPoints):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "points must be positive"})

	// payments service
	case errors.Is(err, payments.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "booking not found"})
	case errors.Is(err, payments.ErrPaymentNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "payment not found"})
	case errors.Is(err, payments.ErrAlreadyPaid):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "installment already paid"})
	case errors.Is(err, payments.ErrInvoiceUnavailable):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "invoice is only available for paid installments"})

	// query service
	case errors.Is(err, query.ErrFlightNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "flight not found"})
	case errors.Is(err, query.ErrHotelNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "hotel not found"})
	case errors.Is(err, query.ErrEntertainmentNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "entertainment not found"})
	case errors.Is(err, query.ErrTourPackageNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "tour package not found"})
	case errors.Is(err, query.ErrPackageNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "custom package not found"})

	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

// unavailableMessage digs the item description out of the coordinator error
// chain so 409 responses say which item ran out.
func unavailableMessage(err error) string {
	var ue *inventory.UnavailableError
	if errors.As(err, &ue) {
		return ue.Error()
	}
	return "insufficient inventory"
}
