//go:build e2e

package booking_test

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"staybook/internal/domain/user"
	"staybook/internal/handler/dto/request"
	"staybook/internal/handler/dto/response"
	"staybook/tests/common/authtest"
	"staybook/tests/common/dbtest"
	"staybook/tests/common/httptest"
	"staybook/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL     = "/api/bookings"
	availabilityURL = "/api/bookings/availability"
	quoteURL        = "/api/bookings/quote"
)

type BookingSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func (s *BookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) dateOffset(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

func (s *BookingSuite) createGuest(email string) (uuid.UUID, string) {
	t := s.T()
	userID := dbtest.CreateTestUser(t, s.DB, email, string(user.RoleGuest))
	return userID, s.jwtHelper.GenerateToken(t, userID, user.RoleGuest)
}

func (s *BookingSuite) createAdmin(email string) (uuid.UUID, string) {
	t := s.T()
	adminID := dbtest.CreateTestUser(t, s.DB, email, string(user.RoleAdmin))
	return adminID, s.jwtHelper.GenerateToken(t, adminID, user.RoleAdmin)
}

func (s *BookingSuite) createBooking(token string, propertyID uuid.UUID, checkInOffset, checkOutOffset int) response.BookingResponse {
	t := s.T()

	reqBody := request.CreateBookingRequest{
		PropertyID:   propertyID,
		CheckIn:      s.dateOffset(checkInOffset),
		CheckOut:     s.dateOffset(checkOutOffset),
		Guests:       2,
		ContactPhone: "+1-555-0100",
		ContactEmail: "guest@example.com",
	}

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.BookingResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	return created
}

// =============================================================================
// TestCreateBooking
// =============================================================================

func (s *BookingSuite) TestCreateBooking() {
	s.Run("Normal case: guest books an available property", func() {
		t := s.T()

		_, token := s.createGuest("guest@example.com")
		propertyID := dbtest.CreateTestProperty(t, s.DB, "Seaside Flat", 15000, 4)

		created := s.createBooking(token, propertyID, 30, 33)

		expected := response.BookingResponse{
			PropertyID:      propertyID,
			PropertyTitle:   "Seaside Flat",
			CheckIn:         s.dateOffset(30),
			CheckOut:        s.dateOffset(33),
			Nights:          3,
			Guests:          2,
			ContactPhone:    "+1-555-0100",
			ContactEmail:    "guest@example.com",
			TotalPriceCents: 45000,
			Status:          "pending",
			PaymentStatus:   "unpaid",
			Confirmed:       false,
		}

		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.BookingResponse{}, "ID", "UserID", "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, created, opts...); diff != "" {
			t.Errorf("booking response mismatch (-want +got):\n%s", diff)
		}

		// Creation writes the initial history entry and a notification.
		hw := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+created.ID.String()+"/history", nil, token)
		require.Equal(t, http.StatusOK, hw.Code)
		var history []response.HistoryEntryResponse
		require.NoError(t, httptest.DecodeResponseBody(t, hw.Body, &history))
		require.Len(t, history, 1)
		require.Equal(t, "", history[0].OldStatus)
		require.Equal(t, "pending", history[0].NewStatus)

		nw := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/notifications", nil, token)
		require.Equal(t, http.StatusOK, nw.Code)
		var notifications []response.NotificationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, nw.Body, &notifications))
		require.Len(t, notifications, 1)
		require.Equal(t, "booking_created", notifications[0].Type)
		require.False(t, notifications[0].IsRead)
	})

	s.Run("Error case: overlapping stay is rejected with 409", func() {
		t := s.T()

		_, token := s.createGuest("first@example.com")
		_, otherToken := s.createGuest("second@example.com")
		propertyID := dbtest.CreateTestProperty(t, s.DB, "Popular Loft", 15000, 4)

		s.createBooking(token, propertyID, 30, 35)

		reqBody := request.CreateBookingRequest{
			PropertyID: propertyID,
			CheckIn:    s.dateOffset(33),
			CheckOut:   s.dateOffset(38),
			Guests:     2,
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, otherToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "not available")
	})

	s.Run("Normal case: back-to-back stays share a date without conflict", func() {
		t := s.T()

		_, token := s.createGuest("first@example.com")
		_, otherToken := s.createGuest("second@example.com")
		propertyID := dbtest.CreateTestProperty(t, s.DB, "Turnover Flat", 15000, 4)

		s.createBooking(token, propertyID, 30, 33)
		// Next guest checks in on the previous check-out date.
		created := s.createBooking(otherToken, propertyID, 33, 36)
		require.Equal(t, "pending", created.Status)
	})

	s.Run("Error case: past check-in is rejected", func() {
		t := s.T()

		_, token := s.createGuest("guest@example.com")
		propertyID := dbtest.CreateTestProperty(t, s.DB, "Seaside Flat", 15000, 4)

		reqBody := request.CreateBookingRequest{
			PropertyID: propertyID,
			CheckIn:    s.dateOffset(-2),
			CheckOut:   s.dateOffset(3),
			Guests:     2,
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
	})

	s.Run("Error case: guest count above capacity is rejected", func() {
		t := s.T()

		_, token := s.createGuest("guest@example.com")
		propertyID := dbtest.CreateTestProperty(t, s.DB, "Tiny Studio", 9000, 2)

		reqBody := request.CreateBookingRequest{
			PropertyID: propertyID,
			CheckIn:    s.dateOffset(30),
			CheckOut:   s.dateOffset(33),
			Guests:     5,
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
	})

	s.Run("Error case: unauthenticated request is rejected", func() {
		t := s.T()

		propertyID := dbtest.CreateTestProperty(t, s.DB, "Seaside Flat", 15000, 4)
		reqBody := request.CreateBookingRequest{
			PropertyID: propertyID,
			CheckIn:    s.dateOffset(30),
			CheckOut:   s.dateOffset(33),
			Guests:     2,
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestBookingLifecycle
// =============================================================================

func (s *BookingSuite) TestBookingLifecycle() {
	s.Run("Normal case: confirm then cancel with refund", func() {
		t := s.T()

		_, token := s.createGuest("guest@example.com")
		propertyID := dbtest.CreateTestProperty(t, s.DB, "Seaside Flat", 15000, 4)
		created := s.createBooking(token, propertyID, 30, 33)

		// Confirm.
		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/transition", bookingsURL, created.ID),
			request.TransitionBookingRequest{Status: "confirmed", Reason: "payment received"}, token)
		var confirmed response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &confirmed)
		require.Equal(t, "confirmed", confirmed.Status)
		require.True(t, confirmed.Confirmed)

		// Cancel with refund. 2% cancellation fee on 45000 is 900.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/cancel", bookingsURL, created.ID),
			request.CancelBookingRequest{Reason: "change of plans", RequestRefund: true}, token)
		var cancelled response.CancelResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &cancelled)
		require.Equal(t, "cancelled", cancelled.Booking.Status)
		require.True(t, cancelled.RefundRequested)
		require.NotNil(t, cancelled.RefundAmountCents)
		require.Equal(t, int64(44100), *cancelled.RefundAmountCents)
		require.NotNil(t, cancelled.DeductionCents)
		require.Equal(t, int64(900), *cancelled.DeductionCents)

		// History is newest first: cancelled, confirmed, pending.
		hw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("%s/%s/history", bookingsURL, created.ID), nil, token)
		require.Equal(t, http.StatusOK, hw.Code)
		var history []response.HistoryEntryResponse
		require.NoError(t, httptest.DecodeResponseBody(t, hw.Body, &history))
		require.Len(t, history, 3)
		require.Equal(t, "cancelled", history[0].NewStatus)
		require.Equal(t, "confirmed", history[0].OldStatus)
		require.NotNil(t, history[0].RefundAmountCents)
		require.Equal(t, int64(44100), *history[0].RefundAmountCents)
		require.Equal(t, "confirmed", history[1].NewStatus)
		require.Equal(t, "pending", history[2].NewStatus)

		// Each lifecycle step notified the owner.
		nw := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/notifications", nil, token)
		require.Equal(t, http.StatusOK, nw.Code)
		var notifications []response.NotificationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, nw.Body, &notifications))
		require.Len(t, notifications, 3)
		require.Equal(t, "booking_cancelled", notifications[0].Type)
	})

	s.Run("Error case: owner cannot complete before checkout", func() {
		t := s.T()

		_, token := s.createGuest("guest@example.com")
		propertyID := dbtest.CreateTestProperty(t, s.DB, "Seaside Flat", 15000, 4)
		created := s.createBooking(token, propertyID, 30, 33)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/transition", bookingsURL, created.ID),
			request.TransitionBookingRequest{Status: "confirmed"}, token)
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/transition", bookingsURL, created.ID),
			request.TransitionBookingRequest{Status: "completed"}, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Invalid status transition")
	})

	s.Run("Normal case: admin completes a stay early", func() {
		t := s.T()

		_, token := s.createGuest("guest@example.com")
		_, adminToken := s.createAdmin("admin@example.com")
		propertyID := dbtest.CreateTestProperty(t, s.DB, "Seaside Flat", 15000, 4)
		created := s.createBooking(token, propertyID, 30, 33)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/transition", bookingsURL, created.ID),
			request.TransitionBookingRequest{Status: "confirmed"}, adminToken)
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/transition", bookingsURL, created.ID),
			request.TransitionBookingRequest{Status: "completed"}, adminToken)
		var completed response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &completed)
		require.Equal(t, "completed", completed.Status)
	})

	s.Run("Error case: stranger cannot act on another guest's booking", func() {
		t := s.T()

		_, token := s.createGuest("owner@example.com")
		_, strangerToken := s.createGuest("stranger@example.com")
		propertyID := dbtest.CreateTestProperty(t, s.DB, "Seaside Flat", 15000, 4)
		created := s.createBooking(token, propertyID, 30, 33)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/transition", bookingsURL, created.ID),
			request.TransitionBookingRequest{Status: "confirmed"}, strangerToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Access denied")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("%s/%s", bookingsURL, created.ID), nil, strangerToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Access denied")
	})

	s.Run("Error case: cancelled booking cannot be confirmed again", func() {
		t := s.T()

		_, token := s.createGuest("guest@example.com")
		propertyID := dbtest.CreateTestProperty(t, s.DB, "Seaside Flat", 15000, 4)
		created := s.createBooking(token, propertyID, 30, 33)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/cancel", bookingsURL, created.ID),
			request.CancelBookingRequest{}, token)
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/transition", bookingsURL, created.ID),
			request.TransitionBookingRequest{Status: "confirmed"}, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Invalid status transition")
	})
}

// =============================================================================
// TestConcurrentRequests
// =============================================================================

type raceResult struct {
	code int
	body string
}

func (s *BookingSuite) TestConcurrentRequests() {
	s.Run("Normal case: simultaneous creates for the same dates yield one booking", func() {
		t := s.T()

		_, firstToken := s.createGuest("first@example.com")
		_, secondToken := s.createGuest("second@example.com")
		propertyID := dbtest.CreateTestProperty(t, s.DB, "Contested Loft", 15000, 4)

		reqBody := request.CreateBookingRequest{
			PropertyID:   propertyID,
			CheckIn:      s.dateOffset(30),
			CheckOut:     s.dateOffset(33),
			Guests:       2,
			ContactPhone: "+1-555-0100",
			ContactEmail: "guest@example.com",
		}

		tokens := []string{firstToken, secondToken}
		results := make([]raceResult, len(tokens))

		start := make(chan struct{})
		var wg sync.WaitGroup
		for i, token := range tokens {
			wg.Add(1)
			go func(i int, token string) {
				defer wg.Done()
				<-start
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
				results[i] = raceResult{code: w.Code, body: w.Body.String()}
			}(i, token)
		}
		close(start)
		wg.Wait()

		var created, conflicted int
		for _, r := range results {
			switch r.code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicted++
				require.Contains(t, r.body, "not available")
			default:
				t.Fatalf("unexpected status %d: %s", r.code, r.body)
			}
		}
		require.Equal(t, 1, created)
		require.Equal(t, 1, conflicted)

		var stored int
		require.NoError(t, s.DB.QueryRow(context.Background(),
			"SELECT COUNT(*) FROM bookings WHERE property_id = $1", propertyID).Scan(&stored))
		require.Equal(t, 1, stored)
	})

	s.Run("Normal case: racing transitions apply exactly once", func() {
		t := s.T()

		_, token := s.createGuest("guest@example.com")
		propertyID := dbtest.CreateTestProperty(t, s.DB, "Seaside Flat", 15000, 4)
		booked := s.createBooking(token, propertyID, 30, 33)

		url := fmt.Sprintf("%s/%s/transition", bookingsURL, booked.ID)
		reqBody := request.TransitionBookingRequest{Status: "confirmed"}
		results := make([]raceResult, 2)

		start := make(chan struct{})
		var wg sync.WaitGroup
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				<-start
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, reqBody, token)
				results[i] = raceResult{code: w.Code, body: w.Body.String()}
			}(i)
		}
		close(start)
		wg.Wait()

		var applied, conflicted int
		for _, r := range results {
			switch r.code {
			case http.StatusOK:
				applied++
			case http.StatusConflict:
				conflicted++
				require.Contains(t, r.body, "modified concurrently")
			default:
				t.Fatalf("unexpected status %d: %s", r.code, r.body)
			}
		}
		require.Equal(t, 1, applied)
		require.Equal(t, 1, conflicted)

		// Exactly one transition landed: detail shows confirmed and the
		// history gained a single entry beyond creation.
		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("%s/%s", bookingsURL, booked.ID), nil, token)
		var detail response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &detail)
		require.Equal(t, "confirmed", detail.Status)

		hw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("%s/%s/history", bookingsURL, booked.ID), nil, token)
		require.Equal(t, http.StatusOK, hw.Code)
		var history []response.HistoryEntryResponse
		require.NoError(t, httptest.DecodeResponseBody(t, hw.Body, &history))
		require.Len(t, history, 2)
	})
}

// =============================================================================
// TestAvailabilityAndQuote
// =============================================================================

func (s *BookingSuite) TestAvailabilityAndQuote() {
	s.Run("Normal case: availability flips after booking", func() {
		t := s.T()

		_, token := s.createGuest("guest@example.com")
		propertyID := dbtest.CreateTestProperty(t, s.DB, "Seaside Flat", 15000, 4)

		checkURL := fmt.Sprintf("%s?property_id=%s&check_in=%s&check_out=%s",
			availabilityURL, propertyID, s.dateOffset(30), s.dateOffset(33))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, checkURL, nil, token)
		var avail response.AvailabilityResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &avail)
		require.True(t, avail.Available)
		require.Equal(t, 3, avail.Nights)
		require.Equal(t, int64(15000), avail.PricePerNightCents)

		s.createBooking(token, propertyID, 30, 33)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, checkURL, nil, token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &avail)
		require.False(t, avail.Available)
	})

	s.Run("Normal case: quote breaks the price down without booking", func() {
		t := s.T()

		_, token := s.createGuest("guest@example.com")
		propertyID := dbtest.CreateTestProperty(t, s.DB, "Seaside Flat", 15000, 4)

		url := fmt.Sprintf("%s?property_id=%s&check_in=%s&check_out=%s&guests=2",
			quoteURL, propertyID, s.dateOffset(30), s.dateOffset(33))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, token)
		var quote response.QuoteResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &quote)
		require.Equal(t, 3, quote.Nights)
		require.Equal(t, int64(45000), quote.BaseCents)
		require.Equal(t, int64(2250), quote.TaxCents)
		require.Equal(t, int64(900), quote.FeeCents)
		require.Equal(t, int64(48150), quote.TotalCents)
	})

	s.Run("Error case: unknown property returns 404", func() {
		t := s.T()

		_, token := s.createGuest("guest@example.com")
		url := fmt.Sprintf("%s?property_id=%s&check_in=%s&check_out=%s",
			availabilityURL, uuid.New(), s.dateOffset(30), s.dateOffset(33))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Property not found")
	})
}

// =============================================================================
// TestReceipt
// =============================================================================

func (s *BookingSuite) TestReceipt() {
	s.Run("Normal case: receipt carries the full breakdown", func() {
		t := s.T()

		_, token := s.createGuest("guest@example.com")
		propertyID := dbtest.CreateTestProperty(t, s.DB, "Seaside Flat", 15000, 4)
		created := s.createBooking(token, propertyID, 30, 33)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("%s/%s/receipt", bookingsURL, created.ID), nil, token)
		var receipt response.ReceiptResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &receipt)

		require.Equal(t, created.ID, receipt.BookingID)
		require.Equal(t, "Seaside Flat", receipt.Property.Title)
		require.Equal(t, 3, receipt.Pricing.Nights)
		require.Equal(t, int64(45000), receipt.Pricing.BaseCents)
		require.Equal(t, int64(48150), receipt.Pricing.SubtotalCents)
		require.Equal(t, int64(45000), receipt.Pricing.TotalPaidCents)
		require.True(t, receipt.StatusInfo.CanCancel)
		require.False(t, receipt.StatusInfo.CanComplete)
	})
}

// =============================================================================
// TestNotifications
// =============================================================================

func (s *BookingSuite) TestNotifications() {
	s.Run("Normal case: read tracking across the lifecycle", func() {
		t := s.T()

		_, token := s.createGuest("guest@example.com")
		propertyID := dbtest.CreateTestProperty(t, s.DB, "Seaside Flat", 15000, 4)
		created := s.createBooking(token, propertyID, 30, 33)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/transition", bookingsURL, created.ID),
			request.TransitionBookingRequest{Status: "confirmed"}, token)
		require.Equal(t, http.StatusOK, w.Code)

		var count response.UnreadCountResponse
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/notifications/unread-count", nil, token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &count)
		require.Equal(t, int64(2), count.UnreadCount)

		var notifications []response.NotificationResponse
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/notifications", nil, token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &notifications)
		require.Len(t, notifications, 2)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("/api/notifications/%s/read", notifications[0].ID), nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/notifications/unread-count", nil, token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &count)
		require.Equal(t, int64(1), count.UnreadCount)

		var marked response.MarkAllReadResponse
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/notifications/read-all", nil, token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &marked)
		require.Equal(t, int64(1), marked.UpdatedCount)
	})

	s.Run("Error case: guests cannot delete notifications", func() {
		t := s.T()

		_, token := s.createGuest("guest@example.com")
		propertyID := dbtest.CreateTestProperty(t, s.DB, "Seaside Flat", 15000, 4)
		s.createBooking(token, propertyID, 30, 33)

		var notifications []response.NotificationResponse
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/notifications", nil, token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &notifications)
		require.Len(t, notifications, 1)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete,
			fmt.Sprintf("/api/notifications/%s", notifications[0].ID), nil, token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("Normal case: admin deletes a notification", func() {
		t := s.T()

		_, token := s.createGuest("guest@example.com")
		_, adminToken := s.createAdmin("admin@example.com")
		propertyID := dbtest.CreateTestProperty(t, s.DB, "Seaside Flat", 15000, 4)
		s.createBooking(token, propertyID, 30, 33)

		var notifications []response.NotificationResponse
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/notifications", nil, token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &notifications)
		require.Len(t, notifications, 1)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete,
			fmt.Sprintf("/api/notifications/%s", notifications[0].ID), nil, adminToken)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/notifications", nil, token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &notifications)
		require.Empty(t, notifications)
	})
}

// =============================================================================
// TestListBookings
// =============================================================================

func (s *BookingSuite) TestListBookings() {
	s.Run("Normal case: list shows only the caller's bookings, newest first", func() {
		t := s.T()

		_, token := s.createGuest("guest@example.com")
		_, otherToken := s.createGuest("other@example.com")
		propertyID := dbtest.CreateTestProperty(t, s.DB, "Seaside Flat", 15000, 4)
		otherPropertyID := dbtest.CreateTestProperty(t, s.DB, "Cedar Cabin", 22000, 6)

		first := s.createBooking(token, propertyID, 30, 33)
		second := s.createBooking(token, otherPropertyID, 40, 42)
		s.createBooking(otherToken, propertyID, 50, 53)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, token)
		var list []response.BookingListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.Len(t, list, 2)
		require.Equal(t, second.ID, list[0].ID)
		require.Equal(t, first.ID, list[1].ID)
	})
}
