//go:build e2e

package tracker_test

import (
	"encoding/json"
	"net/http"
	"os"
	"testing"

	"mercado-tracker/internal/handler/dto/response"
	"mercado-tracker/tests/common/builder"
	"mercado-tracker/tests/common/httptest"
	"mercado-tracker/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	trackersURL = "/api/trackers"
	productsURL = "/api/products"
)

type TrackerSuite struct {
	e2e.SharedSuite
}

func TestTrackerSuite(t *testing.T) {
	suite.Run(t, new(TrackerSuite))
}

// snapshotDocument mirrors the durable JSON document. The e2e suite reads the
// confirmation code straight from it: the code is delivered out of band in
// production and must never be available through the API.
type snapshotDocument struct {
	Trackers []struct {
		ID               string `json:"id"`
		SearchTerm       string `json:"searchTerm"`
		Status           string `json:"status"`
		ConfirmationCode string `json:"confirmationCode"`
	} `json:"trackers"`
	Products []struct {
		ID        string `json:"id"`
		Thumbnail string `json:"thumbnail"`
	} `json:"products"`
}

func (s *TrackerSuite) readSnapshot() snapshotDocument {
	raw, err := os.ReadFile(s.SnapshotPath)
	require.NoError(s.T(), err, "snapshot file should exist after a mutation")

	var doc snapshotDocument
	require.NoError(s.T(), json.Unmarshal(raw, &doc))
	return doc
}

func (s *TrackerSuite) confirmationCodeFor(id string) string {
	for _, trk := range s.readSnapshot().Trackers {
		if trk.ID == id {
			require.NotEmpty(s.T(), trk.ConfirmationCode, "pending tracker should carry a code")
			return trk.ConfirmationCode
		}
	}
	s.T().Fatalf("tracker %s not found in snapshot", id)
	return ""
}

func (s *TrackerSuite) createTracker(term string) response.TrackerResponse {
	t := s.T()
	reqBody := builder.NewTrackerBuilder().
		With(func(b *builder.TrackerBuilder) { b.SearchTerm = term }).
		BuildCreateRequestDTO()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, trackersURL, reqBody)
	require.Equal(t, http.StatusCreated, w.Code, "tracker creation should succeed: %s", w.Body.String())

	var created response.TrackerResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	return created
}

func (s *TrackerSuite) TestTrackerLifecycle() {
	s.Run("create returns the pending tracker without its code", func() {
		created := s.createTracker("Playstation 5")

		expected := response.TrackerResponse{
			SearchTerm:    "Playstation 5",
			MinPrice:      3000,
			MaxPrice:      4000,
			Condition:     "all",
			Location:      "RJ",
			NotifyAddress: "+55 21 98888-8888",
			Status:        "pending",
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.TrackerResponse{}, "ID", "CreatedAt"),
		}
		if diff := cmp.Diff(expected, created, opts...); diff != "" {
			s.T().Errorf("tracker response mismatch (-want +got):\n%s", diff)
		}

		// The snapshot holds the code, the API response must not.
		code := s.confirmationCodeFor(created.ID)
		require.Len(s.T(), code, 4)
	})

	s.Run("confirm activates the tracker and runs the first poll", func() {
		t := s.T()

		s.Marketplace.SetState("BR-RJ", "TUxCUFJJTw")
		s.Marketplace.SetResults("Playstation 5",
			e2e.Listing("MLB1001", "Playstation 5 Slim 1TB", 3499.90),
			e2e.Listing("MLB1002", "Playstation 5 Digital", 3199.00),
		)

		created := s.createTracker("Playstation 5")
		code := s.confirmationCodeFor(created.ID)

		// Wrong code first: tracker stays pending, no poll happens.
		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			trackersURL+"/"+created.ID+"/confirm", map[string]string{"code": "0000"})
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, 0, s.Marketplace.SearchCount())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			trackersURL+"/"+created.ID+"/confirm", map[string]string{"code": code})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var confirmed response.TrackerResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &confirmed))
		require.Equal(t, "active", confirmed.Status)
		require.Equal(t, 1, s.Marketplace.SearchCount())

		// The immediate poll already recorded the listings.
		pw := httptest.PerformRequest(t, s.Router, http.MethodGet, productsURL, nil)
		require.Equal(t, http.StatusOK, pw.Code)

		var products []response.ProductResponse
		require.NoError(t, httptest.DecodeResponseBody(t, pw.Body, &products))
		require.Len(t, products, 2)
		require.Equal(t, "MLB1001", products[0].ID)
		require.Equal(t, "https://mlb-s1.example.com/MLB1001.jpg", products[0].Thumbnail,
			"thumbnail scheme should be upgraded to https")

		// The product history is durable.
		doc := s.readSnapshot()
		require.Len(t, doc.Products, 2)
	})

	s.Run("known listings are not duplicated by later polls", func() {
		t := s.T()

		s.Marketplace.SetResults("Playstation 5", e2e.Listing("MLB1001", "Playstation 5 Slim 1TB", 3499.90))

		first := s.createTracker("Playstation 5")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			trackersURL+"/"+first.ID+"/confirm", map[string]string{"code": s.confirmationCodeFor(first.ID)})
		require.Equal(t, http.StatusOK, w.Code)

		// A second tracker over the same term polls the same listing.
		second := s.createTracker("Playstation 5")
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			trackersURL+"/"+second.ID+"/confirm", map[string]string{"code": s.confirmationCodeFor(second.ID)})
		require.Equal(t, http.StatusOK, w.Code)

		pw := httptest.PerformRequest(t, s.Router, http.MethodGet, productsURL, nil)
		var products []response.ProductResponse
		require.NoError(t, httptest.DecodeResponseBody(t, pw.Body, &products))
		require.Len(t, products, 1)
	})

	s.Run("list shows trackers newest first without codes", func() {
		t := s.T()

		s.createTracker("first search")
		s.createTracker("second search")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, trackersURL, nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.NotContains(t, w.Body.String(), "confirmationCode")

		var listed []response.TrackerResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &listed))
		require.Len(t, listed, 2)
		require.Equal(t, "second search", listed[0].SearchTerm)
		require.Equal(t, "first search", listed[1].SearchTerm)
	})
}

func (s *TrackerSuite) TestResendCode() {
	s.Run("resend rotates the code and invalidates the old one", func() {
		t := s.T()

		created := s.createTracker("Nintendo Switch")
		oldCode := s.confirmationCodeFor(created.ID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			trackersURL+"/"+created.ID+"/resend-code", nil)
		require.Equal(t, http.StatusOK, w.Code)

		newCode := s.confirmationCodeFor(created.ID)
		if newCode != oldCode {
			ow := httptest.PerformRequest(t, s.Router, http.MethodPost,
				trackersURL+"/"+created.ID+"/confirm", map[string]string{"code": oldCode})
			require.Equal(t, http.StatusBadRequest, ow.Code, "old code must be dead after resend")
		}

		cw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			trackersURL+"/"+created.ID+"/confirm", map[string]string{"code": newCode})
		require.Equal(t, http.StatusOK, cw.Code)
	})

	s.Run("active tracker cannot resend", func() {
		t := s.T()

		created := s.createTracker("Nintendo Switch")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			trackersURL+"/"+created.ID+"/confirm", map[string]string{"code": s.confirmationCodeFor(created.ID)})
		require.Equal(t, http.StatusOK, w.Code)

		rw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			trackersURL+"/"+created.ID+"/resend-code", nil)
		require.Equal(t, http.StatusBadRequest, rw.Code)
	})
}

func (s *TrackerSuite) TestDelete() {
	s.Run("delete removes the tracker and is reflected in the snapshot", func() {
		t := s.T()

		created := s.createTracker("Xbox Series X")

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, trackersURL+"/"+created.ID, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var res response.SuccessResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.True(t, res.Success)

		require.Empty(t, s.readSnapshot().Trackers)

		// A second delete of the same id reports not-found.
		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, trackersURL+"/"+created.ID, nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("unknown and malformed ids report not-found", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, trackersURL+"/"+uuid.New().String(), nil)
		require.Equal(t, http.StatusNotFound, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, trackersURL+"/not-a-uuid", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
