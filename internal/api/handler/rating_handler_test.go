package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/storerating/platform/internal/core/domain"
	"github.com/storerating/platform/internal/core/ports"
)

type stubRatingService struct {
	submitFn func(ctx context.Context, userID, storeID int64, score int) (*ports.SubmitResult, error)
}

func (s *stubRatingService) Submit(ctx context.Context, userID, storeID int64, score int) (*ports.SubmitResult, error) {
	return s.submitFn(ctx, userID, storeID, score)
}

func (s *stubRatingService) ListForStore(context.Context, int64) ([]ports.StoreRatingEntry, error) {
	return nil, nil
}

func (s *stubRatingService) StoreAggregate(context.Context, int64) (domain.StoreAggregate, error) {
	return domain.StoreAggregate{}, nil
}

func submitRequest(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/v1/stores/3/ratings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/stores/:id/ratings")
	c.SetParamNames("id")
	c.SetParamValues("3")
	c.Set("identity", domain.Identity{UserID: 7, Role: domain.RoleRater})
	return c, rec
}

func TestRatingHandler_Submit_Created(t *testing.T) {
	e := newTestEcho()
	stub := &stubRatingService{
		submitFn: func(ctx context.Context, userID, storeID int64, score int) (*ports.SubmitResult, error) {
			if userID != 7 || storeID != 3 || score != 4 {
				t.Fatalf("unexpected args: %d %d %d", userID, storeID, score)
			}
			return &ports.SubmitResult{
				Rating:  &domain.Rating{ID: 1, UserID: userID, StoreID: storeID, Score: score},
				Created: true,
			}, nil
		},
	}
	handler := NewRatingHandler(stub)

	c, rec := submitRequest(e, `{"score":4}`)
	if err := handler.Submit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 for a new rating, got %d", rec.Code)
	}
}

func TestRatingHandler_Submit_Updated(t *testing.T) {
	e := newTestEcho()
	stub := &stubRatingService{
		submitFn: func(ctx context.Context, userID, storeID int64, score int) (*ports.SubmitResult, error) {
			return &ports.SubmitResult{
				Rating:  &domain.Rating{ID: 1, UserID: userID, StoreID: storeID, Score: score},
				Created: false,
			}, nil
		},
	}
	handler := NewRatingHandler(stub)

	c, rec := submitRequest(e, `{"score":2}`)
	if err := handler.Submit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for a re-rate, got %d", rec.Code)
	}
}

func TestRatingHandler_Submit_ScoreOutOfRange(t *testing.T) {
	e := newTestEcho()
	stub := &stubRatingService{
		submitFn: func(ctx context.Context, userID, storeID int64, score int) (*ports.SubmitResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewRatingHandler(stub)

	for _, body := range []string{`{"score":0}`, `{"score":6}`, `{}`} {
		c, _ := submitRequest(e, body)
		err := handler.Submit(c)
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %v", body, err)
		}
	}
}

func TestRatingHandler_Submit_StoreNotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubRatingService{
		submitFn: func(ctx context.Context, userID, storeID int64, score int) (*ports.SubmitResult, error) {
			return nil, domain.ErrStoreNotFound
		},
	}
	handler := NewRatingHandler(stub)

	c, _ := submitRequest(e, `{"score":4}`)
	err := handler.Submit(c)
	if !errors.Is(err, domain.ErrStoreNotFound) {
		t.Fatalf("expected ErrStoreNotFound, got %v", err)
	}
}

func TestRatingHandler_Submit_BadStoreID(t *testing.T) {
	e := newTestEcho()
	handler := NewRatingHandler(&stubRatingService{})

	req := httptest.NewRequest(http.MethodPost, "/v1/stores/abc/ratings", strings.NewReader(`{"score":4}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")
	c.Set("identity", domain.Identity{UserID: 7, Role: domain.RoleRater})

	err := handler.Submit(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
