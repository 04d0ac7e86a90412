package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/auction-desk/internal/domain/auction"
	"github.com/riskibarqy/auction-desk/internal/roster"
	"github.com/riskibarqy/auction-desk/internal/usecase"
)

func TestWriteSuccess_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	if _, ok := body["data"]; !ok {
		t.Fatalf("expected data key in success response")
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("did not expect error key in success response")
	}
}

func TestWriteError_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: bad payload", usecase.ErrInvalidInput))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	errorObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object in response")
	}
	if got, _ := errorObj["status"].(string); got != "INVALID_ARGUMENT" {
		t.Fatalf("expected error status INVALID_ARGUMENT, got %v", errorObj["status"])
	}
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantHTTP   int
		wantReason string
		wantStatus string
	}{
		{
			name:       "invalid input",
			err:        fmt.Errorf("%w: bad payload", usecase.ErrInvalidInput),
			wantHTTP:   http.StatusBadRequest,
			wantReason: "invalidInput",
			wantStatus: "INVALID_ARGUMENT",
		},
		{
			name:       "not found",
			err:        fmt.Errorf("%w: team=t1", usecase.ErrNotFound),
			wantHTTP:   http.StatusNotFound,
			wantReason: "notFound",
			wantStatus: "NOT_FOUND",
		},
		{
			name:       "roster team missing",
			err:        fmt.Errorf("remove: %w", roster.ErrTeamNotFound),
			wantHTTP:   http.StatusNotFound,
			wantReason: "notFound",
			wantStatus: "NOT_FOUND",
		},
		{
			name:       "unauthorized",
			err:        fmt.Errorf("%w: invalid admin token", usecase.ErrUnauthorized),
			wantHTTP:   http.StatusUnauthorized,
			wantReason: "unauthorized",
			wantStatus: "UNAUTHENTICATED",
		},
		{
			name:       "dependency unavailable",
			err:        fmt.Errorf("%w: insert team", usecase.ErrDependencyUnavailable),
			wantHTTP:   http.StatusServiceUnavailable,
			wantReason: "dependencyUnavailable",
			wantStatus: "UNAVAILABLE",
		},
		{
			name:       "already sold",
			err:        fmt.Errorf("%w: player=p1 owner=t1", auction.ErrAlreadySold),
			wantHTTP:   http.StatusConflict,
			wantReason: "playerAlreadySold",
			wantStatus: "FAILED_PRECONDITION",
		},
		{
			name:       "below base price",
			err:        fmt.Errorf("%w: price=50 base=100", auction.ErrBelowBasePrice),
			wantHTTP:   http.StatusBadRequest,
			wantReason: "invalidSale",
			wantStatus: "INVALID_ARGUMENT",
		},
		{
			name:       "insufficient funds",
			err:        fmt.Errorf("%w: price=500 purse=100", auction.ErrInsufficientFunds),
			wantHTTP:   http.StatusBadRequest,
			wantReason: "invalidSale",
			wantStatus: "INVALID_ARGUMENT",
		},
		{
			name:       "duplicate id",
			err:        fmt.Errorf("load: %w", roster.ErrDuplicateID),
			wantHTTP:   http.StatusConflict,
			wantReason: "duplicateID",
			wantStatus: "ALREADY_EXISTS",
		},
		{
			name:       "unknown error",
			err:        fmt.Errorf("boom"),
			wantHTTP:   http.StatusInternalServerError,
			wantReason: "internalError",
			wantStatus: "INTERNAL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError(context.Background(), tt.err)
			if got.HTTPStatus != tt.wantHTTP || got.Reason != tt.wantReason || got.Status != tt.wantStatus {
				t.Fatalf("mapError=%+v want http=%d reason=%s status=%s", got, tt.wantHTTP, tt.wantReason, tt.wantStatus)
			}
		})
	}
}
