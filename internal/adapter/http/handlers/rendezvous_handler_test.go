package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gmcl_backoffice/internal/adapter/http/handlers/mocks"
	"gmcl_backoffice/internal/domain/entities"
	"gmcl_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func rendezVousBody() map[string]any {
	return map[string]any{
		"clientFullName":    "Jean Tremblay",
		"clientPhoneNumber": "+15145550001",
		"clientEmail":       "jean@example.com",
		"date":              "2024-01-15",
		"heure":             "10:30",
		"type":              "Inspection",
		"preferredLanguage": "fr",
		"contactMethod":     "email",
	}
}

func TestRendezVousHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRendezVousUseCase(ctrl)
		h := NewRendezVousHandler(uc)

		r := gin.New()
		r.POST("/api/rendezvous/create", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/api/rendezvous/create", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unparseable date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRendezVousUseCase(ctrl)
		h := NewRendezVousHandler(uc)

		r := gin.New()
		r.POST("/api/rendezvous/create", h.Create)

		body := rendezVousBody()
		body["date"] = "15/01/2024"
		raw, _ := json.Marshal(body)
		req := httptest.NewRequest(http.MethodPost, "/api/rendezvous/create", bytes.NewBuffer(raw))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRendezVousUseCase(ctrl)
		h := NewRendezVousHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, cmd usecase.CreateRendezVousCommand) (entities.RendezVous, error) {
				want := time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local)
				if !cmd.Date.Equal(want) {
					t.Fatalf("unexpected date %v", cmd.Date)
				}
				return entities.RendezVous{ID: "rdv-1", ClientFullName: cmd.ClientFullName}, nil
			})

		r := gin.New()
		r.POST("/api/rendezvous/create", h.Create)

		raw, _ := json.Marshal(rendezVousBody())
		req := httptest.NewRequest(http.MethodPost, "/api/rendezvous/create", bytes.NewBuffer(raw))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var resp struct {
			Success bool                `json:"success"`
			Data    entities.RendezVous `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad response: %v", err)
		}
		if !resp.Success || resp.Data.ID != "rdv-1" {
			t.Fatalf("unexpected response %+v", resp)
		}
	})
}

func TestRendezVousHandler_CreateAndConfirm(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIRendezVousUseCase(ctrl)
	h := NewRendezVousHandler(uc)

	uc.EXPECT().CreateAndConfirm(gomock.Any(), gomock.Any(), "Marie").Return(entities.RendezVous{
		ID: "rdv-1", Confirmation: true, ConfirmedBy: "Marie",
	}, nil)

	r := gin.New()
	r.POST("/api/rendezvous/create-confirm", h.CreateAndConfirm)

	body := rendezVousBody()
	body["confirmedBy"] = "Marie"
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/api/rendezvous/create-confirm", bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestRendezVousHandler_Confirm(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing confirmedBy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRendezVousUseCase(ctrl)
		h := NewRendezVousHandler(uc)

		r := gin.New()
		r.PUT("/api/rendezvous/confirm/:id", h.Confirm)

		req := httptest.NewRequest(http.MethodPut, "/api/rendezvous/confirm/rdv-1", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRendezVousUseCase(ctrl)
		h := NewRendezVousHandler(uc)

		uc.EXPECT().Confirm(gomock.Any(), "missing", "Marie").Return(entities.RendezVous{}, usecase.ErrRendezVousNotFound)

		r := gin.New()
		r.PUT("/api/rendezvous/confirm/:id", h.Confirm)

		req := httptest.NewRequest(http.MethodPut, "/api/rendezvous/confirm/missing", bytes.NewBufferString(`{"confirmedBy":"Marie"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestRendezVousHandler_GetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIRendezVousUseCase(ctrl)
	h := NewRendezVousHandler(uc)

	uc.EXPECT().GetAll(gomock.Any(), "2024-01-10", "2024-01-12").Return([]entities.RendezVous{{ID: "rdv-1"}}, nil)

	r := gin.New()
	r.GET("/api/rendezvous/getAll", h.GetAll)

	req := httptest.NewRequest(http.MethodGet, "/api/rendezvous/getAll?startDate=2024-01-10&endDate=2024-01-12", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var list []entities.RendezVous
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if len(list) != 1 || list[0].ID != "rdv-1" {
		t.Fatalf("unexpected list %+v", list)
	}
}
