package allocation_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/BavyaVasu/leave-management/internal/allocation"
	allocationerrors "github.com/BavyaVasu/leave-management/internal/allocation/errors"
	allocationMock "github.com/BavyaVasu/leave-management/internal/allocation/mock"
	"github.com/BavyaVasu/leave-management/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newRouter(svc allocation.Service, employeeID *uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := allocation.NewHandler(svc, zap.NewNop())
	r := gin.New()
	if employeeID != nil {
		r.Use(func(c *gin.Context) {
			ctx := contextutil.WithEmployeeID(c.Request.Context(), *employeeID)
			c.Request = c.Request.WithContext(ctx)
			c.Next()
		})
	}
	r.POST("/leave-types/:id/allocations", h.Generate)
	r.GET("/allocations/me", h.Mine)
	r.GET("/allocations/employees", h.ListEmployees)
	r.GET("/allocations/employees/:employee_id", h.ListByEmployee)
	r.PUT("/allocations/:id", h.UpdateNumberOfDays)
	return r
}

func TestAllocationHandler_Generate(t *testing.T) {
	typeID := uuid.New()

	t.Run("empty body uses current period", func(t *testing.T) {
		svc := allocationMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().CurrentPeriod().Return(2024)
		svc.EXPECT().
			GenerateYearlyAllocation(gomock.Any(), typeID, 2024).
			Return(allocation.GenerateResult{LeaveTypeID: typeID.String(), Period: 2024, Created: 3}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/leave-types/"+typeID.String()+"/allocations", nil)
		newRouter(svc, nil).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"created":3`)
	})

	t.Run("explicit period", func(t *testing.T) {
		svc := allocationMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().CurrentPeriod().Return(2024)
		svc.EXPECT().GenerateYearlyAllocation(gomock.Any(), typeID, 2025).Return(allocation.GenerateResult{}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/leave-types/"+typeID.String()+"/allocations", strings.NewReader(`{"period":2025}`))
		req.Header.Set("Content-Type", "application/json")
		newRouter(svc, nil).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		svc := allocationMock.NewMockService(gomock.NewController(t))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/leave-types/nope/allocations", nil)
		newRouter(svc, nil).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("conflict", func(t *testing.T) {
		svc := allocationMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().CurrentPeriod().Return(2024)
		svc.EXPECT().GenerateYearlyAllocation(gomock.Any(), typeID, 2024).Return(allocation.GenerateResult{}, allocationerrors.ErrAllocationConflict)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/leave-types/"+typeID.String()+"/allocations", nil)
		newRouter(svc, nil).ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestAllocationHandler_Mine(t *testing.T) {
	me := uuid.New()

	t.Run("lists own allocations", func(t *testing.T) {
		svc := allocationMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().CurrentPeriod().Return(2024)
		svc.EXPECT().ListByEmployee(gomock.Any(), me, 2024).Return([]allocation.AllocationResponse{{ID: "a"}}, nil)

		w := httptest.NewRecorder()
		newRouter(svc, &me).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/allocations/me", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		svc := allocationMock.NewMockService(gomock.NewController(t))

		w := httptest.NewRecorder()
		newRouter(svc, nil).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/allocations/me", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("bad period", func(t *testing.T) {
		svc := allocationMock.NewMockService(gomock.NewController(t))

		w := httptest.NewRecorder()
		newRouter(svc, &me).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/allocations/me?period=abc", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAllocationHandler_ListByEmployee(t *testing.T) {
	emp := uuid.New()
	svc := allocationMock.NewMockService(gomock.NewController(t))
	svc.EXPECT().ListByEmployee(gomock.Any(), emp, 2023).Return(nil, nil)

	w := httptest.NewRecorder()
	newRouter(svc, nil).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/allocations/employees/"+emp.String()+"?period=2023", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAllocationHandler_UpdateNumberOfDays(t *testing.T) {
	id := uuid.New()

	t.Run("updated", func(t *testing.T) {
		svc := allocationMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().UpdateNumberOfDays(gomock.Any(), id, 12).Return(allocation.AllocationResponse{NumberOfDays: 12}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/allocations/"+id.String(), strings.NewReader(`{"number_of_days":12}`))
		req.Header.Set("Content-Type", "application/json")
		newRouter(svc, nil).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("negative rejected by binding", func(t *testing.T) {
		svc := allocationMock.NewMockService(gomock.NewController(t))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/allocations/"+id.String(), strings.NewReader(`{"number_of_days":-2}`))
		req.Header.Set("Content-Type", "application/json")
		newRouter(svc, nil).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing allocation", func(t *testing.T) {
		svc := allocationMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().UpdateNumberOfDays(gomock.Any(), id, 1).Return(allocation.AllocationResponse{}, allocationerrors.ErrAllocationNotFound)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/allocations/"+id.String(), strings.NewReader(`{"number_of_days":1}`))
		req.Header.Set("Content-Type", "application/json")
		newRouter(svc, nil).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
