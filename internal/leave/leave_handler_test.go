package leave_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/BavyaVasu/leave-management/internal/domain"
	"github.com/BavyaVasu/leave-management/internal/leave"
	leaveerrors "github.com/BavyaVasu/leave-management/internal/leave/errors"
	leaveMock "github.com/BavyaVasu/leave-management/internal/leave/mock"
	"github.com/BavyaVasu/leave-management/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Meta  json.RawMessage `json:"meta"`
	Error *struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	require.NoError(t, json.Unmarshal(body, &env))
	return env
}

type fakeRBAC struct {
	allowed bool
	calls   []domain.EnforceRequest
}

func (f *fakeRBAC) Enforce(_ context.Context, req domain.EnforceRequest) (bool, error) {
	f.calls = append(f.calls, req)
	return f.allowed, nil
}

func newRouter(svc leave.Service, rbac *fakeRBAC, employeeID *uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := leave.NewHandler(svc, rbac, zap.NewNop())
	r := gin.New()
	if employeeID != nil {
		r.Use(func(c *gin.Context) {
			c.Request = c.Request.WithContext(contextutil.WithEmployeeID(c.Request.Context(), *employeeID))
			c.Next()
		})
	}
	r.POST("/leave-requests", h.Create)
	r.GET("/leave-requests", h.ListAll)
	r.GET("/leave-requests/me", h.MyLeave)
	r.GET("/leave-requests/:id", h.GetByID)
	r.POST("/leave-requests/:id/approve", h.Approve)
	r.POST("/leave-requests/:id/reject", h.Reject)
	r.POST("/leave-requests/:id/cancel", h.Cancel)
	return r
}

func postJSON(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestLeaveHandler_Create(t *testing.T) {
	me := uuid.New()
	typeID := uuid.New()
	body := `{"leave_type_id":"` + typeID.String() + `","start_date":"2024-06-01","end_date":"2024-06-05"}`

	t.Run("created for caller", func(t *testing.T) {
		svc := leaveMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().
			Create(gomock.Any(), me, leave.CreateLeaveRequest{LeaveTypeID: typeID.String(), StartDate: "2024-06-01", EndDate: "2024-06-05"}).
			Return(leave.LeaveResponse{ID: "r1", Days: 4, Status: domain.StatusPending}, nil)

		w := httptest.NewRecorder()
		newRouter(svc, &fakeRBAC{}, &me).ServeHTTP(w, postJSON("/leave-requests", body))

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
	})

	t.Run("insufficient balance details reach the client", func(t *testing.T) {
		svc := leaveMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().Create(gomock.Any(), me, gomock.Any()).Return(leave.LeaveResponse{}, leaveerrors.InsufficientBalance(19, 16))

		w := httptest.NewRecorder()
		newRouter(svc, &fakeRBAC{}, &me).ServeHTTP(w, postJSON("/leave-requests", body))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		require.NotNil(t, env.Error)
		assert.Equal(t, "INSUFFICIENT_BALANCE", env.Error.Code)
		assert.Equal(t, float64(19), env.Error.Details["requested_days"])
		assert.Equal(t, float64(16), env.Error.Details["remaining_days"])
	})

	t.Run("validation error", func(t *testing.T) {
		svc := leaveMock.NewMockService(gomock.NewController(t))

		w := httptest.NewRecorder()
		newRouter(svc, &fakeRBAC{}, &me).ServeHTTP(w, postJSON("/leave-requests", `{"leave_type_id":"x"}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		svc := leaveMock.NewMockService(gomock.NewController(t))

		w := httptest.NewRecorder()
		newRouter(svc, &fakeRBAC{}, nil).ServeHTTP(w, postJSON("/leave-requests", body))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestLeaveHandler_Decisions(t *testing.T) {
	me := uuid.New()
	id := uuid.New()

	t.Run("approve", func(t *testing.T) {
		svc := leaveMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().Approve(gomock.Any(), me, id).Return(leave.LeaveResponse{Status: domain.StatusApproved}, nil)

		w := httptest.NewRecorder()
		newRouter(svc, &fakeRBAC{}, &me).ServeHTTP(w, postJSON("/leave-requests/"+id.String()+"/approve", ""))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("already actioned is a conflict", func(t *testing.T) {
		svc := leaveMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().Reject(gomock.Any(), me, id).Return(leave.LeaveResponse{}, leaveerrors.ErrRequestAlreadyActioned)

		w := httptest.NewRecorder()
		newRouter(svc, &fakeRBAC{}, &me).ServeHTTP(w, postJSON("/leave-requests/"+id.String()+"/reject", ""))

		assert.Equal(t, http.StatusConflict, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "INVALID_STATE", env.Error.Code)
	})

	t.Run("cancel by someone else", func(t *testing.T) {
		svc := leaveMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().Cancel(gomock.Any(), me, id).Return(leave.LeaveResponse{}, leaveerrors.ErrNotRequestOwner)

		w := httptest.NewRecorder()
		newRouter(svc, &fakeRBAC{}, &me).ServeHTTP(w, postJSON("/leave-requests/"+id.String()+"/cancel", ""))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		svc := leaveMock.NewMockService(gomock.NewController(t))

		w := httptest.NewRecorder()
		newRouter(svc, &fakeRBAC{}, &me).ServeHTTP(w, postJSON("/leave-requests/nope/approve", ""))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLeaveHandler_GetByID(t *testing.T) {
	me := uuid.New()
	id := uuid.New()

	t.Run("own request skips rbac", func(t *testing.T) {
		svc := leaveMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().GetByID(gomock.Any(), id).Return(leave.LeaveResponse{ID: id.String(), RequestingEmployeeID: me.String()}, nil)
		rbac := &fakeRBAC{}

		w := httptest.NewRecorder()
		newRouter(svc, rbac, &me).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leave-requests/"+id.String(), nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, rbac.calls)
	})

	t.Run("other request needs read_all", func(t *testing.T) {
		svc := leaveMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().GetByID(gomock.Any(), id).Return(leave.LeaveResponse{RequestingEmployeeID: uuid.NewString()}, nil)
		rbac := &fakeRBAC{allowed: false}

		w := httptest.NewRecorder()
		newRouter(svc, rbac, &me).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leave-requests/"+id.String(), nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
		require.Len(t, rbac.calls, 1)
		assert.Equal(t, "read_all", rbac.calls[0].Action)
	})

	t.Run("admin sees other request", func(t *testing.T) {
		svc := leaveMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().GetByID(gomock.Any(), id).Return(leave.LeaveResponse{RequestingEmployeeID: uuid.NewString()}, nil)

		w := httptest.NewRecorder()
		newRouter(svc, &fakeRBAC{allowed: true}, &me).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leave-requests/"+id.String(), nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestLeaveHandler_ListAll(t *testing.T) {
	me := uuid.New()
	svc := leaveMock.NewMockService(gomock.NewController(t))
	svc.EXPECT().ListAll(gomock.Any()).Return(leave.ListResponse{
		Counts:   leave.RequestCounts{Total: 3, Pending: 3},
		Requests: []leave.LeaveResponse{{ID: "a"}, {ID: "b"}, {ID: "c"}},
	}, nil)

	w := httptest.NewRecorder()
	newRouter(svc, &fakeRBAC{}, &me).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leave-requests?page=2&page_size=2", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	var got leave.ListResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, 3, got.Counts.Total)
	require.Len(t, got.Requests, 1)
	assert.Equal(t, "c", got.Requests[0].ID)
	assert.JSONEq(t, `{"total":3,"totalPages":2,"page":2,"pageSize":2}`, string(env.Meta))
}

func TestLeaveHandler_ListAll_PageFarPastEnd(t *testing.T) {
	me := uuid.New()
	svc := leaveMock.NewMockService(gomock.NewController(t))
	svc.EXPECT().ListAll(gomock.Any()).Return(leave.ListResponse{
		Counts:   leave.RequestCounts{Total: 1, Pending: 1},
		Requests: []leave.LeaveResponse{{ID: "a"}},
	}, nil)

	w := httptest.NewRecorder()
	newRouter(svc, &fakeRBAC{}, &me).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leave-requests?page=4611686018427387904&page_size=20", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	var got leave.ListResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, 1, got.Counts.Total)
	assert.Empty(t, got.Requests)
}

func TestLeaveHandler_MyLeave(t *testing.T) {
	me := uuid.New()
	svc := leaveMock.NewMockService(gomock.NewController(t))
	svc.EXPECT().MyLeave(gomock.Any(), me).Return(leave.MyLeaveResponse{Period: 2024}, nil)

	w := httptest.NewRecorder()
	newRouter(svc, &fakeRBAC{}, &me).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leave-requests/me", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
