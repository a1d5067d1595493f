package leavetype

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/BavyaVasu/leave-management/internal/domain"
	leavetypeerrors "github.com/BavyaVasu/leave-management/internal/leavetype/errors"
	"github.com/BavyaVasu/leave-management/internal/shared/clock"
	"github.com/BavyaVasu/leave-management/internal/store"
	"github.com/BavyaVasu/leave-management/internal/uow"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	LeaveTypesCacheKey = "leave_types:all"
	leaveTypesCacheTTL = time.Hour
)

//go:generate mockgen -source=leave_type_service.go -destination=mock/leave_type_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateLeaveTypeRequest) (LeaveTypeResponse, error)
	GetAll(ctx context.Context) ([]LeaveTypeResponse, error)
	GetByID(ctx context.Context, id string) (LeaveTypeResponse, error)
}

type service struct {
	uow    uow.Factory
	rdb    *redis.Client
	sf     *singleflight.Group
	clock  clock.Clock
	logger *zap.Logger
}

// NewService accepts a nil redis client, in which case reads go straight
// to the database.
func NewService(factory uow.Factory, rdb *redis.Client, clk clock.Clock, logger ...*zap.Logger) Service {
	l := zap.L().Named("leavetype.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavetype.service")
	}
	return &service{
		uow:    factory,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		clock:  clk,
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateLeaveTypeRequest) (LeaveTypeResponse, error) {
	name := strings.TrimSpace(req.Name)
	s.logger.Debug("create leave type requested", zap.String("name", name))

	if name == "" {
		return LeaveTypeResponse{}, leavetypeerrors.ErrNameRequired
	}
	if req.DefaultDays == nil || *req.DefaultDays < 0 {
		return LeaveTypeResponse{}, leavetypeerrors.ErrInvalidDefaultDays
	}

	work, err := s.uow.Begin(ctx)
	if err != nil {
		return LeaveTypeResponse{}, err
	}
	defer work.Close()

	exists, err := work.LeaveTypes().Exists(ctx, store.Filter{"name": name})
	if err != nil {
		s.logger.Error("create leave type lookup failed", zap.Error(err))
		return LeaveTypeResponse{}, err
	}
	if exists {
		s.logger.Warn("create leave type duplicate", zap.String("name", name))
		return LeaveTypeResponse{}, leavetypeerrors.ErrLeaveTypeAlreadyExists
	}

	lt := &domain.LeaveType{
		ID:          uuid.New(),
		Name:        name,
		DefaultDays: *req.DefaultDays,
		DateCreated: s.clock.Now(),
	}
	if err := work.LeaveTypes().Create(ctx, lt); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return LeaveTypeResponse{}, leavetypeerrors.ErrLeaveTypeAlreadyExists
		}
		s.logger.Error("create leave type persist failed", zap.Error(err))
		return LeaveTypeResponse{}, err
	}

	if err := work.Save(); err != nil {
		return LeaveTypeResponse{}, err
	}

	if s.rdb != nil {
		if err := s.rdb.Del(ctx, LeaveTypesCacheKey).Err(); err != nil {
			s.logger.Warn("invalidate leave type cache failed", zap.Error(err))
		}
	}

	s.logger.Info("create leave type success",
		zap.String("leave_type_id", lt.ID.String()),
		zap.String("name", lt.Name),
		zap.Int("default_days", lt.DefaultDays),
	)
	return mapToResponse(*lt), nil
}

func (s *service) GetAll(ctx context.Context) ([]LeaveTypeResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, LeaveTypesCacheKey).Result(); err == nil {
			var resp []LeaveTypeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(LeaveTypesCacheKey, func() (interface{}, error) {
		work, err := s.uow.Begin(ctx)
		if err != nil {
			return nil, err
		}
		defer work.Close()

		types, err := work.LeaveTypes().FindAll(ctx, nil)
		if err != nil {
			s.logger.Error("get all leave types failed", zap.Error(err))
			return nil, err
		}
		sort.Slice(types, func(i, j int) bool {
			return strings.ToLower(types[i].Name) < strings.ToLower(types[j].Name)
		})

		resp := mapToListResponse(types)
		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, LeaveTypesCacheKey, jsonData, leaveTypesCacheTTL).Err(); err != nil {
					s.logger.Warn("fill leave type cache failed", zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]LeaveTypeResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (LeaveTypeResponse, error) {
	leaveTypeID, err := uuid.Parse(id)
	if err != nil {
		return LeaveTypeResponse{}, leavetypeerrors.ErrInvalidLeaveTypeID
	}

	work, err := s.uow.Begin(ctx)
	if err != nil {
		return LeaveTypeResponse{}, err
	}
	defer work.Close()

	lt, err := work.LeaveTypes().Find(ctx, store.Filter{"id": leaveTypeID})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return LeaveTypeResponse{}, leavetypeerrors.ErrLeaveTypeNotFound
		}
		s.logger.Error("get leave type failed", zap.String("leave_type_id", id), zap.Error(err))
		return LeaveTypeResponse{}, err
	}
	return mapToResponse(*lt), nil
}

func mapToResponse(lt domain.LeaveType) LeaveTypeResponse {
	return LeaveTypeResponse{
		ID:          lt.ID.String(),
		Name:        lt.Name,
		DefaultDays: lt.DefaultDays,
		DateCreated: lt.DateCreated.UTC().Format(time.RFC3339),
	}
}

func mapToListResponse(types []domain.LeaveType) []LeaveTypeResponse {
	resp := make([]LeaveTypeResponse, len(types))
	for i, lt := range types {
		resp[i] = mapToResponse(lt)
	}
	return resp
}
