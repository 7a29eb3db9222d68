package usecase

import (
	"context"
	"fmt"
	"time"

	"clinic-backend/internal/data/entity"
	"clinic-backend/internal/data/repository"
	"clinic-backend/internal/dto/request"
	"clinic-backend/internal/dto/response"
	"clinic-backend/internal/notify"
	"clinic-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AppointmentService interface {
	// Public
	CreateAppointment(ctx context.Context, req *request.CreateAppointmentRequest) (*response.AppointmentResponse, error)

	// Admin
	GetAppointments(ctx context.Context, status string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.AppointmentResponse], error)
	UpdateStatus(ctx context.Context, appointmentID string, req *request.UpdateAppointmentStatusRequest) (*response.AppointmentResponse, error)
}

type appointmentService struct {
	repo     *repository.Repository
	notifier notify.Notifier
	log      *zap.Logger
}

func NewAppointmentService(repo *repository.Repository, notifier notify.Notifier, log *zap.Logger) AppointmentService {
	return &appointmentService{
		repo:     repo,
		notifier: notifier,
		log:      log.With(zap.String("service", "appointment")),
	}
}

func (s *appointmentService) CreateAppointment(ctx context.Context, req *request.CreateAppointmentRequest) (*response.AppointmentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create appointment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	appointment := &entity.Appointment{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:          req.Name,
		Phone:         req.Phone,
		Email:         req.Email,
		PreferredDate: req.PreferredDate,
		Reason:        req.Reason,
		Status:        entity.AppointmentPending,
	}

	if err := s.repo.Appointment.Create(ctx, appointment); err != nil {
		s.log.Error("Failed to create appointment", zap.Error(err))
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	s.log.Info("Appointment created",
		zap.String("appointment_id", appointment.ID.String()),
		zap.String("name", appointment.Name),
	)

	// Notify the front desk without blocking the submitter
	go s.notifyIntake(appointment)

	appointmentResp := response.AppointmentToResponse(appointment)
	return &appointmentResp, nil
}

func (s *appointmentService) GetAppointments(ctx context.Context, status string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.AppointmentResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	appointments, err := s.repo.Appointment.FindAll(ctx, status, limit, offset)
	if err != nil {
		s.log.Error("Failed to get appointments",
			zap.Error(err),
			zap.String("status", status),
		)
		return nil, fmt.Errorf("get appointments: %w", err)
	}

	total, err := s.repo.Appointment.CountAll(ctx, status)
	if err != nil {
		s.log.Error("Failed to count appointments", zap.Error(err))
		return nil, fmt.Errorf("count appointments: %w", err)
	}

	appointmentResponses := make([]response.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		appointmentResponses[i] = response.AppointmentToResponse(appointment)
	}

	return response.NewPaginatedResponse(appointmentResponses, req.Page, req.PerPage, total), nil
}

func (s *appointmentService) UpdateStatus(ctx context.Context, appointmentID string, req *request.UpdateAppointmentStatusRequest) (*response.AppointmentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update appointment status validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	appointmentUUID, err := uuid.Parse(appointmentID)
	if err != nil {
		return nil, fmt.Errorf("invalid appointment ID format %s: %w", appointmentID, err)
	}

	appointment, err := s.repo.Appointment.FindByID(ctx, appointmentUUID)
	if err != nil || appointment == nil {
		return nil, fmt.Errorf("appointment %s not found", appointmentID)
	}

	now := time.Now()
	if err := s.repo.Appointment.UpdateStatus(ctx, appointmentUUID, entity.AppointmentStatus(req.Status), now); err != nil {
		s.log.Error("Failed to update appointment status",
			zap.Error(err),
			zap.String("appointment_id", appointmentID),
			zap.String("status", req.Status),
		)
		return nil, fmt.Errorf("update appointment status: %w", err)
	}

	appointment.Status = entity.AppointmentStatus(req.Status)
	appointment.UpdatedAt = now

	s.log.Info("Appointment status updated",
		zap.String("appointment_id", appointmentID),
		zap.String("status", req.Status),
	)

	appointmentResp := response.AppointmentToResponse(appointment)
	return &appointmentResp, nil
}

func (s *appointmentService) notifyIntake(appointment *entity.Appointment) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	subject := "New appointment request from " + appointment.Name
	body := fmt.Sprintf("Name: %s\nPhone: %s\nReason: %s", appointment.Name, appointment.Phone, appointment.Reason)

	if err := s.notifier.Send(ctx, subject, body); err != nil {
		s.log.Error("Failed to send appointment notification",
			zap.Error(err),
			zap.String("appointment_id", appointment.ID.String()),
		)
	}
}
