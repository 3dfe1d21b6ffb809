package service

import (
	"context"
	"fmt"

	"ai-tutor/internal/config"
	"ai-tutor/internal/domain"
	"ai-tutor/internal/dto"
	"ai-tutor/internal/logger"

	"go.uber.org/zap"
)

const (
	loginMessageSuccess  = "Login successful"
	loginMessageNotFound = "Student ID not found"
)

// AuthService defines the demo login check. It issues no tokens and keeps no sessions.
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authServiceImpl struct {
	snapshots    SnapshotProvider
	demoPassword string
}

// NewAuthService creates a new AuthService backed by the current dataset snapshot
func NewAuthService(snapshots SnapshotProvider, cfg *config.Config) AuthService {
	return &authServiceImpl{
		snapshots:    snapshots,
		demoPassword: cfg.Auth.DemoPassword,
	}
}

// Login reports failures in the response body rather than as errors; only a missing
// student_id is a request error.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if req == nil || req.StudentID == nil {
		return nil, domain.ValidationErrors{domain.NewMissingFieldError("student_id")}
	}
	studentID := *req.StudentID

	if !s.snapshots.Current().HasStudent(studentID) {
		logger.Get().Info("Demo login for unknown student", zap.Int64("student_id", studentID))
		return &dto.LoginResponse{Success: false, Message: loginMessageNotFound}, nil
	}
	if req.Password != s.demoPassword {
		logger.Get().Info("Demo login with wrong password", zap.Int64("student_id", studentID))
		return &dto.LoginResponse{
			Success: false,
			Message: fmt.Sprintf("Incorrect demo password (use %s)", s.demoPassword),
		}, nil
	}

	return &dto.LoginResponse{Success: true, StudentID: &studentID, Message: loginMessageSuccess}, nil
}
