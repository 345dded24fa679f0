package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/classforge/classroom-backend/internal/config"
	"github.com/classforge/classroom-backend/internal/model"
	"github.com/classforge/classroom-backend/internal/repository"
)

// EnrollmentService handles roster management and join codes.
type EnrollmentService struct {
	enrollRepo   *repository.EnrollmentRepository
	userRepo     *repository.UserRepository
	joinCodeRepo *repository.JoinCodeRepository
	cfg          *config.Config
	rdb          *redis.Client
	log          zerolog.Logger
}

// NewEnrollmentService creates a new EnrollmentService.
func NewEnrollmentService(
	enrollRepo *repository.EnrollmentRepository,
	userRepo *repository.UserRepository,
	joinCodeRepo *repository.JoinCodeRepository,
	cfg *config.Config,
	rdb *redis.Client,
	log zerolog.Logger,
) *EnrollmentService {
	return &EnrollmentService{
		enrollRepo:   enrollRepo,
		userRepo:     userRepo,
		joinCodeRepo: joinCodeRepo,
		cfg:          cfg,
		rdb:          rdb,
		log:          log.With().Str("component", "enrollment_service").Logger(),
	}
}

// AddByUserName enrolls a user into a class by user name, with the given
// instructor flag.
func (s *EnrollmentService) AddByUserName(ctx context.Context, userName, classNumber string, isInstructor bool) error {
	if err := s.enrollRepo.AddByUserName(ctx, userName, classNumber, isInstructor); err != nil {
		return err
	}

	// The feed needs the user ID; resolve it after the insert.
	if user, err := s.userRepo.GetByUserName(ctx, userName); err == nil {
		s.publish(ctx, model.EnrollmentEvent{
			Kind:         model.EnrollmentEventEnrolled,
			UserID:       user.ID,
			ClassNumber:  classNumber,
			IsInstructor: isInstructor,
			OccurredAt:   time.Now().UTC(),
		})
	}
	return nil
}

// Remove deletes a user's enrollment in a class. The published event
// carries the flag the removed row actually had.
func (s *EnrollmentService) Remove(ctx context.Context, userID int, classNumber string) error {
	wasInstructor, err := s.enrollRepo.Remove(ctx, userID, classNumber)
	if err != nil {
		return err
	}

	s.publish(ctx, model.EnrollmentEvent{
		Kind:         model.EnrollmentEventRemoved,
		UserID:       userID,
		ClassNumber:  classNumber,
		IsInstructor: wasInstructor,
		OccurredAt:   time.Now().UTC(),
	})
	return nil
}

// ListForUser retrieves the classes a user is enrolled in.
func (s *EnrollmentService) ListForUser(ctx context.Context, userID int) ([]model.Enrollment, error) {
	return s.enrollRepo.ListForUser(ctx, userID)
}

// ListRoster retrieves the roster of a class.
func (s *EnrollmentService) ListRoster(ctx context.Context, classNumber string) ([]model.RosterEntry, error) {
	return s.enrollRepo.ListRoster(ctx, classNumber)
}

// IsInstructor reports whether the user is an instructor of the class.
func (s *EnrollmentService) IsInstructor(ctx context.Context, userID int, classNumber string) (bool, error) {
	return s.enrollRepo.IsInstructor(ctx, userID, classNumber)
}

// IssueJoinCode creates a join code for a class, valid for the configured
// TTL.
func (s *EnrollmentService) IssueJoinCode(ctx context.Context, classNumber string) (*model.JoinCode, error) {
	jc := &model.JoinCode{
		JoinCode:    uuid.New().String(),
		ClassNumber: classNumber,
		Expiration:  time.Now().Add(s.cfg.JoinCodeTTL),
	}
	if err := s.joinCodeRepo.Create(ctx, jc); err != nil {
		return nil, err
	}
	return jc, nil
}

// RedeemJoinCode enrolls a user as a student into the class an unexpired
// join code points to.
func (s *EnrollmentService) RedeemJoinCode(ctx context.Context, userID int, code string) (*model.Enrollment, error) {
	jc, err := s.joinCodeRepo.Resolve(ctx, code)
	if err != nil {
		return nil, err
	}

	if err := s.enrollRepo.Add(ctx, userID, jc.ClassNumber, false); err != nil {
		return nil, err
	}

	s.publish(ctx, model.EnrollmentEvent{
		Kind:        model.EnrollmentEventEnrolled,
		UserID:      userID,
		ClassNumber: jc.ClassNumber,
		OccurredAt:  time.Now().UTC(),
	})

	return &model.Enrollment{UserID: userID, ClassNumber: jc.ClassNumber}, nil
}

// publish sends an enrollment event to the Redis feed channel. Feed
// delivery is best effort; failures only log.
func (s *EnrollmentService) publish(ctx context.Context, evt model.EnrollmentEvent) {
	payload, err := json.Marshal(evt)
	if err != nil {
		s.log.Warn().Err(err).Msg("Failed to marshal enrollment event")
		return
	}
	if err := s.rdb.Publish(ctx, config.CacheKey.EnrollmentFeedChannel(), payload).Err(); err != nil {
		s.log.Warn().Err(err).Msg("Failed to publish enrollment event")
	}
}
