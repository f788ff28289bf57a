package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Freeeeeet/tutorhub_bot/internal/directory"
	"github.com/Freeeeeet/tutorhub_bot/internal/model"
	"github.com/Freeeeeet/tutorhub_bot/internal/repository"
)

// ErrJobNotFound is returned when an accept/decline targets a missing job.
var ErrJobNotFound = errors.New("job not found")

// ErrApplicantNotFound is returned when the tutor is not on the job's
// applicant list, e.g. after a concurrent decline from another device.
var ErrApplicantNotFound = errors.New("tutor is not an applicant of this job")

// DirectoryService fetches the tutor directory and performs the remote
// half of accept/decline. It keeps a process-wide tutor snapshot that the
// background refresher renews, so per-chat states share one fetch.
type DirectoryService struct {
	tutors *repository.TutorRepository
	jobs   *repository.JobRepository
	logger *zap.Logger

	mu         sync.RWMutex
	snapshot   []*model.Tutor
	snapshotAt time.Time
}

func NewDirectoryService(tutors *repository.TutorRepository, jobs *repository.JobRepository, logger *zap.Logger) *DirectoryService {
	return &DirectoryService{tutors: tutors, jobs: jobs, logger: logger}
}

// Refresh re-fetches the tutor snapshot. Called at startup and by the
// background refresher.
func (s *DirectoryService) Refresh(ctx context.Context) error {
	tutors, err := s.tutors.List(ctx)
	if err != nil {
		return fmt.Errorf("refresh tutors: %w", err)
	}

	s.mu.Lock()
	s.snapshot = tutors
	s.snapshotAt = time.Now()
	s.mu.Unlock()

	s.logger.Info("Tutor directory refreshed", zap.Int("tutors", len(tutors)))
	return nil
}

// Tutors returns the shared snapshot, fetching it on first use.
func (s *DirectoryService) Tutors(ctx context.Context) ([]*model.Tutor, error) {
	s.mu.RLock()
	snapshot := s.snapshot
	s.mu.RUnlock()

	if snapshot != nil {
		return snapshot, nil
	}
	if err := s.Refresh(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot, nil
}

// Views assembles the three tab-scoped lists for one parent: the
// recommended list, pending applicants of the parent's jobs, and tutors
// already accepted on those jobs.
func (s *DirectoryService) Views(ctx context.Context, parentID string) (tutors []*model.Tutor, requests []directory.Applicant, upcoming []*model.Tutor, err error) {
	tutors, err = s.Tutors(ctx)
	if err != nil {
		return nil, nil, nil, err
	}

	byID := make(map[string]*model.Tutor, len(tutors))
	for _, tutor := range tutors {
		byID[tutor.ID] = tutor
	}

	jobs, err := s.jobs.ListByParent(ctx, parentID)
	if err != nil {
		return nil, nil, nil, err
	}

	for _, job := range jobs {
		if job.IsFilled() {
			if tutor, ok := byID[job.AcceptedTutorID]; ok {
				upcoming = append(upcoming, tutor)
			}
			continue
		}
		for _, tutorID := range job.AppliedTutors {
			if tutor, ok := byID[tutorID]; ok {
				requests = append(requests, directory.Applicant{Tutor: tutor, JobID: job.ID})
			}
		}
	}

	return tutors, requests, upcoming, nil
}

// AcceptTutor performs the remote accept write: accepted tutor set, the
// job's applicant list cleared. Local view state is patched by the caller
// only after this resolves.
func (s *DirectoryService) AcceptTutor(ctx context.Context, jobID, tutorID string) error {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return err
	}
	if job == nil {
		return ErrJobNotFound
	}
	if !job.HasApplicant(tutorID) {
		return ErrApplicantNotFound
	}

	if err := s.jobs.SetAcceptedTutor(ctx, jobID, tutorID); err != nil {
		return err
	}

	s.logger.Info("Tutor accepted",
		zap.String("job_id", jobID),
		zap.String("tutor_id", tutorID),
		zap.Int("applicants_cleared", len(job.AppliedTutors)))
	return nil
}

// DeclineTutor removes one tutor from the job's applicant list. The array
// is filtered here, client-side, and the filtered array is written; the
// store is never handed a transformation to apply.
func (s *DirectoryService) DeclineTutor(ctx context.Context, jobID, tutorID string) error {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return err
	}
	if job == nil {
		return ErrJobNotFound
	}
	if !job.HasApplicant(tutorID) {
		return ErrApplicantNotFound
	}

	filtered := job.WithoutApplicant(tutorID)
	if err := s.jobs.SetApplicants(ctx, jobID, filtered); err != nil {
		return err
	}

	s.logger.Info("Tutor declined",
		zap.String("job_id", jobID),
		zap.String("tutor_id", tutorID),
		zap.Int("applicants_left", len(filtered)))
	return nil
}
