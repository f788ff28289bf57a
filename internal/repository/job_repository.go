package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/tutorhub_bot/internal/docstore"
	"github.com/Freeeeeet/tutorhub_bot/internal/model"
)

type JobRepository struct {
	store docstore.Store
}

func NewJobRepository(store docstore.Store) *JobRepository {
	return &JobRepository{store: store}
}

// List returns every job, newest first.
func (r *JobRepository) List(ctx context.Context) ([]*model.Job, error) {
	docs, err := r.store.FetchCollection(ctx, CollectionJobs)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return r.decodeAll(docs)
}

// ListByParent returns the jobs one parent posted, newest first.
func (r *JobRepository) ListByParent(ctx context.Context, parentID string) ([]*model.Job, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	var jobs []*model.Job
	for _, job := range all {
		if job.PostedBy == parentID {
			jobs = append(jobs, job)
		}
	}
	return jobs, nil
}

// GetByID returns one job, or nil when absent.
func (r *JobRepository) GetByID(ctx context.Context, id string) (*model.Job, error) {
	doc, err := r.store.FetchDocument(ctx, CollectionJobs, id)
	if err != nil {
		return nil, fmt.Errorf("get job %s: %w", id, err)
	}
	if doc == nil {
		return nil, nil
	}
	var job model.Job
	if err := decodeDocument(doc, &job); err != nil {
		return nil, err
	}
	if job.ID == "" {
		job.ID = doc.ID
	}
	return &job, nil
}

// SetAcceptedTutor marks the job filled in one partial write: the accepted
// tutor id is set and the applicant list cleared, so the job stops taking
// applications.
func (r *JobRepository) SetAcceptedTutor(ctx context.Context, jobID, tutorID string) error {
	err := r.store.UpdateDocument(ctx, CollectionJobs, jobID, map[string]interface{}{
		"acceptedTutorId": tutorID,
		"appliedTutors":   []string{},
	})
	if err != nil {
		return fmt.Errorf("accept tutor %s for job %s: %w", tutorID, jobID, err)
	}
	return nil
}

// SetApplicants overwrites the applicant array. Callers filter the array
// client-side first; the store never receives a transformation.
func (r *JobRepository) SetApplicants(ctx context.Context, jobID string, tutorIDs []string) error {
	if tutorIDs == nil {
		tutorIDs = []string{}
	}
	err := r.store.UpdateDocument(ctx, CollectionJobs, jobID, map[string]interface{}{
		"appliedTutors": tutorIDs,
	})
	if err != nil {
		return fmt.Errorf("set applicants for job %s: %w", jobID, err)
	}
	return nil
}

// UpdateFields applies an edit-dialog payload to a job document.
func (r *JobRepository) UpdateFields(ctx context.Context, jobID string, fields map[string]interface{}) error {
	if err := r.store.UpdateDocument(ctx, CollectionJobs, jobID, fields); err != nil {
		return fmt.Errorf("update job %s: %w", jobID, err)
	}
	return nil
}

func (r *JobRepository) decodeAll(docs []docstore.Document) ([]*model.Job, error) {
	jobs := make([]*model.Job, 0, len(docs))
	for i := range docs {
		var job model.Job
		if err := decodeDocument(&docs[i], &job); err != nil {
			return nil, err
		}
		if job.ID == "" {
			job.ID = docs[i].ID
		}
		jobs = append(jobs, &job)
	}
	return jobs, nil
}
