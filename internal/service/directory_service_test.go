package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/Freeeeeet/tutorhub_bot/internal/docstore"
	"github.com/Freeeeeet/tutorhub_bot/internal/repository"
	"github.com/Freeeeeet/tutorhub_bot/internal/service"
)

// fakeStore is an in-memory document store. Updates are recorded per
// document so tests can inspect exactly what was written.
type fakeStore struct {
	docs    map[string]map[string]interface{} // "collection/id" -> data
	updates map[string]map[string]interface{} // last fields written per key
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		docs:    make(map[string]map[string]interface{}),
		updates: make(map[string]map[string]interface{}),
	}
}

func (f *fakeStore) put(collection, id string, data map[string]interface{}) {
	f.docs[collection+"/"+id] = data
}

func (f *fakeStore) FetchCollection(_ context.Context, collection string) ([]docstore.Document, error) {
	var docs []docstore.Document
	for key, data := range f.docs {
		if strings.HasPrefix(key, collection+"/") {
			docs = append(docs, docstore.Document{
				Collection: collection,
				ID:         strings.TrimPrefix(key, collection+"/"),
				Data:       data,
			})
		}
	}
	return docs, nil
}

func (f *fakeStore) FetchDocument(_ context.Context, collection, id string) (*docstore.Document, error) {
	data, ok := f.docs[collection+"/"+id]
	if !ok {
		return nil, nil
	}
	return &docstore.Document{Collection: collection, ID: id, Data: data}, nil
}

func (f *fakeStore) CreateDocument(_ context.Context, collection, id string, data map[string]interface{}) error {
	f.docs[collection+"/"+id] = data
	return nil
}

func (f *fakeStore) UpdateDocument(_ context.Context, collection, id string, fields map[string]interface{}) error {
	key := collection + "/" + id
	data, ok := f.docs[key]
	if !ok {
		return docstore.ErrNotFound
	}
	docstore.ApplyFields(data, fields)
	f.updates[key] = fields
	return nil
}

func directoryFixture(t *testing.T) (*service.DirectoryService, *fakeStore) {
	t.Helper()
	store := newFakeStore()
	store.put("jobs", "j-1", map[string]interface{}{
		"id":            "j-1",
		"postedBy":      "p-1",
		"jobTitle":      "Math tutor needed",
		"appliedTutors": []interface{}{"t-1", "t-2"},
	})
	tutors := repository.NewTutorRepository(store)
	jobs := repository.NewJobRepository(store)
	return service.NewDirectoryService(tutors, jobs, zap.NewNop()), store
}

func TestDeclineTutor_WritesFilteredArray(t *testing.T) {
	svc, store := directoryFixture(t)

	if err := svc.DeclineTutor(context.Background(), "j-1", "t-1"); err != nil {
		t.Fatalf("DeclineTutor: %v", err)
	}

	fields, ok := store.updates["jobs/j-1"]
	if !ok {
		t.Fatal("no write reached the store")
	}
	written, ok := fields["appliedTutors"].([]string)
	if !ok {
		t.Fatalf("appliedTutors written as %T, want a plain array", fields["appliedTutors"])
	}
	if len(written) != 1 || written[0] != "t-2" {
		t.Fatalf("applicants after decline = %v, want [t-2]", written)
	}
}

func TestAcceptTutor_ClearsApplicants(t *testing.T) {
	svc, store := directoryFixture(t)

	if err := svc.AcceptTutor(context.Background(), "j-1", "t-2"); err != nil {
		t.Fatalf("AcceptTutor: %v", err)
	}

	fields := store.updates["jobs/j-1"]
	if got := fields["acceptedTutorId"]; got != "t-2" {
		t.Errorf("acceptedTutorId = %v, want t-2", got)
	}
	if cleared, ok := fields["appliedTutors"].([]string); !ok || len(cleared) != 0 {
		t.Errorf("applicant list not cleared: %v", fields["appliedTutors"])
	}
}

func TestAcceptDecline_RejectUnknownTargets(t *testing.T) {
	svc, store := directoryFixture(t)

	if err := svc.AcceptTutor(context.Background(), "j-9", "t-1"); !errors.Is(err, service.ErrJobNotFound) {
		t.Errorf("accept on missing job: %v, want ErrJobNotFound", err)
	}
	if err := svc.DeclineTutor(context.Background(), "j-1", "t-9"); !errors.Is(err, service.ErrApplicantNotFound) {
		t.Errorf("decline of non-applicant: %v, want ErrApplicantNotFound", err)
	}
	if err := svc.AcceptTutor(context.Background(), "j-1", "t-9"); !errors.Is(err, service.ErrApplicantNotFound) {
		t.Errorf("accept of non-applicant: %v, want ErrApplicantNotFound", err)
	}
	if len(store.updates) != 0 {
		t.Errorf("rejected operations wrote to the store: %v", store.updates)
	}
}
