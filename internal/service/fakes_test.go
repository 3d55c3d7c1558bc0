package service

import (
	"bytes"
	"context"
	"io"
	"sort"
	"sync"

	"neuma/internal/assessment"
	"neuma/internal/model"
	"neuma/internal/repository"
)

// In-memory stand-ins for the Mongo repositories and Redis caches. They
// mirror the store-level contracts the services rely on, in particular the
// unique-index behavior surfaced as repository.ErrDuplicate.

type fakeClassroomRepo struct {
	mu    sync.Mutex
	items map[string]*model.Classroom
}

func newFakeClassroomRepo() *fakeClassroomRepo {
	return &fakeClassroomRepo{items: map[string]*model.Classroom{}}
}

func (r *fakeClassroomRepo) Create(_ context.Context, c *model.Classroom) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.items {
		if existing.Code == c.Code {
			return repository.ErrDuplicate
		}
	}
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeClassroomRepo) GetByID(_ context.Context, id string) (*model.Classroom, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.items[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeClassroomRepo) GetByCode(_ context.Context, code string) (*model.Classroom, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.items {
		if c.Code == code {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeClassroomRepo) ListByOwner(_ context.Context, ownerID string) ([]*model.Classroom, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*model.Classroom{}
	for _, c := range r.items {
		if c.OwnerID == ownerID {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeClassroomRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *fakeClassroomRepo) EnsureIndexes(context.Context) error { return nil }

type fakeMembershipRepo struct {
	mu    sync.Mutex
	items []*model.Membership
}

func newFakeMembershipRepo() *fakeMembershipRepo { return &fakeMembershipRepo{} }

func (r *fakeMembershipRepo) Create(_ context.Context, m *model.Membership) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.items {
		if existing.StudentID == m.StudentID && existing.ClassroomID == m.ClassroomID {
			return repository.ErrDuplicate
		}
	}
	cp := *m
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeMembershipRepo) ListByStudent(_ context.Context, studentID string) ([]*model.Membership, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*model.Membership{}
	for _, m := range r.items {
		if m.StudentID == studentID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeMembershipRepo) ListByClassroom(_ context.Context, classroomID string) ([]*model.Membership, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*model.Membership{}
	for _, m := range r.items {
		if m.ClassroomID == classroomID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeMembershipRepo) Exists(_ context.Context, studentID, classroomID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.items {
		if m.StudentID == studentID && m.ClassroomID == classroomID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeMembershipRepo) DeleteByClassroom(_ context.Context, classroomID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.items[:0]
	for _, m := range r.items {
		if m.ClassroomID != classroomID {
			kept = append(kept, m)
		}
	}
	r.items = kept
	return nil
}

func (r *fakeMembershipRepo) EnsureIndexes(context.Context) error { return nil }

func (r *fakeMembershipRepo) count(studentID, classroomID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, m := range r.items {
		if m.StudentID == studentID && m.ClassroomID == classroomID {
			n++
		}
	}
	return n
}

type fakeActivityRepo struct {
	mu    sync.Mutex
	items map[string]*model.Activity
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{items: map[string]*model.Activity{}}
}

func (r *fakeActivityRepo) Create(_ context.Context, a *model.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *a
	r.items[a.ID] = &cp
	return nil
}

func (r *fakeActivityRepo) GetByID(_ context.Context, classroomID, activityID string) (*model.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.items[activityID]; ok && a.ClassroomID == classroomID {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeActivityRepo) ListByClassroom(_ context.Context, classroomID string) ([]*model.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*model.Activity{}
	for _, a := range r.items {
		if a.ClassroomID == classroomID {
			cp := *a
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeActivityRepo) Delete(_ context.Context, classroomID, activityID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.items[activityID]; ok && a.ClassroomID == classroomID {
		delete(r.items, activityID)
	}
	return nil
}

func (r *fakeActivityRepo) DeleteByClassroom(_ context.Context, classroomID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, a := range r.items {
		if a.ClassroomID == classroomID {
			delete(r.items, id)
		}
	}
	return nil
}

func (r *fakeActivityRepo) EnsureIndexes(context.Context) error { return nil }

type fakeResultRepo struct {
	mu    sync.Mutex
	items []*model.AssessmentResult
}

func newFakeResultRepo() *fakeResultRepo { return &fakeResultRepo{} }

func (r *fakeResultRepo) Create(_ context.Context, res *model.AssessmentResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *res
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeResultRepo) LatestBySubject(_ context.Context, subjectID string) (*model.AssessmentResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var latest *model.AssessmentResult
	for _, res := range r.items {
		if res.SubjectID != subjectID {
			continue
		}
		if latest == nil || res.CompletedAt.After(latest.CompletedAt) {
			latest = res
		}
	}
	if latest == nil {
		return nil, nil
	}
	cp := *latest
	return &cp, nil
}

func (r *fakeResultRepo) HasCompleted(_ context.Context, subjectID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, res := range r.items {
		if res.SubjectID == subjectID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeResultRepo) EnsureIndexes(context.Context) error { return nil }

type fakeDirectoryCache struct {
	mu    sync.Mutex
	items map[string]*model.Classroom
}

func newFakeDirectoryCache() *fakeDirectoryCache {
	return &fakeDirectoryCache{items: map[string]*model.Classroom{}}
}

func (c *fakeDirectoryCache) Set(_ context.Context, classroom *model.Classroom) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	cp := *classroom
	c.items[classroom.Code] = &cp
	return nil
}

func (c *fakeDirectoryCache) GetByCode(_ context.Context, code string) (*model.Classroom, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if cl, ok := c.items[code]; ok {
		cp := *cl
		return &cp, nil
	}
	return nil, nil
}

func (c *fakeDirectoryCache) Delete(_ context.Context, code string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, code)
	return nil
}

type fakeStyleStats struct {
	mu     sync.Mutex
	counts map[string]model.ScoreVector
}

func newFakeStyleStats() *fakeStyleStats {
	return &fakeStyleStats{counts: map[string]model.ScoreVector{}}
}

func (c *fakeStyleStats) Incr(_ context.Context, classroomID string, style model.LearningStyle) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	v := c.counts[classroomID]
	v.Incr(style)
	c.counts[classroomID] = v
	return nil
}

func (c *fakeStyleStats) Snapshot(_ context.Context, classroomID string) (model.ScoreVector, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[classroomID], nil
}

func (c *fakeStyleStats) Delete(_ context.Context, classroomID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.counts, classroomID)
	return nil
}

type fakeSessionStore struct {
	mu    sync.Mutex
	items map[string]assessment.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{items: map[string]assessment.Session{}}
}

func (c *fakeSessionStore) Set(_ context.Context, s *assessment.Session) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	cp := *s
	cp.Trace = append([]model.LearningStyle{}, s.Trace...)
	c.items[s.SubjectID] = cp
	return nil
}

func (c *fakeSessionStore) Get(_ context.Context, subjectID string) (*assessment.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.items[subjectID]
	if !ok {
		return nil, nil
	}
	cp := s
	cp.Trace = append([]model.LearningStyle{}, s.Trace...)
	return &cp, nil
}

func (c *fakeSessionStore) Delete(_ context.Context, subjectID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, subjectID)
	return nil
}

type fakeBlobStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{blobs: map[string][]byte{}}
}

func (s *fakeBlobStore) Put(key string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[key] = data
	return key, nil
}

func (s *fakeBlobStore) Get(key string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return io.NopCloser(bytes.NewReader(s.blobs[key])), nil
}

func (s *fakeBlobStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, key)
	return nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	items map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{items: map[string]*model.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.items {
		if existing.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	cp := *u
	r.items[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.items[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.items {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) EnsureIndexes(context.Context) error { return nil }

func newTestDirectory() (*DirectoryService, *fakeClassroomRepo, *fakeMembershipRepo, *fakeActivityRepo) {
	classrooms := newFakeClassroomRepo()
	memberships := newFakeMembershipRepo()
	activities := newFakeActivityRepo()
	dir := NewDirectoryService(classrooms, memberships, activities, newFakeUserRepo(), newFakeDirectoryCache(), newFakeStyleStats(), newFakeBlobStore())
	return dir, classrooms, memberships, activities
}
