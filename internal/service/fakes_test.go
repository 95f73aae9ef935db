package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"churchhub-be/internal/model"
	"churchhub-be/internal/repository/specification"
	"churchhub-be/pkg/events"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// nopLogger keeps pipeline tests quiet.
type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

// fakeDisagreementRepo is an in-memory LegalDisagreementRepository that
// interprets the same specifications the GORM implementation applies.
type fakeDisagreementRepo struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*model.LegalDisagreement

	findErr          error
	claimErr         error
	markCompletedErr error
	markWarningErr   error
}

func newFakeDisagreementRepo(rows ...*model.LegalDisagreement) *fakeDisagreementRepo {
	repo := &fakeDisagreementRepo{rows: make(map[uuid.UUID]*model.LegalDisagreement)}
	for _, r := range rows {
		copied := *r
		repo.rows[r.Id] = &copied
	}
	return repo
}

func (f *fakeDisagreementRepo) get(id uuid.UUID) *model.LegalDisagreement {
	f.mu.Lock()
	defer f.mu.Unlock()
	if row, ok := f.rows[id]; ok {
		copied := *row
		return &copied
	}
	return nil
}

func matches(row *model.LegalDisagreement, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if row.Id != s.ID {
				return false
			}
		case specification.ByUserID:
			if row.UserId != s.UserID {
				return false
			}
		case specification.ByStatus:
			if row.Status != s.Status {
				return false
			}
		case specification.ByDisagreementType:
			if row.DisagreementType != s.Type {
				return false
			}
		case specification.ByDocumentType:
			if row.DocumentType != s.DocumentType {
				return false
			}
		case specification.DeadlinePassed:
			if !row.DeadlineAt.Before(s.Now) {
				return false
			}
		case specification.DeadlineWithin:
			if !row.DeadlineAt.After(s.Now) || row.DeadlineAt.After(s.Now.Add(s.Window)) {
				return false
			}
		case specification.WarningNotSent:
			if row.WarningSentAt != nil {
				return false
			}
		}
	}
	return true
}

func (f *fakeDisagreementRepo) Create(_ context.Context, d *model.LegalDisagreement) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *d
	f.rows[d.Id] = &copied
	return nil
}

func (f *fakeDisagreementRepo) FindOne(_ context.Context, specs ...specification.Specification) (*model.LegalDisagreement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, row := range f.rows {
		if matches(row, specs) {
			copied := *row
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeDisagreementRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*model.LegalDisagreement, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*model.LegalDisagreement
	for _, row := range f.rows {
		if matches(row, specs) {
			copied := *row
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeDisagreementRepo) Count(_ context.Context, specs ...specification.Specification) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, row := range f.rows {
		if matches(row, specs) {
			count++
		}
	}
	return count, nil
}

func (f *fakeDisagreementRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rows, id)
	return nil
}

func (f *fakeDisagreementRepo) ClaimPending(_ context.Context, id uuid.UUID) (bool, error) {
	if f.claimErr != nil {
		return false, f.claimErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok || row.Status != model.DisagreementStatusPending {
		return false, nil
	}
	row.Status = model.DisagreementStatusProcessing
	return true, nil
}

func (f *fakeDisagreementRepo) MarkCompleted(_ context.Context, id uuid.UUID) error {
	if f.markCompletedErr != nil {
		return f.markCompletedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if row, ok := f.rows[id]; ok {
		now := time.Now()
		row.Status = model.DisagreementStatusCompleted
		row.ProcessedAt = &now
	}
	return nil
}

func (f *fakeDisagreementRepo) MarkWarningSent(_ context.Context, id uuid.UUID) error {
	if f.markWarningErr != nil {
		return f.markWarningErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if row, ok := f.rows[id]; ok && row.WarningSentAt == nil {
		now := time.Now()
		row.WarningSentAt = &now
	}
	return nil
}

type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]*model.Profile

	anonymizeErr error
	detachErr    error
	detached     []uuid.UUID
}

func newFakeProfileRepo(profiles ...*model.Profile) *fakeProfileRepo {
	repo := &fakeProfileRepo{profiles: make(map[uuid.UUID]*model.Profile)}
	for _, p := range profiles {
		copied := *p
		repo.profiles[p.Id] = &copied
	}
	return repo
}

func (f *fakeProfileRepo) get(id uuid.UUID) *model.Profile {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.profiles[id]; ok {
		copied := *p
		return &copied
	}
	return nil
}

func (f *fakeProfileRepo) Create(_ context.Context, p *model.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *p
	f.profiles[p.Id] = &copied
	return nil
}

func (f *fakeProfileRepo) Update(_ context.Context, p *model.Profile) error {
	return f.Create(context.Background(), p)
}

func (f *fakeProfileRepo) FindOne(_ context.Context, specs ...specification.Specification) (*model.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.profiles {
		ok := true
		for _, spec := range specs {
			switch s := spec.(type) {
			case specification.ByID:
				if p.Id != s.ID {
					ok = false
				}
			case specification.ByUserID:
				if p.UserId != s.UserID {
					ok = false
				}
			}
		}
		if ok {
			copied := *p
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProfileRepo) FindAll(_ context.Context, _ ...specification.Specification) ([]*model.Profile, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeProfileRepo) Anonymize(_ context.Context, profileId uuid.UUID) error {
	if f.anonymizeErr != nil {
		return f.anonymizeErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.profiles[profileId]; ok {
		p.FirstName = model.AnonymizedName
		p.LastName = ""
		p.Email = ""
		p.AvatarURL = nil
		p.Phone = nil
		p.Address = nil
		p.Anonymized = true
	}
	return nil
}

func (f *fakeProfileRepo) DetachFromChurch(_ context.Context, churchId uuid.UUID) (int64, error) {
	if f.detachErr != nil {
		return 0, f.detachErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.detached = append(f.detached, churchId)
	var n int64
	for _, p := range f.profiles {
		if p.ChurchId != nil && *p.ChurchId == churchId {
			p.ChurchId = nil
			n++
		}
	}
	return n, nil
}

type fakeChurchRepo struct {
	mu       sync.Mutex
	churches map[uuid.UUID]*model.Church
	emails   map[uuid.UUID][]string

	deactivateErr  error
	memberEmailErr error
	deactivated    []uuid.UUID
}

func newFakeChurchRepo() *fakeChurchRepo {
	return &fakeChurchRepo{
		churches: make(map[uuid.UUID]*model.Church),
		emails:   make(map[uuid.UUID][]string),
	}
}

func (f *fakeChurchRepo) Create(_ context.Context, c *model.Church) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *c
	f.churches[c.Id] = &copied
	return nil
}

func (f *fakeChurchRepo) FindOne(_ context.Context, specs ...specification.Specification) (*model.Church, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.churches {
		ok := true
		for _, spec := range specs {
			if s, isID := spec.(specification.ByID); isID && c.Id != s.ID {
				ok = false
			}
		}
		if ok {
			copied := *c
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeChurchRepo) FindAll(_ context.Context, _ ...specification.Specification) ([]*model.Church, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeChurchRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	if f.deactivateErr != nil {
		return f.deactivateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deactivated = append(f.deactivated, id)
	if c, ok := f.churches[id]; ok {
		c.IsActive = false
	}
	return nil
}

func (f *fakeChurchRepo) GetMemberEmails(_ context.Context, churchId uuid.UUID) ([]string, error) {
	if f.memberEmailErr != nil {
		return nil, f.memberEmailErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.emails[churchId], nil
}

type fakeIdentityDeleter struct {
	mu      sync.Mutex
	err     error
	deleted []uuid.UUID
}

func (f *fakeIdentityDeleter) DeleteUser(_ context.Context, userId uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, userId)
	return nil
}

type fakePublisher struct {
	mu        sync.Mutex
	published []events.Event
}

func (f *fakePublisher) Publish(_ context.Context, event events.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.published = append(f.published, event)
	return nil
}

type fakeMailer struct {
	mu     sync.Mutex
	sent   []string
	failTo map[string]bool
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{failTo: make(map[string]bool)}
}

func (f *fakeMailer) SendDeletionWarning(toEmail, _ string, _ time.Time) error {
	if f.failTo[toEmail] {
		return errors.New("smtp rejected")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, toEmail)
	return nil
}
