package service

import (
	"context"
	"testing"
	"time"

	"churchhub-be/internal/dto"
	"churchhub-be/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testPolicy() LegalPolicy {
	return LegalPolicy{
		UserDeletionDelay:   14 * 24 * time.Hour,
		ChurchDeletionDelay: 30 * 24 * time.Hour,
	}
}

func newLegalFixture() (ILegalService, *fakeDisagreementRepo, *fakeProfileRepo, *fakeChurchRepo, *fakePublisher) {
	disagreements := newFakeDisagreementRepo()
	profiles := newFakeProfileRepo()
	churches := newFakeChurchRepo()
	publisher := &fakePublisher{}
	svc := NewLegalService(disagreements, profiles, churches, publisher, nopLogger{}, testPolicy())
	return svc, disagreements, profiles, churches, publisher
}

func TestCreateDisagreement_UserDocument(t *testing.T) {
	svc, disagreements, profiles, _, publisher := newLegalFixture()

	userId := uuid.New()
	profile := &model.Profile{Id: uuid.New(), UserId: userId, Email: "member@example.com"}
	assert.NoError(t, profiles.Create(context.Background(), profile))

	resp, err := svc.CreateDisagreement(context.Background(), userId, &dto.CreateDisagreementRequest{
		DocumentType: model.DocumentPrivacyPolicy,
	})

	assert.NoError(t, err)
	assert.Equal(t, model.DisagreementUserDeletion, resp.DisagreementType)
	assert.Equal(t, model.DisagreementStatusPending, resp.Status)

	// Deadline lands at creation + the user deletion delay.
	expected := time.Now().Add(14 * 24 * time.Hour)
	assert.WithinDuration(t, expected, resp.DeadlineAt, time.Minute)

	stored := disagreements.get(resp.Id)
	assert.NotNil(t, stored)
	assert.Equal(t, profile.Id, *stored.ProfileId)
	assert.Len(t, publisher.published, 1)
}

func TestCreateDisagreement_DuplicatePending(t *testing.T) {
	svc, _, _, _, _ := newLegalFixture()

	userId := uuid.New()
	_, err := svc.CreateDisagreement(context.Background(), userId, &dto.CreateDisagreementRequest{
		DocumentType: model.DocumentTermsOfService,
	})
	assert.NoError(t, err)

	_, err = svc.CreateDisagreement(context.Background(), userId, &dto.CreateDisagreementRequest{
		DocumentType: model.DocumentTermsOfService,
	})
	assert.ErrorIs(t, err, ErrDisagreementExists)

	// A different document is still allowed.
	_, err = svc.CreateDisagreement(context.Background(), userId, &dto.CreateDisagreementRequest{
		DocumentType: model.DocumentDPA,
	})
	assert.NoError(t, err)
}

func TestCreateDisagreement_UnknownDocument(t *testing.T) {
	svc, _, _, _, _ := newLegalFixture()

	_, err := svc.CreateDisagreement(context.Background(), uuid.New(), &dto.CreateDisagreementRequest{
		DocumentType: "cookie_policy",
	})
	assert.ErrorIs(t, err, ErrUnknownDocumentType)
}

func TestCreateDisagreement_ChurchAdminTerms(t *testing.T) {
	svc, disagreements, profiles, churches, _ := newLegalFixture()

	ownerId := uuid.New()
	ownerProfile := &model.Profile{Id: uuid.New(), UserId: ownerId, Email: "owner@example.com"}
	assert.NoError(t, profiles.Create(context.Background(), ownerProfile))

	church := &model.Church{Id: uuid.New(), Name: "Grace Chapel", OwnerProfileId: ownerProfile.Id, IsActive: true}
	assert.NoError(t, churches.Create(context.Background(), church))

	resp, err := svc.CreateDisagreement(context.Background(), ownerId, &dto.CreateDisagreementRequest{
		DocumentType: model.DocumentChurchAdminTerm,
		ChurchId:     &church.Id,
	})

	assert.NoError(t, err)
	assert.Equal(t, model.DisagreementChurchDeletion, resp.DisagreementType)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), resp.DeadlineAt, time.Minute)
	assert.Equal(t, church.Id, *disagreements.get(resp.Id).ChurchId)
}

func TestCreateDisagreement_ChurchIdRequired(t *testing.T) {
	svc, _, profiles, _, _ := newLegalFixture()

	userId := uuid.New()
	assert.NoError(t, profiles.Create(context.Background(), &model.Profile{Id: uuid.New(), UserId: userId}))

	_, err := svc.CreateDisagreement(context.Background(), userId, &dto.CreateDisagreementRequest{
		DocumentType: model.DocumentChurchAdminTerm,
	})
	assert.ErrorIs(t, err, ErrChurchRequired)
}

func TestCreateDisagreement_OnlyOwnerMayDisagree(t *testing.T) {
	svc, _, profiles, churches, _ := newLegalFixture()

	memberId := uuid.New()
	memberProfile := &model.Profile{Id: uuid.New(), UserId: memberId}
	assert.NoError(t, profiles.Create(context.Background(), memberProfile))

	church := &model.Church{Id: uuid.New(), Name: "Grace Chapel", OwnerProfileId: uuid.New(), IsActive: true}
	assert.NoError(t, churches.Create(context.Background(), church))

	_, err := svc.CreateDisagreement(context.Background(), memberId, &dto.CreateDisagreementRequest{
		DocumentType: model.DocumentChurchAdminTerm,
		ChurchId:     &church.Id,
	})
	assert.ErrorIs(t, err, ErrNotChurchOwner)
}

func TestWithdrawDisagreement(t *testing.T) {
	svc, disagreements, _, _, publisher := newLegalFixture()

	userId := uuid.New()
	resp, err := svc.CreateDisagreement(context.Background(), userId, &dto.CreateDisagreementRequest{
		DocumentType: model.DocumentTermsOfService,
	})
	assert.NoError(t, err)

	assert.NoError(t, svc.WithdrawDisagreement(context.Background(), userId, resp.Id))
	assert.Nil(t, disagreements.get(resp.Id))

	// Created + reversed.
	assert.Len(t, publisher.published, 2)
}

func TestWithdrawDisagreement_WrongUser(t *testing.T) {
	svc, _, _, _, _ := newLegalFixture()

	userId := uuid.New()
	resp, err := svc.CreateDisagreement(context.Background(), userId, &dto.CreateDisagreementRequest{
		DocumentType: model.DocumentTermsOfService,
	})
	assert.NoError(t, err)

	err = svc.WithdrawDisagreement(context.Background(), uuid.New(), resp.Id)
	assert.ErrorIs(t, err, ErrDisagreementNotFound)
}

func TestWithdrawDisagreement_NotPending(t *testing.T) {
	svc, disagreements, _, _, _ := newLegalFixture()

	userId := uuid.New()
	resp, err := svc.CreateDisagreement(context.Background(), userId, &dto.CreateDisagreementRequest{
		DocumentType: model.DocumentTermsOfService,
	})
	assert.NoError(t, err)

	claimed, err := disagreements.ClaimPending(context.Background(), resp.Id)
	assert.NoError(t, err)
	assert.True(t, claimed)

	err = svc.WithdrawDisagreement(context.Background(), userId, resp.Id)
	assert.ErrorIs(t, err, ErrDisagreementNotPending)
}

func TestGetDisagreements_OwnRowsOnly(t *testing.T) {
	svc, _, _, _, _ := newLegalFixture()

	userId := uuid.New()
	_, err := svc.CreateDisagreement(context.Background(), userId, &dto.CreateDisagreementRequest{
		DocumentType: model.DocumentTermsOfService,
	})
	assert.NoError(t, err)
	_, err = svc.CreateDisagreement(context.Background(), uuid.New(), &dto.CreateDisagreementRequest{
		DocumentType: model.DocumentTermsOfService,
	})
	assert.NoError(t, err)

	mine, err := svc.GetDisagreements(context.Background(), userId)
	assert.NoError(t, err)
	assert.Len(t, mine, 1)
}
