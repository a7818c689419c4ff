package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doarbem/donation-api/internal/domain"
	"github.com/doarbem/donation-api/internal/repository"
)

type mockCampaignRepo struct {
	campaigns map[uint]domain.Campaign
	rootID    uint
}

func newMockCampaignRepo(campaigns ...domain.Campaign) *mockCampaignRepo {
	repo := &mockCampaignRepo{campaigns: make(map[uint]domain.Campaign)}
	for _, c := range campaigns {
		repo.campaigns[c.ID] = c
		if c.IsRoot {
			repo.rootID = c.ID
		}
	}

	return repo
}

func (m *mockCampaignRepo) Create(_ context.Context, campaign domain.Campaign) (domain.Campaign, error) {
	campaign.ID = uint(len(m.campaigns) + 1)
	m.campaigns[campaign.ID] = campaign

	return campaign, nil
}

func (m *mockCampaignRepo) FindByID(_ context.Context, id uint) (domain.Campaign, error) {
	campaign, ok := m.campaigns[id]
	if !ok {
		return domain.Campaign{}, repository.ErrCampaignNotFound
	}

	return campaign, nil
}

func (m *mockCampaignRepo) FindRoot(_ context.Context) (domain.Campaign, error) {
	if m.rootID == 0 {
		return domain.Campaign{}, repository.ErrRootCampaignNotFound
	}

	return m.campaigns[m.rootID], nil
}

func (m *mockCampaignRepo) FindAll(_ context.Context, status domain.CampaignStatus, query domain.PageQuery) ([]domain.Campaign, int64, error) {
	var out []domain.Campaign
	for _, c := range m.campaigns {
		if status == "" || c.Status == status {
			out = append(out, c)
		}
	}

	return out, int64(len(out)), nil
}

func (m *mockCampaignRepo) Update(_ context.Context, campaign domain.Campaign) (domain.Campaign, error) {
	m.campaigns[campaign.ID] = campaign

	return campaign, nil
}

func (m *mockCampaignRepo) SetIsRoot(_ context.Context, id uint, isRoot bool) error {
	campaign, ok := m.campaigns[id]
	if !ok {
		return repository.ErrCampaignNotFound
	}

	campaign.IsRoot = isRoot
	m.campaigns[id] = campaign

	if isRoot {
		m.rootID = id
	} else if m.rootID == id {
		m.rootID = 0
	}

	return nil
}

func (m *mockCampaignRepo) Delete(_ context.Context, id uint) error {
	delete(m.campaigns, id)

	return nil
}

func (m *mockCampaignRepo) CompleteEnded(_ context.Context, now time.Time) (int64, error) {
	var n int64
	for id, c := range m.campaigns {
		if c.Status == domain.CampaignStatusActive && c.EndDate.Before(now) {
			c.Status = domain.CampaignStatusCompleted
			m.campaigns[id] = c
			n++
		}
	}

	return n, nil
}

func TestCreateCampaignDefaultsToDraft(t *testing.T) {
	svc := NewCampaignService(newMockCampaignRepo())

	created, err := svc.CreateCampaign(context.Background(), domain.Campaign{Title: "Natal Solidário"})

	require.NoError(t, err)
	assert.Equal(t, domain.CampaignStatusDraft, created.Status)
}

func TestCreateCampaignKeepsGivenStatus(t *testing.T) {
	svc := NewCampaignService(newMockCampaignRepo())

	created, err := svc.CreateCampaign(context.Background(), domain.Campaign{
		Title:  "Natal Solidário",
		Status: domain.CampaignStatusActive,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.CampaignStatusActive, created.Status)
}

func TestSetRootCampaignWhenNoneSet(t *testing.T) {
	repo := newMockCampaignRepo(domain.Campaign{ID: 1, Title: "A"})
	svc := NewCampaignService(repo)

	campaign, err := svc.SetRootCampaign(context.Background(), 1)

	require.NoError(t, err)
	assert.True(t, campaign.IsRoot)
	assert.Equal(t, uint(1), repo.rootID)
}

func TestSetRootCampaignMovesFlag(t *testing.T) {
	repo := newMockCampaignRepo(
		domain.Campaign{ID: 1, Title: "A", IsRoot: true},
		domain.Campaign{ID: 2, Title: "B"},
	)
	svc := NewCampaignService(repo)

	campaign, err := svc.SetRootCampaign(context.Background(), 2)

	require.NoError(t, err)
	assert.True(t, campaign.IsRoot)
	assert.False(t, repo.campaigns[1].IsRoot, "previous root must be cleared")
	assert.Equal(t, uint(2), repo.rootID)
}

func TestSetRootCampaignSameCampaignIsNoop(t *testing.T) {
	repo := newMockCampaignRepo(domain.Campaign{ID: 1, Title: "A", IsRoot: true})
	svc := NewCampaignService(repo)

	campaign, err := svc.SetRootCampaign(context.Background(), 1)

	require.NoError(t, err)
	assert.True(t, campaign.IsRoot)
	assert.Equal(t, uint(1), repo.rootID)
}

func TestSetRootCampaignUnknownID(t *testing.T) {
	svc := NewCampaignService(newMockCampaignRepo())

	_, err := svc.SetRootCampaign(context.Background(), 42)

	assert.ErrorIs(t, err, ErrCampaignNotFound)
}

func TestGetRootCampaignNotSet(t *testing.T) {
	svc := NewCampaignService(newMockCampaignRepo(domain.Campaign{ID: 1}))

	_, err := svc.GetRootCampaign(context.Background())

	assert.ErrorIs(t, err, ErrRootCampaignNotFound)
}

func TestCompleteEndedCampaigns(t *testing.T) {
	past := time.Now().Add(-24 * time.Hour)
	future := time.Now().Add(24 * time.Hour)
	repo := newMockCampaignRepo(
		domain.Campaign{ID: 1, Status: domain.CampaignStatusActive, EndDate: past},
		domain.Campaign{ID: 2, Status: domain.CampaignStatusActive, EndDate: future},
		domain.Campaign{ID: 3, Status: domain.CampaignStatusDraft, EndDate: past},
	)
	svc := NewCampaignService(repo)

	n, err := svc.CompleteEndedCampaigns(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, domain.CampaignStatusCompleted, repo.campaigns[1].Status)
	assert.Equal(t, domain.CampaignStatusActive, repo.campaigns[2].Status)
}
