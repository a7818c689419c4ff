package request

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validCreateCampaign() CreateCampaignRequest {
	start := time.Now().Add(24 * time.Hour)

	return CreateCampaignRequest{
		Title:        "Natal Solidário",
		Description:  "Arrecadação de fim de ano",
		TargetAmount: 10000,
		StartDate:    start.Format(time.RFC3339),
		EndDate:      start.Add(30 * 24 * time.Hour).Format(time.RFC3339),
	}
}

func TestCreateCampaignRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateCampaignRequest)
		wantErr bool
	}{
		{name: "valid", mutate: func(r *CreateCampaignRequest) {}},
		{name: "valid with status", mutate: func(r *CreateCampaignRequest) { r.Status = "active" }},
		{name: "missing title", mutate: func(r *CreateCampaignRequest) { r.Title = "" }, wantErr: true},
		{name: "zero target", mutate: func(r *CreateCampaignRequest) { r.TargetAmount = 0 }, wantErr: true},
		{name: "unknown status", mutate: func(r *CreateCampaignRequest) { r.Status = "archived" }, wantErr: true},
		{name: "bad start date", mutate: func(r *CreateCampaignRequest) { r.StartDate = "2026-03-01" }, wantErr: true},
		{name: "end equals start", mutate: func(r *CreateCampaignRequest) { r.EndDate = r.StartDate }, wantErr: true},
		{name: "end before start", mutate: func(r *CreateCampaignRequest) {
			r.EndDate = time.Now().Format(time.RFC3339)
		}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreateCampaign()
			tc.mutate(&req)

			err := req.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateCampaignDates(t *testing.T) {
	start := "2026-03-01T00:00:00Z"

	assert.NoError(t, validateCampaignDates(start, "2026-04-01T00:00:00Z"))
	assert.ErrorIs(t, validateCampaignDates(start, start), errEndBeforeStart)
	assert.ErrorIs(t, validateCampaignDates(start, "2026-02-01T00:00:00Z"), errEndBeforeStart)
}
